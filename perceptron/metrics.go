package perceptron

import "github.com/pkg/errors"

// ConfusionMatrix holds prediction counts relative to the positive class 1
type ConfusionMatrix struct {
	TP int
	FP int
	TN int
	FN int
}

// Total is the number of examples counted
func (c ConfusionMatrix) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Accuracy is the fraction of correct predictions
func (c ConfusionMatrix) Accuracy() (float64, error) {
	if c.Total() == 0 {
		return 0, divisionError("test set size")
	}
	return float64(c.TP+c.TN) / float64(c.Total()), nil
}

// Precision is TP / (TP + FP): of the examples predicted positive, the share
// that actually is
func (c ConfusionMatrix) Precision() (float64, error) {
	if c.TP+c.FP == 0 {
		return 0, divisionError("number of predicted positives")
	}
	return float64(c.TP) / float64(c.TP+c.FP), nil
}

// Recall is TP / (TP + FN): of the actual positives, the share predicted
// positive. It is also the true positive rate.
func (c ConfusionMatrix) Recall() (float64, error) {
	if c.TP+c.FN == 0 {
		return 0, divisionError("number of actual positives")
	}
	return float64(c.TP) / float64(c.TP+c.FN), nil
}

// FalsePositiveRate is FP / (FP + TN)
func (c ConfusionMatrix) FalsePositiveRate() (float64, error) {
	if c.FP+c.TN == 0 {
		return 0, divisionError("number of actual negatives")
	}
	return float64(c.FP) / float64(c.FP+c.TN), nil
}

// AUC approximates the area under the ROC curve from the single operating
// point of the fixed decision threshold: (1 + TPR - FPR) / 2. No threshold
// sweep is done.
func (c ConfusionMatrix) AUC() (float64, error) {
	tpr, err := c.Recall()
	if err != nil {
		return 0, err
	}
	fpr, err := c.FalsePositiveRate()
	if err != nil {
		return 0, err
	}
	return (1 + tpr - fpr) / 2, nil
}

// Confusion predicts every row of x and counts the outcomes against y
func (p *Perceptron) Confusion(x [][]float64, y []int) (ConfusionMatrix, error) {
	var c ConfusionMatrix
	if len(x) != len(y) {
		return c, errors.Wrapf(ErrShapeMismatch, "%d feature vectors but %d labels", len(x), len(y))
	}

	for i := range x {
		if err := checkLabel(y[i]); err != nil {
			return c, errors.Wrapf(err, "example %d", i)
		}
		prediction, err := p.Predict(x[i])
		if err != nil {
			return c, errors.Wrapf(err, "example %d", i)
		}

		switch {
		case prediction == 1 && y[i] == 1:
			c.TP++
		case prediction == 1 && y[i] == 0:
			c.FP++
		case prediction == 0 && y[i] == 0:
			c.TN++
		default:
			c.FN++
		}
	}
	return c, nil
}

// Evaluate returns the accuracy on the test set
func (p *Perceptron) Evaluate(x [][]float64, y []int) (float64, error) {
	c, err := p.Confusion(x, y)
	if err != nil {
		return 0, err
	}
	return c.Accuracy()
}

// Precision returns TP / (TP + FP) on the test set
func (p *Perceptron) Precision(x [][]float64, y []int) (float64, error) {
	c, err := p.Confusion(x, y)
	if err != nil {
		return 0, err
	}
	return c.Precision()
}

// Recall returns TP / (TP + FN) on the test set
func (p *Perceptron) Recall(x [][]float64, y []int) (float64, error) {
	c, err := p.Confusion(x, y)
	if err != nil {
		return 0, err
	}
	return c.Recall()
}

// ROC returns the single point AUC approximation on the test set, see
// ConfusionMatrix.AUC
func (p *Perceptron) ROC(x [][]float64, y []int) (float64, error) {
	c, err := p.Confusion(x, y)
	if err != nil {
		return 0, err
	}
	return c.AUC()
}

// F1Score is the harmonic mean of precision and recall. Both must come from
// the same test set.
func F1Score(precision float64, recall float64) (float64, error) {
	if precision+recall == 0 {
		return 0, divisionError("precision + recall")
	}
	return 2 * (precision * recall) / (precision + recall), nil
}

// Metric is a computed value or the reason it could not be computed
type Metric struct {
	Value float64
	Err   error
}

// Defined reports whether the metric has a value
func (m Metric) Defined() bool {
	return m.Err == nil
}

func newMetric(value float64, err error) Metric {
	return Metric{Value: value, Err: err}
}

// Report collects every evaluation metric for one test set
type Report struct {
	Confusion ConfusionMatrix
	Accuracy  Metric
	Precision Metric
	Recall    Metric
	F1        Metric
	AUC       Metric
}

// Score computes a Report. Undefined metrics are recorded in the report;
// the returned error is only set for malformed input.
func (p *Perceptron) Score(x [][]float64, y []int) (*Report, error) {
	c, err := p.Confusion(x, y)
	if err != nil {
		return nil, err
	}

	r := &Report{Confusion: c}
	r.Accuracy = newMetric(c.Accuracy())
	r.Precision = newMetric(c.Precision())
	r.Recall = newMetric(c.Recall())
	r.AUC = newMetric(c.AUC())

	switch {
	case !r.Precision.Defined():
		r.F1 = Metric{Err: errors.WithMessage(r.Precision.Err, "f1")}
	case !r.Recall.Defined():
		r.F1 = Metric{Err: errors.WithMessage(r.Recall.Err, "f1")}
	default:
		r.F1 = newMetric(F1Score(r.Precision.Value, r.Recall.Value))
	}
	return r, nil
}
