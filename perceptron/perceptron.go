package perceptron

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tevino/abool"
	"gonum.org/v1/gonum/floats"
)

// DefaultLearningRate is the learning rate used when the caller has no
// preference
const DefaultLearningRate = 0.01

// Perceptron is a single neuron linear classifier trained with the classic
// perceptron rule. It is not safe for concurrent use while Train is running.
type Perceptron struct {
	// w[0] is the bias, w[1:] are the feature weights
	w            []float64
	learningRate float64
	trained      *abool.AtomicBool
	observer     Observer
}

// NewPerceptron returns a perceptron for numFeatures inputs with all weights
// set to zero
func NewPerceptron(numFeatures int, learningRate float64) *Perceptron {
	if numFeatures < 1 {
		panic(fmt.Sprintf("number of features must be >= 1, got %d", numFeatures))
	}
	if learningRate <= 0 {
		panic(fmt.Sprintf("learning rate must be > 0, got %g", learningRate))
	}
	return &Perceptron{
		w:            make([]float64, numFeatures+1),
		learningRate: learningRate,
		trained:      abool.New(),
	}
}

// Activation is the unit step function. A decision value of exactly zero is
// assigned to the positive class.
func Activation(z float64) int {
	if z >= 0 {
		return 1
	}
	return 0
}

// SetObserver registers o to be called after every weight update during
// Train. Pass nil to remove it.
func (p *Perceptron) SetObserver(o Observer) {
	p.observer = o
}

// NumFeatures returns the length of the feature vectors the model accepts
func (p *Perceptron) NumFeatures() int {
	return len(p.w) - 1
}

// LearningRate does just that
func (p *Perceptron) LearningRate() float64 {
	return p.learningRate
}

// Bias returns w[0]
func (p *Perceptron) Bias() float64 {
	return p.w[0]
}

// Weights returns a copy of the weight vector, bias first
func (p *Perceptron) Weights() []float64 {
	w := make([]float64, len(p.w))
	copy(w, p.w)
	return w
}

// IsTrained reports whether Train has completed at least once
func (p *Perceptron) IsTrained() bool {
	return p.trained.IsSet()
}

// DecisionValue returns the weighted sum w[0] + w[1:]·x
func (p *Perceptron) DecisionValue(x []float64) (float64, error) {
	if len(x) != p.NumFeatures() {
		return 0, shapeError(len(x), p.NumFeatures())
	}
	return p.decisionValue(x), nil
}

func (p *Perceptron) decisionValue(x []float64) float64 {
	return p.w[0] + floats.Dot(p.w[1:], x)
}

// Predict returns the class (0 or 1) of x under the current weights
func (p *Perceptron) Predict(x []float64) (int, error) {
	z, err := p.DecisionValue(x)
	if err != nil {
		return 0, err
	}
	return Activation(z), nil
}

// Train fits the weights to x and y from scratch: any previous training is
// discarded. Weights are updated right after each example, in the given
// order, for exactly epochs passes. The input is validated before the weights
// are touched.
func (p *Perceptron) Train(x [][]float64, y []int, epochs int) (*Perceptron, error) {
	if epochs < 1 {
		return p, errors.Wrapf(ErrInvalidParameter, "epochs must be >= 1, got %d", epochs)
	}
	prob, err := NewProblem(x, y)
	if err != nil {
		return p, err
	}
	if prob.N != p.NumFeatures() {
		return p, shapeError(prob.N, p.NumFeatures())
	}

	p.trained.UnSet()
	for i := range p.w {
		p.w[i] = 0
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for i, xi := range prob.X {
			prediction := Activation(p.decisionValue(xi))
			e := prob.Y[i] - prediction

			delta := p.learningRate * float64(e)
			floats.AddScaled(p.w[1:], delta, xi)
			p.w[0] += delta

			if p.observer != nil {
				p.observer.OnUpdate(Update{
					Epoch:      epoch,
					Index:      i,
					Label:      prob.Y[i],
					Prediction: prediction,
					Error:      e,
					Weights:    p.Weights(),
				})
			}
		}
	}

	p.trained.Set()
	return p, nil
}

// TrainProblem builds a perceptron for prob and trains it with param
func TrainProblem(prob *Problem, param *Parameter) (*Perceptron, error) {
	if param.learningRate <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "learning rate must be > 0, got %g", param.learningRate)
	}
	if prob.N < 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "problem has no features")
	}
	return NewPerceptron(prob.N, param.learningRate).Train(prob.X, prob.Y, param.epochs)
}
