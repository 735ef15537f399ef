package perceptron

import (
	"math/rand"

	"github.com/pkg/errors"
)

// CrossValidation runs n-fold cross validation: the examples are permuted,
// cut into nrFold contiguous folds, and every fold is predicted by a model
// trained on the others. The predicted labels are returned in the original
// example order.
func CrossValidation(prob *Problem, param *Parameter, nrFold int, rng *rand.Rand) ([]int, error) {
	if nrFold < 2 {
		return nil, errors.Wrapf(ErrInvalidParameter, "n-fold cross validation: n must be >= 2, got %d", nrFold)
	}

	l := prob.L
	if nrFold > l {
		nrFold = l
		logger.Warnf("# folds > # data. Will use # folds = # data instead (i.e., leave-one-out cross validation)")
	}

	perm := make([]int, l)
	for i := 0; i < l; i++ {
		perm[i] = i
	}
	for i := 0; i < l; i++ {
		j := i + rng.Intn(l-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	foldStart := make([]int, nrFold+1)
	for i := 0; i <= nrFold; i++ {
		foldStart[i] = i * l / nrFold
	}

	target := make([]int, l)
	for i := 0; i < nrFold; i++ {
		begin := foldStart[i]
		end := foldStart[i+1]

		subX := make([][]float64, 0, l-(end-begin))
		subY := make([]int, 0, l-(end-begin))
		for j := 0; j < begin; j++ {
			subX = append(subX, prob.X[perm[j]])
			subY = append(subY, prob.Y[perm[j]])
		}
		for j := end; j < l; j++ {
			subX = append(subX, prob.X[perm[j]])
			subY = append(subY, prob.Y[perm[j]])
		}

		subProb, err := NewProblem(subX, subY)
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d", i)
		}
		subModel, err := TrainProblem(subProb, param)
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d", i)
		}

		for j := begin; j < end; j++ {
			if target[perm[j]], err = subModel.Predict(prob.X[perm[j]]); err != nil {
				return nil, err
			}
		}
		logger.Debugf("fold %d: trained on %d examples, predicted %d", i, subProb.L, end-begin)
	}

	return target, nil
}

// LabelAccuracy returns the fraction of target labels equal to y
func LabelAccuracy(target []int, y []int) (float64, error) {
	if len(target) != len(y) {
		return 0, errors.Wrapf(ErrShapeMismatch, "%d predictions but %d labels", len(target), len(y))
	}
	if len(y) == 0 {
		return 0, divisionError("number of labels")
	}

	var correct int
	for i := range y {
		if target[i] == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y)), nil
}
