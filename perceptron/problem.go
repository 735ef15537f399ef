package perceptron

import "github.com/pkg/errors"

// Problem is a labeled dataset: L examples with N features each
type Problem struct {
	L int
	N int
	X [][]float64
	Y []int
}

// NewProblem validates x and y and wraps them in a Problem. The slices are
// not copied.
func NewProblem(x [][]float64, y []int) (*Problem, error) {
	if len(x) != len(y) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d feature vectors but %d labels", len(x), len(y))
	}
	if len(x) == 0 {
		return nil, ErrEmptyProblem
	}

	n := len(x[0])
	for i := range x {
		if len(x[i]) != n {
			return nil, errors.Wrapf(shapeError(len(x[i]), n), "example %d", i)
		}
		if err := checkLabel(y[i]); err != nil {
			return nil, errors.Wrapf(err, "example %d", i)
		}
	}

	return &Problem{L: len(x), N: n, X: x, Y: y}, nil
}

// Positives counts the examples labeled 1
func (p *Problem) Positives() int {
	var pos int
	for _, label := range p.Y {
		if label == 1 {
			pos++
		}
	}
	return pos
}

func checkLabel(label int) error {
	if label != 0 && label != 1 {
		return errors.Wrapf(ErrInvalidLabel, "label must be 0 or 1, got %d", label)
	}
	return nil
}
