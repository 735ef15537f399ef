package perceptron

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch is returned when a feature vector does not have the
	// number of values the model was built for.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDivisionUndefined is returned by a metric whose denominator is zero,
	// e.g. precision when the model predicts no positives.
	ErrDivisionUndefined = errors.New("division undefined")

	// ErrInvalidLabel is returned for labels other than 0 and 1
	ErrInvalidLabel = errors.New("invalid label")

	// ErrInvalidParameter is returned for out of range training parameters
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyProblem is returned when training on zero examples
	ErrEmptyProblem = errors.New("empty problem")
)

func shapeError(got int, want int) error {
	return errors.Wrapf(ErrShapeMismatch, "feature vector has %d values, expected %d", got, want)
}

func divisionError(what string) error {
	return errors.Wrapf(ErrDivisionUndefined, "%s is zero", what)
}
