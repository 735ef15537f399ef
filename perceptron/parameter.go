package perceptron

import "github.com/pkg/errors"

// Parameter contains the hyperparameters of a training run
type Parameter struct {
	learningRate float64
	epochs       int
}

// NewParameter constructs a Parameter
func NewParameter(learningRate float64, epochs int) *Parameter {
	return &Parameter{
		learningRate: learningRate,
		epochs:       epochs,
	}
}

// LearningRate gets the learning rate
func (p *Parameter) LearningRate() float64 {
	return p.learningRate
}

// Epochs gets the number of passes over the training set
func (p *Parameter) Epochs() int {
	return p.epochs
}

// SetLearningRate sets the learning rate, which must be positive
func (p *Parameter) SetLearningRate(learningRate float64) error {
	if learningRate <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "learning rate must be > 0, got %g", learningRate)
	}
	p.learningRate = learningRate
	return nil
}

// SetEpochs sets the number of epochs, which must be at least one
func (p *Parameter) SetEpochs(epochs int) error {
	if epochs < 1 {
		return errors.Wrapf(ErrInvalidParameter, "epochs must be >= 1, got %d", epochs)
	}
	p.epochs = epochs
	return nil
}
