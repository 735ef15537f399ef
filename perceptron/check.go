package perceptron

import (
	"fmt"
	"io"
)

// Class is the predicted drinking profile
type Class int

const (
	// NonAlcoholic is the negative class
	NonAlcoholic Class = 0
	// Alcoholic is the positive class
	Alcoholic Class = 1
)

func (c Class) String() string {
	if c == Alcoholic {
		return "Alcoholic"
	}
	return "Non-Alcoholic"
}

// FeatureNames lists the six lifestyle features in the order the model
// expects them
var FeatureNames = []string{
	"drinks per session",
	"times drunk per month",
	"average alcohol content (ABV)",
	"thoughts about alcohol",
	"session duration in hours",
	"morning drinking frequency",
}

// CheckAlcoholic predicts x and writes a human readable verdict to w
func (p *Perceptron) CheckAlcoholic(w io.Writer, x []float64) (Class, error) {
	prediction, err := p.Predict(x)
	if err != nil {
		return NonAlcoholic, err
	}

	class := Class(prediction)
	if _, err := fmt.Fprintf(w, "The person is predicted to be %s.\n", class); err != nil {
		return class, err
	}
	return class, nil
}
