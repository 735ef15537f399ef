package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Stat1c-Null/AlcoholicDetector/perceptron"
)

func check(cmd *cobra.Command) error {
	if len(featuresFlag) != len(perceptron.FeatureNames) {
		return fmt.Errorf("--features needs %d values, got %d: %w",
			len(perceptron.FeatureNames), len(featuresFlag), perceptron.ErrShapeMismatch)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	model, _, err := s.trainedModel()
	if err != nil {
		return err
	}
	_, err = model.CheckAlcoholic(s.out, featuresFlag)
	return err
}

func checkCMD() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "train, then classify one person",
		Long:  "Trains the perceptron as train does, then predicts whether the --features describe an alcoholic.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check(cmd)
		},
	}
	attachFlags(checkCmd, append(trainingFlags, "features"))
	return checkCmd
}
