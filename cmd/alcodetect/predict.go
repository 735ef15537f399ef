package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stat1c-Null/AlcoholicDetector/dataset"
	"github.com/Stat1c-Null/AlcoholicDetector/perceptron"
)

// DoPredict classifies every sample read from reader and writes one class
// per line to writer. When every sample carries a label the accuracy is
// written last.
func DoPredict(reader io.Reader, writer io.Writer, model *perceptron.Perceptron) error {
	samples, err := dataset.Load(reader)
	if err != nil {
		return err
	}

	var correct int
	labeled := len(samples) > 0
	for _, s := range samples {
		class, err := model.Predict(s.Features())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "%s\n", perceptron.Class(class)); err != nil {
			return err
		}

		if s.Label == "" {
			labeled = false
		} else if class == s.Class() {
			correct++
		}
	}

	if labeled {
		fmt.Fprintf(writer, "Accuracy = %g%% (%d/%d)\n", 100*float64(correct)/float64(len(samples)), correct, len(samples))
	}
	return nil
}

func predict(cmd *cobra.Command) error {
	if inputFlag == "" {
		return fmt.Errorf("--input is required")
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

	f, err := os.Open(inputFlag)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return DoPredict(f, s.out, model)
}

func predictCMD() *cobra.Command {
	predictCmd := &cobra.Command{
		Use:   "predict",
		Short: "train, then classify the samples of a CSV file",
		Long:  "Trains the perceptron as train does, then writes Alcoholic or Non-Alcoholic for every row of --input.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return predict(cmd)
		},
	}
	attachFlags(predictCmd, append(trainingFlags, "input"))
	return predictCmd
}
