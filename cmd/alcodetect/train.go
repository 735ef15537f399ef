package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Stat1c-Null/AlcoholicDetector/dataset"
	"github.com/Stat1c-Null/AlcoholicDetector/perceptron"
)

func train(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	samples, err := s.loadSamples()
	if err != nil {
		return err
	}

	if foldsFlag != 0 {
		return doCrossValidation(s, samples, foldsFlag)
	}

	model, testSet, err := s.splitAndTrain(samples)
	if err != nil {
		return err
	}

	x, y := dataset.ToProblem(testSet)
	report, err := model.Score(x, y)
	if err != nil {
		return err
	}
	printReport(s.out, report)

	if analyzeFlag {
		return analyze(cmd.InOrStdin(), s.out, model)
	}
	return nil
}

func doCrossValidation(s *session, samples []dataset.Sample, nrFold int) error {
	x, y := dataset.ToProblem(samples)
	prob, err := perceptron.NewProblem(x, y)
	if err != nil {
		return err
	}

	target, err := perceptron.CrossValidation(prob, s.param, nrFold, s.rng)
	if err != nil {
		return err
	}
	accuracy, err := perceptron.LabelAccuracy(target, prob.Y)
	if err != nil {
		return err
	}

	var correct int
	for i := range target {
		if target[i] == prob.Y[i] {
			correct++
		}
	}
	fmt.Fprintf(s.out, "correct: %d\n", correct)
	fmt.Fprintf(s.out, "Cross Validation Accuracy = %g%%\n", 100*accuracy)
	return nil
}

func printReport(w io.Writer, r *perceptron.Report) {
	c := r.Confusion
	fmt.Fprintf(w, "Confusion on test set: TP=%d FP=%d TN=%d FN=%d\n", c.TP, c.FP, c.TN, c.FN)
	fmt.Fprintf(w, "Model accuracy on test set: %s\n", percent(r.Accuracy))
	fmt.Fprintf(w, "Model precision on test set: %s\n", percent(r.Precision))
	fmt.Fprintf(w, "Model recall on test set: %s\n", percent(r.Recall))
	fmt.Fprintf(w, "Model F1 score on test set: %s\n", percent(r.F1))
	if r.AUC.Defined() {
		fmt.Fprintf(w, "Model ROC AUC on test set: %.2f\n", r.AUC.Value)
	} else {
		fmt.Fprintf(w, "Model ROC AUC on test set: undefined (%v)\n", r.AUC.Err)
	}
}

func percent(m perceptron.Metric) string {
	if !m.Defined() {
		return fmt.Sprintf("undefined (%v)", m.Err)
	}
	return fmt.Sprintf("%.2f%%", 100*m.Value)
}

func trainCMD() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "train and evaluate the perceptron",
		Long:  "Loads the dataset, holds out a stratified test set, trains the perceptron and prints accuracy, precision, recall, F1 and the single point ROC AUC.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return train(cmd)
		},
	}
	attachFlags(trainCmd, append(trainingFlags, "folds", "analyze"))
	return trainCmd
}
