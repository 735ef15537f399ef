package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stat1c-Null/AlcoholicDetector/dataset"
)

func generate(cmd *cobra.Command) error {
	if samplesFlag < 0 {
		return fmt.Errorf("--samples must be >= 0, got %d", samplesFlag)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	samples := dataset.Generate(samplesFlag, s.rng)

	var w io.Writer = s.out
	if outFlag != "" {
		f, err := os.Create(outFlag)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := dataset.Write(w, samples); err != nil {
		return err
	}
	s.log.Infof("generated %d samples (%d alcoholic)", len(samples), dataset.CountPositives(samples))
	return nil
}

func generateCMD() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "write a synthetic dataset",
		Long:  "Writes a CSV dataset with half alcoholic and half non-alcoholic samples drawn from typical ranges.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd)
		},
	}
	attachFlags(generateCmd, []string{"config", "seed", "log-level", "samples", "out"})
	return generateCmd
}
