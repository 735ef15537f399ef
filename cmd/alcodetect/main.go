package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Stat1c-Null/AlcoholicDetector/common"
)

var flags *pflag.FlagSet

var (
	cfgPathFlag      string
	dataFlag         string
	testRatioFlag    float64
	seedFlag         int64
	learningRateFlag float64
	epochsFlag       int
	logLevelFlag     string
	foldsFlag        int
	analyzeFlag      bool
	inputFlag        string
	featuresFlag     []float64
	samplesFlag      int
	outFlag          string
)

// flagKeys maps the flags that override configuration values to their keys
var flagKeys = map[string]string{
	"data":          common.KeyDataPath,
	"test-ratio":    common.KeyTestRatio,
	"seed":          common.KeySeed,
	"learning-rate": common.KeyLearningRate,
	"epochs":        common.KeyEpochs,
	"log-level":     common.KeyLogLevel,
}

var trainingFlags = []string{"config", "data", "test-ratio", "seed", "learning-rate", "epochs", "log-level"}

func init() {
	resetFlags()
}

// Explicitly define a method to facilitate tests
func resetFlags() {
	flags = &pflag.FlagSet{}

	flags.StringVarP(&cfgPathFlag, "config", "c", "",
		"config file (default ./alcodetect_config.yaml when present)")
	flags.StringVarP(&dataFlag, "data", "d", "alcoholic_data.csv",
		"labeled CSV dataset")
	flags.Float64Var(&testRatioFlag, "test-ratio", 0.3,
		"share of every class held out for testing")
	flags.Int64Var(&seedFlag, "seed", 0,
		"random seed for shuffling and splitting, 0 picks one from the clock")
	flags.Float64VarP(&learningRateFlag, "learning-rate", "r", 0.02,
		"perceptron learning rate")
	flags.IntVarP(&epochsFlag, "epochs", "e", 100,
		"passes over the training set")
	flags.StringVar(&logLevelFlag, "log-level", "INFO",
		"DEBUG, INFO, WARN or ERROR; DEBUG logs every weight update")
	flags.IntVarP(&foldsFlag, "folds", "v", 0,
		"n-fold cross validation mode (n >= 2)")
	flags.BoolVar(&analyzeFlag, "analyze", false,
		"ask for drinking habits on stdin after training")
	flags.StringVarP(&inputFlag, "input", "i", "",
		"CSV file with the samples to classify")
	flags.Float64SliceVar(&featuresFlag, "features", nil,
		"six comma separated features: drinks per session, times drunk per month, ABV, thoughts, session hours, morning drinking")
	flags.IntVarP(&samplesFlag, "samples", "n", 50,
		"number of samples to generate")
	flags.StringVarP(&outFlag, "out", "o", "",
		"output file, stdout when empty")
}

func attachFlags(cmd *cobra.Command, names []string) {
	cmdFlags := cmd.Flags()
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			cmdFlags.AddFlag(flag)
		} else {
			panic(fmt.Errorf("Could not find flag '%s' to attach to command '%s'", name, cmd.Name()))
		}
	}
}

func newMainCmd() *cobra.Command {
	mainCmd := &cobra.Command{
		Use:          "alcodetect",
		Short:        "perceptron based alcoholism detector",
		Long:         "Trains a single neuron perceptron on drinking habits and classifies people as alcoholic or not.",
		SilenceUsage: true,
	}
	mainCmd.AddCommand(trainCMD())
	mainCmd.AddCommand(predictCMD())
	mainCmd.AddCommand(checkCMD())
	mainCmd.AddCommand(generateCMD())
	return mainCmd
}

func main() {
	if newMainCmd().Execute() != nil {
		os.Exit(1)
	}
}
