package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Stat1c-Null/AlcoholicDetector/common"
	"github.com/Stat1c-Null/AlcoholicDetector/dataset"
	"github.com/Stat1c-Null/AlcoholicDetector/perceptron"
)

// session holds what every command needs: configuration, logger, the seeded
// random source and the output stream
type session struct {
	cfg   *common.LocalConfig
	log   *zap.SugaredLogger
	rng   *rand.Rand
	out   io.Writer
	param *perceptron.Parameter
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := common.InitLocalConfig(common.NewViper(), cfgPathFlag, cmd.Flags(), flagKeys)
	if err != nil {
		return nil, err
	}

	logger, err := common.NewSugaredLogger("alcodetect", cfg.Log)
	if err != nil {
		return nil, err
	}
	perceptron.SetLogger(logger)

	param := perceptron.NewParameter(perceptron.DefaultLearningRate, 1)
	if err := param.SetLearningRate(cfg.LearningRate); err != nil {
		return nil, err
	}
	if err := param.SetEpochs(cfg.Epochs); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("random seed %d", seed)

	return &session{
		cfg:   cfg,
		log:   logger,
		rng:   rand.New(rand.NewSource(seed)),
		out:   cmd.OutOrStdout(),
		param: param,
	}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
	perceptron.SetLogger(nil)
}

// loadSamples reads and shuffles the dataset and prints its class balance
func (s *session) loadSamples() ([]dataset.Sample, error) {
	samples, err := dataset.LoadFile(s.cfg.DataPath)
	if err != nil {
		return nil, err
	}
	dataset.Shuffle(samples, s.rng)
	s.log.Infof("loaded %d samples from %s", len(samples), s.cfg.DataPath)

	pos := dataset.CountPositives(samples)
	if len(samples) > 0 {
		fmt.Fprintf(s.out, "Alcoholic percentage in dataset: %.2f%%\n", 100*float64(pos)/float64(len(samples)))
	}
	fmt.Fprintf(s.out, "Number of alcoholic samples: %d out of %d total samples.\n", pos, len(samples))
	return samples, nil
}

// train fits a new perceptron to samples
func (s *session) train(samples []dataset.Sample) (*perceptron.Perceptron, error) {
	x, y := dataset.ToProblem(samples)
	prob, err := perceptron.NewProblem(x, y)
	if err != nil {
		return nil, err
	}

	model := perceptron.NewPerceptron(prob.N, s.param.LearningRate())
	if s.cfg.Log.Level == common.LevelDebug {
		model.SetObserver(perceptron.ObserverFunc(func(u perceptron.Update) {
			s.log.Debugf("epoch %d example %d: label %d prediction %d, updated weights %v",
				u.Epoch, u.Index, u.Label, u.Prediction, u.Weights)
		}))
	}

	start := time.Now()
	if _, err := model.Train(prob.X, prob.Y, s.param.Epochs()); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	s.log.Infow("training finished",
		"examples", prob.L,
		"epochs", s.param.Epochs(),
		"learning_rate", s.param.LearningRate(),
		"duration", elapsed,
		"weights", model.Weights())
	fmt.Fprintf(s.out, "Training time: %.2f seconds\n", elapsed.Seconds())
	return model, nil
}

// splitAndTrain holds out a stratified test set and trains on the rest
func (s *session) splitAndTrain(samples []dataset.Sample) (*perceptron.Perceptron, []dataset.Sample, error) {
	trainSet, testSet, err := dataset.StratifiedSplit(samples, s.cfg.TestRatio, s.rng)
	if err != nil {
		return nil, nil, err
	}
	s.log.Infof("split into %d training and %d test samples", len(trainSet), len(testSet))

	model, err := s.train(trainSet)
	if err != nil {
		return nil, nil, err
	}
	return model, testSet, nil
}

// trainedModel runs the full load, split and train pipeline
func (s *session) trainedModel() (*perceptron.Perceptron, []dataset.Sample, error) {
	samples, err := s.loadSamples()
	if err != nil {
		return nil, nil, err
	}
	return s.splitAndTrain(samples)
}
