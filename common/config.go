package common

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys
const (
	KeyDataPath     = "data.path"
	KeyTestRatio    = "data.test_ratio"
	KeySeed         = "data.seed"
	KeyLearningRate = "train.learning_rate"
	KeyEpochs       = "train.epochs"
	KeyLogLevel     = "log.level"
	KeyLogPath      = "log.path"
	KeyLogConsole   = "log.console"
)

// LocalConfig is the resolved configuration of one run
type LocalConfig struct {
	DataPath     string
	TestRatio    float64
	Seed         int64
	LearningRate float64
	Epochs       int
	Log          *LogConfig
}

// NewViper returns a viper instance with defaults and ALCODETECT_* env
// overrides, e.g. ALCODETECT_TRAIN_EPOCHS
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("alcodetect")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(KeyDataPath, "alcoholic_data.csv")
	v.SetDefault(KeyTestRatio, 0.3)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyLearningRate, 0.02)
	v.SetDefault(KeyEpochs, 100)
	v.SetDefault(KeyLogLevel, "INFO")
	v.SetDefault(KeyLogPath, "")
	v.SetDefault(KeyLogConsole, true)
	return v
}

// InitLocalConfig reads configFile (when set, otherwise an optional
// alcodetect_config.yaml in the working directory), applies flag overrides
// and returns the resolved configuration. flagKeys maps flag names to
// configuration keys.
func InitLocalConfig(v *viper.Viper, configFile string, flags *pflag.FlagSet, flagKeys map[string]string) (*LocalConfig, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("alcodetect_config")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configFile != "" {
			return nil, errors.Wrap(err, "read config")
		}
	}

	for name, key := range flagKeys {
		if flag := flags.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
	}

	level, err := ParseLogLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}
	lc := DefaultLogConfig()
	lc.Level = level
	lc.Path = v.GetString(KeyLogPath)
	if !v.GetBool(KeyLogConsole) {
		lc.Console = nil
	}

	return &LocalConfig{
		DataPath:     v.GetString(KeyDataPath),
		TestRatio:    v.GetFloat64(KeyTestRatio),
		Seed:         v.GetInt64(KeySeed),
		LearningRate: v.GetFloat64(KeyLearningRate),
		Epochs:       v.GetInt(KeyEpochs),
		Log:          lc,
	}, nil
}
