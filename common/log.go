package common

import (
	"io"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel is the minimum level a logger writes
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var logLevelValue = map[string]LogLevel{
	"DEBUG": LevelDebug,
	"INFO":  LevelInfo,
	"WARN":  LevelWarn,
	"ERROR": LevelError,
}

// ParseLogLevel maps DEBUG, INFO, WARN or ERROR (any case) to a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	level, ok := logLevelValue[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, errors.Errorf("unknown log level %q", s)
	}
	return level, nil
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zap.DebugLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// LogConfig configures NewSugaredLogger
type LogConfig struct {
	Level LogLevel
	// Path enables a rotated log file when set
	Path           string
	RotationMaxAge int // days
	RotationTime   int // hours
	RotationSize   int // MB
	ShowLine       bool
	// Console is where console output goes, nil disables it
	Console io.Writer
}

// DefaultLogConfig logs INFO and above to stderr
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:          LevelInfo,
		RotationMaxAge: 7,
		RotationTime:   24,
		RotationSize:   10,
		Console:        os.Stderr,
	}
}

// NewSugaredLogger builds a named console/file logger from lc
func NewSugaredLogger(name string, lc *LogConfig) (*zap.SugaredLogger, error) {
	zapLevel := lc.Level.zapLevel()
	priorityLevel := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapLevel
	})

	var syncers []zapcore.WriteSyncer
	if lc.Console != nil {
		syncers = append(syncers, zapcore.AddSync(lc.Console))
	}
	if lc.Path != "" {
		rotationWriter, err := rotatelogs.New(
			lc.Path+".%Y%m%d%H",
			rotatelogs.WithRotationTime(time.Duration(lc.RotationTime)*time.Hour),
			rotatelogs.WithRotationSize(int64(lc.RotationSize)*1024*1024),
			rotatelogs.WithMaxAge(time.Duration(lc.RotationMaxAge)*24*time.Hour),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "new rotation log %s", lc.Path)
		}
		syncers = append(syncers, zapcore.AddSync(rotationWriter))
	}
	if len(syncers) == 0 {
		return zap.NewNop().Sugar(), nil
	}

	customLevelEncoder := func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + level.CapitalString() + "]")
	}
	customTimeEncoder := func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
	}
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "line",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		priorityLevel,
	)

	var opts []zap.Option
	if lc.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(name).Sugar(), nil
}
