package perceptron

// Update describes a single online weight update
type Update struct {
	Epoch      int
	Index      int
	Label      int
	Prediction int
	// Error is Label - Prediction, one of -1, 0 or 1
	Error int
	// Weights is a copy of the weight vector after the update, bias first
	Weights []float64
}

// Observer receives the updates made during training
type Observer interface {
	OnUpdate(u Update)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(u Update)

// OnUpdate calls f(u)
func (f ObserverFunc) OnUpdate(u Update) {
	f(u)
}

// Logger is the subset of a leveled logger the package writes to
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}

var logger Logger = nopLogger{}

// SetLogger sets the logger used for package diagnostics. The package is
// silent until this is called; nil restores that.
func SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	logger = l
}
