// Package logging wraps zap's sugared logger for the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a key/value logger (Infow, Debugw, Warnw, Errorw).
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes human-readable logs to stderr. Verbose enables debug
// output; otherwise only warnings and errors are shown so stdout stays
// reserved for results.
func NewLogger(verbose bool) *Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	l, err := cfg.Build()
	if err != nil {
		return Nop()
	}
	return &Logger{l.Sugar()}
}

// New builds a Logger on top of an existing core.
func New(core zapcore.Core) *Logger {
	return &Logger{zap.New(core).Sugar()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{l.SugaredLogger.With(keysAndValues...)}
}
