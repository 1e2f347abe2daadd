// Package logger provides the zap-backed application logger and the logr
// bridge handed to controller-runtime.
package logger

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.SugaredLogger
	zlog *zap.Logger
)

// Initialize sets up the process-wide logger. Debug enables development
// encoding and debug-level output.
func Initialize(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	built, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// Fall back to a no-op logger rather than crashing at startup
		built = zap.NewNop()
	}
	zlog = built
	log = built.Sugar()
}

// NewLogr returns a logr.Logger backed by the process logger, suitable for
// controller-runtime's log.SetLogger.
func NewLogr() logr.Logger {
	ensure()
	return zapr.NewLogger(zlog.WithOptions(zap.AddCallerSkip(-1)))
}

// Sync flushes buffered log entries.
func Sync() {
	ensure()
	_ = zlog.Sync()
}

func ensure() {
	if log == nil {
		Initialize(false)
	}
}

// Infof logs at info level with formatting.
func Infof(format string, args ...any) {
	ensure()
	log.Infof(format, args...)
}

// Info logs at info level.
func Info(args ...any) {
	ensure()
	log.Info(args...)
}

// Warnf logs at warn level with formatting.
func Warnf(format string, args ...any) {
	ensure()
	log.Warnf(format, args...)
}

// Warn logs at warn level.
func Warn(args ...any) {
	ensure()
	log.Warn(args...)
}

// Errorf logs at error level with formatting.
func Errorf(format string, args ...any) {
	ensure()
	log.Errorf(format, args...)
}

// Fatalf logs at fatal level with formatting, then exits.
func Fatalf(format string, args ...any) {
	ensure()
	log.Fatalf(format, args...)
}
