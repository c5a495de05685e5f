// Package logger holds the process-wide zap logger used by the engine, the
// watcher and the CLI.
package logger

import (
	"io"
	"os"

	"github.com/teranos/autodeconstruct/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Initialize runs, so library callers never need a nil check.
var Logger = zap.NewNop().Sugar()

// Initialize points the global logger at stderr.
func Initialize(jsonOutput bool, verbosity int) error {
	return InitializeTo(os.Stderr, jsonOutput, verbosity)
}

// InitializeTo points the global logger at w. JSON output is meant for CI
// pipelines; the console form drops timestamps and callers.
func InitializeTo(w io.Writer, jsonOutput bool, verbosity int) error {
	if w == nil {
		return errors.New("logger: nil writer")
	}

	core := zapcore.NewCore(newEncoder(jsonOutput), zapcore.AddSync(w), VerbosityToLevel(verbosity))
	Logger = zap.New(core).Sugar()
	return nil
}

func newEncoder(jsonOutput bool) zapcore.Encoder {
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Cleanup flushes buffered entries.
func Cleanup() {
	_ = Logger.Sync()
}

// ComponentLogger returns the global logger named after a component. Pass the
// result into constructors instead of reaching for the global:
//
//	engine, err := deconstruct.NewEngine(opts, logger.ComponentLogger("deconstruct"))
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger adds fields to every entry of parent, e.g. the pass ID.
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
