package logger

import "go.uber.org/zap/zapcore"

// Verbosity is the count of -v flags.
const (
	VerbosityUser  = 0 // results and errors
	VerbosityInfo  = 1 // -v: skipped types, pass summaries
	VerbosityDebug = 2 // -vv: cache statistics, timing, config
	VerbosityTrace = 3 // -vvv: generated blocks
)

// VerbosityToLevel maps a -v count to the zap level: warn by default, info
// at -v, debug from -vv up. zap has nothing finer than debug, so -vvv only
// widens the output categories.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
