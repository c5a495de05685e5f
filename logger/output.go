package logger

// Output controls what categories of information commands print at each verbosity level.
//
// Log levels filter by severity. Output categories decide WHAT is printed
// to the terminal, independent of the zap level:
//
//	0 (default) - artifact path, stale diff, errors with hints
//	1 (-v)      - + skipped types, pass summaries
//	2 (-vv)     - + cache statistics, pass timing, effective config
//	3 (-vvv)    - + generated blocks per type

// OutputCategory defines a category of command output
type OutputCategory int

const (
	OutputResults OutputCategory = iota // Artifact path, stale diff
	OutputErrors                        // Errors with hints

	OutputSkipped     // Types skipped and why
	OutputPassSummary // Units generated per pass

	OutputCacheStats // Hits, misses and retained entries
	OutputTiming     // Pass duration
	OutputConfig     // Effective configuration

	OutputUnits // Generated block per type
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,

	OutputSkipped:     VerbosityInfo,
	OutputPassSummary: VerbosityInfo,

	OutputCacheStats: VerbosityDebug,
	OutputTiming:     VerbosityDebug,
	OutputConfig:     VerbosityDebug,

	OutputUnits: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:     "results",
	OutputErrors:      "errors",
	OutputSkipped:     "skipped",
	OutputPassSummary: "pass-summary",
	OutputCacheStats:  "cache-stats",
	OutputTiming:      "timing",
	OutputConfig:      "config",
	OutputUnits:       "units",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "results and errors only"
	case verbosity == VerbosityInfo:
		return "above + skipped types and pass summaries"
	case verbosity == VerbosityDebug:
		return "above + cache statistics, timing, config"
	default:
		return "above + generated blocks"
	}
}
