package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/teranos/autodeconstruct/deconstruct"
	"github.com/teranos/autodeconstruct/logger"
)

// reportPass prints the verbosity-gated details of a finished pass.
func reportPass(verbosity int, result *deconstruct.Result, elapsed time.Duration) {
	if logger.ShouldOutput(verbosity, logger.OutputSkipped) {
		for _, skip := range result.Skipped {
			pterm.Info.Printfln("Skipped %s: %s", skip.Type, skip.Reason)
		}
	}

	if logger.ShouldOutput(verbosity, logger.OutputPassSummary) {
		pterm.Info.Printfln("Pass %s: %d candidates, %d units, %d skipped",
			result.PassID, result.Candidates, len(result.Units), len(result.Skipped))
	}

	if logger.ShouldOutput(verbosity, logger.OutputCacheStats) {
		pterm.Info.Printfln("Cache: %d hits, %d misses", result.Cache.Hits, result.Cache.Misses)
	}

	if logger.ShouldOutput(verbosity, logger.OutputTiming) {
		pterm.Info.Printfln("Pass took %s", elapsed.Round(time.Microsecond))
	}

	if logger.ShouldOutput(verbosity, logger.OutputUnits) {
		for _, unit := range result.Units {
			pterm.Info.Printfln("%s:\n%s", unit.Type.Identity, deconstruct.EmitUnit(unit))
		}
	}
}
