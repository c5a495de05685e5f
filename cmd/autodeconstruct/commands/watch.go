package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/autodeconstruct/watch"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch [manifests...]",
		Short: "Regenerate the artifact whenever a manifest changes",
		Long: `Watch declaration manifests and regenerate the artifact on change.

Changes are debounced (watch.debounce_ms). The incremental cache stays warm
between passes, so only types whose declarations changed are re-evaluated.
Stop with Ctrl-C.

Examples:
  autodeconstruct watch decls.yaml
  autodeconstruct watch decls.yaml -o Generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			// Validate the manifests before watching them
			_, paths, err := loadProgram(cfg, args)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}

			w, err := watch.New(paths, outputDir(cfg, output), engine, cfg.Debounce())
			if err != nil {
				return err
			}
			w.OnPass(func(r watch.Report) {
				if r.Err != nil {
					pterm.Error.Printfln("%v", r.Err)
					return
				}
				reportPass(opts.verbosity, r.Result, r.Duration)
				if r.Changed {
					pterm.Success.Printfln("Generated %s (%d types, %d cached)", r.Path, len(r.Result.Units), r.Result.Cache.Hits)
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pterm.Info.Printfln("Watching %d manifest(s), press Ctrl-C to stop", len(paths))
			return w.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default: output.dir from config)")

	return cmd
}
