package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/autodeconstruct/deconstruct"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		output   string
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "generate [manifests...]",
		Short: "Generate the Deconstruct artifact",
		Long: `Generate the Deconstruct extension artifact from declaration manifests.

The artifact is only rewritten when its text changes. When no type qualifies,
no artifact is produced and a previously generated one is removed.

Examples:
  autodeconstruct generate decls.yaml
  autodeconstruct generate core.yaml extra.json -o Generated
  autodeconstruct generate --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			program, _, err := loadProgram(cfg, args)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := engine.Run(cmd.Context(), program)
			if err != nil {
				return err
			}
			reportPass(opts.verbosity, result, time.Since(start))

			if toStdout {
				_, err := fmt.Fprint(cmd.OutOrStdout(), result.Artifact)
				return err
			}

			path, changed, err := deconstruct.WriteArtifact(outputDir(cfg, output), result)
			if err != nil {
				return err
			}

			switch {
			case !result.HasArtifact() && changed:
				pterm.Info.Printfln("No eligible types, removed %s", path)
			case !result.HasArtifact():
				pterm.Info.Println("No eligible types, nothing generated")
			case changed:
				pterm.Success.Printfln("Generated %s (%d types)", path, len(result.Units))
			default:
				pterm.Info.Printfln("%s is up to date", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default: output.dir from config)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the artifact instead of writing it")

	return cmd
}
