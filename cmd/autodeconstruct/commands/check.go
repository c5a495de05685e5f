package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/autodeconstruct/deconstruct"
	"github.com/teranos/autodeconstruct/errors"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "check [manifests...]",
		Short: "Check if the generated artifact is up to date",
		Long: `Check if the artifact on disk matches a fresh generation.

The artifact is generated in memory and compared byte for byte with the file
in the output directory. A missing file matches an empty generation.

Exit codes:
  0 - Artifact is up to date
  1 - Artifact is out of date (diff shown)
  2 - Error during check

Examples:
  autodeconstruct check decls.yaml
  autodeconstruct check decls.yaml -o Generated`,
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

			path := filepath.Join(outputDir(cfg, output), result.ArtifactName)
			check, err := deconstruct.CompareArtifact(path, result.Artifact)
			if err != nil {
				return errors.Wrap(err, "failed to compare artifact")
			}

			if check.UpToDate {
				pterm.Success.Printfln("%s is up to date", path)
				return nil
			}

			pterm.Warning.Printfln("%s is out of date", path)
			fmt.Fprint(cmd.OutOrStdout(), check.Diff)

			return errors.WithHint(
				errors.Wrapf(errors.ErrStaleArtifact, "%s", path),
				"run 'autodeconstruct generate' to update",
			)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default: output.dir from config)")

	return cmd
}
