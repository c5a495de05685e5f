package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/teranos/autodeconstruct/display"
	"github.com/teranos/autodeconstruct/manifest"
	"github.com/teranos/autodeconstruct/version"
)

// versionOutput adds the readable manifest schema range to the build info.
type versionOutput struct {
	version.Info
	ManifestVersions string `json:"manifest_versions"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show autodeconstruct version information",
		Long:  `Display version, build time, commit hash, platform and supported manifest versions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if display.ShouldOutputJSON(cmd) {
				return display.WriteJSON(out, versionOutput{Info: info, ManifestVersions: manifest.SupportedVersions})
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			fmt.Fprintf(out, "Manifest versions: %s\n", manifest.SupportedVersions)
			return nil
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return cmd
}
