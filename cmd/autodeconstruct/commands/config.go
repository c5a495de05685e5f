package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/autodeconstruct/config"
	"github.com/teranos/autodeconstruct/display"
	"github.com/teranos/autodeconstruct/errors"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage autodeconstruct configuration",
		Long: `Display, validate and initialize autodeconstruct configuration.

Examples:
  autodeconstruct config show                   # Show effective configuration
  autodeconstruct config show --format json     # Show configuration as JSON
  autodeconstruct config validate               # Validate configuration
  autodeconstruct config init                   # Write ./autodeconstruct.toml`,
	}

	cmd.AddCommand(
		newConfigShowCmd(opts),
		newConfigValidateCmd(opts),
		newConfigInitCmd(opts),
	)
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from all sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				if err := display.WriteJSON(out, cfg); err != nil {
					return errors.Wrap(err, "failed to write config as JSON")
				}

			case "yaml":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(out, "# autodeconstruct configuration\n%s", string(data))

			case "toml":
				data, err := toml.Marshal(cfg)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to TOML")
				}
				fmt.Fprintf(out, "# autodeconstruct configuration\n%s", string(data))

			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func newConfigValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}

			source := cfg.Source
			if source == "" {
				source = "defaults"
			}
			pterm.Success.Printfln("Configuration is valid (%s)", source)
			return nil
		},
	}
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write the default configuration to ./autodeconstruct.toml, or to the
path given with --config. An existing file is kept unless --force is set, in
which case it is rotated into .back1/.back2/.back3 first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				path = config.FileName
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(
					errors.Newf("%s already exists", path),
					"use --force to overwrite it (a backup is kept)",
				)
			}

			if err := config.Save(config.Defaults(), path); err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
