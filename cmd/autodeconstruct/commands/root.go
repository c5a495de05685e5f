package commands

import (
	"context"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/teranos/autodeconstruct/config"
	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/deconstruct"
	"github.com/teranos/autodeconstruct/errors"
	"github.com/teranos/autodeconstruct/logger"
	"github.com/teranos/autodeconstruct/manifest"
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	configPath string
	verbosity  int
	jsonLogs   bool

	cfg *config.Config
}

// NewRootCmd builds the autodeconstruct command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "autodeconstruct",
		Short: "Synthesize Deconstruct extension methods from type declarations",
		Long: `autodeconstruct - Deconstruct extension synthesis.

Reads declaration manifests exported by the host compiler and generates one
source artifact holding a Deconstruct extension method for every eligible
class, struct, record and record struct: one out parameter per accessible
instance property, own properties first, then inherited ones.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (AUTODECONSTRUCT_* prefix)
3. Project config (./autodeconstruct.toml, searched up directories)
4. User config (<user config dir>/autodeconstruct/autodeconstruct.toml)
5. Default values

Examples:
  autodeconstruct generate decls.yaml            # Write AutoDeconstruct.g.cs
  autodeconstruct generate decls.yaml --stdout   # Print the artifact
  autodeconstruct check decls.yaml               # Fail if the artifact is stale
  autodeconstruct watch decls.yaml -o Generated  # Regenerate on change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(opts.jsonLogs, opts.verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: autodeconstruct.toml searched up from the working directory)")
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "Emit logs as JSON")

	root.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newWatchCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig reads the configuration once per invocation.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}

	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.LoadFromFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger.Logger.Debugw("Configuration loaded", logger.FieldFile, cfg.Source)
	if logger.ShouldOutput(o.verbosity, logger.OutputConfig) {
		pterm.Info.Printfln("Config: %s", cfg.String())
	}
	o.cfg = cfg
	return cfg, nil
}

// loadProgram reads the manifests named on the command line, or the configured ones.
func loadProgram(cfg *config.Config, args []string) (*decl.Program, []string, error) {
	paths := cfg.ManifestPaths(args)
	if len(paths) == 0 {
		return nil, nil, errors.WithHint(
			errors.New("no declaration manifests given"),
			"pass manifest files as arguments or set input.manifests in autodeconstruct.toml",
		)
	}

	program, err := manifest.Load(paths...)
	if err != nil {
		return nil, nil, err
	}
	return program, paths, nil
}

// newEngine creates an engine from the configuration.
func newEngine(cfg *config.Config) (*deconstruct.Engine, error) {
	return deconstruct.NewEngine(cfg.EngineOptions(), logger.ComponentLogger("deconstruct"))
}

// outputDir returns the flag value if set, otherwise the configured directory.
func outputDir(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return filepath.Clean(cfg.Output.Dir)
}
