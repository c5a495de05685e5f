// Package config loads autodeconstruct settings with Viper.
//
// Sources, lowest precedence first: built-in defaults, the user config
// (<user config dir>/autodeconstruct/autodeconstruct.toml), the project config
// (autodeconstruct.toml found by walking up from the working directory), and
// AUTODECONSTRUCT_* environment variables (AUTODECONSTRUCT_CACHE_SIZE sets
// cache.size).
package config

import (
	"fmt"
	"time"

	"github.com/teranos/autodeconstruct/deconstruct"
)

// FileName is the project config file searched for upward from the working directory.
const FileName = "autodeconstruct.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "AUTODECONSTRUCT"

// Config represents the autodeconstruct configuration
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator" toml:"generator"`
	Cache     CacheConfig     `mapstructure:"cache" toml:"cache"`
	Input     InputConfig     `mapstructure:"input" toml:"input"`
	Output    OutputConfig    `mapstructure:"output" toml:"output"`
	Watch     WatchConfig     `mapstructure:"watch" toml:"watch"`

	// Source is the config file that was read, empty when only defaults and env applied
	Source string `mapstructure:"-" toml:"-"`
}

// GeneratorConfig configures synthesis passes
type GeneratorConfig struct {
	ArtifactName string `mapstructure:"artifact_name" toml:"artifact_name"` // Name of the synthesized source (default: AutoDeconstruct.g.cs)
	RootType     string `mapstructure:"root_type" toml:"root_type"`         // Universal root type that ends inheritance walks (default: System.Object)
	Workers      int    `mapstructure:"workers" toml:"workers"`             // Per-type parallelism, 0 = GOMAXPROCS
}

// CacheConfig configures the incremental cache
type CacheConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"` // Reuse per-type results across passes (default: true)
	Size    int  `mapstructure:"size" toml:"size"`       // Maximum remembered types (default: 4096)
}

// InputConfig configures where declarations come from
type InputConfig struct {
	Manifests []string `mapstructure:"manifests" toml:"manifests"` // Used when no manifests are given on the command line
}

// OutputConfig configures where the artifact is written
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// WatchConfig configures the watch loop
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms"` // Quiet period before a pass (default: 500)
}

// EngineOptions maps the configuration onto engine options.
func (c *Config) EngineOptions() deconstruct.Options {
	opts := deconstruct.Options{
		ArtifactName: c.Generator.ArtifactName,
		RootType:     c.Generator.RootType,
		Workers:      c.Generator.Workers,
	}
	if c.Cache.Enabled {
		opts.CacheSize = c.Cache.Size
	}
	return opts
}

// Debounce returns the watch debounce period.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Watch.DebounceMS) * time.Millisecond
}

// ManifestPaths returns args if any, otherwise the configured manifests.
func (c *Config) ManifestPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return c.Input.Manifests
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Artifact: %s, Workers: %d, Cache: {Enabled: %t, Size: %d}, Output: %s}",
		c.Generator.ArtifactName, c.Generator.Workers, c.Cache.Enabled, c.Cache.Size, c.Output.Dir)
}
