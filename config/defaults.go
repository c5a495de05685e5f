package config

import (
	"github.com/spf13/viper"
	"github.com/teranos/autodeconstruct/decl"
	"github.com/teranos/autodeconstruct/deconstruct"
)

// Default values
const (
	DefaultOutputDir  = "."
	DefaultDebounceMS = 500
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Generator defaults
	v.SetDefault("generator.artifact_name", deconstruct.DefaultArtifactName)
	v.SetDefault("generator.root_type", decl.DefaultRootType)
	v.SetDefault("generator.workers", 0) // GOMAXPROCS

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", deconstruct.DefaultCacheSize)

	// Input and output
	v.SetDefault("input.manifests", []string{})
	v.SetDefault("output.dir", DefaultOutputDir)

	// Watch
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}

// Defaults returns the configuration with only defaults applied.
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always unmarshal
		panic(err)
	}
	return cfg
}
