package config

import "github.com/teranos/autodeconstruct/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Generator.ArtifactName == "" {
		return errors.New("generator.artifact_name cannot be empty")
	}
	if c.Generator.RootType == "" {
		return errors.New("generator.root_type cannot be empty")
	}

	// Workers: 0 = GOMAXPROCS, negative = invalid
	if c.Generator.Workers < 0 {
		return errors.Newf("generator.workers must be >= 0, got %d", c.Generator.Workers)
	}

	// Cache size only matters when the cache is on
	if c.Cache.Enabled && c.Cache.Size <= 0 {
		return errors.WithHint(
			errors.Newf("cache.size must be > 0 when the cache is enabled, got %d", c.Cache.Size),
			"set cache.enabled = false to turn the cache off",
		)
	}

	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
