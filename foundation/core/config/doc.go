// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads ecmarkdown settings from TOML or YAML
//              files with defaults and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Reduced to loading, discovery and validation

/*
Package config provides configuration loading for the ecmarkdown tools.

Values are addressed by dotted keys. Lookup order, highest first:

  - environment variable (prefix + key, dots replaced by underscores,
    upper-cased: ECMARKDOWN_RENDER_WORKERS for render.workers)
  - value from the loaded file
  - value from LoadOptions.Defaults

# Loading

	cfg, err := config.LoadWithOptions("ecmarkdown.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "ECMARKDOWN",
		Defaults: map[string]interface{}{
			"render.workers": 4,
			"render.mode":    "fragment",
		},
	})
	if err != nil {
		return err
	}

	workers := cfg.GetInt("render.workers")
	ttl := cfg.GetDuration("render.cache_ttl", time.Minute)

# Discovery

Discover searches a list of directories for a file when none was named:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

# Validation

	err := cfg.Validate(config.ValidationRules{
		"render.mode":    {Type: "string", OneOf: []string{"fragment", "algorithm"}},
		"render.workers": {Type: "int", Min: config.IntBound(1)},
	})

Errors carry codes from foundation/core/error: CodeNotFound for missing
files, CodeConfigError for unreadable or malformed files and
CodeInvalidConfig for rule violations.
*/
package config
