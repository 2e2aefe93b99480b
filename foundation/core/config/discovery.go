// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds a configuration file in a list of directories when
//              none is given explicitly.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-18 v0.2.0: Optional discovery falls back to defaults

package config

import (
	"os"
	"path/filepath"
	"strings"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values keyed by dotted path
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search used by the ecmarkdown CLI:
// the working directory, then the user config directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "ecmarkdown"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{".ecmarkdown", "ecmarkdown", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "ECMARKDOWN",
	}
}

// Discover loads the first configuration file found. When nothing is found
// and the file is not required, a defaults-only Config is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
	}

	if options.Required {
		searchPaths := ListPossibleConfigFiles(options)
		return nil, mderror.New("no configuration file found in paths: "+strings.Join(searchPaths, ", ")).
			WithCode(mderror.CodeNotFound).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searchPaths)
	}

	return Empty(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mderror.New("configuration file not found").
		WithCode(mderror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
