// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading TOML and YAML documents,
//              dotted-key access, defaults and environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Dotted defaults, content sniffing, removed watching

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension or content
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values keyed by dotted path
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
	})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, mderror.New("config file path cannot be empty").
			WithCode(mderror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := mderror.CodeConfigError
		if os.IsNotExist(err) {
			code = mderror.CodeNotFound
		}
		return nil, mderror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath, content)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, mderror.Wrap(err, "failed to parse config file").
			WithCode(mderror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	applyDefaults(data, options.Defaults)

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// Empty returns a configuration holding only defaults, with env overrides
// under envPrefix.
func Empty(envPrefix string, defaults map[string]interface{}) *Config {
	data := make(map[string]interface{})
	applyDefaults(data, defaults)
	return &Config{
		data:      data,
		format:    FormatAuto,
		envPrefix: envPrefix,
	}
}

// detectFormat determines the configuration format from the file extension,
// falling back to sniffing the content.
func detectFormat(filePath string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "---" || strings.HasPrefix(line, "- ") {
			return FormatYAML
		}
		if strings.HasPrefix(line, "[") || strings.Contains(line, "=") {
			return FormatTOML
		}
		if strings.Contains(line, ":") {
			return FormatYAML
		}
		break
	}
	return FormatTOML
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, mderror.Wrap(err, "TOML parse error").
				WithCode(mderror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, mderror.Wrap(err, "YAML parse error").
				WithCode(mderror.CodeConfigError).
				WithOperation("config.parseContent")
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, mderror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mderror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	return data, nil
}

// applyDefaults fills in dotted default keys not present in data
func applyDefaults(data, defaults map[string]interface{}) {
	for key, value := range defaults {
		if lookup(data, key) == nil {
			setNestedValue(data, key, value)
		}
	}
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value := c.effective(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	switch v := c.effective(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	switch v := c.effective(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetDuration returns a time.Duration configuration value with optional
// default. Bare numbers are read as seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	switch v := c.effective(key).(type) {
	case string:
		if duration, err := time.ParseDuration(v); err == nil {
			return duration
		}
	case time.Duration:
		return v
	case int:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setNestedValue(c.data, key, value)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{
		fmt.Sprintf("Config{format: %s", c.format.String()),
	}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}

// effective returns the environment override for key if one is set,
// otherwise the stored value.
func (c *Config) effective(key string) interface{} {
	if envValue, ok := os.LookupEnv(c.envKey(key)); ok && envValue != "" {
		return parseEnvValue(envValue)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return lookup(c.data, key)
}

// envKey converts a config key to environment variable format:
// render.cache_size -> ECMARKDOWN_RENDER_CACHE_SIZE
func (c *Config) envKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// lookup retrieves a value by dotted key
func lookup(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

// setNestedValue sets a nested value in a map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// parseEnvValue attempts to parse environment variable values as appropriate types
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}
	return value
}
