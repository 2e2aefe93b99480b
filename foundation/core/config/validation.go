// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against declarative rules
//              (required, type, numeric bounds, allowed values).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: Rules see env overrides, OneOf replaces Pattern

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
)

// ValidationRule defines validation criteria for configuration values
type ValidationRule struct {
	Required bool     // Whether the field is required
	Type     string   // Expected type: "string", "int", "bool", "duration"
	Min      *int     // Minimum for int values
	Max      *int     // Maximum for int values
	OneOf    []string // Allowed values for string fields
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// IntBound is a helper for ValidationRule.Min and Max
func IntBound(n int) *int {
	return &n
}

// Validate checks the effective configuration against rules. All
// violations are collected into a single CodeInvalidConfig error.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var violations []string
	for _, key := range keys {
		if msg := c.validateField(key, rules[key]); msg != "" {
			violations = append(violations, msg)
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return mderror.New("invalid configuration: "+strings.Join(violations, "; ")).
		WithCode(mderror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("violations", violations)
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	value := c.effective(key)
	if value == nil {
		if rule.Required {
			return fmt.Sprintf("required field '%s' is missing", key)
		}
		return ""
	}

	switch rule.Type {
	case "", "string":
		if rule.Type == "string" {
			if _, ok := value.(string); !ok {
				return fmt.Sprintf("field '%s' must be a string, got %T", key, value)
			}
		}
	case "int":
		n, ok := asInt(value)
		if !ok {
			return fmt.Sprintf("field '%s' must be an integer, got %v", key, value)
		}
		if rule.Min != nil && n < *rule.Min {
			return fmt.Sprintf("field '%s' value %d is less than minimum %d", key, n, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return fmt.Sprintf("field '%s' value %d is greater than maximum %d", key, n, *rule.Max)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("field '%s' must be a boolean, got %v", key, value)
		}
	case "duration":
		switch v := value.(type) {
		case string:
			if _, err := time.ParseDuration(v); err != nil {
				return fmt.Sprintf("field '%s' must be a valid duration string, got '%v'", key, v)
			}
		case int, int64, float64, time.Duration:
		default:
			return fmt.Sprintf("field '%s' must be a duration, got %T", key, value)
		}
	default:
		return fmt.Sprintf("unknown validation type: %s", rule.Type)
	}

	if len(rule.OneOf) > 0 {
		s := fmt.Sprintf("%v", value)
		for _, allowed := range rule.OneOf {
			if s == allowed {
				return ""
			}
		}
		return fmt.Sprintf("field '%s' value '%s' must be one of %s", key, s, strings.Join(rule.OneOf, ", "))
	}

	return ""
}

func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}
