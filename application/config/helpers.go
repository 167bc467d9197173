// Package config provides configuration utilities for modules.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/douglasmun/factmod/domain/errors"
)

// Config represents module configuration as a key-value map.
type Config = map[string]any

// validate is a package-level singleton for better performance.
var validate = validator.New()

// GetString extracts a string from config, returning (value, found).
func GetString(config Config, key string) (string, bool) {
	v, ok := config[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt extracts an int from config, handling int, int64, and float64
// (JSON numbers are decoded as float64).
func GetInt(config Config, key string) (int, bool) {
	v, ok := config[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetInt64 extracts an int64 from config, handling int, int64, and float64.
func GetInt64(config Config, key string) (int64, bool) {
	v, ok := config[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// GetBool extracts a bool from config, returning (value, found).
func GetBool(config Config, key string) (bool, bool) {
	v, ok := config[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetStringDefault extracts a string from config with a default.
func GetStringDefault(config Config, key, defaultValue string) string {
	s, ok := GetString(config, key)
	if !ok {
		return defaultValue
	}
	return s
}

// GetIntDefault extracts an int from config with a default.
func GetIntDefault(config Config, key string, defaultValue int) int {
	i, ok := GetInt(config, key)
	if !ok {
		return defaultValue
	}
	return i
}

// GetBoolDefault extracts a bool from config with a default.
func GetBoolDefault(config Config, key string, defaultValue bool) bool {
	b, ok := GetBool(config, key)
	if !ok {
		return defaultValue
	}
	return b
}

// MustGetInt extracts an int from config or returns a ConfigError.
// Use this when the field is required.
func MustGetInt(config Config, key string) (int, error) {
	i, ok := GetInt(config, key)
	if !ok {
		return 0, &errors.ConfigError{
			Field: key,
			Err:   fmt.Errorf("required int field '%s' is missing or not a number", key),
		}
	}
	return i, nil
}

// MustGetString extracts a string from config or returns a ConfigError.
func MustGetString(config Config, key string) (string, error) {
	s, ok := GetString(config, key)
	if !ok {
		return "", &errors.ConfigError{
			Field: key,
			Err:   fmt.Errorf("required string field '%s' is missing or not a string", key),
		}
	}
	return s, nil
}

// ValidateConfig validates a Config map against a struct with validation tags.
// It marshals the map to JSON, unmarshals it into the target struct, then
// runs the validator on the struct.
func ValidateConfig(config Config, targetStruct any) error {
	jsonBytes, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config map: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, targetStruct); err != nil {
		return fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}

	if err := validate.Struct(targetStruct); err != nil {
		return &errors.ConfigError{Err: err}
	}

	return nil
}
