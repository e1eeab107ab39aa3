package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ConfigLoadResult represents the result of loading a configuration value.
//
// Fields:
//   - Value: The loaded configuration value (the default when a fallback was applied)
//   - Warnings: One message per fallback applied
//   - FallbackApplied: True if the default value was used because the environment value was invalid
//
// Example:
//
//	result := LoadEnvInt("PAGINATION_MAX_SIZE", 100, func(v int) error { return ValidateIntRange(v, 1, 10000) })
//	if result.FallbackApplied {
//	    for _, warning := range result.Warnings {
//	        logger.Warn("configuration fallback", slog.String("warning", warning))
//	    }
//	}
//	maxSize := result.Value.(int)
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// loadEnv is the shared loading algorithm:
//  1. Read the environment variable
//  2. If not set or empty: use the default (no warning)
//  3. Parse; on failure use the default and record a warning
//  4. Validate; on failure use the default and record a warning
//
// It never returns an error.
func loadEnv[T any](envKey string, defaultValue T, parse func(string) (T, error), validator func(T) error) ConfigLoadResult {
	raw := os.Getenv(envKey)
	if raw == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	fallback := func(reason interface{}) ConfigLoadResult {
		return ConfigLoadResult{
			Value: defaultValue,
			Warnings: []string{fmt.Sprintf(
				"Invalid %s='%s': %v, falling back to default '%v'",
				envKey, raw, reason, defaultValue,
			)},
			FallbackApplied: true,
		}
	}

	parsed, err := parse(raw)
	if err != nil {
		return fallback(err)
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(err)
		}
	}
	return ConfigLoadResult{Value: parsed}
}

// LoadEnvString loads a string value from an environment variable.
// If the environment variable is not set, the default value is returned.
// No validation is performed.
func LoadEnvString(envKey, defaultValue string) string {
	if value := os.Getenv(envKey); value != "" {
		return value
	}
	return defaultValue
}

// LoadEnvWithFallback loads a string value from an environment variable
// with validation and automatic fallback to default on validation failure.
//
// Warning format:
//
//	"Invalid {envKey}='{value}': {error}, falling back to default '{default}'"
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	return loadEnv(envKey, defaultValue, func(s string) (string, error) { return s, nil }, validator)
}

// LoadEnvDuration loads a duration ("30s", "5m", "1h30m") from an environment
// variable with parsing, validation, and fallback to default on failure.
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	return loadEnv(envKey, defaultValue, time.ParseDuration, validator)
}

// LoadEnvInt loads an integer value from an environment variable
// with parsing, validation, and fallback to default on failure.
// Values with spaces, decimals or other characters are rejected.
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	return loadEnv(envKey, defaultValue, func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer format")
		}
		return v, nil
	}, validator)
}

// LoadEnvFloat loads a floating point value from an environment variable
// with parsing, validation, and fallback to default on failure.
func LoadEnvFloat(envKey string, defaultValue float64, validator func(float64) error) ConfigLoadResult {
	return loadEnv(envKey, defaultValue, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number format")
		}
		return v, nil
	}, validator)
}

// LoadEnvBool loads a boolean value from an environment variable.
//   - True: "1", "t", "T", "true", "TRUE", "True"
//   - False: "0", "f", "F", "false", "FALSE", "False"
//
// Other values trigger fallback with a warning.
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	return loadEnv(envKey, defaultValue, func(s string) (bool, error) {
		switch s {
		case "1", "t", "T", "true", "TRUE", "True":
			return true, nil
		case "0", "f", "F", "false", "FALSE", "False":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean format, expected 'true' or 'false'")
	}, nil)
}

// Loader accumulates warnings and fallback state while a component loads its
// configuration, and reports both to ConfigMetrics when one is attached.
//
// Example:
//
//	l := config.NewLoader(metrics)
//	size := l.Int("PAGINATION_DEFAULT_SIZE", 20, nil)
//	strategy := l.String("PAGINATION_STRATEGY", "two-call", config.ValidateOneOf("two-call", "single-pass"))
//	warnings := l.Finish()
type Loader struct {
	metrics  *ConfigMetrics
	warnings []string
	fallback bool
}

// NewLoader creates a Loader. metrics may be nil.
func NewLoader(metrics *ConfigMetrics) *Loader {
	return &Loader{metrics: metrics}
}

func (l *Loader) record(envKey string, r ConfigLoadResult) {
	if !r.FallbackApplied {
		return
	}
	l.fallback = true
	l.warnings = append(l.warnings, r.Warnings...)
	if l.metrics != nil {
		l.metrics.RecordValidationError(envKey)
		l.metrics.RecordFallback(envKey)
	}
}

// String loads a validated string.
func (l *Loader) String(envKey, defaultValue string, validator func(string) error) string {
	r := LoadEnvWithFallback(envKey, defaultValue, validator)
	l.record(envKey, r)
	return r.Value.(string)
}

// Int loads a validated integer.
func (l *Loader) Int(envKey string, defaultValue int, validator func(int) error) int {
	r := LoadEnvInt(envKey, defaultValue, validator)
	l.record(envKey, r)
	return r.Value.(int)
}

// Float loads a validated float.
func (l *Loader) Float(envKey string, defaultValue float64, validator func(float64) error) float64 {
	r := LoadEnvFloat(envKey, defaultValue, validator)
	l.record(envKey, r)
	return r.Value.(float64)
}

// Duration loads a validated duration.
func (l *Loader) Duration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) time.Duration {
	r := LoadEnvDuration(envKey, defaultValue, validator)
	l.record(envKey, r)
	return r.Value.(time.Duration)
}

// Bool loads a boolean.
func (l *Loader) Bool(envKey string, defaultValue bool) bool {
	r := LoadEnvBool(envKey, defaultValue)
	l.record(envKey, r)
	return r.Value.(bool)
}

// Finish records the load time and fallback state and returns all warnings.
func (l *Loader) Finish() []string {
	if l.metrics != nil {
		l.metrics.RecordLoadTimestamp()
		l.metrics.SetFallbackActive(l.fallback)
	}
	return l.warnings
}
