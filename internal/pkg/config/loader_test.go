package config

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Test Group 1: LoadEnvString
// ============================================================================

func TestLoadEnvString_WithValue(t *testing.T) {
	t.Setenv("TEST_DSN", "file::memory:")

	assert.Equal(t, "file::memory:", LoadEnvString("TEST_DSN", "default"))
}

func TestLoadEnvString_WithoutValue(t *testing.T) {
	assert.Equal(t, "default", LoadEnvString("TEST_DSN_UNSET", "default"))
}

func TestLoadEnvString_EmptyString(t *testing.T) {
	t.Setenv("TEST_DSN", "")

	// Empty string should use default
	assert.Equal(t, "default", LoadEnvString("TEST_DSN", "default"))
}

// ============================================================================
// Test Group 2: LoadEnvWithFallback
// ============================================================================

func TestLoadEnvWithFallback(t *testing.T) {
	validate := ValidateOneOf("two-call", "single-pass")

	tests := []struct {
		name         string
		env          string
		wantValue    string
		wantFallback bool
	}{
		{name: "valid value", env: "single-pass", wantValue: "single-pass"},
		{name: "unset uses default", env: "", wantValue: "two-call"},
		{name: "invalid value falls back", env: "three-call", wantValue: "two-call", wantFallback: true},
		{name: "case sensitive", env: "Single-Pass", wantValue: "two-call", wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_STRATEGY", tt.env)

			result := LoadEnvWithFallback("TEST_STRATEGY", "two-call", validate)

			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantFallback, result.FallbackApplied)
			if tt.wantFallback {
				assert.Len(t, result.Warnings, 1)
				assert.Contains(t, result.Warnings[0], "Invalid TEST_STRATEGY='"+tt.env+"'")
				assert.Contains(t, result.Warnings[0], "falling back to default 'two-call'")
			} else {
				assert.Empty(t, result.Warnings)
			}
		})
	}
}

func TestLoadEnvWithFallback_NoValidator(t *testing.T) {
	t.Setenv("TEST_STRING", "any_value")

	result := LoadEnvWithFallback("TEST_STRING", "default", nil)

	assert.Equal(t, "any_value", result.Value)
	assert.False(t, result.FallbackApplied)
}

// ============================================================================
// Test Group 3: LoadEnvDuration
// ============================================================================

func TestLoadEnvDuration(t *testing.T) {
	tests := []struct {
		name         string
		env          string
		want         time.Duration
		wantFallback bool
	}{
		{name: "valid", env: "5m", want: 5 * time.Minute},
		{name: "unset", env: "", want: time.Hour},
		{name: "unparseable", env: "soon", want: time.Hour, wantFallback: true},
		{name: "fails validation", env: "-1s", want: time.Hour, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_LIFETIME", tt.env)

			result := LoadEnvDuration("TEST_LIFETIME", time.Hour, ValidatePositiveDuration)

			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantFallback, result.FallbackApplied)
		})
	}
}

// ============================================================================
// Test Group 4: LoadEnvInt / LoadEnvFloat / LoadEnvBool
// ============================================================================

func TestLoadEnvInt(t *testing.T) {
	validate := func(v int) error { return ValidateIntRange(v, 1, 1000) }

	tests := []struct {
		name         string
		env          string
		want         int
		wantFallback bool
	}{
		{name: "valid", env: "50", want: 50},
		{name: "unset", env: "", want: 20},
		{name: "decimal rejected", env: "2.5", want: 20, wantFallback: true},
		{name: "trailing garbage rejected", env: "10abc", want: 20, wantFallback: true},
		{name: "out of range", env: "5000", want: 20, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SIZE", tt.env)

			result := LoadEnvInt("TEST_SIZE", 20, validate)

			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantFallback, result.FallbackApplied)
		})
	}
}

func TestLoadEnvInt_WarningFormat(t *testing.T) {
	t.Setenv("TEST_SIZE", "abc")

	result := LoadEnvInt("TEST_SIZE", 20, nil)

	assert.Equal(t, []string{"Invalid TEST_SIZE='abc': invalid integer format, falling back to default '20'"}, result.Warnings)
}

func TestLoadEnvFloat(t *testing.T) {
	t.Setenv("TEST_RATE", "12.5")
	assert.Equal(t, 12.5, LoadEnvFloat("TEST_RATE", 0, ValidateNonNegativeFloat).Value)

	t.Setenv("TEST_RATE", "-1")
	result := LoadEnvFloat("TEST_RATE", 0, ValidateNonNegativeFloat)
	assert.Equal(t, float64(0), result.Value)
	assert.True(t, result.FallbackApplied)
}

func TestLoadEnvBool(t *testing.T) {
	tests := []struct {
		env          string
		want         bool
		wantFallback bool
	}{
		{env: "true", want: true},
		{env: "1", want: true},
		{env: "F", want: false},
		{env: "", want: true},
		{env: "yes", want: true, wantFallback: true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.env, func(t *testing.T) {
			t.Setenv("TEST_RETRY", tt.env)

			result := LoadEnvBool("TEST_RETRY", true)

			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantFallback, result.FallbackApplied)
		})
	}
}

// ============================================================================
// Test Group 5: Loader
// ============================================================================

func TestLoader_CollectsWarningsAndMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewConfigMetrics("test_loader", reg)

	t.Setenv("TEST_MAX_OPEN", "many")
	t.Setenv("TEST_DRIVER", "sqlite")

	l := NewLoader(metrics)
	maxOpen := l.Int("TEST_MAX_OPEN", 25, nil)
	driver := l.String("TEST_DRIVER", "mysql", ValidateOneOf("mysql", "sqlite"))
	warnings := l.Finish()

	assert.Equal(t, 25, maxOpen)
	assert.Equal(t, "sqlite", driver)
	assert.Len(t, warnings, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("TEST_MAX_OPEN")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("TEST_MAX_OPEN")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))
	assert.Greater(t, testutil.ToFloat64(metrics.LoadTimestamp), float64(0))
}

func TestLoader_NilMetrics(t *testing.T) {
	t.Setenv("TEST_ENABLED", "maybe")

	l := NewLoader(nil)
	assert.False(t, l.Bool("TEST_ENABLED", false))
	assert.Equal(t, 30*time.Second, l.Duration("TEST_TIMEOUT_UNSET", 30*time.Second, nil))
	assert.Equal(t, 2.0, l.Float("TEST_RATE_UNSET", 2.0, nil))
	assert.Len(t, l.Finish(), 1)
}
