package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, DefaultConfig().Validate())

	bad := Config{Schedule: "nope", Timezone: "Nowhere/Land", JobTimeout: 0}
	err := bad.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "schedule")
		assert.Contains(t, err.Error(), "timezone")
		assert.Contains(t, err.Error(), "job timeout")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, warnings := LoadConfigFromEnv(nil)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Empty(t, warnings)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("WORKER_SCHEDULE", "*/5 * * * *")
		t.Setenv("WORKER_TIMEZONE", "Asia/Tokyo")
		t.Setenv("WORKER_JOB_TIMEOUT", "3s")

		cfg, warnings := LoadConfigFromEnv(nil)
		assert.Empty(t, warnings)
		assert.Equal(t, Config{Schedule: "*/5 * * * *", Timezone: "Asia/Tokyo", JobTimeout: 3 * time.Second}, cfg)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("WORKER_SCHEDULE", "every now and then")
		t.Setenv("WORKER_JOB_TIMEOUT", "-1s")

		cfg, warnings := LoadConfigFromEnv(nil)
		assert.Len(t, warnings, 2)
		assert.Equal(t, DefaultConfig(), cfg)
	})
}
