// Package worker runs periodic background jobs on a cron schedule, each with
// its own timeout and Prometheus run metrics.
package worker

import (
	"errors"
	"fmt"
	"time"

	"pagequery/internal/pkg/config"
)

// Config controls the job scheduler.
type Config struct {
	// Schedule is a cron expression or descriptor, e.g. "*/5 * * * *" or "@every 30s".
	Schedule string
	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string
	// JobTimeout bounds a single job run.
	JobTimeout time.Duration
}

// DefaultConfig runs jobs every 30 seconds in UTC with a 10 second timeout.
func DefaultConfig() Config {
	return Config{
		Schedule:   "@every 30s",
		Timezone:   "UTC",
		JobTimeout: 10 * time.Second,
	}
}

// Validate checks every field and reports all failures together.
func (c Config) Validate() error {
	var errs []error
	if err := config.ValidateCronSchedule(c.Schedule); err != nil {
		errs = append(errs, fmt.Errorf("schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.JobTimeout); err != nil {
		errs = append(errs, fmt.Errorf("job timeout: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfigFromEnv reads the scheduler configuration from environment variables:
//   - WORKER_SCHEDULE
//   - WORKER_TIMEZONE
//   - WORKER_JOB_TIMEOUT
//
// Invalid values fall back to DefaultConfig() and are reported as warnings.
// metrics may be nil.
func LoadConfigFromEnv(metrics *config.ConfigMetrics) (Config, []string) {
	def := DefaultConfig()
	l := config.NewLoader(metrics)
	cfg := Config{
		Schedule:   l.String("WORKER_SCHEDULE", def.Schedule, config.ValidateCronSchedule),
		Timezone:   l.String("WORKER_TIMEZONE", def.Timezone, config.ValidateTimezone),
		JobTimeout: l.Duration("WORKER_JOB_TIMEOUT", def.JobTimeout, config.ValidatePositiveDuration),
	}
	return cfg, l.Finish()
}
