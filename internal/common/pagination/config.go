// Package pagination provides the page request and result types, the
// single-pass windowed extractor, and pagination configuration, metrics and logging.
package pagination

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"pagequery/internal/pkg/config"
)

var validate = validator.New()

// Config holds pagination configuration settings.
type Config struct {
	Strategy    Strategy `json:"strategy" yaml:"strategy" validate:"oneof=0 1"`
	DefaultSize int      `json:"default_size" yaml:"default_size" validate:"min=1,ltefield=MaxSize"`
	MaxSize     int      `json:"max_size" yaml:"max_size" validate:"min=1,max=10000"`
}

// DefaultConfig returns the default pagination configuration.
// Default values: strategy=two-call, size=20, max=100
func DefaultConfig() Config {
	return Config{
		Strategy:    TwoCall,
		DefaultSize: 20,
		MaxSize:     100,
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("pagination config validation error: %w", err)
	}
	return nil
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_STRATEGY: two-call or single-pass
//   - PAGINATION_DEFAULT_SIZE: Default rows per page
//   - PAGINATION_MAX_SIZE: Maximum rows per page
//
// Invalid values fall back to DefaultConfig() and are reported as warnings.
// metrics may be nil.
func LoadFromEnv(metrics *config.ConfigMetrics) (Config, []string) {
	def := DefaultConfig()
	l := config.NewLoader(metrics)

	strategyName := l.String("PAGINATION_STRATEGY", def.Strategy.String(), func(s string) error {
		_, err := ParseStrategy(s)
		return err
	})
	strategy, _ := ParseStrategy(strategyName)

	cfg := Config{
		Strategy: strategy,
		MaxSize: l.Int("PAGINATION_MAX_SIZE", def.MaxSize, func(v int) error {
			return config.ValidateIntRange(v, 1, 10000)
		}),
	}
	cfg.DefaultSize = l.Int("PAGINATION_DEFAULT_SIZE", def.DefaultSize, func(v int) error {
		return config.ValidateIntRange(v, 1, cfg.MaxSize)
	})
	if cfg.DefaultSize > cfg.MaxSize {
		cfg.DefaultSize = cfg.MaxSize
	}

	return cfg, l.Finish()
}
