package main

import (
	"time"

	"pagequery/internal/pkg/config"
)

// serverConfig holds the HTTP server settings.
type serverConfig struct {
	Addr            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int
	RateLimit       float64 // requests per second per client, 0 disables
	RateBurst       int
	SeedDemo        bool
	Version         string
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		Addr:            ":8080",
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    1 << 20,
		RateLimit:       0,
		RateBurst:       20,
		SeedDemo:        true,
		Version:         "dev",
	}
}

// loadServerConfig reads the server configuration from environment variables:
//   - HTTP_ADDR
//   - HTTP_REQUEST_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
//   - HTTP_MAX_BODY_BYTES
//   - HTTP_RATE_LIMIT, HTTP_RATE_BURST
//   - SEED_DEMO: create and seed the demo schema at startup
//   - VERSION
//
// metrics may be nil.
func loadServerConfig(metrics *config.ConfigMetrics) (serverConfig, []string) {
	def := defaultServerConfig()
	l := config.NewLoader(metrics)
	timeout := func(d time.Duration) error { return config.ValidateDuration(d, time.Second, 5*time.Minute) }

	cfg := serverConfig{
		Addr:            config.LoadEnvString("HTTP_ADDR", def.Addr),
		RequestTimeout:  l.Duration("HTTP_REQUEST_TIMEOUT", def.RequestTimeout, timeout),
		ShutdownTimeout: l.Duration("HTTP_SHUTDOWN_TIMEOUT", def.ShutdownTimeout, timeout),
		MaxBodyBytes: l.Int("HTTP_MAX_BODY_BYTES", def.MaxBodyBytes, func(v int) error {
			return config.ValidateIntRange(v, 1<<10, 64<<20)
		}),
		RateLimit: l.Float("HTTP_RATE_LIMIT", def.RateLimit, config.ValidateNonNegativeFloat),
		RateBurst: l.Int("HTTP_RATE_BURST", def.RateBurst, func(v int) error {
			return config.ValidateIntRange(v, 1, 10000)
		}),
		SeedDemo: l.Bool("SEED_DEMO", def.SeedDemo),
		Version:  config.LoadEnvString("VERSION", def.Version),
	}
	return cfg, l.Finish()
}
