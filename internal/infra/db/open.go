// Package db opens and configures database/sql connection pools for the
// supported drivers and installs the demo schema used by the CLI and tests.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"pagequery/internal/observability/metrics"
	"pagequery/internal/pkg/config"
)

// Driver names accepted in Config.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// sqlDriverNames maps config driver names to database/sql registrations.
var sqlDriverNames = map[string]string{
	DriverMySQL:  "mysql",
	DriverSQLite: "sqlite3",
}

const pingTimeout = 5 * time.Second

var validate = validator.New()

// Config holds the connection and pool configuration.
type Config struct {
	Driver          string        `yaml:"driver" validate:"oneof=mysql sqlite"`
	DSN             string        `yaml:"dsn" validate:"required"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"gt=0"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" validate:"gt=0"`
	// QueryRateLimit caps store round trips per second. 0 disables the limit.
	QueryRateLimit float64 `yaml:"query_rate_limit" validate:"min=0"`
	RetryEnabled   bool    `yaml:"retry_enabled"`
}

// DefaultConfig returns the default configuration: an in-memory SQLite database.
func DefaultConfig() Config {
	return Config{
		Driver:          DriverSQLite,
		DSN:             ":memory:",
		MaxOpenConns:    25,               // Maximum number of open connections
		MaxIdleConns:    10,               // Maximum number of idle connections
		ConnMaxLifetime: 1 * time.Hour,    // Maximum lifetime of a connection
		ConnMaxIdleTime: 30 * time.Minute, // Maximum idle time of a connection
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("db config validation error: %w", err)
	}
	return nil
}

// LoadConfigFromEnv reads the connection configuration from environment variables.
// Supported environment variables:
//   - DB_DRIVER: mysql or sqlite
//   - DATABASE_URL: driver specific DSN
//   - DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS
//   - DB_CONN_MAX_LIFETIME, DB_CONN_MAX_IDLE_TIME
//   - DB_QUERY_RATE_LIMIT: queries per second, 0 = unlimited
//   - DB_RETRY_ENABLED: retry transient store errors
//
// Invalid values fall back to DefaultConfig() and are reported as warnings.
// metrics may be nil.
func LoadConfigFromEnv(m *config.ConfigMetrics) (Config, []string) {
	def := DefaultConfig()
	l := config.NewLoader(m)
	positive := func(v int) error { return config.ValidateIntRange(v, 1, 10000) }

	cfg := Config{
		Driver:          l.String("DB_DRIVER", def.Driver, config.ValidateOneOf(DriverMySQL, DriverSQLite)),
		DSN:             config.LoadEnvString("DATABASE_URL", def.DSN),
		MaxOpenConns:    l.Int("DB_MAX_OPEN_CONNS", def.MaxOpenConns, positive),
		MaxIdleConns:    l.Int("DB_MAX_IDLE_CONNS", def.MaxIdleConns, positive),
		ConnMaxLifetime: l.Duration("DB_CONN_MAX_LIFETIME", def.ConnMaxLifetime, config.ValidatePositiveDuration),
		ConnMaxIdleTime: l.Duration("DB_CONN_MAX_IDLE_TIME", def.ConnMaxIdleTime, config.ValidatePositiveDuration),
		QueryRateLimit:  l.Float("DB_QUERY_RATE_LIMIT", def.QueryRateLimit, config.ValidateNonNegativeFloat),
		RetryEnabled:    l.Bool("DB_RETRY_ENABLED", def.RetryEnabled),
	}
	if cfg.MaxIdleConns > cfg.MaxOpenConns {
		cfg.MaxIdleConns = cfg.MaxOpenConns
	}
	return cfg, l.Finish()
}

// Open creates and configures a connection pool and verifies it with a ping.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn, err := normalizeDSN(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(sqlDriverNames[cfg.Driver], dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	// Every connection to ":memory:" is a separate database.
	if cfg.Driver == DriverSQLite && isMemoryDSN(cfg.DSN) {
		cfg.MaxOpenConns = 1
		cfg.MaxIdleConns = 1
		cfg.ConnMaxLifetime = 0
		cfg.ConnMaxIdleTime = 0
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.String("driver", cfg.Driver),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	metrics.UpdateDBConnectionStats(db.Stats())
	slog.Info("database connection established successfully")
	return db, nil
}

// normalizeDSN parses a MySQL DSN and re-renders it with the options the
// row accessors rely on. SQLite DSNs are returned as is.
func normalizeDSN(driver, dsn string) (string, error) {
	if driver != DriverMySQL {
		return dsn, nil
	}
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	mc.ParseTime = true
	if mc.Loc == nil {
		mc.Loc = time.UTC
	}
	return mc.FormatDSN(), nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == "" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
