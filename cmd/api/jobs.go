package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pagequery/internal/infra/worker"
	"pagequery/internal/observability/metrics"
	"pagequery/internal/resilience/circuitbreaker"
	"pagequery/internal/sqlparam"
	"pagequery/internal/usecase/pagequery"
)

const activePlayersQuery = "SELECT id FROM players WHERE active = ?"

var rosterActivePlayers = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "roster_active_players",
	Help: "Number of active players at the last refresh",
})

// dbStatsJob publishes pool and breaker state.
func dbStatsJob(conn *sql.DB, breaker *circuitbreaker.DBCircuitBreaker) worker.Job {
	return func(context.Context) error {
		metrics.UpdateDBConnectionStats(conn.Stats())
		metrics.SetCircuitBreakerOpen("db", breaker.IsOpen())
		return nil
	}
}

// activePlayersJob counts active players through the engine's count rewrite.
func activePlayersJob(engine *pagequery.Engine, gauge prometheus.Gauge) worker.Job {
	params := sqlparam.NewBuilder().Bool(true).Build()
	return func(ctx context.Context) error {
		n, err := engine.Count(ctx, activePlayersQuery, params)
		if err != nil {
			return err
		}
		gauge.Set(float64(n))
		return nil
	}
}

func startScheduler(cfg worker.Config, conn *sql.DB, breaker *circuitbreaker.DBCircuitBreaker, engine *pagequery.Engine, logger *slog.Logger) (*worker.Scheduler, error) {
	s, err := worker.NewScheduler(cfg, worker.NewMetrics(prometheus.DefaultRegisterer), logger)
	if err != nil {
		return nil, err
	}
	if err := s.Add("db_stats", dbStatsJob(conn, breaker)); err != nil {
		return nil, err
	}
	if err := s.Add("active_players", activePlayersJob(engine, rosterActivePlayers)); err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}
