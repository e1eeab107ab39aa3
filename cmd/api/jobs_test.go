package main

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/common/pagination"
	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/infra/db"
	"pagequery/internal/observability/metrics"
	"pagequery/internal/resilience/circuitbreaker"
	"pagequery/internal/usecase/pagequery"
)

func TestJobs(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, db.MigrateUp(ctx, conn))
	require.NoError(t, db.Seed(ctx, conn))

	breaker := circuitbreaker.NewDBCircuitBreaker(conn)
	engine, err := pagequery.NewEngine(sqlstore.New(breaker), pagination.DefaultConfig())
	require.NoError(t, err)

	t.Run("db stats", func(t *testing.T) {
		require.NoError(t, dbStatsJob(conn, breaker)(ctx))
		assert.Equal(t, 0.0, testutil.ToFloat64(metrics.StoreCircuitBreakerOpen.WithLabelValues("db")))
	})

	t.Run("active players", func(t *testing.T) {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_active_players"})
		require.NoError(t, activePlayersJob(engine, gauge)(ctx))
		assert.Equal(t, 8.0, testutil.ToFloat64(gauge))
	})
}
