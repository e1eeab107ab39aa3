// Package main runs the roster HTTP API: paginated player and team listings
// served through the pagination engine, with health, readiness and metrics
// endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"pagequery/internal/common/pagination"
	"pagequery/internal/infra/adapter/persistence/roster"
	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/infra/db"
	"pagequery/internal/infra/worker"
	"pagequery/internal/observability/logging"
	"pagequery/internal/pkg/config"
	"pagequery/internal/resilience/circuitbreaker"
	"pagequery/internal/resilience/retry"
	"pagequery/internal/usecase/pagequery"
	rosterUC "pagequery/internal/usecase/roster"
)

func main() {
	logger := logging.New(os.Stdout, config.LoadEnvString("LOG_FORMAT", "json"))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := config.NewConfigMetrics("api", prometheus.DefaultRegisterer)
	if err := run(ctx, metrics, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, metrics *config.ConfigMetrics, logger *slog.Logger) error {
	srvCfg, srvWarnings := loadServerConfig(metrics)
	dbCfg, dbWarnings := db.LoadConfigFromEnv(metrics)
	pcfg, pWarnings := pagination.LoadFromEnv(metrics)
	workerCfg, wWarnings := worker.LoadConfigFromEnv(metrics)
	warnings := append(append(append(srvWarnings, dbWarnings...), pWarnings...), wWarnings...)
	for _, w := range warnings {
		logger.Warn("configuration fallback", slog.String("warning", w))
	}

	conn, err := db.Open(ctx, dbCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if srvCfg.SeedDemo {
		if err := db.MigrateUp(ctx, conn); err != nil {
			return err
		}
		if err := db.Seed(ctx, conn); err != nil {
			return err
		}
		logger.Info("demo roster seeded")
	}

	breaker := circuitbreaker.NewDBCircuitBreaker(conn)
	storeOpts := []sqlstore.Option{
		sqlstore.WithLogger(logger),
		sqlstore.WithRateLimit(dbCfg.QueryRateLimit, max(1, int(dbCfg.QueryRateLimit))),
	}
	if dbCfg.RetryEnabled {
		storeOpts = append(storeOpts, sqlstore.WithRetry(retry.DBConfig()))
	}
	store := sqlstore.New(breaker, storeOpts...)

	engine, err := pagequery.NewEngine(store, pcfg, pagequery.WithLogger(logger))
	if err != nil {
		return err
	}
	tpl := sqlstore.NewTemplate(store)
	svc := &rosterUC.Service{
		Players: roster.NewPlayerRepo(engine, tpl),
		Teams:   roster.NewTeamRepo(engine, tpl),
	}

	scheduler, err := startScheduler(workerCfg, conn, breaker, engine, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: srvCfg.Addr,
		Handler: newHandler(deps{
			DB:            conn,
			Breaker:       breaker,
			Svc:           svc,
			PaginationCfg: pcfg,
			Server:        srvCfg,
			Logger:        logger,
		}),
		ReadHeaderTimeout: 10 * time.Second, // Slowloris
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srvCfg.Addr),
			slog.String("version", srvCfg.Version),
			slog.String("strategy", pcfg.Strategy.String()),
			slog.String("driver", dbCfg.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
	defer cancel()
	scheduler.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
