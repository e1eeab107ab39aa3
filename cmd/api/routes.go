package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"pagequery/internal/common/pagination"
	hhttp "pagequery/internal/handler/http"
	hplayer "pagequery/internal/handler/http/player"
	"pagequery/internal/handler/http/requestid"
	hteam "pagequery/internal/handler/http/team"
	"pagequery/internal/usecase/roster"
)

// deps are the components the HTTP handler is built from.
type deps struct {
	DB            *sql.DB
	Breaker       hhttp.Breaker
	Svc           *roster.Service
	PaginationCfg pagination.Config
	Server        serverConfig
	Logger        *slog.Logger
}

// newHandler registers all routes and wraps them in the middleware chain:
// request ID, tracing, recovery, logging, rate limit, body limit, metrics,
// timeout.
func newHandler(d deps) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: d.DB, Breaker: d.Breaker, Version: d.Server.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: d.DB})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hplayer.Register(mux, d.Svc, d.PaginationCfg, d.Logger)
	hteam.Register(mux, d.Svc, d.PaginationCfg, d.Logger)

	mw := []func(http.Handler) http.Handler{
		requestid.Middleware,
		hhttp.Tracing,
		hhttp.Recover(d.Logger),
		hhttp.Logging(d.Logger),
	}
	if d.Server.RateLimit > 0 {
		mw = append(mw, hhttp.NewRateLimiter(d.Server.RateLimit, d.Server.RateBurst, 10*time.Minute).Limit)
	}
	mw = append(mw,
		hhttp.LimitRequestBody(int64(d.Server.MaxBodyBytes)),
		hhttp.MetricsMiddleware,
		hhttp.Timeout(d.Server.RequestTimeout),
	)
	return hhttp.Chain(mux, mw...)
}
