package player

import (
	"log/slog"
	"net/http"

	"pagequery/internal/common/pagination"
	"pagequery/internal/usecase/roster"
)

// Register registers the player routes with mux.
func Register(mux *http.ServeMux, svc *roster.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /players", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /players/{id}", GetHandler{svc})

	mux.Handle("POST /players", CreateHandler{svc})
	mux.Handle("PATCH /players/{id}/active", ActiveHandler{svc})
	mux.Handle("POST /players/{id}/points", PointsHandler{svc})
}
