package team

import (
	"log/slog"
	"net/http"

	"pagequery/internal/common/pagination"
	"pagequery/internal/usecase/roster"
)

// Register registers the team routes with mux.
func Register(mux *http.ServeMux, svc *roster.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /teams", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET /teams/standings", StandingsHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
}
