package team

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"pagequery/internal/common/pagination"
	"pagequery/internal/domain/entity"
	"pagequery/internal/handler/http/respond"
	"pagequery/internal/observability/logging"
	"pagequery/internal/usecase/roster"
)

// ListHandler serves GET /teams.
type ListHandler struct {
	Svc           *roster.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListTeams(r.Context(), req)
	if err != nil {
		fail(w, r, h.Logger, "list teams failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Items), result.Metadata(req)))
}

// StandingsHandler serves GET /teams/standings. With active=true only
// active players are counted.
type StandingsHandler struct {
	Svc           *roster.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h StandingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var activeOnly bool
	if s := r.URL.Query().Get("active"); s != "" {
		if activeOnly, err = strconv.ParseBool(s); err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				&entity.ValidationError{Field: "active", Message: "must be true or false"})
			return
		}
	}

	result, err := h.Svc.Standings(r.Context(), activeOnly, req)
	if err != nil {
		fail(w, r, h.Logger, "standings failed", err)
		return
	}
	respond.JSON(w, http.StatusOK, pagination.NewResponse(toStandingDTOs(result.Items), result.Metadata(req)))
}

func fail(w http.ResponseWriter, r *http.Request, logger *slog.Logger, msg string, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	logging.WithQueryID(r.Context(), logger).Warn(msg, slog.String("error", respond.SanitizeError(err)))

	code := http.StatusInternalServerError
	if errors.Is(err, context.DeadlineExceeded) {
		code = http.StatusGatewayTimeout
	}
	respond.SafeError(w, code, err)
}
