package player

import (
	"log/slog"
	"net/http"
	"strconv"

	"pagequery/internal/common/pagination"
	"pagequery/internal/domain/entity"
	"pagequery/internal/handler/http/respond"
	"pagequery/internal/observability/logging"
	"pagequery/internal/usecase/roster"
)

// ListHandler serves GET /players.
//
// Query parameters: team_id, position, min_points, active, name, plus the
// pagination parameters size, offset and page.
type ListHandler struct {
	Svc           *roster.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logging.WithQueryID(ctx, logger)

	req, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	filter, err := parseFilter(r)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPlayers(ctx, filter, req)
	if err != nil {
		logger.Warn("list players failed",
			slog.Int("offset", req.Offset),
			slog.Int("size", req.Size),
			slog.String("error", respond.SanitizeError(err)))
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Items), result.Metadata(req)))
}

func parseFilter(r *http.Request) (entity.PlayerFilter, error) {
	q := r.URL.Query()
	var f entity.PlayerFilter

	if s := q.Get("team_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id <= 0 {
			return f, &entity.ValidationError{Field: "team_id", Message: "must be a positive integer"}
		}
		f.TeamID = id
	}
	if s := q.Get("min_points"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return f, &entity.ValidationError{Field: "min_points", Message: "must be an integer"}
		}
		f.MinPoints = &n
	}
	if s := q.Get("active"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return f, &entity.ValidationError{Field: "active", Message: "must be true or false"}
		}
		f.ActiveOnly = b
	}
	f.Position = q.Get("position")
	f.Name = q.Get("name")
	return f, nil
}
