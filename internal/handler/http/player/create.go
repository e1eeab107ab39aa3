package player

import (
	"net/http"
	"strconv"
	"time"

	"pagequery/internal/handler/http/respond"
	"pagequery/internal/usecase/roster"
)

// CreateHandler serves POST /players. Active defaults to true and joined_at
// to the current date.
type CreateHandler struct{ Svc *roster.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := roster.CreateInput{
		TeamID:   req.TeamID,
		Name:     req.Name,
		Position: req.Position,
		Points:   req.Points,
		Active:   req.Active == nil || *req.Active,
	}
	if req.JoinedAt != "" {
		// format already checked by the datetime tag
		in.JoinedAt, _ = time.Parse(time.DateOnly, req.JoinedAt)
	}

	p, err := h.Svc.CreatePlayer(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Location", "/players/"+strconv.FormatInt(p.ID, 10))
	respond.JSON(w, http.StatusCreated, toDTO(*p, ""))
}
