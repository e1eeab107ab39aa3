package player

import (
	"net/http"

	"pagequery/internal/handler/http/pathutil"
	"pagequery/internal/usecase/roster"
)

// ActiveHandler serves PATCH /players/{id}/active.
type ActiveHandler struct{ Svc *roster.Service }

func (h ActiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req ActiveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.Svc.SetActive(r.Context(), id, *req.Active); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PointsHandler serves POST /players/{id}/points.
type PointsHandler struct{ Svc *roster.Service }

func (h PointsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	var req PointsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.Svc.AddPoints(r.Context(), id, req.Delta); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
