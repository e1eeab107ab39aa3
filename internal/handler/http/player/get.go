package player

import (
	"net/http"

	"pagequery/internal/handler/http/pathutil"
	"pagequery/internal/handler/http/respond"
	"pagequery/internal/usecase/roster"
)

// GetHandler serves GET /players/{id}.
type GetHandler struct{ Svc *roster.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	p, err := h.Svc.GetPlayer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(p.Player, p.TeamName))
}
