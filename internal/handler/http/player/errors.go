package player

import (
	"context"
	"errors"
	"net/http"

	"pagequery/internal/common/pagination"
	"pagequery/internal/domain/entity"
	"pagequery/internal/handler/http/pathutil"
	"pagequery/internal/handler/http/respond"
	"pagequery/internal/usecase/roster"
)

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, pagination.ErrInvalidRequest),
		errors.Is(err, roster.ErrInvalidPlayerID),
		errors.Is(err, pathutil.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, roster.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, roster.ErrTeamNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	respond.SafeError(w, statusFor(err), err)
}
