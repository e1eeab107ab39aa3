// Package roster implements the team and player use cases served over HTTP:
// filtered, paginated listings with exact totals, single-player reads and
// validated writes.
package roster

import "errors"

// Sentinel errors for roster use case operations.
var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInvalidPlayerID indicates that a player ID is not positive.
	ErrInvalidPlayerID = errors.New("invalid player ID")

	// ErrTeamNotFound indicates that a referenced team does not exist.
	ErrTeamNotFound = errors.New("team not found")
)
