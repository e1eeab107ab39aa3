// Package entity defines the roster domain: teams, players and the filters and
// validation rules the service layer applies before querying the store.
package entity

import (
	"math"
	"time"
)

// MaxPoints is the largest points total a player can hold. The players.points
// column is a 32-bit INT in MySQL.
const MaxPoints = math.MaxInt32

// Positions accepted for a player.
const (
	PositionGuard   = "guard"
	PositionForward = "forward"
	PositionCenter  = "center"
)

// Team is a club players belong to.
type Team struct {
	ID   int64
	Name string
	City string
}

// Player is a single rostered player.
type Player struct {
	ID       int64
	TeamID   int64
	Name     string
	Position string
	Points   int
	Active   bool
	JoinedAt time.Time
}

// PlayerWithTeam is a player joined with the name of their team.
type PlayerWithTeam struct {
	Player
	TeamName string
}

// TeamStanding aggregates a team's roster.
type TeamStanding struct {
	TeamID  int64
	Name    string
	Players int64
	Points  int64
}

// PlayerFilter narrows a player listing. Zero values disable a condition.
type PlayerFilter struct {
	TeamID     int64
	Position   string
	MinPoints  *int
	ActiveOnly bool
	Name       string // substring match
}
