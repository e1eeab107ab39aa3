// Package player provides HTTP handlers for player endpoints: a filtered,
// paginated listing plus single-player reads and writes.
package player

import (
	"time"

	"pagequery/internal/domain/entity"
)

// DTO represents the JSON structure for player data transfer.
type DTO struct {
	ID       int64     `json:"id"`
	TeamID   int64     `json:"team_id"`
	TeamName string    `json:"team_name,omitempty"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Points   int       `json:"points"`
	Active   bool      `json:"active"`
	JoinedAt time.Time `json:"joined_at"`
}

func toDTO(p entity.Player, teamName string) DTO {
	return DTO{
		ID:       p.ID,
		TeamID:   p.TeamID,
		TeamName: teamName,
		Name:     p.Name,
		Position: p.Position,
		Points:   p.Points,
		Active:   p.Active,
		JoinedAt: p.JoinedAt,
	}
}

func toDTOs(items []entity.PlayerWithTeam) []DTO {
	dtos := make([]DTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item.Player, item.TeamName))
	}
	return dtos
}

// CreateRequest is the body of POST /players.
type CreateRequest struct {
	TeamID   int64  `json:"team_id" validate:"required,gt=0"`
	Name     string `json:"name" validate:"required,max=100"`
	Position string `json:"position" validate:"required,oneof=guard forward center"`
	Points   int    `json:"points" validate:"gte=0,max=2147483647"`
	Active   *bool  `json:"active"`
	JoinedAt string `json:"joined_at" validate:"omitempty,datetime=2006-01-02"`
}

// ActiveRequest is the body of PATCH /players/{id}/active.
type ActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// PointsRequest is the body of POST /players/{id}/points.
type PointsRequest struct {
	Delta int `json:"delta" validate:"gt=0,max=2147483647"`
}
