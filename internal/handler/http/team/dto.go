// Package team provides HTTP handlers for the paginated team listing and
// standings endpoints.
package team

import "pagequery/internal/domain/entity"

// DTO represents the JSON structure for team data transfer.
type DTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

// StandingDTO is one row of the standings table.
type StandingDTO struct {
	TeamID  int64  `json:"team_id"`
	Name    string `json:"name"`
	Players int64  `json:"players"`
	Points  int64  `json:"points"`
}

func toDTOs(items []entity.Team) []DTO {
	dtos := make([]DTO, 0, len(items))
	for _, t := range items {
		dtos = append(dtos, DTO{ID: t.ID, Name: t.Name, City: t.City})
	}
	return dtos
}

func toStandingDTOs(items []entity.TeamStanding) []StandingDTO {
	dtos := make([]StandingDTO, 0, len(items))
	for _, s := range items {
		dtos = append(dtos, StandingDTO{TeamID: s.TeamID, Name: s.Name, Players: s.Players, Points: s.Points})
	}
	return dtos
}
