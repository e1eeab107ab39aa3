package roster

import (
	"context"
	"fmt"
	"time"

	"pagequery/internal/common/pagination"
	"pagequery/internal/domain/entity"
)

// PlayerRepository is the player storage used by Service.
type PlayerRepository interface {
	List(ctx context.Context, filter entity.PlayerFilter, req pagination.Request) (pagination.Result[entity.PlayerWithTeam], error)
	Get(ctx context.Context, id int64) (*entity.PlayerWithTeam, error)
	Create(ctx context.Context, p *entity.Player) error
	SetActive(ctx context.Context, id int64, active bool) (bool, error)
	// AddPoints reports false when the player does not exist or the new
	// total would exceed entity.MaxPoints.
	AddPoints(ctx context.Context, id int64, delta int) (bool, error)
}

// TeamRepository is the team storage used by Service.
type TeamRepository interface {
	List(ctx context.Context, req pagination.Request) (pagination.Result[entity.Team], error)
	Standings(ctx context.Context, activeOnly bool, req pagination.Request) (pagination.Result[entity.TeamStanding], error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CreateInput represents the input parameters for creating a new player.
type CreateInput struct {
	TeamID   int64
	Name     string
	Position string
	Points   int
	Active   bool
	JoinedAt time.Time
}

// Service provides roster use cases.
type Service struct {
	Players PlayerRepository
	Teams   TeamRepository
	Now     func() time.Time // defaults to time.Now
}

// ListPlayers returns one page of players matching filter.
func (s *Service) ListPlayers(ctx context.Context, filter entity.PlayerFilter, req pagination.Request) (pagination.Result[entity.PlayerWithTeam], error) {
	if err := filter.Validate(); err != nil {
		return pagination.Result[entity.PlayerWithTeam]{}, err
	}
	res, err := s.Players.List(ctx, filter, req)
	if err != nil {
		return pagination.Result[entity.PlayerWithTeam]{}, fmt.Errorf("list players: %w", err)
	}
	return res, nil
}

// GetPlayer retrieves a single player by ID.
// Returns ErrInvalidPlayerID if the ID is not positive.
// Returns ErrPlayerNotFound if the player does not exist.
func (s *Service) GetPlayer(ctx context.Context, id int64) (*entity.PlayerWithTeam, error) {
	if id <= 0 {
		return nil, ErrInvalidPlayerID
	}
	p, err := s.Players.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

// CreatePlayer validates in, checks the team exists and stores the player.
// A zero JoinedAt is set to the current time.
func (s *Service) CreatePlayer(ctx context.Context, in CreateInput) (*entity.Player, error) {
	p := &entity.Player{
		TeamID:   in.TeamID,
		Name:     in.Name,
		Position: in.Position,
		Points:   in.Points,
		Active:   in.Active,
		JoinedAt: in.JoinedAt,
	}
	if p.JoinedAt.IsZero() {
		p.JoinedAt = s.now().UTC().Truncate(time.Second)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.Teams.Exists(ctx, p.TeamID)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	if !ok {
		return nil, ErrTeamNotFound
	}

	if err := s.Players.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	return p, nil
}

// SetActive activates or deactivates a player.
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	if id <= 0 {
		return ErrInvalidPlayerID
	}
	// Confirm existence first: MySQL reports zero affected rows for a no-op update.
	if _, err := s.GetPlayer(ctx, id); err != nil {
		return err
	}
	if _, err := s.Players.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	return nil
}

// AddPoints credits delta points to a player. A credit that would take the
// total past entity.MaxPoints is rejected and leaves the player unchanged.
func (s *Service) AddPoints(ctx context.Context, id int64, delta int) error {
	if id <= 0 {
		return ErrInvalidPlayerID
	}
	if err := entity.ValidatePointsDelta(delta); err != nil {
		return err
	}
	ok, err := s.Players.AddPoints(ctx, id, delta)
	if err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	if !ok {
		if _, err := s.GetPlayer(ctx, id); err != nil {
			return err
		}
		return &entity.ValidationError{Field: "points", Message: fmt.Sprintf("total must not exceed %d", entity.MaxPoints)}
	}
	return nil
}

// ListTeams returns one page of teams.
func (s *Service) ListTeams(ctx context.Context, req pagination.Request) (pagination.Result[entity.Team], error) {
	res, err := s.Teams.List(ctx, req)
	if err != nil {
		return pagination.Result[entity.Team]{}, fmt.Errorf("list teams: %w", err)
	}
	return res, nil
}

// Standings returns one page of teams ranked by points.
func (s *Service) Standings(ctx context.Context, activeOnly bool, req pagination.Request) (pagination.Result[entity.TeamStanding], error) {
	res, err := s.Teams.Standings(ctx, activeOnly, req)
	if err != nil {
		return pagination.Result[entity.TeamStanding]{}, fmt.Errorf("standings: %w", err)
	}
	return res, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
