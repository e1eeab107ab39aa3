package roster

import (
	"context"
	"fmt"

	"pagequery/internal/common/pagination"
	"pagequery/internal/domain/entity"
	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/repository"
	"pagequery/internal/sqlparam"
	"pagequery/internal/usecase/pagequery"
)

// TeamRepo reads teams and their aggregated standings.
type TeamRepo struct {
	engine *pagequery.Engine
	tpl    *sqlstore.Template
}

// NewTeamRepo creates a team repository.
func NewTeamRepo(engine *pagequery.Engine, tpl *sqlstore.Template) *TeamRepo {
	return &TeamRepo{engine: engine, tpl: tpl}
}

// List returns one page of teams ordered by name.
func (repo *TeamRepo) List(ctx context.Context, req pagination.Request) (pagination.Result[entity.Team], error) {
	const query = `SELECT id, name, city FROM teams ORDER BY name, id`

	res, err := pagequery.Paginate(ctx, repo.engine, query, sqlparam.Empty(), req, scanTeam)
	if err != nil {
		return pagination.Result[entity.Team]{}, fmt.Errorf("List: %w", err)
	}
	return res, nil
}

// Standings returns one page of teams ranked by total points. With
// activeOnly, inactive players are left out of the totals.
func (repo *TeamRepo) Standings(ctx context.Context, activeOnly bool, req pagination.Request) (pagination.Result[entity.TeamStanding], error) {
	join := "LEFT JOIN players p ON p.team_id = t.id"
	b := sqlparam.NewBuilder()
	if activeOnly {
		join += " AND p.active = ?"
		b.Bool(true)
	}
	query := `
SELECT t.id, t.name, COUNT(p.id) AS player_count, COALESCE(SUM(p.points), 0) AS total_points
FROM teams t
` + join + `
GROUP BY t.id, t.name
ORDER BY total_points DESC, t.id`

	res, err := pagequery.Paginate(ctx, repo.engine, query, b.Build(), req, scanStanding)
	if err != nil {
		return pagination.Result[entity.TeamStanding]{}, fmt.Errorf("Standings: %w", err)
	}
	return res, nil
}

// Exists reports whether a team with id exists.
func (repo *TeamRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT COUNT(*) FROM teams WHERE id = ?`
	ok, err := repo.tpl.Exists(ctx, query, sqlparam.NewBuilder().Long(id).Build())
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return ok, nil
}

func scanTeam(r repository.Row) (entity.Team, error) {
	var (
		t   entity.Team
		err error
	)
	if t.ID, err = r.Int64(0); err != nil {
		return t, err
	}
	if t.Name, err = r.String(1); err != nil {
		return t, err
	}
	t.City, err = r.String(2)
	return t, err
}

func scanStanding(r repository.Row) (entity.TeamStanding, error) {
	var (
		s   entity.TeamStanding
		err error
	)
	if s.TeamID, err = r.Int64(0); err != nil {
		return s, err
	}
	if s.Name, err = r.String(1); err != nil {
		return s, err
	}
	if s.Players, err = r.Int64(2); err != nil {
		return s, err
	}
	s.Points, err = r.Int64(3)
	return s, err
}
