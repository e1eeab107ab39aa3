package roster

import (
	"context"
	"fmt"
	"time"

	"pagequery/internal/common/pagination"
	"pagequery/internal/domain/entity"
	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/repository"
	"pagequery/internal/sqlparam"
	"pagequery/internal/usecase/pagequery"
)

const selectPlayers = `
SELECT p.id, p.team_id, t.name, p.name, p.position, p.points, p.active, p.joined_at
FROM players p
INNER JOIN teams t ON t.id = p.team_id`

// PlayerRepo reads and writes players.
type PlayerRepo struct {
	engine  *pagequery.Engine
	tpl     *sqlstore.Template
	builder *PlayerQueryBuilder
}

// NewPlayerRepo creates a player repository. engine serves listings and tpl
// serves single-row reads and writes; both should share one store.
func NewPlayerRepo(engine *pagequery.Engine, tpl *sqlstore.Template) *PlayerRepo {
	return &PlayerRepo{engine: engine, tpl: tpl, builder: NewPlayerQueryBuilder()}
}

// List returns one page of players matching filter, highest scorers first.
func (repo *PlayerRepo) List(ctx context.Context, filter entity.PlayerFilter, req pagination.Request) (pagination.Result[entity.PlayerWithTeam], error) {
	where, params := repo.builder.BuildWhereClause(filter)
	query := selectPlayers
	if where != "" {
		query += "\n" + where
	}
	query += "\nORDER BY p.points DESC, p.id"

	res, err := pagequery.Paginate(ctx, repo.engine, query, params, req, scanPlayer)
	if err != nil {
		return pagination.Result[entity.PlayerWithTeam]{}, fmt.Errorf("List: %w", err)
	}
	return res, nil
}

// Get returns the player with id, or nil when there is none.
func (repo *PlayerRepo) Get(ctx context.Context, id int64) (*entity.PlayerWithTeam, error) {
	query := selectPlayers + "\nWHERE p.id = ?"
	p, found, err := sqlstore.QueryOne(ctx, repo.tpl, query, sqlparam.NewBuilder().Long(id).Build(), scanPlayer)
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// Create inserts p and sets its ID.
func (repo *PlayerRepo) Create(ctx context.Context, p *entity.Player) error {
	cols := sqlstore.NewColumns().
		Long("team_id", p.TeamID).
		String("name", p.Name).
		String("position", p.Position).
		Long("points", int64(p.Points)).
		Bool("active", p.Active)
	if p.JoinedAt.IsZero() {
		cols.Null("joined_at")
	} else {
		cols.Date("joined_at", p.JoinedAt.UTC())
	}

	id, err := repo.tpl.InsertForLastID(ctx, "players", cols)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	p.ID = id
	return nil
}

// SetActive updates the active flag and reports whether a player was changed.
// MySQL counts only rows whose value actually changed.
func (repo *PlayerRepo) SetActive(ctx context.Context, id int64, active bool) (bool, error) {
	const query = `UPDATE players SET active = ? WHERE id = ?`
	ok, err := repo.tpl.UpdateForBool(ctx, query, sqlparam.NewBuilder().Bool(active).Long(id).Build())
	if err != nil {
		return false, fmt.Errorf("SetActive: %w", err)
	}
	return ok, nil
}

// AddPoints adds delta to a player's points. It reports false when the player
// does not exist or the total would pass entity.MaxPoints.
func (repo *PlayerRepo) AddPoints(ctx context.Context, id int64, delta int) (bool, error) {
	const query = `UPDATE players SET points = points + ? WHERE id = ? AND points <= ?`
	params := sqlparam.NewBuilder().
		Long(int64(delta)).
		Long(id).
		Long(int64(entity.MaxPoints) - int64(delta)).
		Build()
	n, err := repo.tpl.Incr(ctx, query, params)
	if err != nil {
		return false, fmt.Errorf("AddPoints: %w", err)
	}
	return n == 1, nil
}

// scanPlayer maps the selectPlayers projection.
func scanPlayer(r repository.Row) (entity.PlayerWithTeam, error) {
	var (
		p   entity.PlayerWithTeam
		err error
	)
	if p.ID, err = r.Int64(0); err != nil {
		return p, err
	}
	if p.TeamID, err = r.Int64(1); err != nil {
		return p, err
	}
	if p.TeamName, err = r.String(2); err != nil {
		return p, err
	}
	if p.Name, err = r.String(3); err != nil {
		return p, err
	}
	if p.Position, err = r.String(4); err != nil {
		return p, err
	}
	points, err := r.Int(5)
	if err != nil {
		return p, err
	}
	p.Points = int(points)
	if p.Active, err = r.Bool(6); err != nil {
		return p, err
	}
	if !r.IsNull(7) {
		var joined time.Time
		if joined, err = r.Time(7); err != nil {
			return p, err
		}
		p.JoinedAt = joined.UTC()
	}
	return p, nil
}
