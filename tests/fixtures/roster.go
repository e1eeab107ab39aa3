package fixtures

import (
	"context"
	"database/sql"
	"fmt"

	"pagequery/internal/common/pagination"
	rosterrepo "pagequery/internal/infra/adapter/persistence/roster"
	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/infra/db"
	"pagequery/internal/usecase/pagequery"
	"pagequery/internal/usecase/roster"
)

// NewRosterService opens an in-memory SQLite database holding the demo roster
// and returns a roster service paginating with strategy. The caller closes
// the returned database.
func NewRosterService(ctx context.Context, strategy pagination.Strategy) (*roster.Service, *sql.DB, error) {
	conn, err := db.Open(ctx, db.DefaultConfig())
	if err != nil {
		return nil, nil, err
	}
	if err := db.MigrateUp(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	if err := db.Seed(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("seed: %w", err)
	}

	store := sqlstore.New(conn)
	cfg := pagination.DefaultConfig()
	cfg.Strategy = strategy
	engine, err := pagequery.NewEngine(store, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	tpl := sqlstore.NewTemplate(store)
	return &roster.Service{
		Players: rosterrepo.NewPlayerRepo(engine, tpl),
		Teams:   rosterrepo.NewTeamRepo(engine, tpl),
	}, conn, nil
}
