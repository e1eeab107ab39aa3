package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

//go:embed seeds/demo.sql
var seedDemoSQL string

// schema is portable between MySQL and SQLite apart from key generation,
// which dialect rewrites for MySQL.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
    id   INTEGER PRIMARY KEY,
    name VARCHAR(100) NOT NULL UNIQUE,
    city VARCHAR(100) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS players (
    id        INTEGER PRIMARY KEY,
    team_id   INTEGER NOT NULL REFERENCES teams(id),
    name      VARCHAR(100) NOT NULL,
    position  VARCHAR(20) NOT NULL,
    points    INTEGER NOT NULL DEFAULT 0,
    active    BOOLEAN NOT NULL DEFAULT TRUE,
    joined_at TIMESTAMP NULL
)`,
	`CREATE INDEX idx_players_team_id ON players(team_id)`,
}

// MigrateUp creates the demo schema used by the CLI and integration tests.
// It must run against an empty database.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		stmt = dialect(db, stmt)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateUp: %w", err)
		}
	}
	return nil
}

// Seed loads the demo rows.
func Seed(ctx context.Context, db *sql.DB) error {
	for _, stmt := range splitStatements(seedDemoSQL) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("Seed: %w", err)
		}
	}
	return nil
}

// MigrateDown drops the demo schema.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS players`,
		`DROP TABLE IF EXISTS teams`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateDown: %w", err)
		}
	}
	return nil
}

// dialect adapts a schema statement to the driver behind db. SQLite assigns
// INTEGER PRIMARY KEY columns from the rowid; MySQL needs AUTO_INCREMENT.
func dialect(db *sql.DB, stmt string) string {
	if _, ok := db.Driver().(*mysql.MySQLDriver); ok {
		return strings.Replace(stmt, "INTEGER PRIMARY KEY", "BIGINT AUTO_INCREMENT PRIMARY KEY", 1)
	}
	return stmt
}

// splitStatements splits a script on statement terminators at line ends.
// Seed scripts keep one terminator per statement, never inside literals.
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";\n") {
		if stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(part), ";")); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
