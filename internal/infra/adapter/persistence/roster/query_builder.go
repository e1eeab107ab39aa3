// Package roster stores teams and players through the paginated query engine.
// Listings are served by pagequery.Paginate so every page carries the exact
// total of the filtered query; single-row reads and writes go through the
// sqlstore template.
package roster

import (
	"strings"

	"pagequery/internal/domain/entity"
	"pagequery/internal/sqlparam"
)

// PlayerQueryBuilder builds the WHERE clause of player listings. The same
// clause feeds the window query and the derived count query.
type PlayerQueryBuilder struct{}

// NewPlayerQueryBuilder creates a new query builder instance.
func NewPlayerQueryBuilder() *PlayerQueryBuilder {
	return &PlayerQueryBuilder{}
}

// BuildWhereClause returns the WHERE clause for filter and the parameters it
// binds, in placeholder order. It returns an empty clause when no condition
// applies.
func (qb *PlayerQueryBuilder) BuildWhereClause(filter entity.PlayerFilter) (string, sqlparam.List) {
	var conditions []string
	b := sqlparam.NewBuilder()

	if filter.TeamID > 0 {
		conditions = append(conditions, "p.team_id = ?")
		b.Long(filter.TeamID)
	}
	if filter.Position != "" {
		conditions = append(conditions, "p.position = ?")
		b.String(filter.Position)
	}
	if filter.MinPoints != nil {
		conditions = append(conditions, "p.points >= ?")
		b.Int(int32(*filter.MinPoints))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "p.active = ?")
		b.Bool(true)
	}
	if filter.Name != "" {
		conditions = append(conditions, "p.name LIKE ?")
		b.String("%" + escapeLike(filter.Name) + "%")
	}

	if len(conditions) == 0 {
		return "", b.Build()
	}
	return "WHERE " + strings.Join(conditions, " AND "), b.Build()
}

// escapeLike drops LIKE wildcards from user input so a name filter is always
// a plain substring match.
func escapeLike(s string) string {
	return strings.NewReplacer("%", "", "_", "").Replace(s)
}
