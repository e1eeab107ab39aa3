package sqlstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/infra/adapter/persistence/sqlstore"
	"pagequery/internal/sqlparam"
)

func TestRenderSQL(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name   string
		query  string
		params sqlparam.List
		want   string
	}{
		{
			name:   "typed literals",
			query:  "SELECT * FROM t WHERE a = ? AND b = ? AND c = ? AND d = ? AND e = ?",
			params: sqlparam.NewBuilder().Int(1).String("o'neil").Bool(true).Date(day).Null().Build(),
			want:   "SELECT * FROM t WHERE a = 1 AND b = 'o''neil' AND c = 1 AND d = '2024-01-02 03:04:05' AND e = NULL",
		},
		{
			name:   "question mark inside literal is not a placeholder",
			query:  "SELECT * FROM t WHERE q = '?' AND id = ?",
			params: sqlparam.NewBuilder().Long(9).Build(),
			want:   "SELECT * FROM t WHERE q = '?' AND id = 9",
		},
		{
			name:   "no params",
			query:  "SELECT 1",
			params: sqlparam.Empty(),
			want:   "SELECT 1",
		},
		{
			name:   "mismatch falls back to comment",
			query:  "SELECT * FROM t WHERE id = ?",
			params: sqlparam.NewBuilder().Long(1).Long(2).Build(),
			want:   "SELECT * FROM t WHERE id = ? /* params: [1 2] */",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sqlstore.RenderSQL(tt.query, tt.params))
		})
	}
}

func TestInsertBuilder(t *testing.T) {
	t.Parallel()

	cols := sqlstore.NewColumns().Long("id", 1).Double("score", 2.5).Bool("active", true)
	query, params, err := sqlstore.NewInsertBuilder("app.players", cols).Build()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO `app`.`players` (`id`, `score`, `active`) VALUES (?, ?, ?)", query)
	assert.Equal(t, []any{int64(1), 2.5, true}, params.Values())
	assert.Equal(t, []string{"id", "score", "active"}, cols.Names())
}

func TestInsertBuilder_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := sqlstore.NewInsertBuilder("users; DROP TABLE x", sqlstore.NewColumns().Long("id", 1)).Build()
	assert.ErrorIs(t, err, sqlstore.ErrInvalidIdentifier)

	_, _, err = sqlstore.NewInsertBuilder("users", sqlstore.NewColumns()).Build()
	assert.Error(t, err)

	_, _, err = sqlstore.NewInsertBuilder("users", sqlstore.NewColumns().String("na-me", "x")).Build()
	assert.ErrorIs(t, err, sqlstore.ErrInvalidIdentifier)
}
