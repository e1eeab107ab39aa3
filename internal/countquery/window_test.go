package countquery_test

import (
	"testing"

	"pagequery/internal/countquery"
)

func TestAppendWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		query  string
		offset int
		size   int
		want   string
	}{
		{
			name:   "no terminator",
			query:  "SELECT id FROM users",
			offset: 0,
			size:   20,
			want:   "SELECT id FROM users LIMIT 0,20;",
		},
		{
			name:   "terminator moved after clause",
			query:  "SELECT id FROM users ORDER BY id;",
			offset: 40,
			size:   10,
			want:   "SELECT id FROM users ORDER BY id LIMIT 40,10;",
		},
		{
			name:   "surrounding whitespace",
			query:  "  SELECT id FROM users ; \n",
			offset: 5,
			size:   5,
			want:   "SELECT id FROM users LIMIT 5,5;",
		},
		{
			name:   "placeholders untouched",
			query:  "SELECT id FROM users WHERE age > ?",
			offset: 10,
			size:   2,
			want:   "SELECT id FROM users WHERE age > ? LIMIT 10,2;",
		},
		{
			name:   "trailing line comment",
			query:  "SELECT id FROM users -- newest first",
			offset: 0,
			size:   3,
			want:   "SELECT id FROM users LIMIT 0,3;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := countquery.AppendWindow(tt.query, tt.offset, tt.size)
			if got != tt.want {
				t.Errorf("AppendWindow(%q, %d, %d) = %q, want %q", tt.query, tt.offset, tt.size, got, tt.want)
			}
		})
	}
}
