package sqlstore

import (
	"database/sql"
	"fmt"

	"pagequery/internal/repository"
)

// rowsCursor adapts *sql.Rows to repository.Cursor. Each row is scanned into
// driver values and exposed as a repository.ValueRow.
type rowsCursor struct {
	rows    *sql.Rows
	ncols   int
	current repository.ValueRow
	err     error
	closed  bool
}

func newRowsCursor(rows *sql.Rows) *rowsCursor {
	c := &rowsCursor{rows: rows, ncols: -1}
	return c
}

func (c *rowsCursor) Next() bool {
	if c.closed || c.err != nil {
		return false
	}
	if !c.rows.Next() {
		c.current = nil
		return false
	}
	if c.ncols < 0 {
		cols, err := c.rows.Columns()
		if err != nil {
			c.err = fmt.Errorf("columns: %w", err)
			return false
		}
		c.ncols = len(cols)
	}

	values := make([]any, c.ncols)
	dest := make([]any, c.ncols)
	for i := range values {
		dest[i] = &values[i]
	}
	if err := c.rows.Scan(dest...); err != nil {
		c.err = fmt.Errorf("scan: %w", err)
		c.current = nil
		return false
	}
	c.current = repository.NewValueRow(values)
	return true
}

func (c *rowsCursor) Row() repository.Row {
	return c.current
}

func (c *rowsCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

func (c *rowsCursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.rows.Close()
}
