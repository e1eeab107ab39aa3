package sqlstore

import (
	"fmt"
	"strings"
	"time"

	"pagequery/internal/sqlparam"
)

// Columns is an ordered list of column names with typed values, used to build
// INSERT statements without reflection.
type Columns struct {
	names  []string
	values *sqlparam.Builder
}

// NewColumns returns an empty column list.
func NewColumns() *Columns {
	return &Columns{values: sqlparam.NewBuilder()}
}

func (c *Columns) Int(name string, v int32) *Columns {
	c.names = append(c.names, name)
	c.values.Int(v)
	return c
}

func (c *Columns) Long(name string, v int64) *Columns {
	c.names = append(c.names, name)
	c.values.Long(v)
	return c
}

func (c *Columns) Float(name string, v float32) *Columns {
	c.names = append(c.names, name)
	c.values.Float(v)
	return c
}

func (c *Columns) Double(name string, v float64) *Columns {
	c.names = append(c.names, name)
	c.values.Double(v)
	return c
}

func (c *Columns) Bool(name string, v bool) *Columns {
	c.names = append(c.names, name)
	c.values.Bool(v)
	return c
}

func (c *Columns) String(name string, v string) *Columns {
	c.names = append(c.names, name)
	c.values.String(v)
	return c
}

func (c *Columns) Date(name string, v time.Time) *Columns {
	c.names = append(c.names, name)
	c.values.Date(v)
	return c
}

func (c *Columns) Null(name string) *Columns {
	c.names = append(c.names, name)
	c.values.Null()
	return c
}

// Names returns the column names in insertion order.
func (c *Columns) Names() []string {
	return append([]string(nil), c.names...)
}

// Params returns the bind values in column order.
func (c *Columns) Params() sqlparam.List {
	return c.values.Build()
}

// InsertBuilder renders a single-row INSERT statement.
type InsertBuilder struct {
	table string
	cols  *Columns
}

// NewInsertBuilder creates a builder for table.
func NewInsertBuilder(table string, cols *Columns) *InsertBuilder {
	return &InsertBuilder{table: table, cols: cols}
}

// Build returns the statement and its parameters.
//
//	INSERT INTO `users` (`id`, `name`) VALUES (?, ?)
func (b *InsertBuilder) Build() (string, sqlparam.List, error) {
	if b.cols == nil || len(b.cols.names) == 0 {
		return "", sqlparam.List{}, fmt.Errorf("insert into %q: no columns", b.table)
	}
	table, err := quoteIdent(b.table)
	if err != nil {
		return "", sqlparam.List{}, err
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	for i, name := range b.cols.names {
		col, err := quoteIdent(name)
		if err != nil {
			return "", sqlparam.List{}, err
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(col)
	}
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.TrimSuffix(strings.Repeat("?, ", len(b.cols.names)), ", "))
	sb.WriteString(")")

	return sb.String(), b.cols.Params(), nil
}

// quoteIdent backtick-quotes each dot-separated part of name.
func quoteIdent(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		if p == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
		}
		for _, r := range p {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
			}
		}
		parts[i] = "`" + p + "`"
	}
	return strings.Join(parts, "."), nil
}
