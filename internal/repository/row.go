package repository

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// timeLayouts are tried in order when a temporal column arrives as text.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02",
}

// ValueRow is a Row over already-scanned driver values.
type ValueRow []any

// NewValueRow wraps values in a Row. The slice is used as is.
func NewValueRow(values []any) ValueRow {
	return ValueRow(values)
}

func (r ValueRow) Len() int { return len(r) }

func (r ValueRow) Value(i int) any {
	if i < 0 || i >= len(r) {
		return nil
	}
	return r[i]
}

func (r ValueRow) IsNull(i int) bool {
	return r.Value(i) == nil
}

func (r ValueRow) get(i int, want string) (any, error) {
	if i < 0 || i >= len(r) {
		return nil, &RowMappingError{Column: i, Want: want, Got: "missing column"}
	}
	if r[i] == nil {
		return nil, &RowMappingError{Column: i, Want: want, Got: "NULL"}
	}
	return r[i], nil
}

func mismatch(i int, want string, v any) error {
	return &RowMappingError{Column: i, Want: want, Got: fmt.Sprintf("%T", v)}
}

func (r ValueRow) Int64(i int) (int64, error) {
	v, err := r.get(i, "int64")
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, mismatch(i, "int64", v)
		}
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, mismatch(i, "int64", v)
		}
		return int64(x), nil
	case []byte:
		return parseInt(i, string(x))
	case string:
		return parseInt(i, x)
	default:
		return 0, mismatch(i, "int64", v)
	}
}

func parseInt(i int, s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &RowMappingError{Column: i, Want: "int64", Got: strconv.Quote(s)}
	}
	return n, nil
}

func (r ValueRow) Int(i int) (int32, error) {
	n, err := r.Int64(i)
	if err != nil {
		return 0, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, &RowMappingError{Column: i, Want: "int32", Got: strconv.FormatInt(n, 10)}
	}
	return int32(n), nil
}

func (r ValueRow) Float64(i int) (float64, error) {
	v, err := r.get(i, "float64")
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case []byte:
		return parseFloat(i, string(x))
	case string:
		return parseFloat(i, x)
	default:
		return 0, mismatch(i, "float64", v)
	}
}

func parseFloat(i int, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &RowMappingError{Column: i, Want: "float64", Got: strconv.Quote(s)}
	}
	return f, nil
}

func (r ValueRow) Bool(i int) (bool, error) {
	v, err := r.get(i, "bool")
	if err != nil {
		return false, err
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case int64:
		return x != 0, nil
	case int:
		return x != 0, nil
	case []byte:
		return parseBool(i, string(x))
	case string:
		return parseBool(i, x)
	default:
		return false, mismatch(i, "bool", v)
	}
}

func parseBool(i int, s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, &RowMappingError{Column: i, Want: "bool", Got: strconv.Quote(s)}
	}
	return b, nil
}

func (r ValueRow) String(i int) (string, error) {
	v, err := r.get(i, "string")
	if err != nil {
		return "", err
	}
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(x), nil
	case time.Time:
		return x.Format(time.RFC3339Nano), nil
	default:
		return "", mismatch(i, "string", v)
	}
}

func (r ValueRow) Time(i int) (time.Time, error) {
	v, err := r.get(i, "time")
	if err != nil {
		return time.Time{}, err
	}
	var s string
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case []byte:
		s = string(x)
	case string:
		s = x
	default:
		return time.Time{}, mismatch(i, "time", v)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &RowMappingError{Column: i, Want: "time", Got: strconv.Quote(s)}
}

// SliceCursor is a Cursor over rows held in memory.
type SliceCursor struct {
	rows   [][]any
	pos    int
	err    error
	closed bool
}

// NewSliceCursor returns a cursor over rows. If err is non-nil it is reported
// by Err once the rows are exhausted, mimicking a failure mid-stream.
func NewSliceCursor(rows [][]any, err error) *SliceCursor {
	return &SliceCursor{rows: rows, pos: -1, err: err}
}

func (c *SliceCursor) Next() bool {
	if c.closed || c.pos+1 >= len(c.rows) {
		c.pos = len(c.rows)
		return false
	}
	c.pos++
	return true
}

func (c *SliceCursor) Row() Row {
	if c.pos < 0 || c.pos >= len(c.rows) {
		return ValueRow(nil)
	}
	return ValueRow(c.rows[c.pos])
}

func (c *SliceCursor) Err() error {
	if c.pos >= len(c.rows) {
		return c.err
	}
	return nil
}

func (c *SliceCursor) Close() error {
	c.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (c *SliceCursor) Closed() bool {
	return c.closed
}
