package sqlparam

import (
	"fmt"
	"time"
)

// WireType tags a bound value with the encoding the store driver should use.
type WireType int

const (
	Null WireType = iota
	Int
	Long
	Float
	Double
	Bool
	String
	Date
)

var wireTypeNames = map[WireType]string{
	Null:   "null",
	Int:    "int",
	Long:   "long",
	Float:  "float",
	Double: "double",
	Bool:   "bool",
	String: "string",
	Date:   "date",
}

// String returns the lower-case name of the wire type.
func (t WireType) String() string {
	if name, ok := wireTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("wiretype(%d)", int(t))
}

// Param is a single bind value together with its wire type.
type Param struct {
	Value any
	Type  WireType
}

// List is an immutable ordered sequence of typed bind values.
// Its length must match the number of positional placeholders in the paired query.
type List struct {
	params []Param
}

// Empty returns a list with no parameters.
func Empty() List {
	return List{}
}

// Len returns the number of parameters.
func (l List) Len() int {
	return len(l.params)
}

// At returns the parameter at position i (0-based).
func (l List) At(i int) Param {
	return l.params[i]
}

// Params returns a copy of the underlying parameters.
func (l List) Params() []Param {
	out := make([]Param, len(l.params))
	copy(out, l.params)
	return out
}

// Values returns the raw values in bind order.
func (l List) Values() []any {
	out := make([]any, len(l.params))
	for i, p := range l.params {
		out[i] = p.Value
	}
	return out
}

// WireTypes returns the wire type tags in bind order; same length as Values.
func (l List) WireTypes() []WireType {
	out := make([]WireType, len(l.params))
	for i, p := range l.params {
		out[i] = p.Type
	}
	return out
}

// Args returns values ready to pass to database/sql as variadic arguments.
// Int and Float are widened to the types database/sql drivers accept natively.
func (l List) Args() []any {
	out := make([]any, len(l.params))
	for i, p := range l.params {
		switch v := p.Value.(type) {
		case int32:
			out[i] = int64(v)
		case float32:
			out[i] = float64(v)
		default:
			out[i] = v
		}
	}
	return out
}

// Without returns a new list with the given 0-based positions removed.
// The relative order of the remaining parameters is preserved.
// Out-of-range positions are ignored.
func (l List) Without(positions ...int) List {
	if len(positions) == 0 {
		return l
	}
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		drop[p] = struct{}{}
	}
	kept := make([]Param, 0, len(l.params))
	for i, p := range l.params {
		if _, ok := drop[i]; ok {
			continue
		}
		kept = append(kept, p)
	}
	return List{params: kept}
}

// Builder appends typed values in call order. The zero value is ready to use.
type Builder struct {
	params []Param
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(v any, t WireType) *Builder {
	b.params = append(b.params, Param{Value: v, Type: t})
	return b
}

// Int appends a 32-bit integer.
func (b *Builder) Int(v int32) *Builder { return b.add(v, Int) }

// Long appends a 64-bit integer.
func (b *Builder) Long(v int64) *Builder { return b.add(v, Long) }

// Float appends a 32-bit float.
func (b *Builder) Float(v float32) *Builder { return b.add(v, Float) }

// Double appends a 64-bit float.
func (b *Builder) Double(v float64) *Builder { return b.add(v, Double) }

// Bool appends a boolean.
func (b *Builder) Bool(v bool) *Builder { return b.add(v, Bool) }

// String appends a string.
func (b *Builder) String(v string) *Builder { return b.add(v, String) }

// Date appends a timestamp.
func (b *Builder) Date(v time.Time) *Builder { return b.add(v, Date) }

// Null appends a SQL NULL. The wire type records the intended column type and
// is kept for rendering; the bound value is always nil.
func (b *Builder) Null() *Builder { return b.add(nil, Null) }

// Build returns an immutable list. The builder may keep being used afterwards
// without affecting lists already built.
func (b *Builder) Build() List {
	out := make([]Param, len(b.params))
	copy(out, b.params)
	return List{params: out}
}

// FromArgs converts a heterogeneous positional argument list into a List.
//
// Type dispatch:
//   - int8, int16, int32 -> Int
//   - int, int64 -> Long
//   - float32 -> Float
//   - float64 -> Double
//   - bool -> Bool
//   - string -> String
//   - time.Time -> Date
//   - nil -> Null
//
// Any other runtime type fails with ErrUnsupportedArgumentType.
func FromArgs(args ...any) (List, error) {
	b := &Builder{params: make([]Param, 0, len(args))}
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
			b.Null()
		case int8:
			b.Int(int32(v))
		case int16:
			b.Int(int32(v))
		case int32:
			b.Int(v)
		case int:
			b.Long(int64(v))
		case int64:
			b.Long(v)
		case float32:
			b.Float(v)
		case float64:
			b.Double(v)
		case bool:
			b.Bool(v)
		case string:
			b.String(v)
		case time.Time:
			b.Date(v)
		default:
			return List{}, &UnsupportedArgumentError{Position: i, GoType: fmt.Sprintf("%T", arg)}
		}
	}
	return List{params: b.params}, nil
}

// MustFromArgs is like FromArgs but panics on error. Intended for tests and
// package-level fixtures with literal arguments.
func MustFromArgs(args ...any) List {
	l, err := FromArgs(args...)
	if err != nil {
		panic(err)
	}
	return l
}
