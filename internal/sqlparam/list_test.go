package sqlparam_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagequery/internal/sqlparam"
)

func TestFromArgs_TypeDispatch(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		arg      any
		wantType sqlparam.WireType
		wantVal  any
	}{
		{name: "int8", arg: int8(7), wantType: sqlparam.Int, wantVal: int32(7)},
		{name: "int16", arg: int16(7), wantType: sqlparam.Int, wantVal: int32(7)},
		{name: "int32", arg: int32(7), wantType: sqlparam.Int, wantVal: int32(7)},
		{name: "int", arg: 7, wantType: sqlparam.Long, wantVal: int64(7)},
		{name: "int64", arg: int64(7), wantType: sqlparam.Long, wantVal: int64(7)},
		{name: "float32", arg: float32(1.5), wantType: sqlparam.Float, wantVal: float32(1.5)},
		{name: "float64", arg: 1.5, wantType: sqlparam.Double, wantVal: 1.5},
		{name: "bool", arg: true, wantType: sqlparam.Bool, wantVal: true},
		{name: "string", arg: "go", wantType: sqlparam.String, wantVal: "go"},
		{name: "time", arg: now, wantType: sqlparam.Date, wantVal: now},
		{name: "nil", arg: nil, wantType: sqlparam.Null, wantVal: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, err := sqlparam.FromArgs(tt.arg)
			require.NoError(t, err)
			require.Equal(t, 1, list.Len())
			assert.Equal(t, tt.wantType, list.At(0).Type)
			assert.Equal(t, tt.wantVal, list.At(0).Value)
		})
	}
}

func TestFromArgs_UnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := sqlparam.FromArgs(int64(1), []byte("raw"), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sqlparam.ErrUnsupportedArgumentType))

	var argErr *sqlparam.UnsupportedArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 1, argErr.Position)
	assert.Equal(t, "[]uint8", argErr.GoType)
}

func TestFromArgs_PointerIsUnsupported(t *testing.T) {
	t.Parallel()

	v := int64(3)
	_, err := sqlparam.FromArgs(&v)
	assert.ErrorIs(t, err, sqlparam.ErrUnsupportedArgumentType)
}

func TestList_ValuesAndWireTypesAlign(t *testing.T) {
	t.Parallel()

	list := sqlparam.NewBuilder().
		Long(18).
		String("eng").
		Bool(true).
		Null().
		Build()

	assert.Equal(t, []any{int64(18), "eng", true, nil}, list.Values())
	assert.Equal(t, []sqlparam.WireType{sqlparam.Long, sqlparam.String, sqlparam.Bool, sqlparam.Null}, list.WireTypes())
	assert.Len(t, list.WireTypes(), len(list.Values()))
}

func TestList_ArgsWidensNarrowTypes(t *testing.T) {
	t.Parallel()

	list := sqlparam.NewBuilder().Int(5).Float(2.5).Long(9).Build()

	assert.Equal(t, []any{int64(5), float64(2.5), int64(9)}, list.Args())
}

func TestList_Without(t *testing.T) {
	t.Parallel()

	list := sqlparam.MustFromArgs("a", "b", "c", "d")

	tests := []struct {
		name      string
		positions []int
		want      []any
	}{
		{name: "none", positions: nil, want: []any{"a", "b", "c", "d"}},
		{name: "middle", positions: []int{1}, want: []any{"a", "c", "d"}},
		{name: "head and tail", positions: []int{0, 3}, want: []any{"b", "c"}},
		{name: "out of range ignored", positions: []int{9}, want: []any{"a", "b", "c", "d"}},
		{name: "all", positions: []int{0, 1, 2, 3}, want: []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, list.Without(tt.positions...).Values())
		})
	}

	// original is untouched
	assert.Equal(t, 4, list.Len())
}

func TestBuilder_BuildIsImmutable(t *testing.T) {
	t.Parallel()

	b := sqlparam.NewBuilder().Long(1)
	first := b.Build()
	b.Long(2)
	second := b.Build()

	assert.Equal(t, 1, first.Len())
	assert.Equal(t, 2, second.Len())

	params := first.Params()
	params[0].Value = int64(99)
	assert.Equal(t, int64(1), first.At(0).Value)
}

func TestWireType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "date", sqlparam.Date.String())
	assert.Equal(t, "null", sqlparam.Null.String())
	assert.Equal(t, "wiretype(42)", sqlparam.WireType(42).String())
}
