package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnBasics(t *testing.T) {
	col := NewList("a", Int64)
	col.AppendRow(int64(1), int64(2))
	col.AppendNullRow()
	col.AppendRow(int64(3), nil)

	assert.Equal(t, "a", col.Name())
	assert.Equal(t, DataType{Encoding: List, Elem: Int64}, col.Type())
	assert.Equal(t, 3, col.Len())

	row, ok := col.Row(0)
	require.True(t, ok)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, row)

	_, ok = col.Row(1)
	assert.False(t, ok)
	assert.True(t, col.IsNull(1))

	row, ok = col.Row(2)
	require.True(t, ok)
	assert.Nil(t, row[1], "inner null must stay distinct from row nullability")
	assert.False(t, col.IsNull(2))
}

func TestColumnEqual(t *testing.T) {
	build := func() *Column {
		c := NewList("a", Int64)
		c.AppendRow(int64(1), int64(2))
		c.AppendNullRow()
		return c
	}

	assert.True(t, build().Equal(build()))

	other := build()
	other.AppendRow(int64(3), int64(4))
	assert.False(t, build().Equal(other))

	renamed := NewList("b", Int64)
	renamed.AppendRow(int64(1), int64(2))
	renamed.AppendNullRow()
	assert.False(t, build().Equal(renamed))

	retyped := NewList("a", Int32)
	retyped.AppendRow(int64(1), int64(2))
	retyped.AppendNullRow()
	assert.False(t, build().Equal(retyped))

	assert.False(t, build().Equal(nil))
}

func TestElementTypePredicates(t *testing.T) {
	assert.True(t, Int8.IsInteger())
	assert.True(t, Int8.IsSigned())
	assert.True(t, UInt64.IsInteger())
	assert.False(t, UInt64.IsSigned())
	assert.True(t, Float32.IsFloat())
	assert.True(t, Float64.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.Equal(t, "float64", Float64.String())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "list[int64]", DataType{Encoding: List, Elem: Int64}.String())
	assert.Equal(t, "array[float32, 3]", DataType{Encoding: Array, Elem: Float32, Width: 3}.String())
	assert.Equal(t, "string", DataType{Encoding: Scalar, Elem: String}.String())
}

func TestColumnString(t *testing.T) {
	col := NewList("a", Int64)
	col.AppendRow(int64(1), nil)
	col.AppendNullRow()
	assert.Equal(t, "a: list[int64] [[1 null], null]", col.String())
}
