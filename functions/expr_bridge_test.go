package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecops/vecops/column"
)

func TestExprFunctionExecute(t *testing.T) {
	fn, err := NewExprFunction("double", "x * 2.0")
	require.NoError(t, err)

	out, err := fn.Execute(nil, []interface{}{1.5})
	require.NoError(t, err)
	assert.Equal(t, 3.0, out)
}

func TestExprFunctionCompileError(t *testing.T) {
	_, err := NewExprFunction("bad", "x +")
	assert.Error(t, err)
}

func TestRegisterExprFunction(t *testing.T) {
	require.NoError(t, RegisterExprFunction("negate", "-x"))

	fn, ok := Get("negate")
	require.True(t, ok)
	assert.Equal(t, TypeCustom, fn.GetType())

	col := column.NewList("a", column.Float64)
	col.AppendRow(1.5, nil)
	col.AppendNullRow()

	out, err := ApplyScalar(fn, col)
	require.NoError(t, err)

	row, _ := out.Row(0)
	assert.Equal(t, -1.5, row[0])
	assert.Nil(t, row[1])
	assert.True(t, out.IsNull(1))
}
