package functions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecops/vecops/column"
)

func TestRegistryLookup(t *testing.T) {
	for _, name := range []string{"sum", "mean", "avg", "min", "max", "diff", "noop", "abs", "pig_latin"} {
		fn, ok := Get(name)
		require.True(t, ok, "builtin %s must be registered", name)
		assert.Equal(t, name, fn.GetName())
	}

	fn, ok := Get("SUM")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "sum", fn.GetName())

	_, ok = Get("median")
	assert.False(t, ok)
}

func TestRegisterDuplicateFails(t *testing.T) {
	err := Register(NewNoopFunction())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestGetByType(t *testing.T) {
	aggs := GetByType(TypeAggregation)
	names := make(map[string]bool)
	for _, fn := range aggs {
		names[fn.GetName()] = true
	}
	for _, want := range []string{"sum", "mean", "avg", "min", "max", "diff"} {
		assert.True(t, names[want], "aggregation list must contain %s", want)
	}
}

func TestNoopFunction(t *testing.T) {
	fn := NewNoopFunction()
	require.NoError(t, fn.Validate([]interface{}{int64(1)}))

	out, err := fn.Execute(nil, []interface{}{int64(42)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), out)

	assert.Error(t, fn.Validate([]interface{}{}))
	assert.Error(t, fn.Validate([]interface{}{1, 2}))
}

func TestAbsFunctionPreservesIntegers(t *testing.T) {
	fn := NewAbsFunction()

	out, err := fn.Execute(nil, []interface{}{int64(-7)})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out)

	out, err = fn.Execute(nil, []interface{}{-1.5})
	require.NoError(t, err)
	assert.Equal(t, 1.5, out)

	_, err = fn.Execute(nil, []interface{}{"abc"})
	assert.Error(t, err)
}

func TestPigLatinFunction(t *testing.T) {
	fn := NewPigLatinFunction()

	out, err := fn.Execute(nil, []interface{}{"hello"})
	require.NoError(t, err)
	assert.Equal(t, "ellohay", out)

	out, err = fn.Execute(nil, []interface{}{"hello everybody"})
	require.NoError(t, err)
	assert.Equal(t, "ellohay verybodyeay", out)

	out, err = fn.Execute(nil, []interface{}{""})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestApplyScalarPreservesNulls(t *testing.T) {
	col := column.NewList("a", column.Int64)
	col.AppendRow(int64(-1), nil)
	col.AppendNullRow()
	col.AppendRow(int64(2), int64(-3))

	fn, _ := Get("abs")
	out, err := ApplyScalar(fn, col)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	assert.Equal(t, col.Type(), out.Type())

	row, _ := out.Row(0)
	assert.Equal(t, int64(1), row[0])
	assert.Nil(t, row[1])

	assert.True(t, out.IsNull(1))

	row, _ = out.Row(2)
	assert.Equal(t, []interface{}{int64(2), int64(3)}, row)
}

func TestApplyScalarOnScalarColumn(t *testing.T) {
	col := column.NewScalar("c", column.String)
	col.AppendRow("hello")
	col.AppendNullRow()
	col.AppendRow("world")

	fn, _ := Get("pig_latin")
	out, err := ApplyScalar(fn, col)
	require.NoError(t, err)

	row, _ := out.Row(0)
	assert.Equal(t, "ellohay", row[0])
	assert.True(t, out.IsNull(1))
	row, _ = out.Row(2)
	assert.Equal(t, "orldway", row[0])
}

func TestVerticalAggFunctionValidatesArgument(t *testing.T) {
	fn, ok := Get("sum")
	require.True(t, ok)

	assert.Error(t, fn.Validate([]interface{}{"not a column"}))
	assert.Error(t, fn.Validate([]interface{}{}))

	col := column.NewList("a", column.Int64)
	assert.NoError(t, fn.Validate([]interface{}{col}))
}

func TestVerticalAggFunctionExecute(t *testing.T) {
	col := column.NewList("a", column.Int64)
	col.AppendRow(int64(1), int64(2))
	col.AppendRow(int64(3), int64(4))

	fn, _ := Get("sum")
	res, err := fn.Execute(&FunctionContext{}, []interface{}{col})
	require.NoError(t, err)

	out := res.(*column.Column)
	row, _ := out.Row(0)
	assert.Equal(t, []interface{}{int64(4), int64(6)}, row)
}
