package vecops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vecops/vecops/column"
	"github.com/vecops/vecops/functions"
	"github.com/vecops/vecops/logger"
)

func sampleColumn() *column.Column {
	col := column.NewList("a", column.Int64)
	col.AppendRow(int64(1), int64(2))
	col.AppendRow(int64(3), int64(4))
	col.AppendNullRow()
	col.AppendRow(int64(5), int64(6))
	return col
}

func TestExecuteAggregations(t *testing.T) {
	engine := New(WithDiscardLogger())

	out, err := engine.Execute("sum", sampleColumn())
	require.NoError(t, err)
	row, _ := out.Row(0)
	assert.Equal(t, []interface{}{int64(9), int64(12)}, row)

	out, err = engine.Execute("mean", sampleColumn())
	require.NoError(t, err)
	row, _ = out.Row(0)
	assert.Equal(t, []interface{}{3.0, 4.0}, row)

	out, err = engine.Execute("diff", sampleColumn())
	require.NoError(t, err)
	assert.Equal(t, 4, out.Len())
	assert.True(t, out.IsNull(0))
}

func TestExecuteAvgAlias(t *testing.T) {
	engine := New()

	mean, err := engine.Execute("mean", sampleColumn())
	require.NoError(t, err)
	avg, err := engine.Execute("avg", sampleColumn())
	require.NoError(t, err)
	assert.True(t, mean.Equal(avg))
}

func TestExecuteUnknownOperation(t *testing.T) {
	engine := New()

	_, err := engine.Execute("median", sampleColumn())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestExecuteElementWiseFunction(t *testing.T) {
	engine := New()

	col := column.NewList("a", column.Int64)
	col.AppendRow(int64(-1), int64(2))
	col.AppendNullRow()

	out, err := engine.Execute("abs", col)
	require.NoError(t, err)
	row, _ := out.Row(0)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, row)
	assert.True(t, out.IsNull(1))
}

func TestStrictNullsOption(t *testing.T) {
	strict := New(WithStrictNulls())
	_, err := strict.Execute("sum", sampleColumn())
	require.Error(t, err)
	assert.True(t, column.IsNullRowError(err))

	lenient := New()
	_, err = lenient.Execute("sum", sampleColumn())
	assert.NoError(t, err)
}

func TestOutputTypeInference(t *testing.T) {
	engine := New()
	listInt := column.DataType{Encoding: column.List, Elem: column.Int64}

	dt, err := engine.OutputType("sum", listInt)
	require.NoError(t, err)
	assert.Equal(t, listInt, dt)

	dt, err = engine.OutputType("avg", listInt)
	require.NoError(t, err)
	assert.Equal(t, column.DataType{Encoding: column.List, Elem: column.Float64}, dt)

	scalarStr := column.DataType{Encoding: column.Scalar, Elem: column.String}
	dt, err = engine.OutputType("pig_latin", scalarStr)
	require.NoError(t, err)
	assert.Equal(t, scalarStr, dt, "element-wise functions preserve the input type")

	_, err = engine.OutputType("sum", scalarStr)
	assert.Error(t, err)

	_, err = engine.OutputType("median", listInt)
	assert.Error(t, err)
}

func TestPackageLevelOperations(t *testing.T) {
	out, err := Sum(sampleColumn())
	require.NoError(t, err)
	row, _ := out.Row(0)
	assert.Equal(t, []interface{}{int64(9), int64(12)}, row)

	out, err = Min(sampleColumn())
	require.NoError(t, err)
	row, _ = out.Row(0)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, row)

	out, err = Max(sampleColumn())
	require.NoError(t, err)
	row, _ = out.Row(0)
	assert.Equal(t, []interface{}{int64(5), int64(6)}, row)

	out, err = Mean(sampleColumn())
	require.NoError(t, err)
	assert.Equal(t, column.Float64, out.Type().Elem)

	out, err = Diff(sampleColumn())
	require.NoError(t, err)
	assert.Equal(t, 4, out.Len())
}

func TestCustomRegisteredFunctionReachableFromEngine(t *testing.T) {
	require.NoError(t, functions.RegisterExprFunction("half", "x / 2.0"))

	engine := New()
	col := column.NewList("a", column.Float64)
	col.AppendRow(3.0, 5.0)

	out, err := engine.Execute("half", col)
	require.NoError(t, err)
	row, _ := out.Row(0)
	assert.Equal(t, []interface{}{1.5, 2.5}, row)
}

func TestWithLogOptions(t *testing.T) {
	prev := logger.GetDefault()
	defer logger.SetDefault(prev)

	New(WithLogLevel(logger.ERROR))
	New(WithLogger(logger.NewDiscardLogger()))
}
