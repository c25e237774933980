/*
 * Copyright 2025 The VecOps Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vecops

import (
	"fmt"

	"github.com/vecops/vecops/aggregator"
	"github.com/vecops/vecops/column"
	"github.com/vecops/vecops/functions"
	"github.com/vecops/vecops/logger"
)

// VecOps is the engine facade. It dispatches operations by name through
// the function registry: vertical aggregations receive the whole column,
// element-wise collaborators are mapped over every scalar.
//
// Usage:
//
//	engine := vecops.New()
//	col := column.NewList("a", column.Int64)
//	col.AppendRow(int64(1), int64(2))
//	col.AppendRow(int64(3), int64(4))
//	out, err := engine.Execute("sum", col)
type VecOps struct {
	strictNulls bool
}

// New creates an engine, applying the given options.
func New(options ...Option) *VecOps {
	v := &VecOps{}
	for _, option := range options {
		option(v)
	}
	return v
}

// Execute runs the named operation over a column. Unknown names are an
// error; the set of names is the function registry, so custom functions
// registered through the functions package are reachable here too.
func (v *VecOps) Execute(name string, col *column.Column) (*column.Column, error) {
	fn, ok := functions.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown operation: %s", name)
	}
	logger.Debug("execute %s on column %q (%d rows)", name, col.Name(), col.Len())

	if fn.GetType() != functions.TypeAggregation {
		return functions.ApplyScalar(fn, col)
	}

	args := []interface{}{col}
	if err := fn.Validate(args); err != nil {
		return nil, err
	}
	ctx := &functions.FunctionContext{StrictNulls: v.strictNulls}
	res, err := fn.Execute(ctx, args)
	if err != nil {
		return nil, err
	}
	out, ok := res.(*column.Column)
	if !ok {
		return nil, fmt.Errorf("operation %s did not produce a column", name)
	}
	return out, nil
}

// OutputType infers the result type of the named operation from the
// input type alone, so callers can plan downstream work before running
// the reduction. Element-wise collaborators preserve the input type.
func (v *VecOps) OutputType(name string, dt column.DataType) (column.DataType, error) {
	fn, ok := functions.Get(name)
	if !ok {
		return column.DataType{}, fmt.Errorf("unknown operation: %s", name)
	}
	if vf, ok := fn.(*functions.VerticalAggFunction); ok {
		return aggregator.OutputType(vf.AggregateType(), dt)
	}
	return dt, nil
}

// Sum aggregates a sequence column to one row of per-position sums.
// Inner nulls count as zero; null rows are skipped.
func Sum(col *column.Column) (*column.Column, error) {
	return aggregator.Apply(aggregator.Sum, col, aggregator.Options{})
}

// Mean aggregates a sequence column to one row of per-position means,
// dividing each position by its own count of non-null contributors.
// The result element type is always Float64.
func Mean(col *column.Column) (*column.Column, error) {
	return aggregator.Apply(aggregator.Mean, col, aggregator.Options{})
}

// Min aggregates a sequence column to one row of per-position minimums,
// ignoring nulls. A position that is null in every row stays null.
func Min(col *column.Column) (*column.Column, error) {
	return aggregator.Apply(aggregator.Min, col, aggregator.Options{})
}

// Max aggregates a sequence column to one row of per-position maximums,
// ignoring nulls. A position that is null in every row stays null.
func Max(col *column.Column) (*column.Column, error) {
	return aggregator.Apply(aggregator.Max, col, aggregator.Options{})
}

// Diff produces one row per input row holding the element-wise
// difference from the previous row. The first row is always null.
func Diff(col *column.Column) (*column.Column, error) {
	return aggregator.Apply(aggregator.Diff, col, aggregator.Options{})
}
