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

// Package aggregator implements vertical aggregation over sequence
// columns: reductions across the row dimension, position by position.
// Sum, mean, min and max collapse the column to a single result row;
// diff keeps the row count and emits row-to-row differences.
package aggregator

import (
	"fmt"

	"github.com/vecops/vecops/column"
	"github.com/vecops/vecops/logger"
)

// OutputType infers the result type of an aggregation from the input
// type alone, without touching data. Mean always promotes the element
// type to Float64; every other aggregation preserves it. The encoding
// (and declared width, for arrays) carries over unchanged.
func OutputType(aggType AggregateType, dt column.DataType) (column.DataType, error) {
	switch aggType {
	case Sum, Mean, Min, Max, Diff:
	default:
		return column.DataType{}, fmt.Errorf("unknown aggregate type: %s", aggType)
	}
	if !dt.IsSequence() {
		return column.DataType{}, column.NewTypeError("expected list or array type, got %s", dt)
	}
	if !dt.Elem.IsNumeric() {
		return column.DataType{}, column.NewTypeError("expected numeric element type, got %s", dt.Elem)
	}
	out := dt
	if aggType == Mean {
		out.Elem = column.Float64
	}
	return out, nil
}

// Apply runs one vertical aggregation over a sequence column. The input
// is never mutated; on error no partial output is returned.
func Apply(aggType AggregateType, col *column.Column, opts Options) (*column.Column, error) {
	outType, err := OutputType(aggType, col.Type())
	if err != nil {
		return nil, err
	}

	list, orig, err := column.ToList(col)
	if err != nil {
		return nil, err
	}

	// Zero rows is a defined outcome: an empty column of the output type.
	if list.Len() == 0 {
		return emptyOfType(col.Name(), outType), nil
	}

	cons, consOK := EstablishConsensus(list)
	if !consOK {
		if opts.StrictNulls {
			return nil, column.NewNullRowError(0)
		}
		logger.Debug("aggregate %s on %q: no present rows, returning all-null result", aggType, col.Name())
		return allNullResult(aggType, col.Name(), outType, orig, list.Len())
	}

	rows, err := CollectRows(list, cons, opts)
	if err != nil {
		return nil, err
	}

	var out *column.Column
	if aggType == Diff {
		out = applyDiff(list, cons)
	} else {
		agg := CreateBuiltinAggregator(aggType, cons.Length)
		for _, row := range rows {
			agg.Add(row)
		}
		out = column.NewList(col.Name(), outType.Elem)
		out.AppendRow(column.CastRow(agg.Result(), outType.Elem)...)
	}
	return column.FromList(out, orig)
}

// emptyOfType builds a zero-row column of the given type.
func emptyOfType(name string, dt column.DataType) *column.Column {
	if dt.Encoding == column.Array {
		return column.NewArray(name, dt.Elem, dt.Width)
	}
	return column.NewList(name, dt.Elem)
}

// allNullResult handles the no-consensus case: a single null aggregate
// row for the collapsing reducers, or the input's full row count of
// nulls for diff.
func allNullResult(aggType AggregateType, name string, outType, orig column.DataType, rowCount int) (*column.Column, error) {
	out := column.NewList(name, outType.Elem)
	n := 1
	if aggType == Diff {
		n = rowCount
	}
	for i := 0; i < n; i++ {
		out.AppendNullRow()
	}
	return column.FromList(out, orig)
}
