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

package column

import (
	"fmt"
	"strings"
)

// Column is an ordered sequence of rows. Each row is either null (absent)
// or a slice of scalar values; a nil element inside a present row is an
// inner null, distinct from the row itself being null.
//
// A Column is append-only. Callers must not mutate slices returned by Row.
type Column struct {
	name  string
	dtype DataType
	rows  [][]interface{}
}

// NewList creates an empty variable-length sequence column.
func NewList(name string, elem ElementType) *Column {
	return &Column{
		name:  name,
		dtype: DataType{Encoding: List, Elem: elem},
	}
}

// NewArray creates an empty fixed-width sequence column. Every present row
// appended to it must carry exactly width elements; the invariant is
// enforced when the column is normalized for aggregation.
func NewArray(name string, elem ElementType, width int) *Column {
	return &Column{
		name:  name,
		dtype: DataType{Encoding: Array, Elem: elem, Width: width},
	}
}

// NewScalar creates an empty single-value-per-row column. Scalar columns
// feed the element-wise function boundary, not the vertical reducers.
func NewScalar(name string, elem ElementType) *Column {
	return &Column{
		name:  name,
		dtype: DataType{Encoding: Scalar, Elem: elem},
	}
}

// newWithType creates an empty column with an explicit data type.
func newWithType(name string, dtype DataType) *Column {
	return &Column{name: name, dtype: dtype}
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Type returns the declared data type.
func (c *Column) Type() DataType {
	return c.dtype
}

// Len returns the number of rows, null rows included.
func (c *Column) Len() int {
	return len(c.rows)
}

// AppendRow appends a present row. For Scalar columns pass a single value.
// A nil element marks an inner null at that position.
func (c *Column) AppendRow(values ...interface{}) {
	if values == nil {
		// Distinguish AppendRow() from AppendNullRow: an empty present row
		// is still present.
		values = []interface{}{}
	}
	c.rows = append(c.rows, values)
}

// AppendNullRow appends a null (absent) row.
func (c *Column) AppendNullRow() {
	c.rows = append(c.rows, nil)
}

// Row returns the values of row i and whether the row is present.
// The returned slice is shared with the column and must not be mutated.
func (c *Column) Row(i int) ([]interface{}, bool) {
	r := c.rows[i]
	if r == nil {
		return nil, false
	}
	return r, true
}

// IsNull reports whether row i is a null row.
func (c *Column) IsNull(i int) bool {
	return c.rows[i] == nil
}

// Equal reports whether two columns have the same name, type and rows.
// Scalar comparison uses ==, so numeric values only compare equal when
// they also share the same Go type.
func (c *Column) Equal(other *Column) bool {
	if other == nil || c.name != other.name || c.dtype != other.dtype || len(c.rows) != len(other.rows) {
		return false
	}
	for i, row := range c.rows {
		o := other.rows[i]
		if (row == nil) != (o == nil) {
			return false
		}
		if row == nil {
			continue
		}
		if len(row) != len(o) {
			return false
		}
		for j, v := range row {
			if v != o[j] {
				return false
			}
		}
	}
	return true
}

// String renders the column for logs and debugging.
func (c *Column) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s [", c.name, c.dtype)
	for i, row := range c.rows {
		if i > 0 {
			b.WriteString(", ")
		}
		if row == nil {
			b.WriteString("null")
			continue
		}
		b.WriteString("[")
		for j, v := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			if v == nil {
				b.WriteString("null")
			} else {
				fmt.Fprintf(&b, "%v", v)
			}
		}
		b.WriteString("]")
	}
	b.WriteString("]")
	return b.String()
}
