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

// Package column provides the in-memory column model used by the vertical
// aggregation engine: typed columns of rows, where each row is either null
// or a sequence of scalar values. Two physical encodings exist for sequence
// columns (variable-length List and fixed-width Array); the normalizer in
// this package converts between them so the reducers only ever see List.
package column

import "fmt"

// ElementType identifies the scalar kind stored inside a row.
type ElementType int

const (
	Int8 ElementType = iota
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	String
)

// String returns the lowercase name of the element type.
func (t ElementType) String() string {
	switch t {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case UInt8:
		return "uint8"
	case UInt16:
		return "uint16"
	case UInt32:
		return "uint32"
	case UInt64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// IsInteger reports whether the element type is a signed or unsigned integer.
func (t ElementType) IsInteger() bool {
	switch t {
	case Int8, Int16, Int32, Int64, UInt8, UInt16, UInt32, UInt64:
		return true
	default:
		return false
	}
}

// IsSigned reports whether the element type is a signed integer.
func (t ElementType) IsSigned() bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the element type is floating point.
func (t ElementType) IsFloat() bool {
	return t == Float32 || t == Float64
}

// IsNumeric reports whether the element type supports arithmetic. Vertical
// reducers only accept numeric element types.
func (t ElementType) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat()
}

// Encoding identifies the physical layout of a column.
type Encoding int

const (
	// List encodes each row as a variable-length sequence of scalars.
	List Encoding = iota
	// Array encodes each row as a sequence with one declared width shared
	// by all rows.
	Array
	// Scalar encodes each row as a single value. Scalar columns are served
	// by the element-wise function boundary, never by vertical reducers.
	Scalar
)

// String returns the lowercase name of the encoding.
func (e Encoding) String() string {
	switch e {
	case List:
		return "list"
	case Array:
		return "array"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// DataType is the declared type of a column: its encoding, the scalar kind
// of its elements and, for Array encoding, the fixed per-row width.
type DataType struct {
	Encoding Encoding
	Elem     ElementType
	Width    int
}

// IsSequence reports whether the type holds a sequence of scalars per row.
func (dt DataType) IsSequence() bool {
	return dt.Encoding == List || dt.Encoding == Array
}

// String returns a readable form such as "list[int64]" or "array[f64, 3]".
func (dt DataType) String() string {
	switch dt.Encoding {
	case List:
		return "list[" + dt.Elem.String() + "]"
	case Array:
		return fmt.Sprintf("array[%s, %d]", dt.Elem, dt.Width)
	default:
		return dt.Elem.String()
	}
}
