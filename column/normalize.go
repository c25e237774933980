package column

// ToList normalizes a sequence column to the List encoding used by the
// reducers and returns the original data type so the result can be wrapped
// back on output. List columns pass through unchanged. Array columns are
// unwrapped after checking each present row against the declared width.
// Any other encoding is a type error.
func ToList(col *Column) (*Column, DataType, error) {
	orig := col.Type()
	switch orig.Encoding {
	case List:
		return col, orig, nil
	case Array:
		out := NewList(col.Name(), orig.Elem)
		for i := 0; i < col.Len(); i++ {
			row, ok := col.Row(i)
			if !ok {
				out.AppendNullRow()
				continue
			}
			if len(row) != orig.Width {
				return nil, orig, NewLengthMismatchError(orig.Width, len(row))
			}
			out.AppendRow(row...)
		}
		return out, orig, nil
	default:
		return nil, orig, NewTypeError("expected list or array type, got %s", orig)
	}
}

// FromList wraps a List column back into the original encoding. When the
// original was Array the width is re-derived from the output data (first
// present row); a column with no present rows falls back to the original
// declared width. The element type of col is kept as-is, since operations
// such as mean change it.
func FromList(col *Column, original DataType) (*Column, error) {
	if original.Encoding != Array {
		return col, nil
	}
	width := original.Width
	for i := 0; i < col.Len(); i++ {
		if row, ok := col.Row(i); ok {
			width = len(row)
			break
		}
	}
	dtype := DataType{Encoding: Array, Elem: col.Type().Elem, Width: width}
	out := newWithType(col.Name(), dtype)
	for i := 0; i < col.Len(); i++ {
		row, ok := col.Row(i)
		if !ok {
			out.AppendNullRow()
			continue
		}
		if len(row) != width {
			return nil, NewLengthMismatchError(width, len(row))
		}
		out.AppendRow(row...)
	}
	return out, nil
}
