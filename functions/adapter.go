package functions

import (
	"github.com/vecops/vecops/column"
)

// ApplyScalar maps an element-wise function over every scalar of a
// column, preserving null rows and inner nulls. The output keeps the
// input's data type; element-wise collaborators are type-preserving.
func ApplyScalar(fn Function, col *column.Column) (*column.Column, error) {
	out := cloneEmpty(col)
	ctx := &FunctionContext{}
	for i := 0; i < col.Len(); i++ {
		row, present := col.Row(i)
		if !present {
			out.AppendNullRow()
			continue
		}
		mapped := make([]interface{}, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			args := []interface{}{v}
			if err := fn.Validate(args); err != nil {
				return nil, err
			}
			res, err := fn.Execute(ctx, args)
			if err != nil {
				return nil, err
			}
			mapped[j] = res
		}
		out.AppendRow(mapped...)
	}
	return out, nil
}

func cloneEmpty(col *column.Column) *column.Column {
	dt := col.Type()
	switch dt.Encoding {
	case column.Array:
		return column.NewArray(col.Name(), dt.Elem, dt.Width)
	case column.List:
		return column.NewList(col.Name(), dt.Elem)
	default:
		return column.NewScalar(col.Name(), dt.Elem)
	}
}
