package aggregator

import (
	"github.com/vecops/vecops/column"
)

// applyDiff produces one output row per input row: row 0 is null, and
// row i is row[i] - row[i-1] element-wise. A pair with a null member
// yields a null row; an inner null on either side yields an inner null.
// Rows are assumed already validated against the consensus.
func applyDiff(list *column.Column, cons Consensus) *column.Column {
	out := column.NewList(list.Name(), list.Type().Elem)

	// No predecessor for the first row.
	out.AppendNullRow()

	for i := 1; i < list.Len(); i++ {
		prev, prevOK := list.Row(i - 1)
		curr, currOK := list.Row(i)
		if !prevOK || !currOK {
			out.AppendNullRow()
			continue
		}
		diff := make([]interface{}, cons.Length)
		for j := 0; j < cons.Length; j++ {
			pf, pok := column.ToFloat64(prev[j])
			cf, cok := column.ToFloat64(curr[j])
			if pok && cok {
				diff[j] = column.CastValue(cf-pf, cons.Elem)
			}
		}
		out.AppendRow(diff...)
	}
	return out
}
