package aggregator

import (
	"github.com/vecops/vecops/column"
)

// Consensus is the per-call contract every present row must satisfy: the
// expected sequence width and the element type of the result. It is
// established once from the first present row, in the column's natural
// row order, and threaded explicitly through validation and reduction.
type Consensus struct {
	Length int
	Elem   column.ElementType
}

// Options configures row validation.
type Options struct {
	// StrictNulls makes a null row a hard failure instead of being
	// skipped. The default (skip) is the canonical behavior.
	StrictNulls bool
}

// EstablishConsensus walks rows in order and fixes the expected length
// from the first present row. ok is false when every row is null, in
// which case the caller short-circuits with an all-null result.
func EstablishConsensus(col *column.Column) (Consensus, bool) {
	for i := 0; i < col.Len(); i++ {
		if row, present := col.Row(i); present {
			return Consensus{Length: len(row), Elem: col.Type().Elem}, true
		}
	}
	return Consensus{}, false
}

// CollectRows returns the present rows in order, validating each against
// the consensus length. A mismatch aborts the whole aggregation with a
// length-mismatch error reporting both widths. Null rows are skipped
// silently unless Options.StrictNulls is set.
func CollectRows(col *column.Column, cons Consensus, opts Options) ([][]interface{}, error) {
	rows := make([][]interface{}, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		row, present := col.Row(i)
		if !present {
			if opts.StrictNulls {
				return nil, column.NewNullRowError(i)
			}
			continue
		}
		if len(row) != cons.Length {
			return nil, column.NewLengthMismatchError(cons.Length, len(row))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
