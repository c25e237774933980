package functions

import (
	"fmt"

	"github.com/vecops/vecops/aggregator"
	"github.com/vecops/vecops/column"
)

// VerticalAggFunction exposes one vertical aggregation through the
// function boundary. Its single argument is the *column.Column to reduce.
type VerticalAggFunction struct {
	*BaseFunction
	aggType aggregator.AggregateType
}

func NewVerticalAggFunction(name string, aggType aggregator.AggregateType, description string) *VerticalAggFunction {
	return &VerticalAggFunction{
		BaseFunction: NewBaseFunction(name, TypeAggregation, "vertical", description, 1, 1),
		aggType:      aggType,
	}
}

// AggregateType returns the aggregation this function dispatches to.
func (f *VerticalAggFunction) AggregateType() aggregator.AggregateType {
	return f.aggType
}

func (f *VerticalAggFunction) Validate(args []interface{}) error {
	if err := f.ValidateArgCount(args); err != nil {
		return err
	}
	if _, ok := args[0].(*column.Column); !ok {
		return fmt.Errorf("function %s expects a column argument, got %T", f.GetName(), args[0])
	}
	return nil
}

func (f *VerticalAggFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	col := args[0].(*column.Column)
	var opts aggregator.Options
	if ctx != nil {
		opts.StrictNulls = ctx.StrictNulls
	}
	return aggregator.Apply(f.aggType, col, opts)
}
