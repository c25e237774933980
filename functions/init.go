package functions

import (
	"github.com/vecops/vecops/aggregator"
)

func init() {
	registerBuiltinFunctions()
}

func registerBuiltinFunctions() {
	// Vertical aggregations. avg is an alias of mean.
	_ = Register(NewVerticalAggFunction("sum", aggregator.Sum, "Vertical sum across rows at each position"))
	_ = Register(NewVerticalAggFunction("mean", aggregator.Mean, "Vertical mean across rows at each position"))
	_ = Register(NewVerticalAggFunction("avg", aggregator.Mean, "Alias of mean"))
	_ = Register(NewVerticalAggFunction("min", aggregator.Min, "Vertical minimum across rows at each position"))
	_ = Register(NewVerticalAggFunction("max", aggregator.Max, "Vertical maximum across rows at each position"))
	_ = Register(NewVerticalAggFunction("diff", aggregator.Diff, "Row-to-row difference at each position"))

	// Element-wise collaborators.
	_ = Register(NewNoopFunction())
	_ = Register(NewAbsFunction())
	_ = Register(NewPigLatinFunction())
}
