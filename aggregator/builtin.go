package aggregator

import (
	"sync"

	"github.com/vecops/vecops/column"
)

// AggregateType names a vertical aggregation.
type AggregateType string

const (
	Sum  AggregateType = "sum"
	Mean AggregateType = "mean"
	Min  AggregateType = "min"
	Max  AggregateType = "max"
	Diff AggregateType = "diff"
)

// VerticalAggregator folds present rows position by position into one
// result row. Add is called once per validated row, strictly in row
// order; Result returns one value per position, nil marking a null.
//
// Implementations are single-use: create a fresh one per call via New or
// CreateBuiltinAggregator.
type VerticalAggregator interface {
	New(width int) VerticalAggregator
	Add(row []interface{})
	Result() []interface{}
}

// SumAggregator sums each position across rows, treating inner nulls
// as zero. Positions of its result are never null.
type SumAggregator struct {
	sums []float64
}

func (s *SumAggregator) New(width int) VerticalAggregator {
	return &SumAggregator{sums: make([]float64, width)}
}

func (s *SumAggregator) Add(row []interface{}) {
	for j, v := range row {
		if f, ok := column.ToFloat64(v); ok {
			s.sums[j] += f
		}
	}
}

func (s *SumAggregator) Result() []interface{} {
	out := make([]interface{}, len(s.sums))
	for j, v := range s.sums {
		out[j] = v
	}
	return out
}

// MeanAggregator divides the per-position sum by the count of rows that
// supplied a non-null value at that position. The divisor is positional:
// a position every row left null divides by zero and yields an IEEE
// non-finite value, not an error.
type MeanAggregator struct {
	sums   []float64
	counts []float64
}

func (m *MeanAggregator) New(width int) VerticalAggregator {
	return &MeanAggregator{
		sums:   make([]float64, width),
		counts: make([]float64, width),
	}
}

func (m *MeanAggregator) Add(row []interface{}) {
	for j, v := range row {
		if f, ok := column.ToFloat64(v); ok {
			m.sums[j] += f
			m.counts[j]++
		}
	}
}

func (m *MeanAggregator) Result() []interface{} {
	out := make([]interface{}, len(m.sums))
	for j := range m.sums {
		out[j] = m.sums[j] / m.counts[j]
	}
	return out
}

// MinAggregator keeps the smallest non-null value per position. A
// position where every row is null stays null in the result.
type MinAggregator struct {
	values []float64
	valid  []bool
}

func (m *MinAggregator) New(width int) VerticalAggregator {
	return &MinAggregator{
		values: make([]float64, width),
		valid:  make([]bool, width),
	}
}

func (m *MinAggregator) Add(row []interface{}) {
	for j, v := range row {
		f, ok := column.ToFloat64(v)
		if !ok {
			continue
		}
		if !m.valid[j] || f < m.values[j] {
			m.values[j] = f
			m.valid[j] = true
		}
	}
}

func (m *MinAggregator) Result() []interface{} {
	out := make([]interface{}, len(m.values))
	for j := range m.values {
		if m.valid[j] {
			out[j] = m.values[j]
		}
	}
	return out
}

// MaxAggregator keeps the largest non-null value per position. A
// position where every row is null stays null in the result.
type MaxAggregator struct {
	values []float64
	valid  []bool
}

func (m *MaxAggregator) New(width int) VerticalAggregator {
	return &MaxAggregator{
		values: make([]float64, width),
		valid:  make([]bool, width),
	}
}

func (m *MaxAggregator) Add(row []interface{}) {
	for j, v := range row {
		f, ok := column.ToFloat64(v)
		if !ok {
			continue
		}
		if !m.valid[j] || f > m.values[j] {
			m.values[j] = f
			m.valid[j] = true
		}
	}
}

func (m *MaxAggregator) Result() []interface{} {
	out := make([]interface{}, len(m.values))
	for j := range m.values {
		if m.valid[j] {
			out[j] = m.values[j]
		}
	}
	return out
}

var (
	aggregatorRegistry = make(map[string]func(width int) VerticalAggregator)
	registryMutex      sync.RWMutex
)

// Register adds a custom vertical aggregator constructor to the global
// registry. A registered name shadows the builtin of the same name.
func Register(name string, constructor func(width int) VerticalAggregator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	aggregatorRegistry[name] = constructor
}

// CreateBuiltinAggregator creates a fresh aggregator for the given type.
// Diff is not a fold and is handled separately by Apply.
func CreateBuiltinAggregator(aggType AggregateType, width int) VerticalAggregator {
	registryMutex.RLock()
	constructor, exists := aggregatorRegistry[string(aggType)]
	registryMutex.RUnlock()
	if exists {
		return constructor(width)
	}

	switch aggType {
	case Sum:
		return (&SumAggregator{}).New(width)
	case Mean:
		return (&MeanAggregator{}).New(width)
	case Min:
		return (&MinAggregator{}).New(width)
	case Max:
		return (&MaxAggregator{}).New(width)
	default:
		panic("unsupported aggregator type: " + aggType)
	}
}
