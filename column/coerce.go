package column

import (
	"github.com/vecops/vecops/utils/cast"
)

// ToFloat64 converts a scalar element to float64 for computation. A nil
// value (inner null) reports ok=false.
func ToFloat64(v interface{}) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CastValue casts a float64 computation result back to the declared
// element type. Sum, min, max and diff preserve the input element type
// through this cast; mean keeps Float64 and never goes through an
// integer branch.
func CastValue(v float64, elem ElementType) interface{} {
	switch elem {
	case Int8:
		return int8(v)
	case Int16:
		return int16(v)
	case Int32:
		return int32(v)
	case Int64:
		return int64(v)
	case UInt8:
		return uint8(v)
	case UInt16:
		return uint16(v)
	case UInt32:
		return uint32(v)
	case UInt64:
		return uint64(v)
	case Float32:
		return float32(v)
	case Float64:
		return v
	default:
		return v
	}
}

// CastRow casts every non-null element of a computed row back to the
// declared element type.
func CastRow(values []interface{}, elem ElementType) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		f, ok := ToFloat64(v)
		if !ok {
			continue
		}
		out[i] = CastValue(f, elem)
	}
	return out
}
