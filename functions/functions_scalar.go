package functions

import (
	"math"
	"strings"

	"github.com/vecops/vecops/utils/cast"
)

// NoopFunction returns its argument unchanged.
type NoopFunction struct {
	*BaseFunction
}

func NewNoopFunction() *NoopFunction {
	return &NoopFunction{
		BaseFunction: NewBaseFunction("noop", TypeConversion, "conversion", "Return the input value unchanged", 1, 1),
	}
}

func (f *NoopFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *NoopFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	return args[0], nil
}

// AbsFunction calculates absolute value. Integer input stays integer.
type AbsFunction struct {
	*BaseFunction
}

func NewAbsFunction() *AbsFunction {
	return &AbsFunction{
		BaseFunction: NewBaseFunction("abs", TypeMath, "math", "Calculate absolute value", 1, 1),
	}
}

func (f *AbsFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *AbsFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	if cast.IsInteger(args[0]) {
		val, err := cast.ToInt64E(args[0])
		if err != nil {
			return nil, err
		}
		if val < 0 {
			val = -val
		}
		return val, nil
	}
	val, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, err
	}
	return math.Abs(val), nil
}

// PigLatinFunction transforms each word of a string into pig latin:
// the leading letter moves to the end and "ay" is appended.
type PigLatinFunction struct {
	*BaseFunction
}

func NewPigLatinFunction() *PigLatinFunction {
	return &PigLatinFunction{
		BaseFunction: NewBaseFunction("pig_latin", TypeString, "string", "Transform words into pig latin", 1, 1),
	}
}

func (f *PigLatinFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *PigLatinFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	s, err := cast.ToStringE(args[0])
	if err != nil {
		return nil, err
	}
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = word[1:] + word[:1] + "ay"
		}
	}
	return strings.Join(words, " "), nil
}
