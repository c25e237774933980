package functions

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprFunction wraps a compiled expr-lang expression as an element-wise
// function. The expression sees the scalar argument as the variable x.
type ExprFunction struct {
	*BaseFunction
	program *vm.Program
}

// NewExprFunction compiles an expr-lang expression into a function.
func NewExprFunction(name, expression string) (*ExprFunction, error) {
	program, err := expr.Compile(expression, expr.Env(map[string]interface{}{}), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile expression for function %s: %w", name, err)
	}
	return &ExprFunction{
		BaseFunction: NewBaseFunction(name, TypeCustom, "custom", "expr expression: "+expression, 1, 1),
		program:      program,
	}, nil
}

// RegisterExprFunction compiles an expression and registers it globally,
// so it can be applied element-wise like any builtin collaborator.
func RegisterExprFunction(name, expression string) error {
	fn, err := NewExprFunction(name, expression)
	if err != nil {
		return err
	}
	return Register(fn)
}

func (f *ExprFunction) Validate(args []interface{}) error {
	return f.ValidateArgCount(args)
}

func (f *ExprFunction) Execute(ctx *FunctionContext, args []interface{}) (interface{}, error) {
	env := map[string]interface{}{"x": args[0]}
	if ctx != nil {
		for k, v := range ctx.Extra {
			env[k] = v
		}
	}
	return expr.Run(f.program, env)
}
