package functions

import (
	"fmt"
	"strings"
	"sync"
)

// FunctionType groups functions by kind.
type FunctionType string

const (
	// TypeAggregation marks vertical aggregations over sequence columns.
	TypeAggregation FunctionType = "aggregation"
	// TypeMath marks element-wise numeric functions.
	TypeMath FunctionType = "math"
	// TypeString marks element-wise string functions.
	TypeString FunctionType = "string"
	// TypeConversion marks pass-through and conversion functions.
	TypeConversion FunctionType = "conversion"
	// TypeCustom marks user-registered functions.
	TypeCustom FunctionType = "custom"
)

// FunctionContext carries per-call execution settings.
type FunctionContext struct {
	// StrictNulls propagates the engine's strict null-row validation to
	// aggregation functions.
	StrictNulls bool
	// Extra holds additional context values.
	Extra map[string]interface{}
}

// Function is the plugin boundary. Vertical aggregations and trivial
// element-wise collaborators are exposed through the same interface.
type Function interface {
	// GetName returns the registered function name.
	GetName() string
	// GetType returns the function kind.
	GetType() FunctionType
	// GetCategory returns the function category.
	GetCategory() string
	// GetDescription returns a short description.
	GetDescription() string
	// Validate checks the arguments before execution.
	Validate(args []interface{}) error
	// Execute runs the function.
	Execute(ctx *FunctionContext, args []interface{}) (interface{}, error)
}

// FunctionRegistry stores registered functions by lowercase name.
type FunctionRegistry struct {
	mu         sync.RWMutex
	functions  map[string]Function
	categories map[FunctionType][]Function
}

// Global registry instance.
var globalRegistry = NewFunctionRegistry()

// NewFunctionRegistry creates an empty registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions:  make(map[string]Function),
		categories: make(map[FunctionType][]Function),
	}
}

// Register adds a function, failing when the name is already taken.
func (r *FunctionRegistry) Register(fn Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(fn.GetName())
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("function %s already registered", name)
	}
	r.functions[name] = fn
	r.categories[fn.GetType()] = append(r.categories[fn.GetType()], fn)
	return nil
}

// Get looks up a function by name, case-insensitively.
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[strings.ToLower(name)]
	return fn, exists
}

// GetByType returns all functions of one kind.
func (r *FunctionRegistry) GetByType(fnType FunctionType) []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.categories[fnType]
}

// ListAll returns a copy of the name-to-function table.
func (r *FunctionRegistry) ListAll() map[string]Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make(map[string]Function, len(r.functions))
	for name, fn := range r.functions {
		all[name] = fn
	}
	return all
}

// Register adds a function to the global registry.
func Register(fn Function) error {
	return globalRegistry.Register(fn)
}

// Get looks up a function in the global registry.
func Get(name string) (Function, bool) {
	return globalRegistry.Get(name)
}

// GetByType returns all global functions of one kind.
func GetByType(fnType FunctionType) []Function {
	return globalRegistry.GetByType(fnType)
}

// ListAll returns all globally registered functions.
func ListAll() map[string]Function {
	return globalRegistry.ListAll()
}
