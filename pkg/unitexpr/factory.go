package unitexpr

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/funcs"
	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// Factory owns the unit, function and constant registries for the lifetime
// of the process. Parsers borrow it read-only for the duration of a parse;
// the constant registry is the one mutable part and is guarded for writers
// that run between parses.
type Factory struct {
	units *units.Registry
	funcs *funcs.Registry

	mu     sync.RWMutex
	consts map[string]decimal.Decimal
	order  []string
}

// Constant is a named exact decimal.
type Constant struct {
	Name  string
	Value decimal.Decimal
}

// New returns a factory seeded with the standard units, the built-in math
// functions, and the PI and E constants.
func New() *Factory {
	f := &Factory{
		units:  units.NewRegistry(),
		funcs:  funcs.Defaults(),
		consts: make(map[string]decimal.Decimal),
	}
	f.AddConstant("PI", decimal.RequireFromString("3.14159265358979323846264338327950288"))
	f.AddConstant("E", decimal.RequireFromString("2.71828182845904523536028747135266250"))
	return f
}

// Parse tokenizes and reduces input.
func (f *Factory) Parse(input string) (ParseValue, error) {
	return f.NewParser(input).Parse()
}

// MustParse is like Parse but panics on error.
func (f *Factory) MustParse(input string) ParseValue {
	result, err := f.Parse(input)
	if err != nil {
		panic(err)
	}
	return result
}

// AddConstant registers a constant, shadowing any prior definition of the
// same name.
func (f *Factory) AddConstant(name string, value decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.consts[name]; !ok {
		f.order = append(f.order, name)
	}
	f.consts[name] = value
}

// Constant looks up a constant by name. Matching is exact.
func (f *Factory) Constant(name string) (decimal.Decimal, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.consts[name]
	return value, ok
}

// Constants returns all constants in registration order.
func (f *Factory) Constants() []Constant {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Constant, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, Constant{Name: name, Value: f.consts[name]})
	}
	return out
}

// Units returns the unit registry.
func (f *Factory) Units() *units.Registry {
	return f.units
}

// Funcs returns the function registry.
func (f *Factory) Funcs() *funcs.Registry {
	return f.funcs
}
