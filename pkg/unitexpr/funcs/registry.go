// Package funcs provides the function registry and the built-in math
// evaluators available to expressions.
package funcs

import (
	"errors"
	"sync"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// ErrExpectedArgument is returned when an evaluator receives fewer arguments
// than it needs.
var ErrExpectedArgument = errors.New("expected argument")

// Eval evaluates a function over its quantity arguments.
type Eval func(args []units.Quantity) (units.Quantity, error)

// Def is a registered function.
type Def struct {
	Name string
	Eval Eval
}

// Registry holds registered functions, keyed by name. Listing follows
// registration order.
type Registry struct {
	mu    sync.RWMutex
	defs  map[string]Def
	order []string
}

// NewRegistry creates an empty function registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Def)}
}

// Defaults returns a registry seeded with the built-in math functions.
func Defaults() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// Register adds a function, replacing any previous definition of the name.
func (r *Registry) Register(def Def) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.Name]; !ok {
		r.order = append(r.order, def.Name)
	}
	r.defs[def.Name] = def
}

// Find retrieves a function by name.
func (r *Registry) Find(name string) (Def, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Has checks whether a function exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Find(name)
	return ok
}

// Names returns all registered function names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
