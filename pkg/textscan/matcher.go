package textscan

import (
	"github.com/unitcalc/unitcalc/pkg/unitexpr"
	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// Matcher is a fluent query over a scanned structure:
//
//	st.Match(gb).Amount(quantity).GreaterThan().Found()
type Matcher struct {
	structure *Structure
	unit      *units.Unit
	rhs       units.Quantity
	hasRHS    bool
}

// Match starts a query for entries in the given unit's family.
func (st *Structure) Match(unit *units.Unit) *Matcher {
	return &Matcher{structure: st, unit: unit}
}

// Amount sets the quantity the entries are compared against.
func (m *Matcher) Amount(q units.Quantity) *Matcher {
	m.rhs = q
	m.hasRHS = true
	return m
}

// Equal compares with ==.
func (m *Matcher) Equal() *Finder {
	return &Finder{matcher: m, op: unitexpr.OpDoubleEqual}
}

// NotEqual compares with !=.
func (m *Matcher) NotEqual() *Finder {
	return &Finder{matcher: m, op: unitexpr.OpNotEqual}
}

// GreaterThan compares with >.
func (m *Matcher) GreaterThan() *Finder {
	return &Finder{matcher: m, op: unitexpr.OpGreaterThan}
}

// GreaterThanOrEqual compares with >=.
func (m *Matcher) GreaterThanOrEqual() *Finder {
	return &Finder{matcher: m, op: unitexpr.OpGreaterThanOrEqual}
}

// LessThan compares with <.
func (m *Matcher) LessThan() *Finder {
	return &Finder{matcher: m, op: unitexpr.OpLessThan}
}

// LessThanOrEqual compares with <=.
func (m *Matcher) LessThanOrEqual() *Finder {
	return &Finder{matcher: m, op: unitexpr.OpLessThanOrEqual}
}

// Finder terminates a matcher chain with a chosen comparison operator.
type Finder struct {
	matcher *Matcher
	op      unitexpr.Operator
}

// Found reports whether any entry satisfies the comparison. Without an
// Amount there is nothing to compare against.
func (f *Finder) Found() bool {
	if !f.matcher.hasRHS {
		return false
	}
	_, ok, err := f.matcher.structure.FindFirstWithOp(f.matcher.unit, f.matcher.rhs, f.op)
	return err == nil && ok
}

// All returns every entry satisfying the comparison.
func (f *Finder) All() []Value {
	if !f.matcher.hasRHS {
		return nil
	}
	found, err := f.matcher.structure.FindWithOp(f.matcher.unit, f.matcher.rhs, f.op)
	if err != nil {
		return nil
	}
	return found
}
