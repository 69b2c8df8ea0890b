// Package units provides the unit catalogue and the exact-decimal quantity
// algebra used by the expression engine.
//
// A Base describes one named unit (second, gigabyte, ...) together with the
// multiplicative factor that relates it to its canonical base. A Unit is a
// compound of a numerator base and an optional denominator base ("GB/s").
// A Quantity pairs an exact decimal amount with an optional Unit.
package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Base is the descriptor of a single registered (or custom) unit.
type Base struct {
	// Long is the singular display name ("second").
	Long string
	// Plural is the display name for multiples ("seconds").
	Plural string
	// Short is the abbreviated name ("s"), empty when the unit has none.
	Short string
	// Alts are alternative spellings (`"` and `″` for inch).
	Alts []string
	// Factor expresses how many canonical units one of this unit equals.
	// Canonical bases carry a factor of exactly 1.
	Factor decimal.Decimal
	// Canonical points at the canonical base of the unit family. Canonical
	// bases point at themselves.
	Canonical *Base
	// Custom marks units synthesized for otherwise-unknown identifiers.
	Custom bool
}

// newCanonical builds a canonical base: factor 1, canonical self.
func newCanonical(long, plural, short string) *Base {
	b := &Base{
		Long:   long,
		Plural: plural,
		Short:  short,
		Factor: decimal.NewFromInt(1),
	}
	b.Canonical = b
	return b
}

// newDerived builds a base derived from a canonical base by a factor.
func newDerived(canonical *Base, factor, long, plural, short string, alts ...string) *Base {
	return &Base{
		Long:      long,
		Plural:    plural,
		Short:     short,
		Alts:      alts,
		Factor:    decimal.RequireFromString(factor),
		Canonical: canonical,
	}
}

// NewCustom builds a custom base for an unregistered identifier. The base is
// its own canonical and its factor is 1.
func NewCustom(name string) *Base {
	b := &Base{
		Long:   name,
		Plural: name,
		Short:  name,
		Factor: decimal.NewFromInt(1),
		Custom: true,
	}
	b.Canonical = b
	return b
}

// IsCanonical reports whether the base is the canonical member of its family.
func (b *Base) IsCanonical() bool {
	return b.Canonical == b
}

// Matches reports whether name is one of the base's spellings. Matching is
// exact and case-sensitive.
func (b *Base) Matches(name string) bool {
	if b.Long == name || b.Plural == name || (b.Short != "" && b.Short == name) {
		return true
	}
	for _, alt := range b.Alts {
		if alt == name {
			return true
		}
	}
	return false
}

// Equal reports base equality, defined as same long name.
func (b *Base) Equal(other *Base) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Long == other.Long
}

// Cmp orders bases by factor.
func (b *Base) Cmp(other *Base) int {
	return b.Factor.Cmp(other.Factor)
}

// Display is the preferred rendering: the short name when present, the long
// name otherwise.
func (b *Base) Display() string {
	if b.Short != "" {
		return b.Short
	}
	return b.Long
}

// Unit is a compound unit: a numerator base with an optional denominator
// base. "GB" has a nil denominator; "GB/s" has Byte-family numerator and
// Second-family denominator.
type Unit struct {
	Num   *Base
	Denom *Base
}

// Simple wraps a single base as a compound unit with no denominator.
func Simple(num *Base) *Unit {
	return &Unit{Num: num}
}

// Compound builds a numerator/denominator unit.
func Compound(num, denom *Base) *Unit {
	return &Unit{Num: num, Denom: denom}
}

// TotalFactor is Num.Factor / Denom.Factor, or Num.Factor when there is no
// denominator.
func (u *Unit) TotalFactor() decimal.Decimal {
	if u.Denom != nil {
		return u.Num.Factor.Div(u.Denom.Factor)
	}
	return u.Num.Factor
}

// Equal reports compound-unit equality: equal numerators and denominators
// that are either both absent or both present and equal.
func (u *Unit) Equal(other *Unit) bool {
	if u == nil || other == nil {
		return u == other
	}
	if !u.Num.Equal(other.Num) {
		return false
	}
	if (u.Denom == nil) != (other.Denom == nil) {
		return false
	}
	return u.Denom == nil || u.Denom.Equal(other.Denom)
}

// Cmp orders compound units by total factor.
func (u *Unit) Cmp(other *Unit) int {
	return u.TotalFactor().Cmp(other.TotalFactor())
}

// ConvertibleTo reports whether a quantity in u can be converted into other:
// the numerator canonical bases must match, and the denominators must either
// both be absent or share a canonical base.
func (u *Unit) ConvertibleTo(other *Unit) bool {
	if !u.Num.Canonical.Equal(other.Num.Canonical) {
		return false
	}
	if (u.Denom == nil) != (other.Denom == nil) {
		return false
	}
	return u.Denom == nil || u.Denom.Canonical.Equal(other.Denom.Canonical)
}

// IsPercent reports whether the unit is the positional percent unit.
func (u *Unit) IsPercent() bool {
	return u.Denom == nil && u.Num.Long == "%"
}

// Long renders the long name, joining numerator and denominator with "/".
func (u *Unit) Long() string {
	if u.Denom != nil {
		return u.Num.Long + "/" + u.Denom.Long
	}
	return u.Num.Long
}

// Short renders the preferred display name, joining with "/".
func (u *Unit) Short() string {
	if u.Denom != nil {
		return u.Num.Display() + "/" + u.Denom.Display()
	}
	return u.Num.Display()
}

// String implements fmt.Stringer.
func (u *Unit) String() string {
	return u.Short()
}

// larger returns the unit with the greater total factor. A nil unit loses to
// any present unit; two nils stay nil.
func larger(a, b *Unit) *Unit {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Cmp(b) >= 0:
		return a
	default:
		return b
	}
}

// splitCompound splits a spelling like "GB/s" into numerator and denominator
// parts. Spellings without "/" yield a single part.
func splitCompound(name string) []string {
	return strings.Split(name, "/")
}
