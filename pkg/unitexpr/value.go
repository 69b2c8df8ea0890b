package unitexpr

import (
	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// Value is the result of a reduction: either a quantity or a bare unit. Bare
// units appear when an input reduces to a unit literal, such as the right
// operand of "->".
type Value interface {
	// Tokens renders the value back into token form for splicing.
	Tokens() []Token
	// BaseUnit returns the value's unit; nil for a unitless quantity.
	BaseUnit() *units.Unit
	// String renders the value for display.
	String() string
}

// QuantityValue wraps a quantity result.
type QuantityValue struct {
	Quantity units.Quantity
}

// Tokens renders the amount and, when present, the unit's short name.
func (v QuantityValue) Tokens() []Token {
	tokens := []Token{NumberToken(v.Quantity.Amount())}
	if u := v.Quantity.Unit(); u != nil {
		tokens = append(tokens, LiteralToken(u.Short()))
	}
	return tokens
}

// BaseUnit returns the quantity's unit, nil for pure numbers.
func (v QuantityValue) BaseUnit() *units.Unit {
	return v.Quantity.Unit()
}

// String implements fmt.Stringer.
func (v QuantityValue) String() string {
	return v.Quantity.String()
}

// UnitValue wraps a bare unit result.
type UnitValue struct {
	Unit *units.Unit
}

// Tokens renders the unit's short name.
func (v UnitValue) Tokens() []Token {
	return []Token{LiteralToken(v.Unit.Short())}
}

// BaseUnit returns the unit.
func (v UnitValue) BaseUnit() *units.Unit {
	return v.Unit
}

// String implements fmt.Stringer.
func (v UnitValue) String() string {
	return v.Unit.Short()
}

// ParseValue is the outcome of a parse: either a single reduced value, or
// the residual token stream when no full reduction was possible. The latter
// is a benign outcome, not an error.
type ParseValue struct {
	value  Value
	tokens []Token
}

func singleValue(v Value) ParseValue {
	return ParseValue{value: v}
}

func multiValue(tokens []Token) ParseValue {
	return ParseValue{tokens: tokens}
}

// Single returns the reduced value when the parse fully reduced.
func (p ParseValue) Single() (Value, bool) {
	return p.value, p.value != nil
}

// Tokens returns the result in token form: the rendered single value, or the
// residual buffer.
func (p ParseValue) Tokens() []Token {
	if p.value != nil {
		return p.value.Tokens()
	}
	return p.tokens
}

// String renders the result.
func (p ParseValue) String() string {
	if p.value != nil {
		return p.value.String()
	}
	return Render(p.tokens)
}

// quantityOf extracts the quantity from a value.
func quantityOf(v Value) (units.Quantity, bool) {
	q, ok := v.(QuantityValue)
	return q.Quantity, ok
}

// Compare evaluates a relational operator between two quantities on their
// total amounts.
func Compare(left, right units.Quantity, op Operator) (bool, error) {
	cmp := left.Cmp(right)
	switch op {
	case OpGreaterThan:
		return cmp > 0, nil
	case OpGreaterThanOrEqual:
		return cmp >= 0, nil
	case OpLessThan:
		return cmp < 0, nil
	case OpLessThanOrEqual:
		return cmp <= 0, nil
	case OpDoubleEqual:
		return cmp == 0, nil
	case OpNotEqual:
		return cmp != 0, nil
	default:
		return false, newError(KindInvalidOperator, "invalid operator when trying to compare: %s", op)
	}
}
