// Package textscan extracts quantities from natural-language text so they
// can be queried: "is there a data size greater than 100 GB in this
// sentence?".
//
// The scanner runs the expression tokenizer in permissive mode — unknown
// literals become custom units and whitespace is preserved in the positioned
// output — and then walks the token sequence with the reducer's operand
// recogniser only. No reduction ever happens; every recognised quantity or
// unit becomes a Parsed entry and everything else stays a raw token.
package textscan

import (
	"github.com/unitcalc/unitcalc/pkg/unitexpr"
	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// Value is one alternative in a scanned structure: a parsed value or a raw
// token.
type Value struct {
	// Parsed is the recognised value, nil for raw text.
	Parsed unitexpr.Value
	// Token is the raw token when Parsed is nil.
	Token unitexpr.Token
}

// IsParsed reports whether the entry carries a recognised value.
func (v Value) IsParsed() bool {
	return v.Parsed != nil
}

// Quantity returns the entry's quantity, when it is one.
func (v Value) Quantity() (units.Quantity, bool) {
	if v.Parsed == nil {
		return units.Quantity{}, false
	}
	q, ok := v.Parsed.(unitexpr.QuantityValue)
	return q.Quantity, ok
}

// String renders the entry's surface form.
func (v Value) String() string {
	if v.Parsed != nil {
		return v.Parsed.String()
	}
	return v.Token.String()
}

// Structure is the result of scanning a text: the ordered alternatives plus
// the positioned tokens they came from.
type Structure struct {
	Text     string
	Values   []Value
	Compiled []unitexpr.RangedToken
}

// Scan tokenizes text against the factory and recognises quantities.
func Scan(text string, factory *unitexpr.Factory) (*Structure, error) {
	parser := factory.NewParser(text)
	compiled := parser.ParsedTokens()

	tokens := make([]unitexpr.Token, 0, len(compiled))
	for _, rt := range compiled {
		if rt.Token.Kind != unitexpr.KindWhitespace {
			tokens = append(tokens, rt.Token)
		}
	}

	structure := &Structure{Text: text, Compiled: compiled}
	slicer := unitexpr.NewSlicer(tokens)

	for !slicer.IsFinished() {
		slicer.Forward()
		start := slicer.Pos()

		value, ok, err := parser.NumberExpression(slicer)
		if err != nil {
			return nil, err
		}

		switch {
		case ok:
			structure.Values = append(structure.Values, Value{Parsed: value})
		case slicer.Pos() == start:
			structure.Values = append(structure.Values, Value{Token: tokens[start]})
			slicer.NextPos()
		default:
			for _, t := range tokens[start:slicer.Pos()] {
				structure.Values = append(structure.Values, Value{Token: t})
			}
		}
	}

	return structure, nil
}

// Find returns the parsed entries whose unit shares the given unit's
// canonical base.
func (st *Structure) Find(unit *units.Unit) []Value {
	var found []Value
	for _, v := range st.Values {
		if !v.IsParsed() {
			continue
		}
		u := v.Parsed.BaseUnit()
		if u != nil && u.Num.Canonical.Equal(unit.Num.Canonical) {
			found = append(found, v)
		}
	}
	return found
}

// FindWithOp returns the quantities sharing the unit's canonical base that
// satisfy the comparison against rhs.
func (st *Structure) FindWithOp(unit *units.Unit, rhs units.Quantity, op unitexpr.Operator) ([]Value, error) {
	var found []Value
	for _, v := range st.Find(unit) {
		q, ok := v.Quantity()
		if !ok {
			continue
		}
		matches, err := unitexpr.Compare(q, rhs, op)
		if err != nil {
			return nil, err
		}
		if matches {
			found = append(found, v)
		}
	}
	return found, nil
}

// FindFirstWithOp returns the first quantity satisfying the comparison.
func (st *Structure) FindFirstWithOp(unit *units.Unit, rhs units.Quantity, op unitexpr.Operator) (Value, bool, error) {
	found, err := st.FindWithOp(unit, rhs, op)
	if err != nil || len(found) == 0 {
		return Value{}, false, err
	}
	return found[0], true, nil
}
