package units

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors raised by the quantity algebra. Deterministic: the same
// operands always produce the same outcome.
var (
	// ErrDivisionByZero is returned when a divisor's total amount is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrMathDomain is returned when an operation leaves its numeric domain
	// (square root of a negative, logarithm of a non-positive, ...).
	ErrMathDomain = errors.New("outside math domain")
	// ErrExponentUnits is returned when exponentiation involves a unit.
	ErrExponentUnits = errors.New("exponent requires unitless operands")
	// ErrNoUnit is returned when converting a quantity that has no unit.
	ErrNoUnit = errors.New("quantity has no unit")
)

// ConversionError reports a conversion between unit families that do not
// share a canonical base.
type ConversionError struct {
	From string
	To   string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("values of type %q and %q are not able to be compared or converted", e.From, e.To)
}

var (
	oneHundred = decimal.NewFromInt(100)
)

// Quantity is an exact decimal amount paired with an optional compound unit.
// The zero value is the unitless quantity 0.
type Quantity struct {
	amount decimal.Decimal
	unit   *Unit
}

// New returns a unitless quantity.
func New(amount decimal.Decimal) Quantity {
	return Quantity{amount: amount}
}

// NewWithUnit returns a quantity carrying the given unit. A nil unit yields
// a pure number.
func NewWithUnit(amount decimal.Decimal, unit *Unit) Quantity {
	return Quantity{amount: amount, unit: unit}
}

// fromTotal builds a quantity from an amount expressed in canonical units,
// dividing by the numerator factor of the display unit.
func fromTotal(total decimal.Decimal, unit *Unit) Quantity {
	if unit == nil {
		return Quantity{amount: total}
	}
	return Quantity{amount: total.Div(unit.Num.Factor), unit: unit}
}

// Amount is the display amount.
func (q Quantity) Amount() decimal.Decimal {
	return q.amount
}

// Unit is the quantity's unit, nil for pure numbers.
func (q Quantity) Unit() *Unit {
	return q.unit
}

// WithAmount returns a copy with a replaced display amount and the same unit.
func (q Quantity) WithAmount(amount decimal.Decimal) Quantity {
	return Quantity{amount: amount, unit: q.unit}
}

// WithoutUnit returns the bare display amount as a pure number.
func (q Quantity) WithoutUnit() Quantity {
	return Quantity{amount: q.amount}
}

// TotalAmount is the amount expressed in canonical units: the display amount
// multiplied by the unit's total factor.
func (q Quantity) TotalAmount() decimal.Decimal {
	if q.unit == nil {
		return q.amount
	}
	return q.amount.Mul(q.unit.TotalFactor())
}

// String renders "amount" or "amount unit".
func (q Quantity) String() string {
	if q.unit == nil {
		return q.amount.String()
	}
	return q.amount.String() + " " + q.unit.Short()
}

// Equal compares display amounts only. Unit-bearing quantities with the same
// amount compare equal regardless of their surface unit.
func (q Quantity) Equal(other Quantity) bool {
	return q.amount.Equal(other.amount)
}

// Cmp orders quantities by total amount. Quantities sharing a total amount
// compare equal even when their units differ.
func (q Quantity) Cmp(other Quantity) int {
	return q.TotalAmount().Cmp(other.TotalAmount())
}

// percentOf resolves a percent right operand: the fraction of the left
// operand's total that the right operand names. 10 % of 200 is 20.
func percentOf(leftTotal, rightTotal decimal.Decimal) decimal.Decimal {
	return leftTotal.Mul(rightTotal.Div(oneHundred))
}

// Add sums two quantities in canonical units. The result carries the larger
// of the two units and a percent right operand is applied as a relative
// fraction of the left operand.
func (q Quantity) Add(other Quantity) Quantity {
	lt := q.TotalAmount()

	var total decimal.Decimal
	otherUnit := other.unit
	if otherUnit != nil && otherUnit.IsPercent() {
		otherUnit = nil
		total = lt.Add(percentOf(lt, other.TotalAmount()))
	} else {
		total = lt.Add(other.TotalAmount())
	}

	return fromTotal(total, larger(q.unit, otherUnit))
}

// Sub mirrors Add: 200 - 10% is 180.
func (q Quantity) Sub(other Quantity) Quantity {
	lt := q.TotalAmount()

	var total decimal.Decimal
	otherUnit := other.unit
	if otherUnit != nil && otherUnit.IsPercent() {
		otherUnit = nil
		total = lt.Sub(percentOf(lt, other.TotalAmount()))
	} else {
		total = lt.Sub(other.TotalAmount())
	}

	return fromTotal(total, larger(q.unit, otherUnit))
}

// Mul multiplies total amounts, then rescales by the chosen unit's numerator
// factor so that 1 GB * 1 GB stays 1 GB.
func (q Quantity) Mul(other Quantity) Quantity {
	lt := q.TotalAmount()

	var total decimal.Decimal
	otherUnit := other.unit
	if otherUnit != nil && otherUnit.IsPercent() {
		otherUnit = nil
		total = lt.Mul(percentOf(lt, other.TotalAmount()))
	} else {
		total = lt.Mul(other.TotalAmount())
	}

	unit := larger(q.unit, otherUnit)
	if unit != nil {
		total = total.Div(unit.Num.Factor)
	}
	return fromTotal(total, unit)
}

// Div divides total amounts, then rescales by the chosen unit's numerator
// factor, since the division already cancelled one factor.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	lt := q.TotalAmount()

	var divisor decimal.Decimal
	otherUnit := other.unit
	if otherUnit != nil && otherUnit.IsPercent() {
		otherUnit = nil
		divisor = percentOf(lt, other.TotalAmount())
	} else {
		divisor = other.TotalAmount()
	}

	if divisor.IsZero() {
		return Quantity{}, ErrDivisionByZero
	}

	total := lt.Div(divisor)
	unit := larger(q.unit, otherUnit)
	if unit != nil {
		total = total.Mul(unit.Num.Factor)
	}
	return fromTotal(total, unit), nil
}

// Pow raises the amount to the other amount's power. Both operands must be
// unitless. Integer exponents are computed exactly; fractional exponents fall
// back to float64 and are rounded back into the decimal domain.
func (q Quantity) Pow(other Quantity) (Quantity, error) {
	if q.unit != nil || other.unit != nil {
		return Quantity{}, ErrExponentUnits
	}

	exp := other.amount
	if exp.Equal(exp.Truncate(0)) {
		if exp.Sign() < 0 {
			raised := q.amount.Pow(exp.Neg())
			if raised.IsZero() {
				return Quantity{}, ErrDivisionByZero
			}
			return New(decimal.NewFromInt(1).Div(raised)), nil
		}
		return New(q.amount.Pow(exp)), nil
	}

	base, _ := q.amount.Float64()
	power, _ := exp.Float64()
	return fromFloat(pow(base, power))
}

// ConvertTo expresses the quantity in target units. A nil target passes the
// display amount through as a pure number. Both units must share numerator
// canonicals and their denominators must both be absent or share canonicals.
func (q Quantity) ConvertTo(target *Unit) (Quantity, error) {
	if q.unit == nil {
		return Quantity{}, ErrNoUnit
	}
	if target == nil {
		return New(q.amount), nil
	}
	if !q.unit.ConvertibleTo(target) {
		return Quantity{}, &ConversionError{From: q.unit.Long(), To: target.Long()}
	}

	amount := q.amount.Mul(q.unit.Num.Factor).Div(target.Num.Factor)
	if q.unit.Denom != nil && target.Denom != nil {
		amount = amount.Mul(target.Denom.Factor).Div(q.unit.Denom.Factor)
	}
	return NewWithUnit(amount, target), nil
}

// MaxOf returns the quantity with the greater total amount, intact with its
// unit. Ties keep the receiver.
func (q Quantity) MaxOf(other Quantity) Quantity {
	if q.Cmp(other) >= 0 {
		return q
	}
	return other
}

// MinOf returns the quantity with the smaller total amount, intact with its
// unit. Ties keep the receiver.
func (q Quantity) MinOf(other Quantity) Quantity {
	if q.Cmp(other) <= 0 {
		return q
	}
	return other
}
