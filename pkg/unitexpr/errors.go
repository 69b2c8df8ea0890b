package unitexpr

import (
	"errors"
	"fmt"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/funcs"
	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// ErrorKind categorises evaluation errors. A stalled reduction is not an
// error: the parser reports it as a Multi result instead.
type ErrorKind int

const (
	// KindInputEmpty indicates a reducer branch required an operand that was
	// not present.
	KindInputEmpty ErrorKind = iota
	// KindExpectedArgument indicates a function was called with too few
	// arguments, or a trailing comma left an argument slot empty.
	KindExpectedArgument
	// KindExpectedQuantity indicates a function received a bare unit where a
	// quantity was needed.
	KindExpectedQuantity
	// KindInvalidFunction indicates a function-call literal did not resolve.
	KindInvalidFunction
	// KindInvalidOperator indicates the comparison evaluator received a
	// non-comparison operator.
	KindInvalidOperator
	// KindUnexpectedToken indicates a lookahead returned the wrong token kind.
	KindUnexpectedToken
	// KindUnableToOperate indicates arithmetic across a quantity and a bare
	// unit, or an operation the operands cannot support.
	KindUnableToOperate
	// KindIncompatibleUnits indicates a conversion whose source and target do
	// not share a canonical base.
	KindIncompatibleUnits
	// KindDivisionByZero indicates a zero divisor.
	KindDivisionByZero
	// KindMathDomain indicates an operation outside its numeric domain.
	KindMathDomain
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInputEmpty:
		return "InputEmpty"
	case KindExpectedArgument:
		return "ExpectedArgument"
	case KindExpectedQuantity:
		return "ExpectedQuantity"
	case KindInvalidFunction:
		return "InvalidFunction"
	case KindInvalidOperator:
		return "InvalidOperator"
	case KindUnexpectedToken:
		return "UnexpectedToken"
	case KindUnableToOperate:
		return "UnableToOperate"
	case KindIncompatibleUnits:
		return "IncompatibleUnits"
	case KindDivisionByZero:
		return "DivisionByZero"
	case KindMathDomain:
		return "MathDomain"
	default:
		return "Unknown"
	}
}

// Error is the engine's error type.
type Error struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Kind.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// IsKind reports whether err is an engine error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var engineErr *Error
	return errors.As(err, &engineErr) && engineErr.Kind == kind
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Message: message}
}

func errInputEmpty() *Error {
	return &Error{Kind: KindInputEmpty}
}

func errUnexpectedToken(t Token) *Error {
	return newError(KindUnexpectedToken, "unexpected token %q", t.String())
}

func errUnableToOperate(op Operator) *Error {
	return newError(KindUnableToOperate, "unable to operate: %s", op)
}

func errInvalidFunction(name string) *Error {
	return newError(KindInvalidFunction, "not a valid function: %s", name)
}

func errIncompatibleUnits(from, to string) *Error {
	return newError(KindIncompatibleUnits,
		"values of type %q and %q are not able to be compared or converted", from, to)
}

// wrapAlgebraError maps sentinel errors from the quantity algebra and the
// function evaluators onto engine error kinds.
func wrapAlgebraError(err error) error {
	if err == nil {
		return nil
	}

	var convErr *units.ConversionError
	switch {
	case errors.As(err, &convErr):
		return &Error{
			Kind:       KindIncompatibleUnits,
			Message:    convErr.Error(),
			Underlying: err,
		}
	case errors.Is(err, units.ErrDivisionByZero):
		return &Error{Kind: KindDivisionByZero, Underlying: err}
	case errors.Is(err, units.ErrMathDomain):
		return &Error{Kind: KindMathDomain, Underlying: err}
	case errors.Is(err, units.ErrExponentUnits):
		return &Error{
			Kind:       KindUnableToOperate,
			Message:    "unable to operate: ^",
			Underlying: err,
		}
	case errors.Is(err, units.ErrNoUnit):
		return &Error{
			Kind:       KindUnableToOperate,
			Message:    "unable to operate: ->",
			Underlying: err,
		}
	case errors.Is(err, funcs.ErrExpectedArgument):
		return &Error{Kind: KindExpectedArgument, Underlying: err}
	}
	return err
}
