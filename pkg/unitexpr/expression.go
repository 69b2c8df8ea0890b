package unitexpr

import (
	"github.com/shopspring/decimal"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/funcs"
	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// exprNode is one node of the tiny expression trees the reducer builds: a
// literal, a binary operation, or a function call.
type exprNode interface {
	eval() (Value, error)
}

// literalNode wraps an already-known value.
type literalNode struct {
	value Value
}

func (n literalNode) eval() (Value, error) {
	return n.value, nil
}

// binaryNode applies an operator to two sub-expressions.
type binaryNode struct {
	op    Operator
	left  exprNode
	right exprNode
}

func (n binaryNode) eval() (Value, error) {
	left, err := n.left.eval()
	if err != nil {
		return nil, err
	}
	right, err := n.right.eval()
	if err != nil {
		return nil, err
	}

	switch {
	case n.op == OpPlus || n.op == OpMinus || n.op == OpMultiply || n.op == OpDivide:
		return evalArithmetic(left, right, n.op)
	case n.op == OpCaret:
		return evalPow(left, right)
	case n.op == OpConvert:
		return evalConversion(left, right)
	case n.op.IsComparison():
		return evalComparison(left, right, n.op)
	default:
		return nil, newError(KindInvalidOperator, "cannot fold operator %s", n.op)
	}
}

func evalArithmetic(left, right Value, op Operator) (Value, error) {
	lq, lok := quantityOf(left)
	rq, rok := quantityOf(right)
	if !lok || !rok {
		return nil, errUnableToOperate(op)
	}

	switch op {
	case OpPlus:
		return QuantityValue{lq.Add(rq)}, nil
	case OpMinus:
		return QuantityValue{lq.Sub(rq)}, nil
	case OpMultiply:
		return QuantityValue{lq.Mul(rq)}, nil
	case OpDivide:
		result, err := lq.Div(rq)
		if err != nil {
			return nil, wrapAlgebraError(err)
		}
		return QuantityValue{result}, nil
	default:
		return nil, errUnableToOperate(op)
	}
}

func evalPow(left, right Value) (Value, error) {
	lq, lok := quantityOf(left)
	rq, rok := quantityOf(right)
	if !lok || !rok {
		return nil, errUnableToOperate(OpCaret)
	}
	result, err := lq.Pow(rq)
	if err != nil {
		return nil, wrapAlgebraError(err)
	}
	return QuantityValue{result}, nil
}

func evalConversion(left, right Value) (Value, error) {
	lq, ok := quantityOf(left)
	if !ok {
		return nil, errUnableToOperate(OpConvert)
	}

	// The conversion target is the right value's unit; a pure number target
	// passes the amount through unchanged.
	var target *units.Unit
	switch r := right.(type) {
	case UnitValue:
		target = r.Unit
	case QuantityValue:
		target = r.Quantity.Unit()
	}

	result, err := lq.ConvertTo(target)
	if err != nil {
		return nil, wrapAlgebraError(err)
	}
	return QuantityValue{result}, nil
}

func evalComparison(left, right Value, op Operator) (Value, error) {
	lq, lok := quantityOf(left)
	rq, rok := quantityOf(right)
	if !lok || !rok {
		return nil, errUnableToOperate(op)
	}

	truthy, err := Compare(lq, rq, op)
	if err != nil {
		return nil, err
	}
	if truthy {
		return QuantityValue{units.New(decimal.NewFromInt(1))}, nil
	}
	return QuantityValue{units.New(decimal.Zero)}, nil
}

// funcNode applies a registered function to evaluated arguments. Arguments
// must all be quantities.
type funcNode struct {
	def  funcs.Def
	args []exprNode
}

func (n funcNode) eval() (Value, error) {
	params := make([]units.Quantity, 0, len(n.args))
	for _, argNode := range n.args {
		value, err := argNode.eval()
		if err != nil {
			return nil, err
		}
		q, ok := quantityOf(value)
		if !ok {
			return nil, &Error{Kind: KindExpectedQuantity}
		}
		params = append(params, q)
	}

	result, err := n.def.Eval(params)
	if err != nil {
		return nil, wrapAlgebraError(err)
	}
	return QuantityValue{result}, nil
}

// canOperate reports whether two operand nodes may fold under an arithmetic
// or comparison operator: their units must share a canonical base, or at
// least one side must be unitless. Operand nodes are literals, so evaluation
// here cannot fail; a failure defers to the fold for reporting.
func canOperate(left, right exprNode) bool {
	lv, err := left.eval()
	if err != nil {
		return true
	}
	rv, err := right.eval()
	if err != nil {
		return true
	}

	lu, ru := lv.BaseUnit(), rv.BaseUnit()
	if lu == nil || ru == nil {
		return true
	}
	return lu.Num.Canonical.Equal(ru.Num.Canonical)
}
