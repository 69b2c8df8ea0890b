package funcs

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// registerBuiltins installs the built-in math functions. Single-argument
// functions apply to the display amount and carry the argument's unit
// forward; two-argument functions operate on both display amounts and carry
// the left unit. min and max compare on total amount and return the winning
// quantity whole.
func registerBuiltins(r *Registry) {
	r.Register(Def{Name: "min", Eval: evalMin})
	r.Register(Def{Name: "max", Eval: evalMax})

	r.Register(exact("ceil", func(d decimal.Decimal) decimal.Decimal { return d.Ceil() }))
	r.Register(exact("floor", func(d decimal.Decimal) decimal.Decimal { return d.Floor() }))
	r.Register(exact("round", func(d decimal.Decimal) decimal.Decimal { return d.Round(0) }))
	r.Register(exact("trunc", func(d decimal.Decimal) decimal.Decimal { return d.Truncate(0) }))
	r.Register(exact("fract", func(d decimal.Decimal) decimal.Decimal { return d.Sub(d.Truncate(0)) }))
	r.Register(exact("abs", func(d decimal.Decimal) decimal.Decimal { return d.Abs() }))
	r.Register(exact("signum", func(d decimal.Decimal) decimal.Decimal { return decimal.NewFromInt(int64(d.Sign())) }))

	r.Register(single("sqrt", math.Sqrt))
	r.Register(single("exp", math.Exp))
	r.Register(single("exp2", math.Exp2))
	r.Register(single("ln", math.Log))
	r.Register(single("log2", math.Log2))
	r.Register(single("log10", math.Log10))
	r.Register(single("cbrt", math.Cbrt))
	r.Register(single("sin", math.Sin))
	r.Register(single("cos", math.Cos))
	r.Register(single("tan", math.Tan))
	r.Register(single("asin", math.Asin))
	r.Register(single("atan", math.Atan))
	r.Register(single("acos", math.Acos))
	r.Register(single("sinh", math.Sinh))
	r.Register(single("tanh", math.Tanh))
	r.Register(single("cosh", math.Cosh))
	r.Register(single("asinh", math.Asinh))
	r.Register(single("atanh", math.Atanh))
	r.Register(single("acosh", math.Acosh))

	r.Register(double("copysign", math.Copysign))
	r.Register(Def{Name: "divEuclid", Eval: evalDivEuclid})
	r.Register(Def{Name: "remEuclid", Eval: evalRemEuclid})
	r.Register(double("powf", math.Pow))
	r.Register(double("log", func(x, base float64) float64 { return math.Log(x) / math.Log(base) }))
	r.Register(double("hypot", math.Hypot))
	r.Register(double("atan2", math.Atan2))
}

// exact wraps a decimal-exact single-argument operation.
func exact(name string, fn func(decimal.Decimal) decimal.Decimal) Def {
	return Def{Name: name, Eval: func(args []units.Quantity) (units.Quantity, error) {
		q, err := arg(args, 0)
		if err != nil {
			return units.Quantity{}, err
		}
		return q.WithAmount(fn(q.Amount())), nil
	}}
}

// single wraps a float64 single-argument operation, rounding the result back
// into the decimal domain. NaN and infinite results become ErrMathDomain.
func single(name string, fn func(float64) float64) Def {
	return Def{Name: name, Eval: func(args []units.Quantity) (units.Quantity, error) {
		q, err := arg(args, 0)
		if err != nil {
			return units.Quantity{}, err
		}
		f, _ := q.Amount().Float64()
		d, err := units.FromFloat(fn(f))
		if err != nil {
			return units.Quantity{}, err
		}
		return q.WithAmount(d), nil
	}}
}

// double wraps a float64 two-argument operation; the result carries the left
// argument's unit.
func double(name string, fn func(a, b float64) float64) Def {
	return Def{Name: name, Eval: func(args []units.Quantity) (units.Quantity, error) {
		left, err := arg(args, 0)
		if err != nil {
			return units.Quantity{}, err
		}
		right, err := arg(args, 1)
		if err != nil {
			return units.Quantity{}, err
		}
		a, _ := left.Amount().Float64()
		b, _ := right.Amount().Float64()
		d, err := units.FromFloat(fn(a, b))
		if err != nil {
			return units.Quantity{}, err
		}
		return left.WithAmount(d), nil
	}}
}

func evalMin(args []units.Quantity) (units.Quantity, error) {
	best, err := arg(args, 0)
	if err != nil {
		return units.Quantity{}, err
	}
	for _, other := range args[1:] {
		best = best.MinOf(other)
	}
	return best, nil
}

func evalMax(args []units.Quantity) (units.Quantity, error) {
	best, err := arg(args, 0)
	if err != nil {
		return units.Quantity{}, err
	}
	for _, other := range args[1:] {
		best = best.MaxOf(other)
	}
	return best, nil
}

func evalDivEuclid(args []units.Quantity) (units.Quantity, error) {
	left, err := arg(args, 0)
	if err != nil {
		return units.Quantity{}, err
	}
	right, err := arg(args, 1)
	if err != nil {
		return units.Quantity{}, err
	}
	if right.Amount().IsZero() {
		return units.Quantity{}, units.ErrDivisionByZero
	}
	a, _ := left.Amount().Float64()
	b, _ := right.Amount().Float64()
	d, err := units.FromFloat((a - remEuclid(a, b)) / b)
	if err != nil {
		return units.Quantity{}, err
	}
	return left.WithAmount(d), nil
}

func evalRemEuclid(args []units.Quantity) (units.Quantity, error) {
	left, err := arg(args, 0)
	if err != nil {
		return units.Quantity{}, err
	}
	right, err := arg(args, 1)
	if err != nil {
		return units.Quantity{}, err
	}
	if right.Amount().IsZero() {
		return units.Quantity{}, units.ErrDivisionByZero
	}
	a, _ := left.Amount().Float64()
	b, _ := right.Amount().Float64()
	d, err := units.FromFloat(remEuclid(a, b))
	if err != nil {
		return units.Quantity{}, err
	}
	return left.WithAmount(d), nil
}

// remEuclid is the Euclidean remainder: always in [0, |b|).
func remEuclid(a, b float64) float64 {
	r := math.Mod(a, b)
	if r < 0 {
		r += math.Abs(b)
	}
	return r
}

func arg(args []units.Quantity, i int) (units.Quantity, error) {
	if i >= len(args) {
		return units.Quantity{}, ErrExpectedArgument
	}
	return args[i], nil
}
