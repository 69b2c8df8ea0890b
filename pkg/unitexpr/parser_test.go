package unitexpr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/unitcalc/unitcalc/pkg/unitexpr/units"
)

// parseQuantity reduces input to a single quantity or fails the test.
func parseQuantity(t *testing.T, factory *Factory, input string) units.Quantity {
	t.Helper()

	result, err := factory.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	value, ok := result.Single()
	if !ok {
		t.Fatalf("Parse(%q) stalled: %s", input, Render(result.Tokens()))
	}
	q, ok := quantityOf(value)
	if !ok {
		t.Fatalf("Parse(%q) = %s, want a quantity", input, value)
	}
	return q
}

func assertParses(t *testing.T, factory *Factory, input, wantAmount, wantUnit string) {
	t.Helper()

	q := parseQuantity(t, factory, input)
	if !q.Amount().Equal(decimal.RequireFromString(wantAmount)) {
		t.Errorf("Parse(%q) amount = %s, want %s", input, q.Amount(), wantAmount)
	}
	switch {
	case wantUnit == "" && q.Unit() != nil:
		t.Errorf("Parse(%q) unit = %s, want none", input, q.Unit())
	case wantUnit != "" && (q.Unit() == nil || q.Unit().Short() != wantUnit):
		t.Errorf("Parse(%q) unit = %v, want %s", input, q.Unit(), wantUnit)
	}
}

func TestParseBasics(t *testing.T) {
	factory := New()

	cases := []struct {
		input  string
		amount string
	}{
		{"1 + 1", "2"},
		{"1 - 1", "0"},
		{"2 * 2", "4"},
		{"10 / 2", "5"},
		{"2^2", "4"},
		{"2^2^2", "16"},
		{"1 + (1 + 1)", "3"},
		{"(1 - 1) + 1", "1"},
		{"1 + (2 * 5)", "11"},
		{"(2 * 5) / 5", "2"},
		{"1 + 2 * 3", "7"},
		// Unitless distributivity: (A + B) * C == A*C + B*C.
		{"(1 + 2) * 4", "12"},
		{"1 * 4 + 2 * 4", "12"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assertParses(t, factory, tc.input, tc.amount, "")
		})
	}
}

func TestParseUnits(t *testing.T) {
	factory := New()

	cases := []struct {
		input  string
		amount string
		unit   string
	}{
		{"3 GB - 1 GB", "2", "GB"},
		{"3GB - 1GB", "2", "GB"},
		{"1GB + 1GB", "2", "GB"},
		{"1GB * 1GB", "1", "GB"},
		{"4GB / 2GB", "2", "GB"},
		{"900GB + 200GB", "1100", "GB"},
		{"1 h - 30 min", "0.5", "h"},
		{"10 min", "10", "min"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assertParses(t, factory, tc.input, tc.amount, tc.unit)
		})
	}
}

func TestParseConversion(t *testing.T) {
	factory := New()

	cases := []struct {
		input  string
		amount string
		unit   string
	}{
		{"1000 MB/s -> GB/min", "60", "GB/min"},
		{"1024 MB -> GB", "1.024", "GB"},
		{"1 h -> min", "60", "min"},
		{"5280 ft -> yd", "1760", "yd"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assertParses(t, factory, tc.input, tc.amount, tc.unit)
		})
	}

	t.Run("incompatible units error", func(t *testing.T) {
		_, err := factory.Parse("1 GB -> s")
		if !IsKind(err, KindIncompatibleUnits) {
			t.Errorf("err = %v, want IncompatibleUnits", err)
		}
	})

	t.Run("unitless source cannot convert", func(t *testing.T) {
		_, err := factory.Parse("1 -> ms")
		if !IsKind(err, KindUnableToOperate) {
			t.Errorf("err = %v, want UnableToOperate", err)
		}
	})
}

func TestParseComparisons(t *testing.T) {
	factory := New()

	cases := []struct {
		input string
		want  string
	}{
		{"1GB == 1GB", "1"},
		{"2GB > 1GB", "1"},
		{"2GB >= 1GB", "1"},
		{"1GB < 2GB", "1"},
		{"1GB <= 2GB", "1"},
		{"1GB != 1GB", "0"},
		{"1,000 GB == 1 TB", "1"},
		{"1 GB == 2 GB", "0"},
		{"5 min > 200 s", "1"},
		{"200 s < 5 min", "1"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			assertParses(t, factory, tc.input, tc.want, "")
		})
	}
}

func TestParsePercent(t *testing.T) {
	factory := New()

	assertParses(t, factory, "200 - 10%", "180", "")
	assertParses(t, factory, "200 + 20%", "240", "")
}

func TestParseCoalescing(t *testing.T) {
	factory := New()

	t.Run("adjacent quantities fold under the largest unit", func(t *testing.T) {
		assertParses(t, factory, "5 min 30 s", "5.5", "min")
	})

	t.Run("imperial idiom", func(t *testing.T) {
		assertParses(t, factory, "5 ft 6 in", "5.5", "ft")
	})

	t.Run("mixed families stay apart", func(t *testing.T) {
		result, err := factory.Parse("5 min 3 GB")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := result.Single(); ok {
			t.Errorf("expected a stall, got %s", result)
		}
	})
}

func TestParseFunctions(t *testing.T) {
	factory := New()

	assertParses(t, factory, "max(1.5, 10.0)", "10", "")
	assertParses(t, factory, "max(1.5, 10.0, 30.0, 15.0)", "30", "")
	assertParses(t, factory, "min(4, 2, 8)", "2", "")
	assertParses(t, factory, "sqrt(4)", "2", "")
	assertParses(t, factory, "max(10 MB, 2 GB)", "2", "GB")

	t.Run("unknown function", func(t *testing.T) {
		_, err := factory.Parse("frobnicate(1)")
		if !IsKind(err, KindInvalidFunction) {
			t.Errorf("err = %v, want InvalidFunction", err)
		}
	})

	t.Run("trailing comma", func(t *testing.T) {
		_, err := factory.Parse("max(1,)")
		if !IsKind(err, KindExpectedArgument) {
			t.Errorf("err = %v, want ExpectedArgument", err)
		}
	})

	t.Run("math domain propagates", func(t *testing.T) {
		_, err := factory.Parse("ln(0)")
		if !IsKind(err, KindMathDomain) {
			t.Errorf("err = %v, want MathDomain", err)
		}
	})
}

func TestParseConstants(t *testing.T) {
	t.Run("PI is exact", func(t *testing.T) {
		factory := New()
		q := parseQuantity(t, factory, "PI")
		if q.Amount().String() != "3.14159265358979323846264338327950288" {
			t.Errorf("PI = %s", q.Amount())
		}
	})

	t.Run("definition persists across parses", func(t *testing.T) {
		factory := New()
		assertParses(t, factory, "x = 42", "42", "")
		assertParses(t, factory, "x + 1", "43", "")
	})

	t.Run("registry shadowing", func(t *testing.T) {
		factory := New()
		factory.AddConstant("x", decimal.NewFromInt(1))
		factory.AddConstant("x", decimal.NewFromInt(2))
		assertParses(t, factory, "x", "2", "")
	})
}

func TestParseErrors(t *testing.T) {
	factory := New()

	t.Run("division by zero", func(t *testing.T) {
		_, err := factory.Parse("10 / 0")
		if !IsKind(err, KindDivisionByZero) {
			t.Errorf("err = %v, want DivisionByZero", err)
		}
	})

	t.Run("missing right operand", func(t *testing.T) {
		_, err := factory.Parse("5 +")
		if !IsKind(err, KindInputEmpty) {
			t.Errorf("err = %v, want InputEmpty", err)
		}
	})

	t.Run("exponent with units refuses", func(t *testing.T) {
		_, err := factory.Parse("2 GB ^ 2")
		if !IsKind(err, KindUnableToOperate) {
			t.Errorf("err = %v, want UnableToOperate", err)
		}
	})
}

func TestParseMulti(t *testing.T) {
	factory := New()

	t.Run("mixed units stall instead of erroring", func(t *testing.T) {
		result, err := factory.Parse("5 min + 3 GB")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := result.Single(); ok {
			t.Fatalf("expected residual tokens, got %s", result)
		}
		if got := Render(result.Tokens()); got != "5 min + 3 GB" {
			t.Errorf("residual = %q", got)
		}
	})

	t.Run("modulo is reserved", func(t *testing.T) {
		result, err := factory.Parse("10 % 3")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := result.Single(); ok {
			t.Error("expected a stall")
		}
	})

	t.Run("lone unary minus stalls", func(t *testing.T) {
		result, err := factory.Parse("-1")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := result.Single(); ok {
			t.Error("expected a stall")
		}
	})

	t.Run("approximate equality is parsed but not evaluated", func(t *testing.T) {
		result, err := factory.Parse("1 ~= 1")
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := result.Single(); ok {
			t.Error("expected a stall")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		result, err := factory.Parse("")
		if err != nil {
			t.Fatal(err)
		}
		if len(result.Tokens()) != 0 {
			t.Errorf("tokens = %v", result.Tokens())
		}
	})
}

func TestParseSingleLiteral(t *testing.T) {
	factory := New()

	result, err := factory.Parse("help")
	if err != nil {
		t.Fatal(err)
	}
	value, ok := result.Single()
	if !ok {
		t.Fatalf("expected a single value, got %s", result)
	}
	if _, isUnit := value.(UnitValue); !isUnit {
		t.Errorf("value = %T, want a bare unit", value)
	}
	tokens := result.Tokens()
	if len(tokens) != 1 || !tokens[0].IsLiteral() || tokens[0].Text != "help" {
		t.Errorf("tokens = %v", tokens)
	}
}

func TestParseSteps(t *testing.T) {
	factory := New()

	t.Run("one snapshot per reduction", func(t *testing.T) {
		parser := factory.NewParser("1 + 2 * 3")
		if _, err := parser.Parse(); err != nil {
			t.Fatal(err)
		}

		steps := parser.Steps()
		if len(steps) != 2 {
			t.Fatalf("steps = %d, want 2", len(steps))
		}
		if got := Render(steps[0]); got != "1 + 6" {
			t.Errorf("first step = %q", got)
		}
		if got := Render(steps[1]); got != "7" {
			t.Errorf("second step = %q", got)
		}
	})

	t.Run("coalescing records a step", func(t *testing.T) {
		parser := factory.NewParser("5 min 30 s + 1 min")
		if _, err := parser.Parse(); err != nil {
			t.Fatal(err)
		}

		steps := parser.Steps()
		if len(steps) < 2 {
			t.Fatalf("steps = %d, want at least 2", len(steps))
		}
		if got := Render(steps[0]); got != "5.5 min + 1 min" {
			t.Errorf("first step = %q", got)
		}
	})

	t.Run("buffer shrinks every step", func(t *testing.T) {
		parser := factory.NewParser("1 + 2 + 3 + 4 + 5")
		if _, err := parser.Parse(); err != nil {
			t.Fatal(err)
		}

		steps := parser.Steps()
		last := len(parser.tokenizer.Tokens())
		for i, step := range steps {
			if len(step) >= last {
				t.Errorf("step %d did not shrink: %d -> %d", i, last, len(step))
			}
			last = len(step)
		}
	})
}

func TestParseDebugTrace(t *testing.T) {
	factory := New()

	var buf bytes.Buffer
	parser := factory.NewParser("1 + 1", WithDebug(&buf))
	if _, err := parser.Parse(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "parsed tokens") {
		t.Error("debug trace missing")
	}

	quiet := factory.NewParser("1 + 1")
	if _, err := quiet.Parse(); err != nil {
		t.Fatal(err)
	}
}

func TestParseTermination(t *testing.T) {
	factory := New()

	// None of these may hang; stalls and errors are both acceptable.
	inputs := []string{
		"", " ", "@@@", "1 2 3", "+ +", "-1", "10 % 3",
		"a b c", "1 ~= 2 ~= 3", "] [", "5 5 5 GB",
	}
	for _, input := range inputs {
		_, _ = factory.Parse(input)
	}
}
