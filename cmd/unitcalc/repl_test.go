package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/unitcalc/unitcalc/pkg/unitexpr"
)

func runLines(t *testing.T, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	if err := runRepl(in, &out, unitexpr.New(), true); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestReplEvaluates(t *testing.T) {
	out := runLines(t, "1 + 1")
	if !strings.Contains(out, "2") {
		t.Errorf("output = %q", out)
	}
}

func TestReplUnits(t *testing.T) {
	out := runLines(t, "3 GB - 1 GB")
	if !strings.Contains(out, "2 GB") {
		t.Errorf("output = %q", out)
	}
}

func TestReplCommands(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		out := runLines(t, "help")
		if !strings.Contains(out, "commands:") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("constants", func(t *testing.T) {
		out := runLines(t, "constants")
		if !strings.Contains(out, "PI = 3.14159265358979323846264338327950288") {
			t.Errorf("output = %q", out)
		}
		if !strings.Contains(out, "E = ") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("functions", func(t *testing.T) {
		out := runLines(t, "functions")
		for _, name := range []string{"min", "max", "sqrt", "atan2"} {
			if !strings.Contains(out, name) {
				t.Errorf("functions output missing %s", name)
			}
		}
	})

	t.Run("units", func(t *testing.T) {
		out := runLines(t, "units")
		for _, name := range []string{"second", "gigabyte", "fortnight", "hertz"} {
			if !strings.Contains(out, name) {
				t.Errorf("units output missing %s", name)
			}
		}
	})
}

func TestReplConstantDefinition(t *testing.T) {
	out := runLines(t, "x = 42", "x + 1")
	if !strings.Contains(out, "43") {
		t.Errorf("output = %q", out)
	}
}

func TestReplErrorsContinue(t *testing.T) {
	out := runLines(t, "1 GB -> s", "1 + 1")
	if !strings.Contains(out, "IncompatibleUnits") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "2") {
		t.Errorf("loop must continue after an error: %q", out)
	}
}

func TestReplResidualTokens(t *testing.T) {
	out := runLines(t, "5 min + 3 GB")
	if !strings.Contains(out, "5 min + 3 GB") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderTokensPlain(t *testing.T) {
	tokens := []unitexpr.Token{
		unitexpr.OperatorToken(unitexpr.OpPlus),
		unitexpr.LiteralToken("GB"),
	}
	if got := renderTokens(tokens, true); got != "+ GB" {
		t.Errorf("renderTokens = %q", got)
	}
}
