package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/unitcalc/unitcalc/pkg/unitexpr"
)

var (
	numberColor   = color.New(color.FgCyan)
	literalColor  = color.New(color.FgYellow)
	operatorColor = color.New(color.FgGreen)
	groupingColor = color.New(color.Bold)
	errorColor    = color.New(color.FgRed)
	promptColor   = color.New(color.FgRed)
)

// runRepl reads one line per turn, evaluates it, and prints either the
// result tokens or the residual stream. Errors are printed and the loop
// continues.
func runRepl(in io.Reader, out io.Writer, factory *unitexpr.Factory, plain bool) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt(plain))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := factory.Parse(line)
		if err != nil {
			fmt.Fprintln(out, paint(errorColor, err.Error(), plain))
			continue
		}

		tokens := result.Tokens()

		// A single leftover literal may be a command.
		if len(tokens) == 1 && tokens[0].IsLiteral() {
			if output, ok := runCommand(tokens[0].Text, factory); ok {
				fmt.Fprintln(out, output)
				continue
			}
		}

		fmt.Fprintln(out, renderTokens(tokens, plain))
	}

	return scanner.Err()
}

func prompt(plain bool) string {
	return paint(promptColor, "> ", plain)
}

// runCommand dispatches the single-literal REPL commands.
func runCommand(name string, factory *unitexpr.Factory) (string, bool) {
	switch name {
	case "help":
		return helpText(), true
	case "constants":
		var lines []string
		for _, c := range factory.Constants() {
			lines = append(lines, fmt.Sprintf("%s = %s", c.Name, c.Value))
		}
		return strings.Join(lines, "\n"), true
	case "functions":
		return strings.Join(factory.Funcs().Names(), "\n"), true
	case "units":
		var lines []string
		for _, b := range factory.Units().Bases() {
			lines = append(lines, b.Long)
		}
		return strings.Join(lines, "\n"), true
	default:
		return "", false
	}
}

func helpText() string {
	return strings.Join([]string{
		"enter an expression to evaluate it, e.g. 1000 MB/s -> GB/min",
		"",
		"commands:",
		"  help        show this list",
		"  constants   list registered constants",
		"  functions   list registered functions",
		"  units       list registered units",
		"",
		"name = number defines a constant",
	}, "\n")
}

// renderTokens joins the tokens' surface forms with spaces, coloured by
// token kind unless plain is set.
func renderTokens(tokens []unitexpr.Token, plain bool) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = paint(tokenColor(tok), tok.String(), plain)
	}
	return strings.Join(parts, " ")
}

func tokenColor(tok unitexpr.Token) *color.Color {
	switch tok.Kind {
	case unitexpr.KindNumber:
		return numberColor
	case unitexpr.KindLiteral:
		return literalColor
	case unitexpr.KindOperator:
		return operatorColor
	case unitexpr.KindStartGrouping, unitexpr.KindEndGrouping:
		return groupingColor
	default:
		return nil
	}
}

func paint(c *color.Color, s string, plain bool) string {
	if plain || c == nil {
		return s
	}
	return c.Sprint(s)
}
