package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unitcalc/unitcalc/pkg/unitexpr"
)

var version = "dev"

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	rootCmd := newRootCmd()
	return rootCmd.Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unitcalc",
		Short: "unitcalc - unit-aware expression calculator",
		Long: `unitcalc evaluates arithmetic expressions that mix numbers with
physical and informational units.

It provides:
  - Exact decimal arithmetic over time, length, mass, data and frequency units
  - Unit conversion with "->" (1000 MB/s -> GB/min)
  - Comparisons, percentages, math functions and user-defined constants
  - An interactive REPL, and an eval command that can print every
    reduction step`,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newEvalCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("unitcalc version %s\n", version)
		},
	}
}

func newReplCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive read-eval-print loop",
		Long: `Start the interactive loop. Each line is evaluated and the result
printed. Single-word inputs are commands:

  help        show this list
  constants   list registered constants
  functions   list registered functions
  units       list registered units

"name = number" defines a constant for the rest of the session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factory := unitexpr.New()
			return runRepl(cmd.InOrStdin(), cmd.OutOrStdout(), factory, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable coloured output")

	return cmd
}

func newEvalCmd() *cobra.Command {
	var showSteps bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "Evaluate one expression and print the result",
		Long: `Evaluate an expression and print the result.

Examples:
  unitcalc eval "3 GB - 1 GB"
  unitcalc eval "1000 MB/s -> GB/min"
  unitcalc eval --steps "1 + 2 * 3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := unitexpr.New()
			parser := factory.NewParser(args[0])

			result, err := parser.Parse()
			if err != nil {
				return fmt.Errorf("evaluation error: %w", err)
			}

			out := cmd.OutOrStdout()
			if showSteps {
				for _, step := range parser.Steps() {
					fmt.Fprintln(out, renderTokens(step, plain))
				}
			}
			fmt.Fprintln(out, renderTokens(result.Tokens(), plain))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSteps, "steps", false, "Print every reduction step")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable coloured output")

	return cmd
}
