package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/marl-lang/marlc"
	"github.com/marl-lang/marlc/marl"
)

var rootCmd = &cobra.Command{
	Use:   "marlc",
	Short: "MARL compiler front end",
	Long: `marlc parses MARL (Matrix ARray Language) scripts and prints the
resulting syntax tree or a source-located diagnostic.

The front end stops at the AST: type inference, optimization and code
generation live in the downstream compiler.`,
	Version:       marlc.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// printDiagnostic writes a front-end error to stderr, with caret context
// and color when the error carries a source span.
func printDiagnostic(err error) {
	var se *marl.SourceError
	if errors.As(err, &se) {
		color.New(color.FgRed).Fprintln(os.Stderr, se.FormatWithContext())
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
