package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marl-lang/marlc"
	"github.com/marl-lang/marlc/marl"
)

var parseQuiet bool

var parseCmd = &cobra.Command{
	Use:   "parse <file.marl>",
	Short: "Parse a script and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&parseQuiet, "quiet", "q", false, "check only, do not print the AST")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", args[0], err)
		return err
	}

	script, perr := marlc.Parse(string(source))
	if perr != nil {
		printDiagnostic(perr)
		return perr
	}

	if !parseQuiet {
		fmt.Print(marl.Dump(script))
	}
	return nil
}
