package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/marl-lang/marlc"
	"github.com/marl-lang/marlc/marl"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.marl>",
	Short: "Lex a script and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", args[0], err)
		return err
	}

	tokens, lerr := marlc.Tokenize(string(source))
	if lerr != nil {
		printDiagnostic(lerr)
		return lerr
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Kind", "Lexeme", "Line", "Col"})
	for _, tok := range tokens {
		if tok.Kind == marl.TokenEOF {
			break
		}
		table.Append([]string{
			tok.Kind.String(),
			tok.Lexeme,
			strconv.Itoa(tok.Span.Start.Line),
			strconv.Itoa(tok.Span.Start.Column),
		})
	}
	table.Render()
	return nil
}
