// Package marlc provides the MARL (Matrix ARray Language) compiler front end.
//
// marlc converts MARL source text into an abstract syntax tree suitable for
// a downstream compiler. The front end covers lexing, parsing and
// diagnostics; type inference, optimization and code generation are
// external consumers of the AST.
//
// Example usage:
//
//	source := `
//	X = rand(100, 10, 0.0, 1.0);
//	Y = X @ W;
//	`
//	script, err := marlc.Parse(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For lower-level access to the lexer and parser, use the marl package
// directly.
package marlc

import (
	"github.com/marl-lang/marlc/marl"
)

// Version is the front-end version reported by the CLI.
const Version = "0.1.0-dev"

// Parse parses MARL source code to a Script AST.
//
// On failure the returned error is (or wraps) a *marl.SourceError carrying
// the phase, message and source span of the first problem found. The
// partial script returned alongside an error is not guaranteed meaningful.
func Parse(source string) (*marl.Script, error) {
	return marl.NewParser(source).Parse()
}

// Tokenize lexes MARL source code into its full token sequence, ending with
// the end-of-input token.
func Tokenize(source string) ([]marl.Token, error) {
	return marl.NewLexer(source).Tokenize()
}
