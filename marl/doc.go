// Package marl provides MARL (Matrix ARray Language) parsing.
//
// MARL is a small scripting language for array and matrix computation with
// R-flavored indexing and a cast syntax over a fixed set of value types.
//
// # Components
//
// The marl package consists of several components:
//
//   - Lexer: Tokenizes MARL source code into tokens, on demand
//   - Parser: Parses tokens into an AST (Abstract Syntax Tree)
//   - AST: Type definitions for the abstract syntax tree
//   - SourceError: Source-located lexical and syntactic diagnostics
//
// # Usage
//
// To parse a MARL script:
//
//	source := `
//	X = rand(100, 10);
//	for (i in 1:10) {
//	    X = X @ W + b;
//	}
//	`
//
//	parser := marl.NewParser(source)
//	script, err := parser.Parse()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For token-level access:
//
//	lexer := marl.NewLexer(source)
//	for {
//	    tok, err := lexer.Next()
//	    if err != nil || tok.Kind == marl.TokenEOF {
//	        break
//	    }
//	    fmt.Println(tok.Kind, tok.Lexeme)
//	}
//
// # Scope
//
// The package is a pure front end. It produces a syntax tree and structured
// errors and nothing more: no type checking, no shape inference, no builtin
// resolution, no execution. Parsing is sequential and free of shared state;
// independent parsers may run concurrently.
//
// # Grammar notes
//
// Every binary operator level is left-associative, including '^' and the
// single comparison level: "2^3^2" parses as (2^3)^2 and "a<b<c" as
// (a<b)<c. Function calls require at least one argument; a zero-argument
// call is not expressible.
package marl
