// Command marlc is the MARL front-end CLI.
//
// Usage:
//
//	marlc parse script.marl     # Parse and print the AST
//	marlc tokens script.marl    # Print the token stream
//	marlc repl                  # Interactive parser
package main

import (
	"os"

	"github.com/marl-lang/marlc/cmd/marlc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
