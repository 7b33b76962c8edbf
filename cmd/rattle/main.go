// Command rattle is the CLI entry point for the rattle front-end.
//
// Usage:
//
//	rattle tokens <file>            Print tokens
//	rattle tokens <file> --json     Print tokens as JSON
//	rattle parse  <file>            Print AST as JSON
//	rattle repl                     Start interactive REPL
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rattle",
	Short: "rattle tokenizes, parses, and analyzes rattle source files",
	Long: `rattle runs the lexer, parser, and syntax analyzer over a source
file and reports either the resulting tokens or the resulting AST; the
AST can also be produced interactively in a REPL.`,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readFile(filename string) (string, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return string(source), nil
}
