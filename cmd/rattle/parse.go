package main

import (
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse and analyze a source file and print its AST as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readFile(args[0])
	if err != nil {
		return err
	}

	result := runPipeline(source)

	out := map[string]interface{}{
		"statements":  astToJSON(result.Arena, result.Statements),
		"diagnostics": result.Diagnostics,
	}
	if err := printJSON(os.Stdout, out); err != nil {
		return err
	}

	exitNonZeroIfDiagnostics(result.Diagnostics)
	return nil
}
