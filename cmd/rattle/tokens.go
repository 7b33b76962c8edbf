package main

import (
	"os"

	"github.com/spf13/cobra"

	"rattle/internal/diag"
)

var tokensJSONFlag bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSONFlag, "json", false, "print tokens as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readFile(args[0])
	if err != nil {
		return err
	}

	tokens, errs := lexAll(source)
	diags := make([]diag.Diagnostic, len(errs))
	for i, e := range errs {
		diags[i] = diag.FromLexer(e)
	}

	if tokensJSONFlag {
		out := map[string]interface{}{
			"tokens":      tokensToJSON(tokens),
			"diagnostics": diags,
		}
		if err := printJSON(os.Stdout, out); err != nil {
			return err
		}
	} else {
		printTokensText(os.Stdout, tokens)
		printDiagsText(os.Stderr, diags)
	}

	exitNonZeroIfDiagnostics(diags)
	return nil
}
