package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"rattle/internal/ast"
	"rattle/internal/diag"
	"rattle/internal/token"
)

var (
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTokensText(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		lexeme := tok.Lexeme
		if tok.Kind == token.Marker && token.MarkerFlag(tok.Flags) == token.Newline {
			lexeme = `\n`
		}
		fmt.Fprintf(w, "%-12s %-20q %d:%d\n", tok.Kind, lexeme, tok.Start.Line, tok.Start.Column)
	}
}

type tokenJSON struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

func tokensToJSON(tokens []token.Token) []tokenJSON {
	out := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		out[i] = tokenJSON{Kind: tok.Kind.String(), Lexeme: tok.Lexeme, Line: tok.Start.Line, Column: tok.Start.Column}
	}
	return out
}

func printDiagsText(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String())
	}
}

// printDiagsColored renders diagnostics with fatih/color: red for errors,
// yellow for warnings, for a driver writing to a TTY.
func printDiagsColored(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		c := errorColor
		if d.Severity == diag.SeverityWarning {
			c = warningColor
		}
		c.Fprintln(w, d.String())
	}
}

func astToJSON(arena *ast.Arena, statements []ast.StmtHandle) []interface{} {
	out := make([]interface{}, len(statements))
	for i, h := range statements {
		out[i] = ast.NodeToMap(arena, arena.Stmt(h))
	}
	return out
}

func exitNonZeroIfDiagnostics(diags []diag.Diagnostic) {
	if len(diags) > 0 {
		os.Exit(1)
	}
}
