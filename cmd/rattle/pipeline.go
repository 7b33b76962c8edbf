package main

import (
	"rattle/internal/ast"
	"rattle/internal/diag"
	"rattle/internal/lexer"
	"rattle/internal/parser"
	"rattle/internal/syntax"
	"rattle/internal/token"
)

// collectingLexReactor gathers every lexer diagnostic instead of acting on
// it; lexer.BaseReactor only supplies no-op Cache/Trace, so Report still
// needs a body here to satisfy lexer.Reactor.
type collectingLexReactor struct {
	lexer.BaseReactor
	Errors []lexer.Error
}

func (r *collectingLexReactor) Report(e lexer.Error) lexer.Outcome {
	r.Errors = append(r.Errors, e)
	return lexer.Resume
}

// lexAll runs the lexer to completion over source, collecting every token
// up to (and including) the terminal Eot, plus every diagnostic raised
// along the way.
func lexAll(source string) ([]token.Token, []lexer.Error) {
	reactor := &collectingLexReactor{}
	l := lexer.New(source, reactor)
	var tokens []token.Token
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == token.Eot {
			break
		}
	}
	return tokens, reactor.Errors
}

// pipelineResult is everything a driver command needs after running the
// full lexer -> parser -> syntax analyzer pipeline over one source file.
type pipelineResult struct {
	Statements  []ast.StmtHandle
	Arena       *ast.Arena
	Diagnostics []diag.Diagnostic
}

// runPipeline lexes, parses, and analyzes source in one pass, converting
// every stage's typed errors into diag.Diagnostic as it goes.
func runPipeline(source string) pipelineResult {
	lexReactor := &collectingLexReactor{}
	l := lexer.New(source, lexReactor)

	parseReactor := &parser.BaseReactor{}
	p := parser.New(l, parseReactor)

	synReactor := &syntax.BaseReactor{}
	analyzer := syntax.New(p, synReactor)

	statements := analyzer.Drain()

	var diags []diag.Diagnostic
	for _, e := range lexReactor.Errors {
		diags = append(diags, diag.FromLexer(e))
	}
	for _, e := range parseReactor.Errors {
		diags = append(diags, diag.FromParser(e))
	}
	for _, e := range synReactor.Errors {
		diags = append(diags, diag.FromSyntax(e))
	}

	return pipelineResult{Statements: statements, Arena: analyzer.Arena(), Diagnostics: diags}
}
