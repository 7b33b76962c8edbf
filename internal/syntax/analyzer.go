// Package syntax turns the parse tree internal/parser builds into the
// typed AST defined by internal/ast: resolving the shapes the parser
// left deliberately ambiguous (is-not vs is, not-in vs in, call vs tuple
// vs group, assignable vs bindable targets) by threading a constraint
// bitset down through the tree and inspecting what came back up.
package syntax

import (
	"rattle/internal/ast"
	"rattle/internal/tree"
)

// ParserSource is the parser-stage contract the analyzer pulls from —
// structurally satisfied by *parser.Parser without this package needing
// to import it.
type ParserSource interface {
	Next() tree.StmtHandle
	Empty() bool
	Arena() *tree.Arena
}

// Analyzer is the pipeline stage that pulls parse-tree statements one at
// a time and hands back their AST equivalents, owning the AST arena
// every handle it returns is allocated from.
type Analyzer struct {
	parser ParserSource
	expr   *ExpressionAnalyzer
	stmt   *StatementAnalyzer
	ast    *ast.Arena
}

// New wraps parser, starting a fresh AST arena.
func New(parser ParserSource, reactor Reactor) *Analyzer {
	treeArena := parser.Arena()
	astArena := ast.NewArena()
	expr := NewExpressionAnalyzer(treeArena, astArena, reactor)
	stmt := NewStatementAnalyzer(treeArena, astArena, reactor, expr)
	return &Analyzer{parser: parser, expr: expr, stmt: stmt, ast: astArena}
}

// Arena exposes the AST arena backing every handle this analyzer returns.
func (a *Analyzer) Arena() *ast.Arena { return a.ast }

// Empty reports whether the parser stage has nothing further to yield.
func (a *Analyzer) Empty() bool { return a.parser.Empty() }

// Next pulls one parse-tree statement and analyzes it into an AST
// statement. A null handle paired with a false Empty() means the parser
// yielded nothing for this pull — callers should keep pulling.
func (a *Analyzer) Next() ast.StmtHandle {
	stmt := a.parser.Next()
	if stmt.IsNil() {
		return ast.StmtHandle{}
	}
	return a.stmt.Analyze(stmt)
}

// Drain pulls and analyzes every remaining statement, for callers that
// want the whole program at once rather than one statement at a time.
func (a *Analyzer) Drain() []ast.StmtHandle {
	var out []ast.StmtHandle
	for !a.Empty() {
		if h := a.Next(); !h.IsNil() {
			out = append(out, h)
		}
	}
	return out
}
