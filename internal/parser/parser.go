// Package parser turns a filtered token stream into the parse tree defined
// by internal/tree: a small vocabulary of syntactic shapes built directly
// from tokens, with disambiguation left to the later syntax analyzer.
package parser

import (
	"rattle/internal/token"
	"rattle/internal/tree"
)

// Parser pulls one parse-tree statement at a time from a token source,
// reporting diagnostics to a Reactor instead of throwing. It owns the
// node arena every handle it returns is allocated from.
type Parser struct {
	cur     *Cursor
	reactor Reactor
	arena   *tree.Arena
	scopes  scopes

	// aborted latches once the reactor denies an allocation. The original
	// treats reactor_out_of_memory as unrecoverable (it unwinds via
	// exception); this is the Go stand-in — once set, every further parse
	// call returns null without consuming more input or piling on
	// secondary diagnostics.
	aborted bool
}

// New wraps source in a filtered Cursor and starts a fresh node arena.
func New(source TokenSource, reactor Reactor) *Parser {
	return &Parser{
		cur:     NewCursor(source),
		reactor: reactor,
		arena:   tree.NewArena(),
	}
}

// Arena exposes the node arena backing every handle this parser returns.
func (p *Parser) Arena() *tree.Arena { return p.arena }

// report hands a diagnostic to the reactor, draining the token stream if
// it says Abort — the same protocol internal/cursor.Cursor.Report uses.
func (p *Parser) report(kind ErrorKind, at token.Token) {
	if p.reactor.Report(Error{Kind: kind, At: at}) == Abort {
		p.cur.DrainProgram()
	}
}

// newExpr allocates e, consulting the reactor's allocation gate first.
// A denied allocation reports reactor_out_of_memory and hands back a
// null handle rather than panicking — the parser degrades to "nothing
// more to build" instead of crashing mid-parse. Unlike an ordinary
// diagnostic, exhaustion halts regardless of what the reactor returns:
// there is no node left to keep building with.
func (p *Parser) newExpr(e tree.Expr) tree.ExprHandle {
	if p.aborted {
		return tree.ExprHandle{}
	}
	if !p.reactor.Allocate() {
		p.aborted = true
		p.report(ReactorOutOfMemory, p.cur.Peek())
		p.cur.DrainProgram()
		return tree.ExprHandle{}
	}
	return p.arena.NewExpr(e)
}

func (p *Parser) newStmt(s tree.Stmt) tree.StmtHandle {
	if p.aborted {
		return tree.StmtHandle{}
	}
	if !p.reactor.Allocate() {
		p.aborted = true
		p.report(ReactorOutOfMemory, p.cur.Peek())
		p.cur.DrainProgram()
		return tree.StmtHandle{}
	}
	return p.arena.NewStmt(s)
}

// Empty reports whether the parser has nothing further to yield: the
// token stream is exhausted, or the reactor has aborted the parse.
func (p *Parser) Empty() bool { return p.cur.Empty() || p.aborted }

func isMarker(t token.Token, f token.MarkerFlag) bool {
	return t.Kind == token.Marker && t.MarkerFlag() == f
}

func isKeyword(t token.Token, f token.IdentifierFlag) bool {
	return t.Kind == token.Identifier && t.IdentifierFlag() == f
}
