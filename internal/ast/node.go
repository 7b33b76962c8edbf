// Package ast defines the typed abstract syntax tree the syntax analyzer
// produces from the parse tree: a richer vocabulary than internal/tree,
// with contextual constraints (assignability, bindability, signature
// shape) already enforced rather than left for a later pass.
package ast

import (
	"rattle/internal/arena"
	"rattle/internal/tree"
)

// Expr is any AST expression node.
type Expr interface {
	exprNode()
}

// Stmt is any AST statement node.
type Stmt interface {
	stmtNode()
}

// ExprHandle and StmtHandle are owning references into an Exprs/Stmts
// arena. The zero value is null: "child already reported, do not
// re-report" — the same convention internal/tree uses one layer down.
type ExprHandle = arena.Handle[Expr]
type StmtHandle = arena.Handle[Stmt]

// ExprBase marks a type as an Expr and carries the non-owning
// back-reference to the parse-tree node it was built from, for
// source-mapping in diagnostics. Its lifetime is tied to the parser's
// arena, which must outlive this AST.
type ExprBase struct {
	From tree.ExprHandle
}

func (ExprBase) exprNode() {}

// StmtBase marks a type as a Stmt and carries the same kind of
// back-reference, into the parse tree's statement arena.
type StmtBase struct {
	From tree.StmtHandle
}

func (StmtBase) stmtNode() {}

// Arena bundles the two node arenas a syntax analysis pass allocates
// into, mirroring tree.Arena one layer up.
type Arena struct {
	Exprs *arena.Arena[Expr]
	Stmts *arena.Arena[Stmt]
}

// NewArena allocates an empty, ready-to-use AST node arena pair.
func NewArena() *Arena {
	return &Arena{
		Exprs: arena.New[Expr](),
		Stmts: arena.New[Stmt](),
	}
}

func (a *Arena) NewExpr(e Expr) ExprHandle { return a.Exprs.Alloc(e) }
func (a *Arena) NewStmt(s Stmt) StmtHandle { return a.Stmts.Alloc(s) }

// Expr returns the node behind h, or nil for a null handle.
func (a *Arena) Expr(h ExprHandle) Expr {
	if h.IsNil() {
		return nil
	}
	return *a.Exprs.Get(h)
}

// Stmt returns the node behind h, or nil for a null handle.
func (a *Arena) Stmt(h StmtHandle) Stmt {
	if h.IsNil() {
		return nil
	}
	return *a.Stmts.Get(h)
}
