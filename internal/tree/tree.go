// Package tree defines the parse tree: the raw syntactic shapes the parser
// builds directly from tokens, before the syntax analyzer turns them into a
// typed AST. It intentionally has few node kinds — most surface syntax
// (calls, subscripts, lambdas, ternaries, is-not/not-in) collapses onto the
// same two-bracketing-token shape, BiExprBiTk, and is only told apart later.
package tree

import (
	"rattle/internal/arena"
	"rattle/internal/token"
)

// Expr is any parse-tree expression node.
type Expr interface {
	exprNode()
}

// Stmt is any parse-tree statement node.
type Stmt interface {
	stmtNode()
}

// ExprHandle and StmtHandle are owning references into an Exprs/Stmts arena.
// The zero value is null: "child already reported, do not re-report."
type ExprHandle = arena.Handle[Expr]
type StmtHandle = arena.Handle[Stmt]

// ExprBase marks a type as an Expr; embed it in every expression node.
type ExprBase struct{}

func (ExprBase) exprNode() {}

// StmtBase marks a type as a Stmt; embed it in every statement node.
type StmtBase struct{}

func (StmtBase) stmtNode() {}

// Arena bundles the two node arenas a parse survives on. Nodes never
// reference each other by raw pointer, only by handle, so the arena is
// the sole owner and teardown drops everything at once.
type Arena struct {
	Exprs *arena.Arena[Expr]
	Stmts *arena.Arena[Stmt]
}

// NewArena allocates an empty, ready-to-use node arena pair.
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

// UnaryExpr is a prefix or circumfix operator applied to one operand:
// -x, +x, not x, *x (spread/capture, disambiguated later by the analyzer).
type UnaryExpr struct {
	ExprBase
	Op      token.Token
	Operand ExprHandle
}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	ExprBase
	Op          token.Token
	Left, Right ExprHandle
}

// Literal wraps a single token that stands for itself: a number, string,
// identifier, or one of the keyword literals (True, False, None).
type Literal struct {
	ExprBase
	Value token.Token
}

// BiExprBiTk is any shape bracketed by two distinguished tokens around up
// to two subexpressions: call f(args), subscript a[b], lambda |p| body,
// `is not x`, `not in x`, and the if/else ternary. The syntax analyzer
// tells these apart by inspecting Tk1/Tk2's kinds and which of Expr1/Expr2
// are present.
type BiExprBiTk struct {
	ExprBase
	Tk1, Tk2     token.Token
	Expr1, Expr2 ExprHandle
}

// ExprStmt is an expression used in statement position, with no trailing
// assignment.
type ExprStmt struct {
	StmtBase
	Expr ExprHandle
}

// Assignment is any `lhs op rhs` statement; Op carries which Assignment
// flag (`=`, `+=`, ...) was used.
type Assignment struct {
	StmtBase
	Op          token.Token
	Slot, Value ExprHandle
}

// TkExpr is a keyword followed by an optional expression and an EOS:
// `return expr?`, `nonlocal id-list`, `global id-list`.
type TkExpr struct {
	StmtBase
	Tk   token.Token
	Expr ExprHandle
}

// TkExprStmt is a keyword, a governing expression, and an optional block
// body: def/class/while/for/if/else. Body is null when no `{` follows the
// governing expression — e.g. the `else` of `else if`, whose `if` is
// parsed as the next statement.
type TkExprStmt struct {
	StmtBase
	Tk   token.Token
	Expr ExprHandle
	Body StmtHandle
}

// EventKind distinguishes scope and loop-control markers carried as
// first-class statements. The parser emits Continue and Break; ScopeBegin
// and ScopeEnd are vocabulary it does not produce, since brace bodies are
// grouped as a Block instead.
type EventKind int

const (
	ScopeBegin EventKind = iota
	ScopeEnd
	Continue
	Break
)

func (k EventKind) String() string {
	switch k {
	case ScopeBegin:
		return "ScopeBegin"
	case ScopeEnd:
		return "ScopeEnd"
	case Continue:
		return "Continue"
	case Break:
		return "Break"
	default:
		return "EventKind(?)"
	}
}

// Event carries a loop-control keyword (or, as vocabulary, a scope
// delimiter) through the pipeline as a uniformly-sized statement.
type Event struct {
	StmtBase
	Kind EventKind
	At   token.Token
}

// Block groups the statements between a `{` and its matching `}` (Close is
// the Eot token when the closer never arrives), giving callers — such as
// the syntax analyzer's For/While/If/Def/Class handlers — a single handle
// to "the body".
type Block struct {
	StmtBase
	Open, Close token.Token
	Statements  []StmtHandle
}
