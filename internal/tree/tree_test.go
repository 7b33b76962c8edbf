package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rattle/internal/token"
)

func lit(t *testing.T, a *Arena, lexeme string) ExprHandle {
	t.Helper()
	return a.NewExpr(&Literal{Value: token.NewIdentifier(token.Variable, token.Location{Line: 1, Column: 0}, token.Location{Line: 1, Column: uint32(len(lexeme))}, lexeme)})
}

func TestArenaRoundTripsExprAndStmt(t *testing.T) {
	a := NewArena()
	h := lit(t, a, "x")
	require.False(t, h.IsNil())
	got := a.Expr(h)
	lit, ok := got.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "x", lit.Value.Lexeme)
}

func TestNullHandleResolvesToNilNode(t *testing.T) {
	a := NewArena()
	var h ExprHandle
	assert.True(t, h.IsNil())
	assert.Nil(t, a.Expr(h))
}

func TestBinaryExprHoldsChildHandles(t *testing.T) {
	a := NewArena()
	left := lit(t, a, "a")
	right := lit(t, a, "b")
	opTok := token.NewOperator(token.Plus, token.Location{}, token.Location{}, "+")
	bin := a.NewExpr(&BinaryExpr{Op: opTok, Left: left, Right: right})

	node := a.Expr(bin).(*BinaryExpr)
	assert.Equal(t, left, node.Left)
	assert.Equal(t, right, node.Right)
	assert.Equal(t, token.Plus, node.Op.OperatorFlag())
}

type countingExprVisitor struct {
	unary, binary, literal, biExprBiTk int
}

func (c *countingExprVisitor) VisitUnaryExpr(*UnaryExpr)     { c.unary++ }
func (c *countingExprVisitor) VisitBinaryExpr(*BinaryExpr)   { c.binary++ }
func (c *countingExprVisitor) VisitLiteral(*Literal)         { c.literal++ }
func (c *countingExprVisitor) VisitBiExprBiTk(*BiExprBiTk)   { c.biExprBiTk++ }

func TestVisitExprDispatchesToMatchingVariant(t *testing.T) {
	a := NewArena()
	v := &countingExprVisitor{}

	VisitExpr(a.Expr(lit(t, a, "x")), v)
	VisitExpr(&UnaryExpr{}, v)
	VisitExpr(&BinaryExpr{}, v)
	VisitExpr(&BiExprBiTk{}, v)

	assert.Equal(t, 1, v.literal)
	assert.Equal(t, 1, v.unary)
	assert.Equal(t, 1, v.binary)
	assert.Equal(t, 1, v.biExprBiTk)
}

func TestVisitExprPanicsOnUnknownVariant(t *testing.T) {
	assert.Panics(t, func() {
		VisitExpr(struct{ Expr }{}, &countingExprVisitor{})
	})
}

type countingStmtVisitor struct {
	seen []string
}

func (c *countingStmtVisitor) VisitExprStmt(*ExprStmt)       { c.seen = append(c.seen, "ExprStmt") }
func (c *countingStmtVisitor) VisitAssignment(*Assignment)   { c.seen = append(c.seen, "Assignment") }
func (c *countingStmtVisitor) VisitTkExpr(*TkExpr)           { c.seen = append(c.seen, "TkExpr") }
func (c *countingStmtVisitor) VisitTkExprStmt(*TkExprStmt)   { c.seen = append(c.seen, "TkExprStmt") }
func (c *countingStmtVisitor) VisitEvent(*Event)             { c.seen = append(c.seen, "Event") }
func (c *countingStmtVisitor) VisitBlock(*Block)             { c.seen = append(c.seen, "Block") }

func TestVisitStmtDispatchesToMatchingVariant(t *testing.T) {
	v := &countingStmtVisitor{}
	VisitStmt(&ExprStmt{}, v)
	VisitStmt(&Assignment{}, v)
	VisitStmt(&TkExpr{}, v)
	VisitStmt(&TkExprStmt{}, v)
	VisitStmt(&Event{Kind: Break}, v)
	VisitStmt(&Block{}, v)

	assert.Equal(t, []string{
		"ExprStmt", "Assignment", "TkExpr", "TkExprStmt", "Event", "Block",
	}, v.seen)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "ScopeBegin", ScopeBegin.String())
	assert.Equal(t, "ScopeEnd", ScopeEnd.String())
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "Break", Break.String())
}

func TestStmtArenaRoundTrip(t *testing.T) {
	a := NewArena()
	inner := a.NewStmt(&ExprStmt{Expr: lit(t, a, "x")})
	outer := a.NewStmt(&Block{Statements: []StmtHandle{inner}})

	block := a.Stmt(outer).(*Block)
	require.Len(t, block.Statements, 1)
	assert.Equal(t, inner, block.Statements[0])
}
