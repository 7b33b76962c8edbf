package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rattle/internal/ast"
	"rattle/internal/lexer"
	"rattle/internal/parser"
	"rattle/internal/tree"
)

type nopLexerReactor struct{ lexer.BaseReactor }

func (nopLexerReactor) Report(lexer.Error) lexer.Outcome { return lexer.Resume }

func newAnalyzer(t *testing.T, src string) (*Analyzer, *BaseReactor) {
	t.Helper()
	lx := lexer.New(src, nopLexerReactor{})
	p := parser.New(lx, &parser.BaseReactor{})
	r := &BaseReactor{}
	return New(p, r), r
}

// analyzeOne pulls exactly one statement and fails the test if the
// analyzer reported any error.
func analyzeOne(t *testing.T, src string) (ast.Stmt, *Analyzer) {
	t.Helper()
	a, r := newAnalyzer(t, src)
	h := a.Next()
	require.Empty(t, r.Errors)
	require.False(t, h.IsNil())
	return a.Arena().Stmt(h), a
}

func TestLiteralIdentifierAnalyzesToLiteral(t *testing.T) {
	stmt, a := analyzeOne(t, "x\n")
	es := stmt.(*ast.ExprStmt)
	lit := a.Arena().Expr(es.Expr).(*ast.Literal)
	assert.Equal(t, ast.LiteralIdentifier, lit.Kind)
	assert.Equal(t, "x", lit.Value)
}

func TestNumberLiteralAnalyzesToLiteral(t *testing.T) {
	stmt, a := analyzeOne(t, "42\n")
	es := stmt.(*ast.ExprStmt)
	lit := a.Arena().Expr(es.Expr).(*ast.Literal)
	assert.Equal(t, ast.LiteralNumber, lit.Kind)
	assert.Equal(t, "42", lit.Value)
}

func TestBinaryArithmeticPrecedence(t *testing.T) {
	stmt, a := analyzeOne(t, "a + b * c\n")
	es := stmt.(*ast.ExprStmt)
	top := a.Arena().Expr(es.Expr).(*ast.BinaryExpr)
	assert.Equal(t, ast.Add, top.Kind)
	right := a.Arena().Expr(top.Right).(*ast.BinaryExpr)
	assert.Equal(t, ast.Multiply, right.Kind)
}

func TestTernaryReconstructsIfElse(t *testing.T) {
	stmt, a := analyzeOne(t, "a if b else c\n")
	es := stmt.(*ast.ExprStmt)
	top := a.Arena().Expr(es.Expr).(*ast.TernaryExpr)
	require.Equal(t, ast.IfElse, top.Kind)
	assert.Equal(t, "a", a.Arena().Expr(top.Left).(*ast.Literal).Value)
	assert.Equal(t, "b", a.Arena().Expr(top.Middle).(*ast.Literal).Value)
	assert.Equal(t, "c", a.Arena().Expr(top.Right).(*ast.Literal).Value)
}

func TestIsNotBuildsIsNotBinary(t *testing.T) {
	stmt, a := analyzeOne(t, "x is not None\n")
	es := stmt.(*ast.ExprStmt)
	top := a.Arena().Expr(es.Expr).(*ast.BinaryExpr)
	assert.Equal(t, ast.IsNot, top.Kind)
}

func TestPlainIsBuildsIsBinary(t *testing.T) {
	stmt, a := analyzeOne(t, "x is y\n")
	es := stmt.(*ast.ExprStmt)
	top := a.Arena().Expr(es.Expr).(*ast.BinaryExpr)
	assert.Equal(t, ast.Is, top.Kind)
}

func TestNotInBuildsNotInBinary(t *testing.T) {
	stmt, a := analyzeOne(t, "x not in y\n")
	es := stmt.(*ast.ExprStmt)
	top := a.Arena().Expr(es.Expr).(*ast.BinaryExpr)
	assert.Equal(t, ast.NotIn, top.Kind)
}

func TestCallBuildsCallBinaryWithCommaArgs(t *testing.T) {
	stmt, a := analyzeOne(t, "f(a, b)\n")
	es := stmt.(*ast.ExprStmt)
	call := a.Arena().Expr(es.Expr).(*ast.BinaryExpr)
	require.Equal(t, ast.Call, call.Kind)
	assert.Equal(t, "f", a.Arena().Expr(call.Left).(*ast.Literal).Value)
	args := a.Arena().Expr(call.Right).(*ast.BinaryExpr)
	assert.Equal(t, ast.Comma, args.Kind)
}

func TestGroupingParensBuildsGroupUnary(t *testing.T) {
	stmt, a := analyzeOne(t, "(a)\n")
	es := stmt.(*ast.ExprStmt)
	group := a.Arena().Expr(es.Expr).(*ast.UnaryExpr)
	assert.Equal(t, ast.Group, group.Kind)
	assert.Equal(t, "a", a.Arena().Expr(group.Operand).(*ast.Literal).Value)
}

func TestEmptyParensBuildsTupleUnary(t *testing.T) {
	stmt, a := analyzeOne(t, "()\n")
	es := stmt.(*ast.ExprStmt)
	tup := a.Arena().Expr(es.Expr).(*ast.UnaryExpr)
	assert.Equal(t, ast.Tuple, tup.Kind)
	assert.True(t, tup.Operand.IsNil())
}

func TestCommaInParensBuildsTupleUnary(t *testing.T) {
	stmt, a := analyzeOne(t, "(a, b)\n")
	es := stmt.(*ast.ExprStmt)
	tup := a.Arena().Expr(es.Expr).(*ast.UnaryExpr)
	assert.Equal(t, ast.Tuple, tup.Kind)
	pair := a.Arena().Expr(tup.Operand).(*ast.BinaryExpr)
	assert.Equal(t, ast.Comma, pair.Kind)
}

func TestSubscriptBuildsSubscriptBinary(t *testing.T) {
	stmt, a := analyzeOne(t, "a[0]\n")
	es := stmt.(*ast.ExprStmt)
	sub := a.Arena().Expr(es.Expr).(*ast.BinaryExpr)
	assert.Equal(t, ast.Subscript, sub.Kind)
}

func TestListBuildsListUnary(t *testing.T) {
	stmt, a := analyzeOne(t, "[a, b]\n")
	es := stmt.(*ast.ExprStmt)
	list := a.Arena().Expr(es.Expr).(*ast.UnaryExpr)
	assert.Equal(t, ast.List, list.Kind)
}

func TestSpreadOutsideBindingContext(t *testing.T) {
	stmt, a := analyzeOne(t, "*x\n")
	es := stmt.(*ast.ExprStmt)
	un := a.Arena().Expr(es.Expr).(*ast.UnaryExpr)
	assert.Equal(t, ast.Spread, un.Kind)
}

func TestAssignmentBuildsAssignKind(t *testing.T) {
	stmt, a := analyzeOne(t, "x = 1\n")
	asn := stmt.(*ast.Assignment)
	assert.Equal(t, ast.Assign, asn.Kind)
	assert.Equal(t, "x", a.Arena().Expr(asn.Slot).(*ast.Literal).Value)
}

func TestCompoundAssignmentMapsOperator(t *testing.T) {
	stmt, _ := analyzeOne(t, "x += 1\n")
	asn := stmt.(*ast.Assignment)
	assert.Equal(t, ast.AddAssign, asn.Kind)
}

func TestAssignmentRejectsNonAssignableTarget(t *testing.T) {
	a, r := newAnalyzer(t, "1 = 2\n")
	h := a.Next()
	require.False(t, h.IsNil())
	require.Len(t, r.Errors, 1)
	stmt := a.Arena().Stmt(h).(*ast.Assignment)
	// The slot still analyzes to something (a Literal), just flagged bad.
	assert.NotNil(t, a.Arena().Expr(stmt.Slot))
}

func TestForStatementDestructuresInBinary(t *testing.T) {
	stmt, a := analyzeOne(t, "for x in xs {\n}\n")
	f := stmt.(*ast.For)
	binding := a.Arena().Expr(f.Binding).(*ast.Binding)
	assert.Equal(t, ast.BindingName, binding.Kind)
	assert.Equal(t, "x", binding.Name)
	assert.Equal(t, "xs", a.Arena().Expr(f.Iterable).(*ast.Literal).Value)
}

func TestWhileStatementAnalyzesCond(t *testing.T) {
	stmt, a := analyzeOne(t, "while a {\n}\n")
	w := stmt.(*ast.While)
	assert.Equal(t, "a", a.Arena().Expr(w.Cond).(*ast.Literal).Value)
}

func TestDefStatementDestructuresSignature(t *testing.T) {
	stmt, a := analyzeOne(t, "def f(x) {\n}\n")
	d := stmt.(*ast.Def)
	assert.Equal(t, ast.Function, d.Kind)
	assert.Equal(t, "f", d.Name)
	param := a.Arena().Expr(d.Parameters).(*ast.Binding)
	assert.Equal(t, "x", param.Name)
}

func TestDefStatementCaptureParameter(t *testing.T) {
	stmt, a := analyzeOne(t, "def f(*x) {\n}\n")
	d := stmt.(*ast.Def)
	param := a.Arena().Expr(d.Parameters).(*ast.Binding)
	assert.Equal(t, ast.BindingCapture, param.Kind)
	assert.Equal(t, "x", param.Name)
}

func TestClassStatementExtractsName(t *testing.T) {
	stmt, _ := analyzeOne(t, "class C {\n}\n")
	c := stmt.(*ast.Class)
	assert.Equal(t, "C", c.Name)
}

func TestIfAndElseAreSeparateStatements(t *testing.T) {
	a, r := newAnalyzer(t, "if a {\nb\n}\nelse {\nc\n}\n")
	h1 := a.Next()
	require.Empty(t, r.Errors)
	ifStmt := a.Arena().Stmt(h1).(*ast.If)
	assert.Equal(t, "a", a.Arena().Expr(ifStmt.Cond).(*ast.Literal).Value)

	h2 := a.Next()
	elseStmt := a.Arena().Stmt(h2).(*ast.Else)
	require.False(t, elseStmt.OnFalse.IsNil())
}

func TestReturnBuildsCommand(t *testing.T) {
	stmt, a := analyzeOne(t, "return x\n")
	cmd := stmt.(*ast.Command)
	assert.Equal(t, ast.Return, cmd.Kind)
	assert.Equal(t, "x", a.Arena().Expr(cmd.Expr).(*ast.Literal).Value)
}

func TestReturnWithoutValueHasNullExpr(t *testing.T) {
	stmt, _ := analyzeOne(t, "return\n")
	cmd := stmt.(*ast.Command)
	assert.True(t, cmd.Expr.IsNil())
}

func TestNonlocalBuildsCommaIDList(t *testing.T) {
	stmt, a := analyzeOne(t, "nonlocal x, y\n")
	cmd := stmt.(*ast.Command)
	assert.Equal(t, ast.Nonlocal, cmd.Kind)
	pair := a.Arena().Expr(cmd.Expr).(*ast.BinaryExpr)
	assert.Equal(t, ast.Comma, pair.Kind)
}

func TestGlobalRejectsNonIdentifierList(t *testing.T) {
	a, r := newAnalyzer(t, "global 1\n")
	h := a.Next()
	require.False(t, h.IsNil())
	require.Len(t, r.Errors, 1)
	cmd := a.Arena().Stmt(h).(*ast.Command)
	assert.True(t, cmd.Expr.IsNil())
}

func TestBreakAndContinueReuseTreeEventKind(t *testing.T) {
	a, r := newAnalyzer(t, "break\ncontinue\n")
	h1 := a.Next()
	require.Empty(t, r.Errors)
	ev1 := a.Arena().Stmt(h1).(*ast.Event)
	assert.Equal(t, tree.Break, ev1.Kind)

	h2 := a.Next()
	ev2 := a.Arena().Stmt(h2).(*ast.Event)
	assert.Equal(t, tree.Continue, ev2.Kind)
}

func TestMissingIfConditionReportsAndNullsCond(t *testing.T) {
	a, r := newAnalyzer(t, "if {\n}\n")
	h := a.Next()
	require.False(t, h.IsNil())
	require.NotEmpty(t, r.Errors)
	ifStmt := a.Arena().Stmt(h).(*ast.If)
	assert.True(t, ifStmt.Cond.IsNil())
}

func TestExhaustingReactorDeniesAllocation(t *testing.T) {
	lx := lexer.New("x\n", nopLexerReactor{})
	p := parser.New(lx, &parser.BaseReactor{})
	base := &BaseReactor{}
	r := &ExhaustingReactor{Reactor: base, Budget: 0}
	a := New(p, r)
	h := a.Next()
	assert.True(t, h.IsNil())
}

func TestEmptyReportsStreamExhausted(t *testing.T) {
	a, r := newAnalyzer(t, "")
	assert.Empty(t, r.Errors)
	assert.True(t, a.Empty())
}

func TestDrainCollectsEveryStatement(t *testing.T) {
	a, r := newAnalyzer(t, "x\ny\nz\n")
	stmts := a.Drain()
	require.Empty(t, r.Errors)
	assert.Len(t, stmts, 3)
}
