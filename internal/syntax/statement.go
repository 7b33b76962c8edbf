package syntax

import (
	"rattle/internal/ast"
	"rattle/internal/token"
	"rattle/internal/tree"
)

// StatementAnalyzer turns parse-tree statements into typed AST
// statements, implementing tree.StmtVisitor. It delegates every governing
// expression to an ExpressionAnalyzer, picking whichever constraint that
// statement's shape requires (assignable targets, bindable for-loop
// targets, identifier-only nonlocal/global lists, ...).
type StatementAnalyzer struct {
	tree    *tree.Arena
	ast     *ast.Arena
	reactor Reactor
	expr    *ExpressionAnalyzer

	result  ast.StmtHandle
	cur     tree.StmtHandle
	aborted bool
}

// NewStatementAnalyzer builds a statement analyzer sharing expr's
// arenas for its own Def/For/Class destructuring.
func NewStatementAnalyzer(treeArena *tree.Arena, astArena *ast.Arena, reactor Reactor, expr *ExpressionAnalyzer) *StatementAnalyzer {
	return &StatementAnalyzer{tree: treeArena, ast: astArena, reactor: reactor, expr: expr}
}

// Analyze visits h and returns the AST statement it resolves to, or a
// null handle for a null or already-aborted input.
func (a *StatementAnalyzer) Analyze(h tree.StmtHandle) ast.StmtHandle {
	if h.IsNil() || a.aborted {
		return ast.StmtHandle{}
	}
	savedResult, savedCur := a.result, a.cur
	a.result, a.cur = ast.StmtHandle{}, h

	tree.VisitStmt(a.tree.Stmt(h), a)

	out := a.result
	a.result, a.cur = savedResult, savedCur
	return out
}

func (a *StatementAnalyzer) report(desc string, start, end token.Location) {
	if a.reactor.Report(Error{Description: desc, Start: start, End: end}) == Abort {
		a.aborted = true
	}
}

func (a *StatementAnalyzer) newStmt(s ast.Stmt) ast.StmtHandle {
	if a.aborted || !a.reactor.Allocate() {
		a.aborted = true
		return ast.StmtHandle{}
	}
	return a.ast.NewStmt(s)
}

// analyzeIDList analyzes exprH under the identifier-list-only constraint,
// reporting and returning a null handle if it isn't one.
func (a *StatementAnalyzer) analyzeIDList(exprH tree.ExprHandle, tk token.Token) ast.ExprHandle {
	if exprH.IsNil() {
		a.report("expected an identifier list", tk.Start, tk.End)
		return ast.ExprHandle{}
	}
	expr, flags := a.expr.analyze(exprH, ConstraintListOfIDsOnly)
	if !flags.Has(FlagOnlyIDs) {
		a.report("expected a list of plain identifiers", tk.Start, tk.End)
		return ast.ExprHandle{}
	}
	return expr
}

func assignKindFor(f token.AssignmentFlag) ast.AssignKind {
	switch f {
	case token.Equal:
		return ast.Assign
	case token.PlusEqual:
		return ast.AddAssign
	case token.MinusEqual:
		return ast.SubAssign
	case token.StarEqual:
		return ast.MulAssign
	case token.SlashEqual:
		return ast.DivAssign
	default:
		panic("syntax: unreachable assignment operator")
	}
}

func (a *StatementAnalyzer) VisitExprStmt(n *tree.ExprStmt) {
	from := a.cur
	expr, _ := a.expr.Analyze(n.Expr)
	a.result = a.newStmt(&ast.ExprStmt{StmtBase: ast.StmtBase{From: from}, Expr: expr})
}

func (a *StatementAnalyzer) VisitAssignment(n *tree.Assignment) {
	from := a.cur
	var slot, value ast.ExprHandle

	if !n.Slot.IsNil() {
		var slotFlags Flags
		slot, slotFlags = a.expr.analyze(n.Slot, ConstraintListComponentsAssignable)
		if !slotFlags.Has(FlagAssignable) {
			a.report("expression is not an assignable target", n.Op.Start, n.Op.End)
		}
	} else {
		a.report("assignment missing its target", n.Op.Start, n.Op.End)
	}

	if !n.Value.IsNil() {
		value, _ = a.expr.Analyze(n.Value)
	} else {
		a.report("assignment missing its value", n.Op.Start, n.Op.End)
	}

	a.result = a.newStmt(&ast.Assignment{
		StmtBase: ast.StmtBase{From: from},
		Kind:     assignKindFor(n.Op.AssignmentFlag()),
		Slot:     slot,
		Value:    value,
	})
}

func (a *StatementAnalyzer) VisitTkExpr(n *tree.TkExpr) {
	from := a.cur
	switch {
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwReturn:
		var expr ast.ExprHandle
		if !n.Expr.IsNil() {
			expr, _ = a.expr.Analyze(n.Expr)
		}
		a.result = a.newStmt(&ast.Command{StmtBase: ast.StmtBase{From: from}, Kind: ast.Return, Expr: expr})

	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwNonlocal:
		expr := a.analyzeIDList(n.Expr, n.Tk)
		a.result = a.newStmt(&ast.Command{StmtBase: ast.StmtBase{From: from}, Kind: ast.Nonlocal, Expr: expr})

	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwGlobal:
		expr := a.analyzeIDList(n.Expr, n.Tk)
		a.result = a.newStmt(&ast.Command{StmtBase: ast.StmtBase{From: from}, Kind: ast.Global, Expr: expr})

	default:
		panic("syntax: unreachable TkExpr keyword")
	}
}

func (a *StatementAnalyzer) VisitTkExprStmt(n *tree.TkExprStmt) {
	switch {
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwFor:
		a.visitFor(n)
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwWhile:
		a.visitWhile(n)
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwDef:
		a.visitDef(n)
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwClass:
		a.visitClass(n)
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwIf:
		a.visitIf(n)
	case n.Tk.Kind == token.Identifier && n.Tk.IdentifierFlag() == token.KwElse:
		a.visitElse(n)
	default:
		panic("syntax: unreachable TkExprStmt keyword")
	}
}

func (a *StatementAnalyzer) visitFor(n *tree.TkExprStmt) {
	from := a.cur
	body := a.Analyze(n.Body)

	if n.Expr.IsNil() {
		a.report("for statement requires `binding in iterable`", n.Tk.Start, n.Tk.End)
		a.result = a.newStmt(&ast.For{StmtBase: ast.StmtBase{From: from}, Body: body})
		return
	}
	expr, flags := a.expr.analyze(n.Expr, ConstraintLeftBindable1stIn)
	if !flags.Has(FlagIn) {
		a.report("for statement requires `binding in iterable`", n.Tk.Start, n.Tk.End)
		a.result = a.newStmt(&ast.For{StmtBase: ast.StmtBase{From: from}, Body: body})
		return
	}

	var binding, iterable ast.ExprHandle
	if in, ok := a.ast.Expr(expr).(*ast.BinaryExpr); ok {
		binding, iterable = in.Left, in.Right
	}
	a.result = a.newStmt(&ast.For{StmtBase: ast.StmtBase{From: from}, Binding: binding, Iterable: iterable, Body: body})
}

func (a *StatementAnalyzer) visitWhile(n *tree.TkExprStmt) {
	from := a.cur
	body := a.Analyze(n.Body)

	var cond ast.ExprHandle
	if !n.Expr.IsNil() {
		cond, _ = a.expr.Analyze(n.Expr)
	} else {
		a.report("while statement missing its condition", n.Tk.Start, n.Tk.End)
	}
	a.result = a.newStmt(&ast.While{StmtBase: ast.StmtBase{From: from}, Cond: cond, Body: body})
}

func (a *StatementAnalyzer) visitDef(n *tree.TkExprStmt) {
	from := a.cur
	body := a.Analyze(n.Body)

	if n.Expr.IsNil() {
		a.report("def statement requires a name(parameters) signature", n.Tk.Start, n.Tk.End)
		a.result = a.newStmt(&ast.Def{StmtBase: ast.StmtBase{From: from}, Body: body})
		return
	}
	expr, flags := a.expr.analyze(n.Expr, ConstraintPreferBinding)
	if !flags.Has(FlagSignature) {
		a.report("def statement requires a name(parameters) signature", n.Tk.Start, n.Tk.End)
		a.result = a.newStmt(&ast.Def{StmtBase: ast.StmtBase{From: from}, Body: body})
		return
	}

	var name string
	var params ast.ExprHandle
	if call, ok := a.ast.Expr(expr).(*ast.BinaryExpr); ok {
		if binding, ok := a.ast.Expr(call.Left).(*ast.Binding); ok {
			name = binding.Name
		}
		params = call.Right
	}
	a.result = a.newStmt(&ast.Def{StmtBase: ast.StmtBase{From: from}, Kind: ast.Function, Name: name, Parameters: params, Body: body})
}

func (a *StatementAnalyzer) visitClass(n *tree.TkExprStmt) {
	from := a.cur
	body := a.Analyze(n.Body)

	if n.Expr.IsNil() {
		a.report("class statement missing its name", n.Tk.Start, n.Tk.End)
		a.result = a.newStmt(&ast.Class{StmtBase: ast.StmtBase{From: from}, Body: body})
		return
	}
	expr, flags := a.expr.Analyze(n.Expr)
	if !flags.Has(FlagLiteralID) {
		a.report("class name must be a plain identifier", n.Tk.Start, n.Tk.End)
		a.result = a.newStmt(&ast.Class{StmtBase: ast.StmtBase{From: from}, Body: body})
		return
	}

	var name string
	if lit, ok := a.ast.Expr(expr).(*ast.Literal); ok {
		name = lit.Value
	}
	a.result = a.newStmt(&ast.Class{StmtBase: ast.StmtBase{From: from}, Name: name, Body: body})
}

func (a *StatementAnalyzer) visitIf(n *tree.TkExprStmt) {
	from := a.cur
	body := a.Analyze(n.Body)

	var cond ast.ExprHandle
	if !n.Expr.IsNil() {
		cond, _ = a.expr.Analyze(n.Expr)
	} else {
		a.report("if statement missing its condition", n.Tk.Start, n.Tk.End)
	}
	a.result = a.newStmt(&ast.If{StmtBase: ast.StmtBase{From: from}, Cond: cond, OnTrue: body})
}

func (a *StatementAnalyzer) visitElse(n *tree.TkExprStmt) {
	from := a.cur
	body := a.Analyze(n.Body)
	a.result = a.newStmt(&ast.Else{StmtBase: ast.StmtBase{From: from}, OnFalse: body})
}

func (a *StatementAnalyzer) VisitEvent(n *tree.Event) {
	from := a.cur
	a.result = a.newStmt(&ast.Event{StmtBase: ast.StmtBase{From: from}, Kind: n.Kind})
}

func (a *StatementAnalyzer) VisitBlock(n *tree.Block) {
	from := a.cur
	stmts := make([]ast.StmtHandle, 0, len(n.Statements))
	for _, s := range n.Statements {
		stmts = append(stmts, a.Analyze(s))
	}
	a.result = a.newStmt(&ast.Block{StmtBase: ast.StmtBase{From: from}, Statements: stmts})
}
