package syntax

import (
	"rattle/internal/ast"
	"rattle/internal/token"
	"rattle/internal/tree"
)

// ExpressionAnalyzer turns parse-tree expressions into typed AST
// expressions, implementing tree.ExprVisitor. Two kinds of state thread
// through the descent: constraints (what the caller needs from this
// subtree, inherited by every nested call unless overridden) and depth
// (how many analyze calls are currently nested, used only to tell the
// outermost `in` of a for-loop target apart from a nested one).
type ExpressionAnalyzer struct {
	tree    *tree.Arena
	ast     *ast.Arena
	reactor Reactor

	constraints Flags
	depth       int
	cur         tree.ExprHandle

	result      ast.ExprHandle
	resultFlags Flags
	aborted     bool
}

// NewExpressionAnalyzer builds an analyzer pulling parse-tree nodes from
// treeArena and allocating AST nodes into astArena.
func NewExpressionAnalyzer(treeArena *tree.Arena, astArena *ast.Arena, reactor Reactor) *ExpressionAnalyzer {
	return &ExpressionAnalyzer{tree: treeArena, ast: astArena, reactor: reactor, depth: -1}
}

// Analyze is the public entry point: analyze h with no constraint active.
func (a *ExpressionAnalyzer) Analyze(h tree.ExprHandle) (ast.ExprHandle, Flags) {
	return a.analyze(h, 0)
}

// analyze visits h with addConstraints folded into whatever constraints
// are already active, then restores all analyzer state on return so a
// sibling subtree never observes this call's constraints or result.
func (a *ExpressionAnalyzer) analyze(h tree.ExprHandle, addConstraints Flags) (ast.ExprHandle, Flags) {
	a.depth++
	savedConstraints := a.constraints
	a.constraints = (a.constraints | addConstraints) & constraintMask
	savedResult, savedFlags, savedCur := a.result, a.resultFlags, a.cur
	a.result, a.resultFlags = ast.ExprHandle{}, 0

	if !h.IsNil() && !a.aborted {
		a.cur = h
		tree.VisitExpr(a.tree.Expr(h), a)
	}

	out, outFlags := a.result, a.resultFlags
	a.result, a.resultFlags, a.cur = savedResult, savedFlags, savedCur
	a.constraints = savedConstraints
	a.depth--
	return out, outFlags
}

func (a *ExpressionAnalyzer) report(desc string, start, end token.Location) {
	if a.reactor.Report(Error{Description: desc, Start: start, End: end}) == Abort {
		a.aborted = true
	}
}

func (a *ExpressionAnalyzer) newExpr(e ast.Expr) ast.ExprHandle {
	if a.aborted || !a.reactor.Allocate() {
		a.aborted = true
		return ast.ExprHandle{}
	}
	return a.ast.NewExpr(e)
}

// literalOrBindingName extracts the underlying name from whichever shape
// a LiteralID-flagged result actually resolved to: a plain ast.Literal
// most of the time, or an ast.Binding when the active constraint already
// turned it into one on the way up.
func literalOrBindingName(e ast.Expr) (string, bool) {
	switch v := e.(type) {
	case *ast.Literal:
		return v.Value, true
	case *ast.Binding:
		return v.Name, true
	default:
		return "", false
	}
}

func (a *ExpressionAnalyzer) VisitLiteral(n *tree.Literal) {
	from := a.cur
	tok := n.Value

	switch {
	case tok.Kind == token.Identifier && tok.IdentifierFlag() == token.Variable:
		props := FlagAssignable | FlagLiteralID | FlagOnlyIDs
		if a.constraints.Has(ConstraintPreferBinding) {
			a.result = a.newExpr(&ast.Binding{ExprBase: ast.ExprBase{From: from}, Kind: ast.BindingName, Name: tok.Lexeme})
			a.resultFlags = props | FlagBinding
			return
		}
		a.result = a.newExpr(&ast.Literal{ExprBase: ast.ExprBase{From: from}, Kind: ast.LiteralIdentifier, Value: tok.Lexeme})
		a.resultFlags = props

	case tok.Kind == token.Number:
		a.result = a.newExpr(&ast.Literal{ExprBase: ast.ExprBase{From: from}, Kind: ast.LiteralNumber, Value: tok.Lexeme})

	case tok.Kind == token.String:
		a.result = a.newExpr(&ast.Literal{ExprBase: ast.ExprBase{From: from}, Kind: ast.LiteralString, Value: tok.Lexeme})

	case tok.Kind == token.Identifier && tok.IdentifierFlag() == token.KwTrue:
		a.result = a.newExpr(&ast.Literal{ExprBase: ast.ExprBase{From: from}, Kind: ast.LiteralTrue, Value: tok.Lexeme})

	case tok.Kind == token.Identifier && tok.IdentifierFlag() == token.KwFalse:
		a.result = a.newExpr(&ast.Literal{ExprBase: ast.ExprBase{From: from}, Kind: ast.LiteralFalse, Value: tok.Lexeme})

	case tok.Kind == token.Identifier && tok.IdentifierFlag() == token.KwNone:
		a.result = a.newExpr(&ast.Literal{ExprBase: ast.ExprBase{From: from}, Kind: ast.LiteralNone, Value: tok.Lexeme})

	case tok.Kind == token.Marker && tok.MarkerFlag() == token.MarkerError:
		// Already reported at the lexer/parser stage; leave result null
		// rather than diagnosing it a second time.

	default:
		panic("syntax: unreachable literal token")
	}
}

func (a *ExpressionAnalyzer) VisitUnaryExpr(n *tree.UnaryExpr) {
	from := a.cur
	if n.Operand.IsNil() {
		a.report("unary operator missing its operand", n.Op.Start, n.Op.End)
	}
	operand, operandFlags := a.analyze(n.Operand, 0)

	switch {
	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Plus:
		a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Posify, Operand: operand})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Star:
		if a.constraints.Has(ConstraintPreferBinding) {
			if operandFlags.Has(FlagLiteralID) {
				name, _ := literalOrBindingName(a.ast.Expr(operand))
				a.result = a.newExpr(&ast.Binding{ExprBase: ast.ExprBase{From: from}, Kind: ast.BindingCapture, Name: name})
				a.resultFlags = FlagBinding
			} else if !operand.IsNil() {
				a.report("capture target must be a plain identifier", n.Op.Start, n.Op.End)
			}
			return
		}
		a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Spread, Operand: operand})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Minus:
		a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Negate, Operand: operand})

	case n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwNot:
		a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.LogicNOT, Operand: operand})

	default:
		panic("syntax: unreachable unary operator")
	}
}

func (a *ExpressionAnalyzer) VisitBinaryExpr(n *tree.BinaryExpr) {
	from := a.cur
	isComma := n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Comma
	isIn := n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwIn

	var left, right ast.ExprHandle
	var leftFlags, rightFlags Flags
	if !n.Left.IsNil() {
		var leftConstraints Flags
		if isIn && a.constraints.Has(ConstraintLeftBindable1stIn) && a.depth == 0 {
			// The outermost `in` of a for-loop header binds its left side.
			leftConstraints = ConstraintPreferBinding
		}
		left, leftFlags = a.analyze(n.Left, leftConstraints)
	} else {
		a.report("binary operator missing its left operand", n.Op.Start, n.Op.End)
	}
	if !n.Right.IsNil() {
		right, rightFlags = a.analyze(n.Right, 0)
	} else if !isComma {
		// A trailing comma with nothing after it is not an error: it just
		// means this was the last element of a list.
		a.report("binary operator missing its right operand", n.Op.Start, n.Op.End)
	}

	switch {
	case isComma:
		if a.constraints.Has(ConstraintListComponentsAssignable) {
			if !leftFlags.Has(FlagAssignable) || (!right.IsNil() && !rightFlags.Has(FlagAssignable)) {
				a.report("expression is not an assignable target", n.Op.Start, n.Op.End)
			}
			a.resultFlags = a.resultFlags.With(FlagAssignable)
		}
		if a.constraints.Has(ConstraintPreferBinding) {
			if !leftFlags.Has(FlagBinding) || (!right.IsNil() && !rightFlags.Has(FlagBinding)) {
				a.report("expression is not a bindable target", n.Op.Start, n.Op.End)
			}
			a.resultFlags = a.resultFlags.With(FlagBinding)
		}
		if a.constraints.Has(ConstraintListOfIDsOnly) {
			if !leftFlags.Has(FlagOnlyIDs) || (!right.IsNil() && !rightFlags.Has(FlagOnlyIDs)) {
				a.report("expected a plain identifier", n.Op.Start, n.Op.End)
			}
			a.resultFlags = a.resultFlags.With(FlagOnlyIDs)
		}
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Comma, Left: left, Right: right})
		a.resultFlags = a.resultFlags.With(FlagComma)

	case n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwIf:
		// Synthetic node: only ever visited from inside BiExprBiTk's
		// ternary case, which pulls Left/Right back out of it below.
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.TernaryInner, Left: left, Right: right})
		a.resultFlags = FlagIf

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Plus:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Add, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Minus:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Subtract, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Star:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Multiply, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Slash:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Divide, Left: left, Right: right})

	case n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwOr:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.LogicOR, Left: left, Right: right})

	case n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwAnd:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.LogicAND, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.EqualEqual:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.CmpEQ, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.NotEqual:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.CmpNE, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.LessThan:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.CmpLT, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.LessEqual:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.CmpLE, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.GreaterThan:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.CmpGT, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.GreaterEqual:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.CmpGE, Left: left, Right: right})

	case n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwIn:
		if a.constraints.Has(ConstraintLeftBindable1stIn) && a.depth == 0 && !left.IsNil() && !leftFlags.Has(FlagBinding) {
			a.report("for-loop target must be a bindable expression", n.Op.Start, n.Op.End)
		}
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.In, Left: left, Right: right})
		a.resultFlags = a.resultFlags.With(FlagIn)

	case n.Op.Kind == token.Identifier && n.Op.IdentifierFlag() == token.KwIs:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Is, Left: left, Right: right})

	case n.Op.Kind == token.Operator && n.Op.OperatorFlag() == token.Dot:
		if !right.IsNil() && !rightFlags.Has(FlagLiteralID) {
			a.report("expected a plain identifier after `.`", n.Op.Start, n.Op.End)
		}
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Dot, Left: left, Right: right})
		a.resultFlags = a.resultFlags.With(FlagAssignable)

	default:
		panic("syntax: unreachable binary operator")
	}
}

func (a *ExpressionAnalyzer) VisitBiExprBiTk(n *tree.BiExprBiTk) {
	from := a.cur
	isOpenParen := n.Tk1.Kind == token.Marker && n.Tk1.MarkerFlag() == token.OpenParen
	isOpenBracket := n.Tk1.Kind == token.Marker && n.Tk1.MarkerFlag() == token.OpenBracket

	var left, right ast.ExprHandle
	var leftFlags, rightFlags Flags
	if !n.Expr1.IsNil() {
		left, leftFlags = a.analyze(n.Expr1, 0)
	} else if !isOpenParen && !isOpenBracket {
		a.report("expected an expression before this token", n.Tk1.Start, n.Tk1.End)
	}
	if !n.Expr2.IsNil() {
		right, rightFlags = a.analyze(n.Expr2, 0)
	} else if !isOpenParen && !isOpenBracket {
		a.report("expected an expression after this token", n.Tk2.Start, n.Tk2.End)
	}

	switch {
	case n.Tk1.Kind == token.Identifier && n.Tk1.IdentifierFlag() == token.KwIf:
		var condLeft, condRight ast.ExprHandle
		if inner, ok := a.ast.Expr(left).(*ast.BinaryExpr); ok {
			condLeft, condRight = inner.Left, inner.Right
		}
		a.result = a.newExpr(&ast.TernaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.IfElse, Left: condLeft, Middle: condRight, Right: right})

	case isOpenParen:
		switch {
		case !left.IsNil():
			if leftFlags.Has(FlagLiteralID) && rightFlags.Has(FlagBinding) {
				a.resultFlags = a.resultFlags.With(FlagSignature)
			}
			a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Call, Left: left, Right: right})

		case right.IsNil() || rightFlags.Has(FlagComma):
			a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Tuple, Operand: right})

		default:
			if rightFlags.Has(FlagAssignable) {
				a.resultFlags = a.resultFlags.With(FlagAssignable)
			}
			a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Group, Operand: right})
		}

	case n.Tk1.Kind == token.Marker && n.Tk1.MarkerFlag() == token.OpenBracket:
		if !left.IsNil() {
			if right.IsNil() {
				a.report("subscript requires an index expression", n.Tk1.Start, n.Tk2.End)
			}
			a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.Subscript, Left: left, Right: right})
			a.resultFlags = a.resultFlags.With(FlagAssignable)
			return
		}
		a.result = a.newExpr(&ast.UnaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.List, Operand: right})

	case n.Tk1.Kind == token.Identifier && n.Tk1.IdentifierFlag() == token.KwIs:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.IsNot, Left: left, Right: right})

	case n.Tk1.Kind == token.Identifier && n.Tk1.IdentifierFlag() == token.KwNot:
		a.result = a.newExpr(&ast.BinaryExpr{ExprBase: ast.ExprBase{From: from}, Kind: ast.NotIn, Left: left, Right: right})

	default:
		panic("syntax: unreachable BiExprBiTk bracketing token")
	}
}
