package parser

import (
	"rattle/internal/token"
	"rattle/internal/tree"
)

type unaryFn func(p *Parser) tree.ExprHandle
type binaryFn func(p *Parser, left tree.ExprHandle) tree.ExprHandle

// opSpec is one row of the Pratt dispatch table: what to do when a token's
// merged kind is seen starting an expression (unary) or following one
// already parsed (binary), and the precedence each applies at.
type opSpec struct {
	unary      unaryFn
	unaryPrec  Prec
	binary     binaryFn
	binaryPrec Prec
}

// specFor keys the dispatch table off a token's category, then its flag
// within that category.
func (p *Parser) specFor(t token.Token) opSpec {
	switch t.Kind {
	case token.Number, token.String:
		return opSpec{unary: literalExpr, unaryPrec: precPrimary}

	case token.Identifier:
		switch t.IdentifierFlag() {
		case token.Variable, token.KwTrue, token.KwFalse, token.KwNone:
			return opSpec{unary: literalExpr, unaryPrec: precPrimary}
		case token.KwNot:
			return opSpec{
				unary: unaryAt(precLogicNot), unaryPrec: precLogicNot,
				binary: notInBinary, binaryPrec: precMemberIn,
			}
		case token.KwIn:
			return opSpec{binary: binaryAt(precMemberIn), binaryPrec: precMemberIn}
		case token.KwIs:
			return opSpec{binary: isBinary, binaryPrec: precIdentityIs}
		case token.KwAnd:
			return opSpec{binary: binaryAt(precLogicAnd), binaryPrec: precLogicAnd}
		case token.KwOr:
			return opSpec{binary: binaryAt(precLogicOr), binaryPrec: precLogicOr}
		case token.KwIf:
			return opSpec{binary: ternaryBinary, binaryPrec: precIfElse}
		default:
			return opSpec{}
		}

	case token.Operator:
		switch t.OperatorFlag() {
		case token.Plus:
			return opSpec{unary: unaryAt(precPosify), unaryPrec: precPosify, binary: binaryAt(precAdd), binaryPrec: precAdd}
		case token.Minus:
			return opSpec{unary: unaryAt(precNegate), unaryPrec: precNegate, binary: binaryAt(precSubtract), binaryPrec: precSubtract}
		case token.Star:
			return opSpec{unary: unaryAt(precSpread), unaryPrec: precSpread, binary: binaryAt(precMultiply), binaryPrec: precMultiply}
		case token.Slash:
			return opSpec{binary: binaryAt(precDivide), binaryPrec: precDivide}
		case token.Dot:
			return opSpec{binary: binaryAt(precDot), binaryPrec: precDot}
		case token.Comma:
			return opSpec{binary: binaryAt(precComma), binaryPrec: precComma}
		case token.EqualEqual, token.NotEqual:
			return opSpec{binary: binaryAt(precCompareEq), binaryPrec: precCompareEq}
		case token.LessEqual, token.LessThan, token.GreaterEqual, token.GreaterThan:
			return opSpec{binary: binaryAt(precCompare), binaryPrec: precCompare}
		default:
			return opSpec{}
		}

	case token.Marker:
		switch t.MarkerFlag() {
		case token.OpenParen:
			return opSpec{unary: groupOrTupleExpr, unaryPrec: precPrimary, binary: callExpr, binaryPrec: precCall}
		case token.OpenBracket:
			return opSpec{unary: listExpr, unaryPrec: precPrimary, binary: subscriptExpr, binaryPrec: precSubscript}
		default:
			return opSpec{}
		}

	default:
		return opSpec{}
	}
}

// parseExpr is the Pratt loop: seed left from the current token's unary
// handler (bailing with a null handle if its precedence doesn't clear
// min), then keep folding in binary operators whose precedence clears
// min, left-associatively.
func (p *Parser) parseExpr(min Prec) tree.ExprHandle {
	if p.aborted {
		return tree.ExprHandle{}
	}
	s := p.specFor(p.cur.Peek())
	if s.unary == nil || s.unaryPrec < min {
		return tree.ExprHandle{}
	}
	left := s.unary(p)

	for {
		s = p.specFor(p.cur.Peek())
		if s.binary == nil || s.binaryPrec < min {
			return left
		}
		left = s.binary(p, left)
	}
}

// ParseExpression parses one full expression at the lowest precedence —
// the entry point statement parsing calls.
func (p *Parser) ParseExpression() tree.ExprHandle {
	return p.parseExpr(precLowest)
}

func literalExpr(p *Parser) tree.ExprHandle {
	tok := p.cur.Eat()
	return p.newExpr(&tree.Literal{Value: tok})
}

// unaryAt builds a prefix handler: eat the operator, recurse at prec for
// the operand, wrap both in a UnaryExpr.
func unaryAt(prec Prec) unaryFn {
	return func(p *Parser) tree.ExprHandle {
		op := p.cur.Eat()
		operand := p.parseExpr(prec)
		return p.newExpr(&tree.UnaryExpr{Op: op, Operand: operand})
	}
}

// binaryAt collapses what the original spreads
// across per-operator associativity<Kind, NodeType> template functions:
// the outer Pratt loop already re-dispatches once per operator occurrence,
// so a chain like `a + b + c` falls out of repeated calls to this one
// helper without it needing its own inner repeat loop.
func binaryAt(prec Prec) binaryFn {
	return func(p *Parser, left tree.ExprHandle) tree.ExprHandle {
		op := p.cur.Eat()
		right := p.parseExpr(prec + 1)
		return p.newExpr(&tree.BinaryExpr{Op: op, Left: left, Right: right})
	}
}

// notInBinary handles `not in`, the infix position of `not`. The lookahead
// for `in` must happen before parsing the right operand — otherwise a
// bare `not` would just start parsing its own unary operand and the
// combined shape would never form.
func notInBinary(p *Parser, left tree.ExprHandle) tree.ExprHandle {
	notTok := p.cur.Eat()
	if isKeyword(p.cur.Peek(), token.KwIn) {
		inTok := p.cur.Eat()
		right := p.parseExpr(precMemberIn + 1)
		return p.newExpr(&tree.BiExprBiTk{Tk1: notTok, Tk2: inTok, Expr1: left, Expr2: right})
	}
	p.report(PartialNotInOperator, p.cur.Peek())
	right := p.parseExpr(precMemberIn + 1)
	return p.newExpr(&tree.BiExprBiTk{Tk1: notTok, Expr1: left, Expr2: right})
}

// isBinary handles plain `is` and the combined `is not`.
func isBinary(p *Parser, left tree.ExprHandle) tree.ExprHandle {
	isTok := p.cur.Eat()
	if isKeyword(p.cur.Peek(), token.KwNot) {
		notTok := p.cur.Eat()
		right := p.parseExpr(precIdentityIs + 1)
		return p.newExpr(&tree.BiExprBiTk{Tk1: isTok, Tk2: notTok, Expr1: left, Expr2: right})
	}
	right := p.parseExpr(precIdentityIs + 1)
	return p.newExpr(&tree.BinaryExpr{Op: isTok, Left: left, Right: right})
}

// ternaryBinary handles `a if b else c`, encoding it as
// BiExprBiTk(if, else, BinaryExpr(if, a, b), c) — the synthetic inner
// BinaryExpr is how two tokens and two expr slots carry three operands.
func ternaryBinary(p *Parser, left tree.ExprHandle) tree.ExprHandle {
	ifTok := p.cur.Eat()
	cond := p.parseExpr(precIfElse + 1)
	inner := p.newExpr(&tree.BinaryExpr{Op: ifTok, Left: left, Right: cond})

	var elseTok token.Token
	if isKeyword(p.cur.Peek(), token.KwElse) {
		elseTok = p.cur.Eat()
	} else {
		p.report(PartialIfElseOperator, p.cur.Peek())
	}
	onfalse := p.parseExpr(precIfElse)
	return p.newExpr(&tree.BiExprBiTk{Tk1: ifTok, Tk2: elseTok, Expr1: inner, Expr2: onfalse})
}

// groupOrTupleExpr handles `(...)` in prefix position: an empty, single,
// or comma-joined inner expression that the syntax analyzer later tells
// apart as Group or Tuple.
func groupOrTupleExpr(p *Parser) tree.ExprHandle {
	// Filter must be installed before eating '(': Eat immediately pulls
	// the next lookahead token, so installing the newline-hiding filter
	// any later would let a newline right after '(' slip through.
	restore := p.cur.WithAdded(FilterNewline)
	defer restore()
	open := p.cur.Eat()
	leave := p.scopes.enterParen()
	defer leave()

	inner := p.parseExpr(precLowest)
	var closeTok token.Token
	if isMarker(p.cur.Peek(), token.CloseParen) {
		closeTok = p.cur.Eat()
	} else {
		p.report(UnterminatedParen, p.cur.Peek())
	}
	return p.newExpr(&tree.BiExprBiTk{Tk1: open, Tk2: closeTok, Expr2: inner})
}

// callExpr handles `(...)` in postfix position, following an already
// parsed expression: `left(...)`.
func callExpr(p *Parser, left tree.ExprHandle) tree.ExprHandle {
	restore := p.cur.WithAdded(FilterNewline)
	defer restore()
	open := p.cur.Eat()
	leave := p.scopes.enterParen()
	defer leave()

	inner := p.parseExpr(precLowest)
	var closeTok token.Token
	if isMarker(p.cur.Peek(), token.CloseParen) {
		closeTok = p.cur.Eat()
	} else {
		p.report(UnterminatedParen, p.cur.Peek())
	}
	return p.newExpr(&tree.BiExprBiTk{Tk1: open, Tk2: closeTok, Expr1: left, Expr2: inner})
}

// listExpr handles `[...]` in prefix position: a list literal.
func listExpr(p *Parser) tree.ExprHandle {
	restore := p.cur.WithAdded(FilterNewline)
	defer restore()
	open := p.cur.Eat()
	leave := p.scopes.enterBracket()
	defer leave()

	inner := p.parseExpr(precLowest)
	var closeTok token.Token
	if isMarker(p.cur.Peek(), token.CloseBracket) {
		closeTok = p.cur.Eat()
	} else {
		p.report(UnterminatedBracket, p.cur.Peek())
	}
	return p.newExpr(&tree.BiExprBiTk{Tk1: open, Tk2: closeTok, Expr2: inner})
}

// subscriptExpr handles `[...]` in postfix position: `left[...]`.
func subscriptExpr(p *Parser, left tree.ExprHandle) tree.ExprHandle {
	restore := p.cur.WithAdded(FilterNewline)
	defer restore()
	open := p.cur.Eat()
	leave := p.scopes.enterBracket()
	defer leave()

	inner := p.parseExpr(precLowest)
	var closeTok token.Token
	if isMarker(p.cur.Peek(), token.CloseBracket) {
		closeTok = p.cur.Eat()
	} else {
		p.report(UnterminatedBracket, p.cur.Peek())
	}
	return p.newExpr(&tree.BiExprBiTk{Tk1: open, Tk2: closeTok, Expr1: left, Expr2: inner})
}
