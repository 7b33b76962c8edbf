package parser

import (
	"rattle/internal/token"
	"rattle/internal/tree"
)

// Next pulls the next parse-tree statement. Blank lines, bare `;` and
// dangling closers (after reporting them) are skipped within the same
// call. A null handle means the stream is exhausted (p.Empty() is true),
// the parse was aborted, or a token that cannot start a statement was
// reported and consumed — in that last case callers should keep pulling.
func (p *Parser) Next() tree.StmtHandle { return p.parseStatement() }

func (p *Parser) parseStatement() tree.StmtHandle {
	for {
		if p.aborted {
			return tree.StmtHandle{}
		}
		tok := p.cur.Peek()

		switch {
		case isMarker(tok, token.OpenBrace):
			return p.newStmt(p.parseBlock())

		case isMarker(tok, token.CloseBrace):
			// Inside a block, leave the closer for the enclosing
			// parseBlock call to consume; with no block open it is
			// genuinely dangling.
			if p.scopes.inBrace() {
				return tree.StmtHandle{}
			}
			p.report(DanglingBrace, p.cur.Eat())
			continue

		case isMarker(tok, token.CloseParen):
			if p.scopes.inParen() {
				return tree.StmtHandle{}
			}
			p.report(DanglingParen, p.cur.Eat())
			continue

		case isMarker(tok, token.CloseBracket):
			if p.scopes.inBracket() {
				return tree.StmtHandle{}
			}
			p.report(DanglingBracket, p.cur.Eat())
			continue

		case isKeyword(tok, token.KwContinue):
			kw := p.cur.Eat()
			p.parseEOS()
			return p.newStmt(&tree.Event{Kind: tree.Continue, At: kw})

		case isKeyword(tok, token.KwBreak):
			kw := p.cur.Eat()
			p.parseEOS()
			return p.newStmt(&tree.Event{Kind: tree.Break, At: kw})

		case isKeyword(tok, token.KwReturn), isKeyword(tok, token.KwNonlocal), isKeyword(tok, token.KwGlobal):
			return p.parseTkExpr()

		case isKeyword(tok, token.KwDef), isKeyword(tok, token.KwClass),
			isKeyword(tok, token.KwWhile), isKeyword(tok, token.KwFor),
			isKeyword(tok, token.KwIf), isKeyword(tok, token.KwElse):
			return p.parseTkExprStmt()

		case isMarker(tok, token.Newline), isMarker(tok, token.Semicolon):
			// A blank line or a bare `;` between statements: not itself a
			// statement, just absorb it and look for the next one.
			p.cur.Eat()
			continue

		case tok.Kind == token.Eot:
			return tree.StmtHandle{}

		default:
			return p.parseAssignment()
		}
	}
}

// parseBlock consumes a `{`-delimited run of statements up to its matching
// `}`, or to Eot if the closer never arrives.
func (p *Parser) parseBlock() *tree.Block {
	open := p.cur.Eat()
	p.scopes.enterBrace()
	defer p.scopes.leaveBrace()

	var stmts []tree.StmtHandle
	for {
		tok := p.cur.Peek()
		if isMarker(tok, token.CloseBrace) {
			return &tree.Block{Open: open, Close: p.cur.Eat(), Statements: stmts}
		}
		if tok.Kind == token.Eot {
			p.report(UnterminatedBrace, tok)
			return &tree.Block{Open: open, Close: tok, Statements: stmts}
		}
		if stmt := p.parseStatement(); !stmt.IsNil() {
			stmts = append(stmts, stmt)
		}
	}
}

// parseTkExpr handles `return expr?`, `nonlocal id-list`, and
// `global id-list`: a keyword, an expression that may legitimately parse
// to nothing (return with no value), and an EOS.
func (p *Parser) parseTkExpr() tree.StmtHandle {
	kw := p.cur.Eat()
	expr := p.ParseExpression()
	p.parseEOS()
	return p.newStmt(&tree.TkExpr{Tk: kw, Expr: expr})
}

// parseTkExprStmt handles def/class/while/for/if/else: a keyword, a
// governing expression (absent for else, which naturally parses to a
// null handle since `{` has no expression spec), and an optional
// brace-delimited body.
func (p *Parser) parseTkExprStmt() tree.StmtHandle {
	kw := p.cur.Eat()
	expr := p.ParseExpression()

	var body tree.StmtHandle
	if isMarker(p.cur.Peek(), token.OpenBrace) {
		body = p.newStmt(p.parseBlock())
	}
	return p.newStmt(&tree.TkExprStmt{Tk: kw, Expr: expr, Body: body})
}

// parseAssignment parses an expression in statement position, then
// decides between a plain ExprStmt and an `lhs op rhs` Assignment
// depending on whether an assignment operator follows.
func (p *Parser) parseAssignment() tree.StmtHandle {
	left := p.ParseExpression()
	if p.aborted {
		return tree.StmtHandle{}
	}

	if tok := p.cur.Peek(); tok.Kind == token.Assignment {
		op := p.cur.Eat()
		right := p.ParseExpression()
		p.parseEOS()
		return p.newStmt(&tree.Assignment{Op: op, Slot: left, Value: right})
	}

	if left.IsNil() {
		tok := p.cur.Peek()
		if tok.Kind == token.Eot {
			p.report(UnterminatedStatement, tok)
			return tree.StmtHandle{}
		}
		p.report(UnexpectedToken, p.cur.Eat())
		return tree.StmtHandle{}
	}

	p.parseEOS()
	return p.newStmt(&tree.ExprStmt{Expr: left})
}

// parseEOS consumes the end-of-statement marker: Newline, Semicolon, or
// Eot. Filtering is reset to default first so a caller that left newlines
// hidden (e.g. mid-expression, inside brackets) doesn't miss one here —
// EOS detection always happens with newlines visible.
func (p *Parser) parseEOS() token.Token {
	restore := p.cur.With(filterDefault)
	defer restore()

	tok := p.cur.Peek()
	switch {
	case tok.Kind == token.Eot:
		return p.cur.Eat()
	case isMarker(tok, token.Newline), isMarker(tok, token.Semicolon):
		return p.cur.Eat()
	default:
		p.report(ExpectedEOSMarker, tok)
		return tok
	}
}
