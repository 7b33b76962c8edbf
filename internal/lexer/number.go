package lexer

import (
	"rattle/internal/cursor"
	"rattle/internal/token"
)

// numberSeparator is the only digit-group separator the lexer recognizes,
// e.g. 1_000_000.
const numberSeparator = '_'

// number scans one numeric literal. It tracks the sticky error bit and the
// chosen base/float-ness in flags exactly as spec.md's NumberFlag encodes
// them: setKind may change the base or switch to Float, but the error bit
// is never cleared once recorded.
type number struct {
	lex   *Lexer
	flags token.NumberFlag
}

func (n *number) setKind(kind token.NumberFlag) {
	n.flags = kind | (n.flags & token.NumberError)
}

func (n *number) report(kind ErrorKind) {
	n.flags |= token.NumberError
	n.lex.reportHere(kind)
}

func (n *number) reportSince(kind ErrorKind, mark cursor.State) {
	n.flags |= token.NumberError
	n.lex.reportSince(kind, mark)
}

// eatNumberSequence consumes digits per predicate, allowing single
// separators between digit groups. A doubled separator is reported
// immediately; a separator with no following digit is reported once the
// run ends.
func (n *number) eatNumberSequence(predicate func(byte) bool) int {
	cur := n.lex.cur
	consumed := 0
	mark := cur.Bookmark()
	ensureFollows := false
	isSep := func(ch byte) bool { return ch == numberSeparator }

	found := cur.EatWhile(isSep)
	if found > 0 {
		ensureFollows = true
		if found > 1 {
			n.reportSince(RepeatedNumericSeparator, mark)
		}
	}
	for {
		found = cur.EatWhile(predicate)
		if found == 0 {
			if ensureFollows {
				n.reportSince(TrailingNumericSeparator, mark)
			}
			break
		}
		ensureFollows = false
		consumed += found
		mark = cur.Bookmark()
		found = cur.EatWhile(isSep)
		if found > 0 {
			ensureFollows = true
			if found > 1 {
				n.reportSince(RepeatedNumericSeparator, mark)
			}
		}
	}
	return consumed
}

// eatSequenceToEnd consumes a digit sequence, then — since any identifier
// character right after a number is never valid — consumes and flags
// trailing alphanumerics as part of one malformed literal instead of
// starting a second token.
func (n *number) eatSequenceToEnd(invalid ErrorKind, predicate func(byte) bool) int {
	cur := n.lex.cur
	consumed := n.eatNumberSequence(predicate)
	mark := cur.Bookmark()
	if cur.EatWhile(isIdentifierBody) != 0 {
		n.reportSince(invalid, mark)
	}
	return consumed
}

func (n *number) eatNonEmptySequence(empty, invalid ErrorKind, predicate func(byte) bool) int {
	eaten := n.eatSequenceToEnd(invalid, predicate)
	if eaten == 0 {
		n.report(empty)
	}
	return eaten
}

func (n *number) makeBasedToken(kind token.NumberFlag, empty, invalid ErrorKind, predicate func(byte) bool) token.Token {
	n.setKind(kind)
	n.lex.cur.Eat() // consume the base specifier: x/b/o
	n.eatNonEmptySequence(empty, invalid, predicate)
	return n.lex.cur.MakeToken(func(start, end token.Location, lexeme string) token.Token {
		return token.NewNumber(n.flags, start, end, lexeme)
	})
}

func (n *number) scan() token.Token {
	cur := n.lex.cur
	n.flags = token.Decimal
	first := cur.Peek(0)
	cur.Eat()
	if cur.Empty() {
		return cur.MakeToken(func(start, end token.Location, lexeme string) token.Token {
			return token.NewNumber(token.Decimal, start, end, lexeme)
		})
	}
	if first == '0' {
		switch cur.Peek(0) {
		case 'b', 'B':
			return n.makeBasedToken(token.Binary, EmptyBinLiteral, InvalidBinCharacter, isBinaryDigit)
		case 'o', 'O':
			return n.makeBasedToken(token.Octal, EmptyOctLiteral, InvalidOctCharacter, isOctalDigit)
		case 'x', 'X':
			return n.makeBasedToken(token.Hexadecimal, EmptyHexLiteral, InvalidHexCharacter, isHexDigit)
		default:
			if n.eatNumberSequence(isDecimalDigit) > 0 {
				n.report(LeadingZeroInDecimal)
			}
		}
	}
	n.eatNumberSequence(isDecimalDigit)
	if cur.Match('.') {
		n.setKind(token.Float)
		if n.eatNumberSequence(isDecimalDigit) == 0 {
			n.report(DanglingDecimalPoint)
		}
	}
	if cur.Match('e') || cur.Match('E') {
		n.setKind(token.Float)
		if !cur.Match('+') {
			cur.Match('-')
		}
		if n.eatNumberSequence(isDecimalDigit) == 0 {
			n.report(MissingExponent)
		}
	}
	n.eatSequenceToEnd(InvalidDecCharacter, isDecimalDigit)
	return cur.MakeToken(func(start, end token.Location, lexeme string) token.Token {
		return token.NewNumber(n.flags, start, end, lexeme)
	})
}

func (l *Lexer) consumeNumber() token.Token {
	n := &number{lex: l}
	return n.scan()
}
