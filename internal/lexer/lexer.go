// Package lexer turns source text into a stream of tokens, one Lex() call
// at a time. It never looks ahead past what a single token needs and never
// buffers the whole token stream — the parser pulls tokens one at a time.
package lexer

import (
	"rattle/internal/cursor"
	"rattle/internal/token"
)

// Lexer scans one token at a time from a fixed source string.
type Lexer struct {
	cur *cursor.Cursor[Error]
}

// New creates a Lexer over program, notifying r of diagnostics, completed
// lines, and produced tokens.
func New(program string, r Reactor) *Lexer {
	return &Lexer{cur: cursor.New[Error](program, r)}
}

// Lex produces the next token. Once the source is exhausted every further
// call returns Eot at the same location — the stream has a stable end.
func (l *Lexer) Lex() token.Token {
	for !l.cur.Empty() {
		switch l.cur.Peek(0) {
		case '\'', '"':
			return l.consumeString()
		case '#':
			return l.consumeComment()
		case '\\':
			return l.toplvlEscape()
		case '\r':
			if l.cur.MatchNext('\n') {
				return l.cur.MakeToken(marker(token.Newline))
			}
			return l.makeErrorToken(PartiallyFormedCRLF)
		case 'r', 'R':
			l.cur.Eat()
			if l.cur.Safe(0) && (l.cur.Peek(0) == '"' || l.cur.Peek(0) == '\'') {
				return l.consumeRawString()
			}
			return l.consumeIdentifier()
		case '\n':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.Newline))
		case ';':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.Semicolon))
		case '.':
			l.cur.Eat()
			return l.cur.MakeToken(operator(token.Dot))
		case ',':
			l.cur.Eat()
			return l.cur.MakeToken(operator(token.Comma))
		case '(':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.OpenParen))
		case ')':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.CloseParen))
		case '{':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.OpenBrace))
		case '}':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.CloseBrace))
		case '[':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.OpenBracket))
		case ']':
			l.cur.Eat()
			return l.cur.MakeToken(marker(token.CloseBracket))
		case '=':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(operator(token.EqualEqual))
			}
			return l.cur.MakeToken(assignment(token.Equal))
		case '-':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(assignment(token.MinusEqual))
			}
			return l.cur.MakeToken(operator(token.Minus))
		case '+':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(assignment(token.PlusEqual))
			}
			return l.cur.MakeToken(operator(token.Plus))
		case '*':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(assignment(token.StarEqual))
			}
			return l.cur.MakeToken(operator(token.Star))
		case '/':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(assignment(token.SlashEqual))
			}
			return l.cur.MakeToken(operator(token.Slash))
		case '!':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(operator(token.NotEqual))
			}
			return l.makeErrorToken(PartialNotEqual)
		case '<':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(operator(token.LessEqual))
			}
			return l.cur.MakeToken(operator(token.LessThan))
		case '>':
			if l.cur.MatchNext('=') {
				return l.cur.MakeToken(operator(token.GreaterEqual))
			}
			return l.cur.MakeToken(operator(token.GreaterThan))
		default:
			switch {
			case isWhitespace(l.cur.Peek(0)):
				return l.consumeWhitespace()
			case isDecimalDigit(l.cur.Peek(0)):
				return l.consumeNumber()
			case isIdentifierStart(l.cur.Peek(0)):
				return l.consumeIdentifier()
			default:
				l.cur.Eat()
				return l.makeErrorToken(UnrecognizedToplvlCharacter)
			}
		}
	}
	return l.cur.MakeToken(func(_, end token.Location, _ string) token.Token {
		return token.EOT(end)
	})
}

// toplvlEscape handles a line-continuation backslash: `\` followed by a
// newline (or CRLF) splices the next line onto this one; anything else is
// a malformed escape, reported but still tokenized as Escape.
func (l *Lexer) toplvlEscape() token.Token {
	l.cur.Eat() // consume the backslash
	if l.cur.Safe(0) {
		switch l.cur.Peek(0) {
		case '\r':
			if !l.cur.MatchNext('\n') {
				l.reportHere(PartiallyFormedCRLF)
			}
		case '\n':
			l.cur.Eat()
		default:
			l.cur.Eat()
			l.reportHere(InvalidToplvlEscapeSequence)
		}
	} else {
		l.reportHere(PartialToplvlEscape)
	}
	return l.cur.MakeToken(marker(token.Escape))
}

func (l *Lexer) consumeIdentifier() token.Token {
	l.cur.EatWhile(isIdentifierBody)
	return l.cur.MakeToken(func(start, end token.Location, lexeme string) token.Token {
		if flag, ok := token.LookupKeyword(lexeme); ok {
			return token.NewIdentifier(flag, start, end, lexeme)
		}
		return token.NewIdentifier(token.Variable, start, end, lexeme)
	})
}

func (l *Lexer) consumeWhitespace() token.Token {
	l.cur.EatWhile(isWhitespace)
	return l.cur.MakeToken(marker(token.Whitespace))
}

func (l *Lexer) consumeComment() token.Token {
	l.cur.EatWhile(func(ch byte) bool { return ch != '\n' })
	return l.cur.MakeToken(marker(token.Pound))
}

func (l *Lexer) reportHere(kind ErrorKind) {
	l.cur.Report(Error{
		Kind:   kind,
		Start:  l.cur.StartLocation(),
		End:    l.cur.CurrentLocation(),
		Lexeme: l.cur.Buffer(),
	})
}

func (l *Lexer) reportSince(kind ErrorKind, mark cursor.State) {
	l.cur.Report(Error{
		Kind:   kind,
		Start:  mark.Location,
		End:    l.cur.CurrentLocation(),
		Lexeme: l.cur.Since(mark),
	})
}

func (l *Lexer) makeErrorToken(kind ErrorKind) token.Token {
	l.reportHere(kind)
	return l.cur.MakeToken(marker(token.MarkerError))
}

func marker(flag token.MarkerFlag) func(start, end token.Location, lexeme string) token.Token {
	return func(start, end token.Location, lexeme string) token.Token {
		return token.NewMarker(flag, start, end, lexeme)
	}
}

func operator(flag token.OperatorFlag) func(start, end token.Location, lexeme string) token.Token {
	return func(start, end token.Location, lexeme string) token.Token {
		return token.NewOperator(flag, start, end, lexeme)
	}
}

func assignment(flag token.AssignmentFlag) func(start, end token.Location, lexeme string) token.Token {
	return func(start, end token.Location, lexeme string) token.Token {
		return token.NewAssignment(flag, start, end, lexeme)
	}
}
