package lexer

import "rattle/internal/token"

// filterFor picks the "keep scanning" predicate for a string's contiguous
// content run. The stop set depends only on multiline: a single-line
// string stops at its quote, a newline or a backslash; a multiline string
// stops at its quote or a backslash. raw does not change it.
// filterFor always stops at a bare backslash, in every variant, so the
// "raw strings still need a follower after \" branch below is reachable —
// see SPEC_FULL.md §10 for why this differs from a literal reading of
// original_source's per-variant filter templates.
func filterFor(multiline, raw bool, quote byte) func(byte) bool {
	switch {
	case multiline:
		return func(ch byte) bool { return ch != quote && ch != '\\' }
	default:
		return func(ch byte) bool { return ch != quote && ch != '\n' && ch != '\\' }
	}
}

// escapeSequence scans one `\...` escape in a non-raw string, having
// already stopped right before the backslash. Reports and returns true
// (error) for a truncated escape or a malformed `\x` hex pair; reports
// but does NOT error for a plain unrecognized escape letter — that one
// stays "valid enough" to keep the surrounding string token clean.
func (l *Lexer) escapeSequence() bool {
	cur := l.cur
	mark := cur.Bookmark()
	cur.Eat() // consume the backslash
	if cur.Empty() {
		l.reportSince(PartialStringEscape, mark)
		return true
	}
	switch cur.Peek(0) {
	case '0', 'n', 'r', 'v', 'f', 't', 'b', 'a', '\'', '"', '\\':
		cur.Eat()
		return false
	case 'x', 'X':
		if cur.Safe(2) {
			if !(isHexDigit(cur.Peek(1)) && isHexDigit(cur.Peek(2))) {
				l.reportSince(InvalidEscapeHexSequence, mark)
				cur.Eat() // consume just the 'x'/'X'
				return true
			}
			cur.Eat() // 'x'/'X'
			cur.Eat() // first hex digit
			cur.Eat() // second hex digit
			return false
		}
		l.reportSince(PartialStringHexEscape, mark)
		cur.Eat() // consume just the 'x'/'X'
		return true
	default:
		cur.Eat()
		l.reportSince(InvalidEscapeSequence, mark)
		return false
	}
}

// consumeStringVariant scans the body of a string whose opening quote(s)
// and raw/multiline-ness are already known, returning the StringFlag to
// attach to the produced token.
func (l *Lexer) consumeStringVariant(multiline, raw bool) token.StringFlag {
	cur := l.cur
	quote := cur.Eat()
	var flags token.StringFlag
	if raw {
		flags |= token.StringRaw
	}
	if multiline {
		flags |= token.StringMultiline
		cur.Eat()
		cur.Eat()
	}
	filter := filterFor(multiline, raw, quote)
	for {
		cur.EatWhile(filter)
		if cur.Empty() {
			if multiline {
				l.reportHere(UnterminatedMultiLineString)
			} else {
				l.reportHere(UnterminatedSingleLineString)
			}
			return flags | token.StringError
		}
		switch cur.Peek(0) {
		case '\\':
			if raw {
				// raw strings escape anything, but still need a follower.
				mark := cur.Bookmark()
				cur.Eat()
				if cur.Safe(0) {
					cur.Eat()
				} else {
					l.reportSince(PartialStringEscape, mark)
					flags |= token.StringError
				}
			} else if l.escapeSequence() {
				flags |= token.StringError
			}
		case '\n':
			// Unreachable when multiline: the filter above lets '\n'
			// through as ordinary content in that case.
			l.reportHere(UnterminatedSingleLineString)
			return flags | token.StringError
		default:
			if multiline {
				if cur.Match(quote) && cur.Match(quote) && cur.Match(quote) {
					return flags
				}
			} else if cur.Match(quote) {
				return flags
			}
		}
	}
}

func (l *Lexer) consumeStringKind(raw bool) token.Token {
	cur := l.cur
	quote := cur.Peek(0)
	multiline := cur.Safe(2) && cur.Peek(1) == quote && cur.Peek(2) == quote
	flags := l.consumeStringVariant(multiline, raw)
	return cur.MakeToken(func(start, end token.Location, lexeme string) token.Token {
		return token.NewString(flags, start, end, lexeme)
	})
}

func (l *Lexer) consumeString() token.Token    { return l.consumeStringKind(false) }
func (l *Lexer) consumeRawString() token.Token { return l.consumeStringKind(true) }
