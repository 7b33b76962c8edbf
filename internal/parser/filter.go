package parser

import "rattle/internal/token"

// Filter is a bitmask of token shapes the Cursor should skip transparently
// while pulling from its TokenSource, mirroring the original's
// State::Filter. The parser never sees a hidden token; it simply never
// arrives.
type Filter uint8

const (
	FilterError Filter = 1 << iota
	FilterEscape
	FilterNewline
	FilterComment
	FilterWhitespace
)

// Combined masks, matching the original's named groupings.
const (
	filterWSERES = FilterWhitespace | FilterError | FilterEscape
	filterCOWSER = filterWSERES | FilterComment
	filterINL    = filterCOWSER | FilterNewline
	filterDefault = filterCOWSER
)

// hides reports whether t should be skipped under f.
func (f Filter) hides(t token.Token) bool {
	if t.Kind != token.Marker {
		return false
	}
	switch t.MarkerFlag() {
	case token.MarkerError:
		return f&FilterError != 0
	case token.Escape:
		return f&FilterEscape != 0
	case token.Newline:
		return f&FilterNewline != 0
	case token.Pound:
		return f&FilterComment != 0
	case token.Whitespace:
		return f&FilterWhitespace != 0
	default:
		return false
	}
}

// TokenSource is the parser's dependency on a lexer stage: anything able to
// produce one token per call, repeating Eot forever once exhausted.
type TokenSource interface {
	Lex() token.Token
}

// Cursor pulls filtered tokens from a TokenSource one at a time, buffering
// exactly the current lookahead token the way internal/cursor buffers
// bytes.
type Cursor struct {
	source  TokenSource
	filter  Filter
	current token.Token
	primed  bool
}

// NewCursor wraps source with the default filter (whitespace, error
// markers, escapes, and comments hidden; newlines visible for EOS
// detection).
func NewCursor(source TokenSource) *Cursor {
	c := &Cursor{source: source, filter: filterDefault}
	c.advance()
	return c
}

func (c *Cursor) advance() {
	for {
		tok := c.source.Lex()
		if tok.Kind == token.Eot || !c.filter.hides(tok) {
			c.current = tok
			c.primed = true
			return
		}
	}
}

// Peek returns the current lookahead token without consuming it.
func (c *Cursor) Peek() token.Token {
	if !c.primed {
		c.advance()
	}
	return c.current
}

// Empty reports whether the cursor has reached end of token stream.
func (c *Cursor) Empty() bool {
	return c.Peek().Kind == token.Eot
}

// Eat consumes and returns the current lookahead token, advancing past it.
func (c *Cursor) Eat() token.Token {
	tok := c.Peek()
	if tok.Kind != token.Eot {
		c.advance()
	}
	return tok
}

// Match consumes and returns (tok, true) if the current token's merged
// kind equals want; otherwise leaves the cursor untouched and returns
// (zero, false).
func (c *Cursor) Match(want uint64) (token.Token, bool) {
	tok := c.Peek()
	if tok.MergedKind() != want {
		return token.Token{}, false
	}
	return c.Eat(), true
}

// With installs flags as the active filter and returns a closure that
// restores the previous filter. Intended for defer: `defer c.With(f)()`.
// Swapping the filter never re-filters the already-buffered lookahead
// token; it only changes what future pulls skip.
func (c *Cursor) With(flags Filter) func() {
	prev := c.filter
	c.filter = flags
	return func() { c.filter = prev }
}

// WithAdded ORs add into the active filter and returns a restore closure.
func (c *Cursor) WithAdded(add Filter) func() {
	return c.With(c.filter | add)
}

// DrainProgram discards every remaining token up to and including Eot,
// the cursor-level counterpart of ILexer::drain() — used to synchronize
// after an unrecoverable parse failure.
func (c *Cursor) DrainProgram() {
	for {
		tok := c.Peek()
		if tok.Kind == token.Eot {
			return
		}
		c.Eat()
	}
}
