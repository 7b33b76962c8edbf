// Package cursor provides the character-level scanning primitive shared by
// every hand-written scanner in the lexer: a lexeme buffer with a start and
// current position, safe bounded lookahead, and reactor notification on
// newline and token boundaries. It is generic over the diagnostic payload
// type so it carries no dependency on any one stage's Error shape.
package cursor

import (
	"rattle/internal/reactor"
	"rattle/internal/token"
)

// Outcome re-exports reactor.Outcome so callers of this package need not
// import reactor directly just to implement Reactor.
type Outcome = reactor.Outcome

// Abort and Resume re-export the reactor package's Outcome values.
const (
	Resume = reactor.Resume
	Abort  = reactor.Abort
)

// Reactor is the host callback a Cursor notifies. E is the diagnostic type
// the owning stage reports (e.g. lexer.Error).
type Reactor[E any] interface {
	// Report hands a diagnostic to the host and learns how to proceed.
	Report(err E) Outcome
	// Cache notifies the host that a whole source line has been consumed.
	// The text never includes the trailing newline.
	Cache(line uint32, text string)
	// Trace notifies the host that a token has been produced.
	Trace(tok token.Token)
}

// State is an immutable snapshot of the cursor's position, usable later to
// report a diagnostic over a narrower span than the whole current lexeme.
type State struct {
	Location token.Location
	pos      int
}

// Cursor scans a fixed source string one byte at a time, tracking the
// lexeme accumulated between Start and the current position.
type Cursor[E any] struct {
	program   string
	start     State
	current   State
	lineStart int
	reactor   Reactor[E]
}

// New creates a Cursor over program, notifying r on line and token events.
func New[E any](program string, r Reactor[E]) *Cursor[E] {
	at := State{Location: token.ValidStart()}
	return &Cursor[E]{program: program, start: at, current: at, reactor: r}
}

// DrainProgram jumps straight to the end of the source. No further tokens
// are produced after this call, only Eot.
func (c *Cursor[E]) DrainProgram() {
	c.start.pos = len(c.program)
	c.current.pos = len(c.program)
}

// Empty reports whether the cursor has reached the end of the program.
// Once true it stays true: empty() is monotone.
func (c *Cursor[E]) Empty() bool { return c.current.pos == len(c.program) }

// MaxSafeAhead is how many bytes remain from the current position.
func (c *Cursor[E]) MaxSafeAhead() int { return len(c.program) - c.current.pos }

// MaxSafeBehind is how many bytes precede the current position.
func (c *Cursor[E]) MaxSafeBehind() int { return c.current.pos }

// Safe reports whether Peek(n) is in bounds.
func (c *Cursor[E]) Safe(n int) bool { return n < c.MaxSafeAhead() }

// SafeBehind reports whether Peek(-n-1) is in bounds.
func (c *Cursor[E]) SafeBehind(n int) bool { return n < c.MaxSafeBehind() }

// Peek returns the byte n positions from the current position without
// consuming it. Precondition: Safe(n) (or SafeBehind(-n) for negative n).
func (c *Cursor[E]) Peek(n int) byte { return c.program[c.current.pos+n] }

// StartLocation is where the lexeme currently being built started.
func (c *Cursor[E]) StartLocation() token.Location { return c.start.Location }

// CurrentLocation is the cursor's present position.
func (c *Cursor[E]) CurrentLocation() token.Location { return c.current.Location }

// Buffer is the lexeme accumulated so far, not yet flushed into a token.
func (c *Cursor[E]) Buffer() string { return c.program[c.start.pos:c.current.pos] }

// Bookmark snapshots the current position, for reporting an error over a
// span narrower than the whole pending lexeme.
func (c *Cursor[E]) Bookmark() State { return c.current }

// Since returns the text consumed between mark and the current position.
func (c *Cursor[E]) Since(mark State) string { return c.program[mark.pos:c.current.pos] }

// Eat consumes and returns the current byte. Precondition: not Empty().
// Column tracking resets on newline; the reactor is told about the
// completed line, including the program's final, newline-less line.
func (c *Cursor[E]) Eat() byte {
	ch := c.program[c.current.pos]
	c.current.Location.Column++
	if ch == '\n' {
		c.current.Location.Column = token.ValidStart().Column
		c.reactor.Cache(c.current.Location.Line, c.program[c.lineStart:c.current.pos])
		c.current.Location.Line++
		c.lineStart = c.current.pos + 1
	}
	c.current.pos++
	if c.Empty() && c.lineStart != c.current.pos {
		c.reactor.Cache(c.current.Location.Line, c.program[c.lineStart:c.current.pos])
		c.lineStart = c.current.pos
	}
	return ch
}

// Match consumes the current byte and returns true if it equals expected;
// otherwise leaves the cursor untouched and returns false.
func (c *Cursor[E]) Match(expected byte) bool {
	if c.Safe(0) && c.Peek(0) == expected {
		c.Eat()
		return true
	}
	return false
}

// MatchNext unconditionally eats one byte, then behaves like Match.
func (c *Cursor[E]) MatchNext(expected byte) bool {
	c.Eat()
	return c.Match(expected)
}

// EatWhile consumes bytes while predicate holds, returning the count eaten.
func (c *Cursor[E]) EatWhile(predicate func(byte) bool) int {
	consumed := 0
	for c.Safe(0) && predicate(c.Peek(0)) {
		consumed++
		c.Eat()
	}
	return consumed
}

// Report hands err to the reactor, draining the program if it says Abort.
func (c *Cursor[E]) Report(err E) {
	if c.reactor.Report(err) == Abort {
		c.DrainProgram()
	}
}

// MakeToken builds a token from the pending lexeme using build, traces it,
// and flushes the buffer (Start catches up to the current position).
func (c *Cursor[E]) MakeToken(build func(start, end token.Location, lexeme string) token.Token) token.Token {
	tok := build(c.start.Location, c.current.Location, c.Buffer())
	c.reactor.Trace(tok)
	c.start = c.current
	return tok
}
