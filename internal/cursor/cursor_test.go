package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rattle/internal/token"
)

type recordingReactor struct {
	reports []string
	cached  []string
	traced  []token.Token
	outcome Outcome
}

func (r *recordingReactor) Report(err string) Outcome {
	r.reports = append(r.reports, err)
	return r.outcome
}

func (r *recordingReactor) Cache(line uint32, text string) {
	r.cached = append(r.cached, text)
}

func (r *recordingReactor) Trace(tok token.Token) {
	r.traced = append(r.traced, tok)
}

func newTestCursor(program string) (*Cursor[string], *recordingReactor) {
	r := &recordingReactor{outcome: Resume}
	return New[string](program, r), r
}

func TestEatAdvancesAndTracksColumn(t *testing.T) {
	c, _ := newTestCursor("ab")
	require.False(t, c.Empty())
	assert.Equal(t, byte('a'), c.Eat())
	assert.Equal(t, uint32(1), c.CurrentLocation().Column)
}

func TestEmptyIsMonotone(t *testing.T) {
	c, _ := newTestCursor("x")
	require.False(t, c.Empty())
	c.Eat()
	assert.True(t, c.Empty())
	c.DrainProgram()
	assert.True(t, c.Empty())
}

func TestNewlineCachesCompletedLine(t *testing.T) {
	c, r := newTestCursor("ab\ncd")
	c.Eat()
	c.Eat()
	c.Eat() // consumes the newline
	require.Len(t, r.cached, 1)
	assert.Equal(t, "ab", r.cached[0])
	assert.Equal(t, uint32(2), c.CurrentLocation().Line)
	assert.Equal(t, uint32(0), c.CurrentLocation().Column)
}

func TestFinalPartialLineIsCachedOnEOF(t *testing.T) {
	c, r := newTestCursor("ab\ncd")
	for !c.Empty() {
		c.Eat()
	}
	require.Len(t, r.cached, 2)
	assert.Equal(t, "cd", r.cached[1])
}

func TestMatchConsumesOnlyOnSuccess(t *testing.T) {
	c, _ := newTestCursor("=x")
	assert.True(t, c.Match('='))
	assert.False(t, c.Match('='))
	assert.Equal(t, byte('x'), c.Peek(0))
}

func TestEatWhileCountsAndStopsAtBoundary(t *testing.T) {
	c, _ := newTestCursor("123abc")
	n := c.EatWhile(func(b byte) bool { return b >= '0' && b <= '9' })
	assert.Equal(t, 3, n)
	assert.Equal(t, "123", c.Buffer())
}

func TestMakeTokenFlushesBufferAndTraces(t *testing.T) {
	c, r := newTestCursor("ab")
	c.Eat()
	c.Eat()
	tok := c.MakeToken(func(start, end token.Location, lexeme string) token.Token {
		return token.NewIdentifier(token.Variable, start, end, lexeme)
	})
	assert.Equal(t, "ab", tok.Lexeme)
	assert.Empty(t, c.Buffer())
	require.Len(t, r.traced, 1)
	assert.Equal(t, "ab", r.traced[0].Lexeme)
}

func TestReportAbortDrainsProgram(t *testing.T) {
	c, r := newTestCursor("abcdef")
	r.outcome = Abort
	c.Eat()
	c.Report("boom")
	assert.True(t, c.Empty())
}

func TestReportResumeKeepsGoing(t *testing.T) {
	c, r := newTestCursor("abcdef")
	r.outcome = Resume
	c.Eat()
	c.Report("minor")
	assert.False(t, c.Empty())
}

func TestSinceReturnsTextBetweenBookmarkAndNow(t *testing.T) {
	c, _ := newTestCursor("abcdef")
	c.Eat()
	mark := c.Bookmark()
	c.Eat()
	c.Eat()
	assert.Equal(t, "bc", c.Since(mark))
}
