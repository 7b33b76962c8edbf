package lexer

import (
	"rattle/internal/reactor"
	"rattle/internal/token"
)

// Outcome re-exports reactor.Outcome so implementers of Reactor need not
// import that package directly.
type Outcome = reactor.Outcome

const (
	Resume = reactor.Resume
	Abort  = reactor.Abort
)

// Reactor is the host callback the lexer notifies: on every diagnostic
// (Report), on every completed source line (Cache), and on every token
// produced (Trace). Embed BaseReactor to get no-op Cache/Trace for free.
type Reactor interface {
	Report(err Error) Outcome
	Cache(line uint32, text string)
	Trace(tok token.Token)
}

// BaseReactor gives Cache and Trace no-op bodies, so a host need only
// implement Report to satisfy Reactor.
type BaseReactor struct{}

func (BaseReactor) Cache(uint32, string) {}
func (BaseReactor) Trace(token.Token)    {}
