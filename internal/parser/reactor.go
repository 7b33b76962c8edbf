package parser

import "rattle/internal/reactor"

// Outcome re-exports reactor.Outcome so implementers of Reactor need not
// import that package directly.
type Outcome = reactor.Outcome

const (
	Resume = reactor.Resume
	Abort  = reactor.Abort
)

// Reactor receives parser diagnostics and gates node allocation, in place
// of the exceptions the original throws. Report is called for every Error
// as it's raised; returning Abort drains the token stream the same way a
// lexer-level Abort does. Allocate is consulted before every node
// construction and stands in for the original's fallible
// reactor.allocate(sizeof(Node)) — a Go arena never actually runs out of
// room, so this exists purely so a host can simulate reactor_out_of_memory
// and exercise that error path in tests.
type Reactor interface {
	Report(Error) Outcome
	Allocate() bool
}

// BaseReactor is the default Reactor: it collects every reported error,
// always resumes, and always allows allocation. Embed it and override
// what you need.
type BaseReactor struct {
	Errors []Error
}

func (r *BaseReactor) Report(e Error) Outcome {
	r.Errors = append(r.Errors, e)
	return Resume
}

func (r *BaseReactor) Allocate() bool { return true }

// ExhaustingReactor wraps a Reactor and denies allocation once a fixed
// budget of node allocations has been spent, for exercising
// reactor_out_of_memory deterministically in tests.
type ExhaustingReactor struct {
	Reactor
	Budget int
}

func (r *ExhaustingReactor) Allocate() bool {
	if r.Budget <= 0 {
		return false
	}
	r.Budget--
	return true
}
