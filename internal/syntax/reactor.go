package syntax

import "rattle/internal/reactor"

// Outcome re-exports reactor.Outcome so implementers of Reactor need not
// import that package directly.
type Outcome = reactor.Outcome

const (
	Resume = reactor.Resume
	Abort  = reactor.Abort
)

// Reactor receives analyzer diagnostics and gates AST node allocation,
// the same two-method contract internal/parser.Reactor uses one stage
// earlier.
type Reactor interface {
	Report(Error) Outcome
	Allocate() bool
}

// BaseReactor is the default Reactor: collects every reported error,
// always resumes, and always allows allocation.
type BaseReactor struct {
	Errors []Error
}

func (r *BaseReactor) Report(e Error) Outcome {
	r.Errors = append(r.Errors, e)
	return Resume
}

func (r *BaseReactor) Allocate() bool { return true }

// ExhaustingReactor wraps a Reactor and denies allocation once Budget
// nodes have been granted, for deterministic out-of-memory testing one
// stage later than internal/parser's identically-shaped type.
type ExhaustingReactor struct {
	Reactor
	Budget int
}

func (r *ExhaustingReactor) Allocate() bool {
	if r.Budget <= 0 {
		return false
	}
	r.Budget--
	return r.Reactor.Allocate()
}
