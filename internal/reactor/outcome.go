// Package reactor holds the tiny vocabulary shared by every stage's
// host-callback interface: what a host should do after a diagnostic is
// reported. Each pipeline stage (lexer, parser, syntax) defines its own
// Reactor interface next to its own Error type — this package only holds
// what is truly common, so stages never need to import one another.
package reactor

// Outcome tells the reporting stage how to proceed once a diagnostic has
// been handed to the host.
type Outcome int

const (
	// Resume means: ignore the error and keep going.
	Resume Outcome = iota
	// Abort means: stop producing further output; drain to the end.
	Abort
)

func (o Outcome) String() string {
	if o == Abort {
		return "Abort"
	}
	return "Resume"
}
