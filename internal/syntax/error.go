package syntax

import "rattle/internal/token"

// Error is the syntax analyzer's diagnostic shape: unlike the lexer and
// parser, which report against a fixed vocabulary of wire-level stable
// kinds, the analyzer's diagnostics are free-form descriptions with a
// span — spec.md's analyzer error model.
type Error struct {
	Description string
	Start, End  token.Location
}

func (e Error) Error() string { return e.Description }
