package token

import "fmt"

// Token is the smallest lexical unit: a coarse Category, a fine-grained
// Flags variant within that category, its source span, and the exact byte
// slice of source it covers. Lexeme is a zero-copy slice into the host's
// source buffer and must not outlive it.
type Token struct {
	Kind   Category
	Flags  int32
	Start  Location
	End    Location
	Lexeme string
}

// MergedKind packs Kind and Flags into one 64-bit discriminant, which the
// parser's Cursor.Match compares against an expected kind. Matches
// spec.md §3: merged_kind() = (kind << 32) | flags.
func (t Token) MergedKind() uint64 {
	return uint64(uint32(t.Kind))<<32 | uint64(uint32(t.Flags))
}

// Merge builds the same 64-bit discriminant from raw parts, for use in
// switch case labels without constructing a Token.
func Merge(kind Category, flags int32) uint64 {
	return uint64(uint32(kind))<<32 | uint64(uint32(flags))
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%d) %q %s..%s", t.Kind, t.Flags, t.Lexeme, t.Start, t.End)
}

// EOT constructs the terminal end-of-token-stream sentinel at the given
// location. Spec.md invariant (iii): once emitted, all further lexer
// calls return Eot at this same location.
func EOT(at Location) Token {
	return Token{Kind: Eot, Start: at, End: at}
}

// NewIdentifier constructs an Identifier-category token with the keyword
// lookup already applied by the caller.
func NewIdentifier(flag IdentifierFlag, start, end Location, lexeme string) Token {
	return Token{Kind: Identifier, Flags: int32(flag), Start: start, End: end, Lexeme: lexeme}
}

// NewMarker constructs a Marker-category token.
func NewMarker(flag MarkerFlag, start, end Location, lexeme string) Token {
	return Token{Kind: Marker, Flags: int32(flag), Start: start, End: end, Lexeme: lexeme}
}

// NewOperator constructs an Operator-category token.
func NewOperator(flag OperatorFlag, start, end Location, lexeme string) Token {
	return Token{Kind: Operator, Flags: int32(flag), Start: start, End: end, Lexeme: lexeme}
}

// NewAssignment constructs an Assignment-category token.
func NewAssignment(flag AssignmentFlag, start, end Location, lexeme string) Token {
	return Token{Kind: Assignment, Flags: int32(flag), Start: start, End: end, Lexeme: lexeme}
}

// NewNumber constructs a Number-category token.
func NewNumber(flag NumberFlag, start, end Location, lexeme string) Token {
	return Token{Kind: Number, Flags: int32(flag), Start: start, End: end, Lexeme: lexeme}
}

// NewString constructs a String-category token.
func NewString(flag StringFlag, start, end Location, lexeme string) Token {
	return Token{Kind: String, Flags: int32(flag), Start: start, End: end, Lexeme: lexeme}
}

// IdentifierFlag returns t.Flags typed as an IdentifierFlag; only
// meaningful when t.Kind == Identifier.
func (t Token) IdentifierFlag() IdentifierFlag { return IdentifierFlag(t.Flags) }

// MarkerFlag returns t.Flags typed as a MarkerFlag; only meaningful when
// t.Kind == Marker.
func (t Token) MarkerFlag() MarkerFlag { return MarkerFlag(t.Flags) }

// OperatorFlag returns t.Flags typed as an OperatorFlag; only meaningful
// when t.Kind == Operator.
func (t Token) OperatorFlag() OperatorFlag { return OperatorFlag(t.Flags) }

// AssignmentFlag returns t.Flags typed as an AssignmentFlag; only
// meaningful when t.Kind == Assignment.
func (t Token) AssignmentFlag() AssignmentFlag { return AssignmentFlag(t.Flags) }

// NumberFlag returns t.Flags typed as a NumberFlag; only meaningful when
// t.Kind == Number.
func (t Token) NumberFlag() NumberFlag { return NumberFlag(t.Flags) }

// StringFlag returns t.Flags typed as a StringFlag; only meaningful when
// t.Kind == String.
func (t Token) StringFlag() StringFlag { return StringFlag(t.Flags) }

// IsError reports whether t carries a sticky error bit or is itself a
// Marker::Error token — the "previously reported error" sentinel consumers
// must not re-diagnose.
func (t Token) IsError() bool {
	switch t.Kind {
	case Marker:
		return t.MarkerFlag() == MarkerError
	case Number:
		return t.NumberFlag().HasError()
	case String:
		return t.StringFlag().HasError()
	default:
		return false
	}
}
