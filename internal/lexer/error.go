package lexer

import "rattle/internal/token"

// ErrorKind is the stable, wire-level identifier for a lexical diagnostic,
// exactly as enumerated in spec.md §6.
type ErrorKind string

const (
	UnterminatedSingleLineString ErrorKind = "unterminated_single_line_string"
	UnterminatedMultiLineString  ErrorKind = "unterminated_multi_line_string"
	PartialStringEscape          ErrorKind = "partial_string_escape"
	PartialStringHexEscape       ErrorKind = "partial_string_hex_escape"
	InvalidEscapeSequence        ErrorKind = "invalid_escape_sequence"
	InvalidEscapeHexSequence     ErrorKind = "invalid_escape_hex_sequence"
	RepeatedNumericSeparator     ErrorKind = "repeated_numeric_separator"
	TrailingNumericSeparator     ErrorKind = "trailing_numeric_separator"
	DanglingDecimalPoint         ErrorKind = "dangling_decimal_point"
	MissingExponent              ErrorKind = "missing_exponent"
	LeadingZeroInDecimal         ErrorKind = "leading_zero_in_decimal"
	InvalidHexCharacter          ErrorKind = "invalid_hex_character"
	InvalidOctCharacter          ErrorKind = "invalid_oct_character"
	InvalidDecCharacter          ErrorKind = "invalid_dec_character"
	InvalidBinCharacter          ErrorKind = "invalid_bin_character"
	EmptyHexLiteral              ErrorKind = "empty_hex_literal"
	EmptyOctLiteral              ErrorKind = "empty_oct_literal"
	EmptyBinLiteral              ErrorKind = "empty_bin_literal"
	PartiallyFormedCRLF          ErrorKind = "partially_formed_crlf"
	PartialToplvlEscape          ErrorKind = "partial_toplvl_escape"
	InvalidToplvlEscapeSequence  ErrorKind = "invalid_toplvl_escape_sequence"
	UnrecognizedToplvlCharacter  ErrorKind = "unrecognized_toplvl_character"
	PartialNotEqual              ErrorKind = "partial_not_equal"
)

// Error is the lexer's diagnostic shape: a kind, the span it covers, and
// the offending lexeme — spec.md §3's lexer Error type.
type Error struct {
	Kind   ErrorKind
	Start  token.Location
	End    token.Location
	Lexeme string
}
