package token

// IdentifierFlag distinguishes a plain identifier from each reserved
// keyword spelling. Variable is the zero value so a freshly-zeroed Token
// defaults to the common case.
type IdentifierFlag int32

const (
	Variable IdentifierFlag = iota
	KwDef
	KwClass
	KwReturn
	KwIf
	KwElse
	KwFor
	KwWhile
	KwBreak
	KwContinue
	KwIn
	KwIs
	KwNot
	KwAnd
	KwOr
	KwTrue
	KwFalse
	KwNone
	KwNonlocal
	KwGlobal
)

// keywordTable is the single source of truth driving the keyword→flag
// lookup, the flag→spelling table, and String(); the idiomatic Go
// substitute for the schema-file/codegen step spec.md §9 calls for.
var keywordTable = []struct {
	flag    IdentifierFlag
	spelling string
}{
	{KwDef, "def"},
	{KwClass, "class"},
	{KwReturn, "return"},
	{KwIf, "if"},
	{KwElse, "else"},
	{KwFor, "for"},
	{KwWhile, "while"},
	{KwBreak, "break"},
	{KwContinue, "continue"},
	{KwIn, "in"},
	{KwIs, "is"},
	{KwNot, "not"},
	{KwAnd, "and"},
	{KwOr, "or"},
	{KwTrue, "True"},
	{KwFalse, "False"},
	{KwNone, "None"},
	{KwNonlocal, "nonlocal"},
	{KwGlobal, "global"},
}

var keywordBySpelling = func() map[string]IdentifierFlag {
	m := make(map[string]IdentifierFlag, len(keywordTable))
	for _, e := range keywordTable {
		m[e.spelling] = e.flag
	}
	return m
}()

var identifierFlagNames = func() map[IdentifierFlag]string {
	m := map[IdentifierFlag]string{Variable: "Variable"}
	for _, e := range keywordTable {
		m[e.flag] = e.spelling
	}
	return m
}()

// LookupKeyword returns the IdentifierFlag for lexeme, and whether lexeme
// names a keyword at all (false ⇒ Variable).
func LookupKeyword(lexeme string) (IdentifierFlag, bool) {
	f, ok := keywordBySpelling[lexeme]
	return f, ok
}

func (f IdentifierFlag) String() string {
	if name, ok := identifierFlagNames[f]; ok {
		return name
	}
	return "IdentifierFlag(?)"
}

// MarkerFlag enumerates the fine-grained variants of Category Marker.
type MarkerFlag int32

const (
	OpenBrace MarkerFlag = iota
	CloseBrace
	OpenBracket
	CloseBracket
	OpenParen
	CloseParen
	Pound
	MarkerError
	Whitespace
	Semicolon
	Newline
	Escape
)

var markerFlagNames = [...]string{
	OpenBrace: "{", CloseBrace: "}", OpenBracket: "[", CloseBracket: "]",
	OpenParen: "(", CloseParen: ")", Pound: "#", MarkerError: "Error",
	Whitespace: "Whitespace", Semicolon: ";", Newline: "Newline", Escape: "Escape",
}

func (f MarkerFlag) String() string {
	if int(f) >= 0 && int(f) < len(markerFlagNames) {
		return markerFlagNames[f]
	}
	return "MarkerFlag(?)"
}

// OperatorFlag enumerates the fine-grained variants of Category Operator.
// Bitwise operators and shifts are deliberately absent: spec.md scopes the
// token model to "the consistently present operator set" (see DESIGN.md
// Open Question decisions).
type OperatorFlag int32

const (
	Plus OperatorFlag = iota
	Minus
	Star
	Slash
	Dot
	Comma
	EqualEqual
	NotEqual
	LessEqual
	LessThan
	GreaterEqual
	GreaterThan
)

var operatorFlagNames = [...]string{
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Dot: ".", Comma: ",",
	EqualEqual: "==", NotEqual: "!=", LessEqual: "<=", LessThan: "<",
	GreaterEqual: ">=", GreaterThan: ">",
}

func (f OperatorFlag) String() string {
	if int(f) >= 0 && int(f) < len(operatorFlagNames) {
		return operatorFlagNames[f]
	}
	return "OperatorFlag(?)"
}

// AssignmentFlag enumerates the fine-grained variants of Category
// Assignment. Extensible: adding a compound assignment means adding a
// constant here and its assignmentFlagNames entry, a switch arm in the
// lexer, and the matching ast.AssignKind and syntax.assignKindFor entries.
type AssignmentFlag int32

const (
	Equal AssignmentFlag = iota
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
)

var assignmentFlagNames = [...]string{
	Equal: "=", PlusEqual: "+=", MinusEqual: "-=", StarEqual: "*=", SlashEqual: "/=",
}

func (f AssignmentFlag) String() string {
	if int(f) >= 0 && int(f) < len(assignmentFlagNames) {
		return assignmentFlagNames[f]
	}
	return "AssignmentFlag(?)"
}

// NumberFlag packs the number's base in the low bits and a sticky error
// bit at bit 16, matching spec.md's "low bits pick base ... bit 16 is an
// Error sticky flag" encoding.
type NumberFlag int32

const (
	Float NumberFlag = iota
	Binary
	Octal
	Decimal
	Hexadecimal
)

// NumberError is the sticky error bit, OR'd into a NumberFlag base value.
const NumberError NumberFlag = 1 << 16

var numberFlagBaseNames = [...]string{
	Float: "Float", Binary: "Binary", Octal: "Octal", Decimal: "Decimal", Hexadecimal: "Hexadecimal",
}

// Base returns the base component of f, stripping the sticky error bit.
func (f NumberFlag) Base() NumberFlag { return f &^ NumberError }

// HasError reports whether the sticky error bit is set.
func (f NumberFlag) HasError() bool { return f&NumberError != 0 }

func (f NumberFlag) String() string {
	base := f.Base()
	name := "NumberFlag(?)"
	if int(base) >= 0 && int(base) < len(numberFlagBaseNames) {
		name = numberFlagBaseNames[base]
	}
	if f.HasError() {
		return name + "|Error"
	}
	return name
}

// StringFlag packs Error/Raw/Multiline as independent bits, matching
// spec.md's "bit 0 Error, bit 1 Raw, bit 2 Multiline" encoding.
type StringFlag int32

const (
	StringError     StringFlag = 1 << 0
	StringRaw       StringFlag = 1 << 1
	StringMultiline StringFlag = 1 << 2
)

func (f StringFlag) HasError() bool    { return f&StringError != 0 }
func (f StringFlag) IsRaw() bool       { return f&StringRaw != 0 }
func (f StringFlag) IsMultiline() bool { return f&StringMultiline != 0 }

func (f StringFlag) String() string {
	s := "String"
	if f.IsRaw() {
		s += "|Raw"
	}
	if f.IsMultiline() {
		s += "|Multiline"
	}
	if f.HasError() {
		s += "|Error"
	}
	return s
}
