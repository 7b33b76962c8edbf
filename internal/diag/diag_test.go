package diag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rattle/internal/lexer"
	"rattle/internal/parser"
	"rattle/internal/syntax"
	"rattle/internal/token"
)

func TestFromLexerCarriesKindAsCodeAndSpan(t *testing.T) {
	start := token.Location{Line: 2, Column: 3}
	end := token.Location{Line: 2, Column: 9}
	d := FromLexer(lexer.Error{Kind: lexer.UnterminatedSingleLineString, Start: start, End: end, Lexeme: `"abc`})

	require.Equal(t, "unterminated_single_line_string", d.Code)
	require.Equal(t, SeverityError, d.Severity)
	require.Equal(t, start, d.Start)
	require.Equal(t, end, d.End)
	require.Contains(t, d.Message, "abc")
}

func TestFromParserUsesOffendingTokenSpan(t *testing.T) {
	tok := token.NewMarker(token.CloseParen, token.Location{Line: 1, Column: 4}, token.Location{Line: 1, Column: 5}, ")")
	d := FromParser(parser.Error{Kind: parser.DanglingParen, At: tok})

	require.Equal(t, "dangling_paren", d.Code)
	require.Equal(t, tok.Start, d.Start)
	require.Equal(t, tok.End, d.End)
}

func TestFromSyntaxUsesCatchAllCode(t *testing.T) {
	d := FromSyntax(syntax.Error{Description: "break outside loop", Start: token.Location{Line: 5}, End: token.Location{Line: 5}})

	require.Equal(t, "syntax_error", d.Code)
	require.Equal(t, "break outside loop", d.Message)
}

func TestStringRendersSeverityCodeLocationAndMessage(t *testing.T) {
	d := Diagnostic{
		Code:     "unexpected_token",
		Severity: SeverityError,
		Message:  "unexpected token near \"}\"",
		Start:    token.Location{Line: 3, Column: 7},
	}

	rendered := d.String()
	require.Contains(t, rendered, "error")
	require.Contains(t, rendered, "unexpected_token")
	require.Contains(t, rendered, "3:7")
	require.Contains(t, rendered, "unexpected token")
}

func TestStringAppendsHintWhenPresent(t *testing.T) {
	d := Diagnostic{Code: "x", Message: "m", Hint: "try adding a colon"}
	require.Contains(t, d.String(), "hint: try adding a colon")
}
