package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationNullComparesEqualToAnything(t *testing.T) {
	null := NullLocation()
	valid := Location{Line: 4, Column: 7}
	assert.True(t, null.Equal(valid))
	assert.True(t, valid.Equal(null))
	assert.True(t, null.Equal(null))
}

func TestLocationEqualRequiresSamePosition(t *testing.T) {
	a := Location{Line: 2, Column: 3}
	b := Location{Line: 2, Column: 3}
	c := Location{Line: 2, Column: 4}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMergedKindPacksCategoryAndFlags(t *testing.T) {
	tok := NewOperator(Plus, ValidStart(), ValidStart(), "+")
	assert.Equal(t, Merge(Operator, int32(Plus)), tok.MergedKind())
}

func TestLookupKeywordDistinguishesVariables(t *testing.T) {
	flag, ok := LookupKeyword("if")
	assert.True(t, ok)
	assert.Equal(t, KwIf, flag)

	_, ok = LookupKeyword("whatever")
	assert.False(t, ok)
}

func TestNumberFlagErrorBitIsStickyAndSeparateFromBase(t *testing.T) {
	f := Hexadecimal | NumberError
	assert.Equal(t, Hexadecimal, f.Base())
	assert.True(t, f.HasError())
	assert.False(t, Hexadecimal.HasError())
}

func TestStringFlagBitsAreIndependent(t *testing.T) {
	f := StringRaw | StringMultiline
	assert.False(t, f.HasError())
	assert.True(t, f.IsRaw())
	assert.True(t, f.IsMultiline())
}

func TestIsErrorCoversEachCategory(t *testing.T) {
	cases := []struct {
		name string
		tok  Token
		want bool
	}{
		{"marker error", NewMarker(MarkerError, ValidStart(), ValidStart(), ""), true},
		{"marker ok", NewMarker(Semicolon, ValidStart(), ValidStart(), ";"), false},
		{"number error", NewNumber(Decimal|NumberError, ValidStart(), ValidStart(), "1_"), true},
		{"number ok", NewNumber(Decimal, ValidStart(), ValidStart(), "1"), false},
		{"string error", NewString(StringError, ValidStart(), ValidStart(), `"`), true},
		{"string ok", NewString(0, ValidStart(), ValidStart(), `""`), false},
		{"identifier never errors", NewIdentifier(Variable, ValidStart(), ValidStart(), "x"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.tok.IsError())
		})
	}
}

func TestEOTIsTerminal(t *testing.T) {
	at := Location{Line: 3, Column: 9}
	tok := EOT(at)
	assert.Equal(t, Eot, tok.Kind)
	assert.Equal(t, at, tok.Start)
	assert.Equal(t, at, tok.End)
}
