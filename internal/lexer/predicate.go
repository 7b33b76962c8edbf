package lexer

func isBinaryDigit(ch byte) bool { return ch == '0' || ch == '1' }

func isOctalDigit(ch byte) bool { return '0' <= ch && ch <= '7' }

func isDecimalDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return isDecimalDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isWhitespace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\r' }

func isIdentifierStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentifierBody(ch byte) bool { return isIdentifierStart(ch) || isDecimalDigit(ch) }
