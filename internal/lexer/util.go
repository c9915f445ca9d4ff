package lexer

// Tag and component names are identifiers; '-' is allowed in continuation
// position so custom-element names (my-widget) lex as one token. The dialect
// has no subtraction operator, so this is unambiguous.

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '-'
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}
