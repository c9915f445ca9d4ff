package token

import (
	"marklint/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a string, number, boolean, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a dialect keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwReturn, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
