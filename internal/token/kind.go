package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// StringLit represents a quoted string literal.
	StringLit
	// NumberLit represents a numeric literal.
	NumberLit
	// Text represents a raw text run between markup tags (markup mode only).
	Text

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// Lt represents '<'.
	Lt // <
	// LtSlash represents '</'.
	LtSlash // </
	// Gt represents '>'.
	Gt // >
	// SlashGt represents '/>'.
	SlashGt // />
	// Slash represents '/'.
	Slash // /
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Question represents '?'.
	Question // ?
	// Bang represents '!'.
	Bang // !
	// Assign represents '='.
	Assign // =
	// EqEq represents '=='.
	EqEq // ==
	// BangEq represents '!='.
	BangEq // !=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// FatArrow represents '=>'.
	FatArrow // =>
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	StringLit: "String",
	NumberLit: "Number",
	Text:      "Text",
	KwLet:     "let",
	KwReturn:  "return",
	KwTrue:    "true",
	KwFalse:   "false",
	KwNull:    "null",
	Lt:        "<",
	LtSlash:   "</",
	Gt:        ">",
	SlashGt:   "/>",
	Slash:     "/",
	LBrace:    "{",
	RBrace:    "}",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	Comma:     ",",
	Dot:       ".",
	Colon:     ":",
	Semicolon: ";",
	Question:  "?",
	Bang:      "!",
	Assign:    "=",
	EqEq:      "==",
	BangEq:    "!=",
	AndAnd:    "&&",
	OrOr:      "||",
	FatArrow:  "=>",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
