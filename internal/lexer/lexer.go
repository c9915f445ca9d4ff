package lexer

import (
	"marklint/internal/source"
	"marklint/internal/token"
)

// Lexer produces tokens for the markup-expression dialect.
// It has two regimes: the default expression regime, and a markup-text
// regime entered explicitly by the parser via ScanText when it is inside
// element children.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // leading trivia accumulated for the next token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// ScanText scans a raw markup text run from the current position up to the
// next '<', '{', or EOF and returns it as a Text token. The parser calls it
// right after consuming the '>' that opens element children. When a
// structural token is already buffered the text run is empty; any other
// buffered token is folded back into the text run.
func (lx *Lexer) ScanText() token.Token {
	start := lx.cursor.Mark()
	if lx.look != nil {
		switch lx.look.Kind {
		case token.Lt, token.LtSlash, token.LBrace, token.EOF:
			return token.Token{Kind: token.Text, Span: lx.emptySpan()}
		default:
			start = Mark(lx.look.Span.Start)
			lx.cursor.Off = lx.look.Span.Start
			lx.look = nil
		}
	}

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '<' || b == '{' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Text,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
