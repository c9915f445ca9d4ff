// Package parser builds the markup-expression AST from a token stream.
// The parser is tolerant: syntax problems are reported through the
// diag.Reporter and parsing continues with a best-effort tree, so the
// nesting checker always has something to work with.
package parser

import (
	"fmt"

	"marklint/internal/ast"
	"marklint/internal/diag"
	"marklint/internal/lexer"
	"marklint/internal/source"
	"marklint/internal/token"
)

type Options struct {
	// Reporter may be nil; syntax problems are then dropped.
	Reporter diag.Reporter
	// MaxErrors stops reporting (not parsing) once reached; 0 means no limit.
	MaxErrors uint
}

type Result struct {
	File ast.NodeID
}

type parser struct {
	lx      *lexer.Lexer
	b       *ast.Builder
	opts    Options
	errors  uint
	lastOff uint32 // progress guard for the recovery loop
}

// ParseFile parses one file into the builder and returns the root node.
func ParseFile(lx *lexer.Lexer, builder *ast.Builder, opts Options) Result {
	p := &parser{lx: lx, b: builder, opts: opts}

	first := lx.Peek()
	file := builder.NewNode(ast.NodeFile, first.Span)

	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			p.b.Get(file).Span = p.b.Get(file).Span.Cover(tok.Span)
			break
		}
		stmt := p.parseStmt()
		if stmt.IsValid() {
			p.b.AddChild(file, stmt)
			p.b.Get(file).Span = p.b.Get(file).Span.Cover(p.b.Get(stmt).Span)
			continue
		}
		// No progress: drop one token so the loop always terminates.
		bad := p.next()
		if bad.Kind == token.EOF {
			break
		}
	}

	return Result{File: file}
}

func (p *parser) next() token.Token { return p.lx.Next() }
func (p *parser) peek() token.Token { return p.lx.Peek() }

// eat consumes the next token when it has the wanted kind.
func (p *parser) eat(kind token.Kind) (token.Token, bool) {
	if p.peek().Kind != kind {
		return token.Token{}, false
	}
	return p.next(), true
}

// expect consumes the wanted kind or reports code at the offending token.
func (p *parser) expect(kind token.Kind, code diag.Code, what string) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind != kind {
		p.report(code, tok.Span, fmt.Sprintf("expected %s, found '%s'", what, describe(tok)))
		return tok, false
	}
	return p.next(), true
}

func (p *parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.MaxErrors != 0 && p.errors >= p.opts.MaxErrors {
		return
	}
	p.errors++
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.StringLit, token.NumberLit:
		return tok.Text
	default:
		return tok.Kind.String()
	}
}
