package parser

import (
	"marklint/internal/ast"
	"marklint/internal/diag"
	"marklint/internal/token"
)

// parseStmt parses one statement. Returns NoNodeID when no statement could
// be started at the current token; the caller recovers.
func (p *parser) parseStmt() ast.NodeID {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLet()
	case token.KwReturn:
		return p.parseReturn()
	case token.LBrace:
		return p.parseBlock()
	default:
		expr := p.parseExpr()
		if !expr.IsValid() {
			return ast.NoNodeID
		}
		stmt := p.b.NewNode(ast.NodeExprStmt, p.b.Get(expr).Span)
		p.b.AddChild(stmt, expr)
		p.eatSemi(stmt)
		return stmt
	}
}

func (p *parser) parseLet() ast.NodeID {
	kw := p.next() // let
	stmt := p.b.NewNode(ast.NodeLet, kw.Span)

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "binding name")
	if ok {
		p.b.Get(stmt).Name = p.b.StringsInterner.Intern(name.Text)
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "'='"); !ok {
		p.eatSemi(stmt)
		return stmt
	}

	init := p.parseExpr()
	if init.IsValid() {
		p.b.AddChild(stmt, init)
		p.b.Get(stmt).Span = p.b.Get(stmt).Span.Cover(p.b.Get(init).Span)
	}
	p.eatSemi(stmt)
	return stmt
}

func (p *parser) parseReturn() ast.NodeID {
	kw := p.next() // return
	stmt := p.b.NewNode(ast.NodeReturn, kw.Span)

	switch p.peek().Kind {
	case token.Semicolon, token.RBrace, token.EOF:
		// bare return
	default:
		expr := p.parseExpr()
		if expr.IsValid() {
			p.b.AddChild(stmt, expr)
			p.b.Get(stmt).Span = p.b.Get(stmt).Span.Cover(p.b.Get(expr).Span)
		}
	}
	p.eatSemi(stmt)
	return stmt
}

func (p *parser) parseBlock() ast.NodeID {
	open := p.next() // {
	block := p.b.NewNode(ast.NodeBlock, open.Span)

	for {
		switch p.peek().Kind {
		case token.RBrace:
			close := p.next()
			p.b.Get(block).Span = p.b.Get(block).Span.Cover(close.Span)
			return block
		case token.EOF:
			p.report(diag.SynUnclosedBrace, open.Span, "unclosed block")
			return block
		}
		stmt := p.parseStmt()
		if stmt.IsValid() {
			p.b.AddChild(block, stmt)
			continue
		}
		p.next() // recover
	}
}

// eatSemi consumes an optional trailing semicolon and widens the span.
func (p *parser) eatSemi(stmt ast.NodeID) {
	if semi, ok := p.eat(token.Semicolon); ok {
		p.b.Get(stmt).Span = p.b.Get(stmt).Span.Cover(semi.Span)
	}
}
