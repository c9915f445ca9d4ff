package parser

import (
	"marklint/internal/ast"
	"marklint/internal/diag"
	"marklint/internal/source"
	"marklint/internal/token"
)

// Precedence chain: ternary -> || -> && -> ==/!= -> unary -> postfix -> primary.

func (p *parser) parseExpr() ast.NodeID {
	return p.parseTernary()
}

func (p *parser) parseTernary() ast.NodeID {
	cond := p.parseOr()
	if !cond.IsValid() {
		return ast.NoNodeID
	}
	if _, ok := p.eat(token.Question); !ok {
		return cond
	}

	node := p.b.NewNode(ast.NodeTernary, p.b.Get(cond).Span)
	p.b.AddChild(node, cond)

	then := p.parseExpr()
	if then.IsValid() {
		p.b.AddChild(node, then)
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "':'"); ok {
		els := p.parseExpr()
		if els.IsValid() {
			p.b.AddChild(node, els)
			p.b.Get(node).Span = p.b.Get(node).Span.Cover(p.b.Get(els).Span)
		}
	}
	return node
}

func (p *parser) parseOr() ast.NodeID {
	lhs := p.parseAnd()
	for lhs.IsValid() {
		if _, ok := p.eat(token.OrOr); !ok {
			break
		}
		lhs = p.binary(ast.NodeLogical, lhs, p.parseAnd())
	}
	return lhs
}

func (p *parser) parseAnd() ast.NodeID {
	lhs := p.parseEquality()
	for lhs.IsValid() {
		if _, ok := p.eat(token.AndAnd); !ok {
			break
		}
		lhs = p.binary(ast.NodeLogical, lhs, p.parseEquality())
	}
	return lhs
}

func (p *parser) parseEquality() ast.NodeID {
	lhs := p.parseUnary()
	for lhs.IsValid() {
		kind := p.peek().Kind
		if kind != token.EqEq && kind != token.BangEq {
			break
		}
		p.next()
		lhs = p.binary(ast.NodeCompare, lhs, p.parseUnary())
	}
	return lhs
}

func (p *parser) binary(kind ast.NodeKind, lhs, rhs ast.NodeID) ast.NodeID {
	node := p.b.NewNode(kind, p.b.Get(lhs).Span)
	p.b.AddChild(node, lhs)
	if rhs.IsValid() {
		p.b.AddChild(node, rhs)
		p.b.Get(node).Span = p.b.Get(node).Span.Cover(p.b.Get(rhs).Span)
	}
	return node
}

func (p *parser) parseUnary() ast.NodeID {
	if bang, ok := p.eat(token.Bang); ok {
		node := p.b.NewNode(ast.NodeUnary, bang.Span)
		operand := p.parseUnary()
		if operand.IsValid() {
			p.b.AddChild(node, operand)
			p.b.Get(node).Span = p.b.Get(node).Span.Cover(p.b.Get(operand).Span)
		}
		return node
	}
	return p.parsePostfix()
}

// parsePostfix handles call arguments and member access chains:
// h("td", null), items.map(fn), React.createElement(...).
func (p *parser) parsePostfix() ast.NodeID {
	expr := p.parsePrimary()
	for expr.IsValid() {
		switch p.peek().Kind {
		case token.LParen:
			expr = p.parseCall(expr)
		case token.Dot:
			p.next()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "member name")
			if !ok {
				return expr
			}
			member := p.b.NewNode(ast.NodeMember, p.b.Get(expr).Span.Cover(name.Span))
			p.b.Get(member).Name = p.b.StringsInterner.Intern(name.Text)
			p.b.AddChild(member, expr)
			expr = member
		default:
			return expr
		}
	}
	return expr
}

func (p *parser) parseCall(callee ast.NodeID) ast.NodeID {
	open := p.next() // (
	call := p.b.NewNode(ast.NodeCall, p.b.Get(callee).Span.Cover(open.Span))
	p.b.SetCallee(call, callee)

	for {
		switch p.peek().Kind {
		case token.RParen:
			close := p.next()
			p.b.Get(call).Span = p.b.Get(call).Span.Cover(close.Span)
			return call
		case token.EOF:
			p.report(diag.SynUnclosedParen, open.Span, "unclosed argument list")
			return call
		}
		arg := p.parseExpr()
		if arg.IsValid() {
			p.b.AddChild(call, arg)
		} else {
			p.next() // recover
		}
		if _, ok := p.eat(token.Comma); !ok && p.peek().Kind != token.RParen {
			p.report(diag.SynUnexpectedToken, p.peek().Span, "expected ',' or ')' in argument list")
			p.next()
		}
	}
}

func (p *parser) parsePrimary() ast.NodeID {
	tok := p.peek()
	switch tok.Kind {
	case token.Lt:
		return p.parseElement()

	case token.LParen:
		return p.parseParenOrArrow()

	case token.LBracket:
		return p.parseArray()

	case token.Ident:
		p.next()
		// Single-parameter arrow shorthand: x => body.
		if p.peek().Kind == token.FatArrow {
			return p.parseArrowTail(tok.Span, []source.StringID{p.b.StringsInterner.Intern(tok.Text)})
		}
		node := p.b.NewNode(ast.NodeIdent, tok.Span)
		p.b.Get(node).Name = p.b.StringsInterner.Intern(tok.Text)
		return node

	case token.StringLit:
		p.next()
		node := p.b.NewNode(ast.NodeString, tok.Span)
		p.b.Get(node).Value = p.b.StringsInterner.Intern(unquote(tok.Text))
		return node

	case token.NumberLit:
		p.next()
		node := p.b.NewNode(ast.NodeNumber, tok.Span)
		p.b.Get(node).Value = p.b.StringsInterner.Intern(tok.Text)
		return node

	case token.KwTrue, token.KwFalse:
		p.next()
		node := p.b.NewNode(ast.NodeBool, tok.Span)
		p.b.Get(node).Value = p.b.StringsInterner.Intern(tok.Text)
		return node

	case token.KwNull:
		p.next()
		return p.b.NewNode(ast.NodeNull, tok.Span)

	default:
		p.report(diag.SynExpectExpression, tok.Span, "expected expression, found '"+describe(tok)+"'")
		return ast.NoNodeID
	}
}

// parseParenOrArrow disambiguates '(' expr ')' from '(' params ')' '=>' body
// without backtracking: the parenthesized items are parsed as expressions
// first; a following '=>' requires them all to be plain identifiers.
func (p *parser) parseParenOrArrow() ast.NodeID {
	open := p.next() // (

	var items []ast.NodeID
	for p.peek().Kind != token.RParen && p.peek().Kind != token.EOF {
		item := p.parseExpr()
		if item.IsValid() {
			items = append(items, item)
		} else {
			p.next() // recover
		}
		if _, ok := p.eat(token.Comma); !ok {
			break
		}
	}
	closeTok, closed := p.expect(token.RParen, diag.SynUnclosedParen, "')'")
	span := open.Span
	if closed {
		span = span.Cover(closeTok.Span)
	}

	if p.peek().Kind == token.FatArrow {
		params := make([]source.StringID, 0, len(items))
		for _, item := range items {
			n := p.b.Get(item)
			if n.Kind != ast.NodeIdent {
				p.report(diag.SynUnexpectedToken, n.Span, "arrow function parameter must be an identifier")
				continue
			}
			params = append(params, n.Name)
		}
		return p.parseArrowTail(span, params)
	}

	if len(items) != 1 {
		p.report(diag.SynExpectExpression, span, "expected a single parenthesized expression")
		if len(items) == 0 {
			return ast.NoNodeID
		}
	}
	group := p.b.NewNode(ast.NodeGroup, span)
	p.b.AddChild(group, items[0])
	return group
}

// parseArrowTail parses '=>' body after the parameter list.
func (p *parser) parseArrowTail(headSpan source.Span, params []source.StringID) ast.NodeID {
	p.next() // =>
	fn := p.b.NewNode(ast.NodeArrowFn, headSpan)
	p.b.Get(fn).Params = params

	var body ast.NodeID
	if p.peek().Kind == token.LBrace {
		body = p.parseBlock()
	} else {
		body = p.parseExpr()
	}
	if body.IsValid() {
		p.b.AddChild(fn, body)
		p.b.Get(fn).Span = p.b.Get(fn).Span.Cover(p.b.Get(body).Span)
	}
	return fn
}

func (p *parser) parseArray() ast.NodeID {
	open := p.next() // [
	arr := p.b.NewNode(ast.NodeArray, open.Span)

	for {
		switch p.peek().Kind {
		case token.RBracket:
			close := p.next()
			p.b.Get(arr).Span = p.b.Get(arr).Span.Cover(close.Span)
			return arr
		case token.EOF:
			p.report(diag.SynUnclosedBracket, open.Span, "unclosed array literal")
			return arr
		}
		item := p.parseExpr()
		if item.IsValid() {
			p.b.AddChild(arr, item)
		} else {
			p.next() // recover
		}
		p.eat(token.Comma)
	}
}

// unquote strips the outer quotes and resolves the simple escapes the
// dialect supports.
func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	body := text[1 : len(text)-1]

	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b != '\\' || i+1 >= len(body) {
			out = append(out, b)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		default:
			out = append(out, body[i])
		}
	}
	return string(out)
}
