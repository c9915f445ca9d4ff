package parser

import (
	"strings"

	"marklint/internal/ast"
	"marklint/internal/diag"
	"marklint/internal/source"
	"marklint/internal/token"
)

// parseElement parses an element literal starting at '<'.
// Both <tag .../> and <tag ...>children</tag> forms are handled.
func (p *parser) parseElement() ast.NodeID {
	open := p.next() // <
	el := p.b.NewNode(ast.NodeElement, open.Span)

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "tag name")
	if !ok {
		return el
	}
	p.b.Get(el).Name = p.b.StringsInterner.Intern(name.Text)
	p.b.Get(el).Span = p.b.Get(el).Span.Cover(name.Span)

	p.parseAttrs(el)

	switch p.peek().Kind {
	case token.SlashGt:
		close := p.next()
		p.b.Get(el).Span = p.b.Get(el).Span.Cover(close.Span)
		return el
	case token.Gt:
		p.next()
		p.parseChildren(el, name.Text, open.Span)
		return el
	default:
		p.report(diag.SynUnclosedTag, p.b.Get(el).Span, "expected '>' or '/>' to finish the tag")
		return el
	}
}

// parseAttrs parses zero or more attributes: name, name="str", name={expr}.
func (p *parser) parseAttrs(el ast.NodeID) {
	for {
		nameTok, ok := p.eat(token.Ident)
		if !ok {
			return
		}
		attrName := p.b.StringsInterner.Intern(nameTok.Text)
		attrSpan := nameTok.Span

		if _, ok := p.eat(token.Assign); !ok {
			p.b.AddAttr(el, attrSpan, attrName, ast.NoNodeID) // bare attribute
			continue
		}

		var value ast.NodeID
		switch p.peek().Kind {
		case token.StringLit:
			strTok := p.next()
			value = p.b.NewNode(ast.NodeString, strTok.Span)
			p.b.Get(value).Value = p.b.StringsInterner.Intern(unquote(strTok.Text))
			attrSpan = attrSpan.Cover(strTok.Span)
		case token.LBrace:
			openBrace := p.next()
			value = p.parseExpr()
			if closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}'"); ok {
				attrSpan = attrSpan.Cover(closeTok.Span)
			} else {
				attrSpan = attrSpan.Cover(openBrace.Span)
			}
		default:
			p.report(diag.SynUnexpectedToken, p.peek().Span, "expected attribute value")
		}
		p.b.AddAttr(el, attrSpan, attrName, value)
	}
}

// parseChildren parses element children up to the matching closing tag.
// Raw text is scanned in markup mode; whitespace-only runs are dropped.
func (p *parser) parseChildren(el ast.NodeID, tagName string, openSpan source.Span) {
	for {
		text := p.lx.ScanText()
		if strings.TrimSpace(text.Text) != "" {
			child := p.b.NewNode(ast.NodeText, text.Span)
			p.b.Get(child).Value = p.b.StringsInterner.Intern(text.Text)
			p.b.AddChild(el, child)
		}

		switch p.peek().Kind {
		case token.Lt:
			child := p.parseElement()
			if child.IsValid() {
				p.b.AddChild(el, child)
				p.b.Get(el).Span = p.b.Get(el).Span.Cover(p.b.Get(child).Span)
			}

		case token.LBrace:
			openBrace := p.next()
			interp := p.b.NewNode(ast.NodeInterp, openBrace.Span)
			expr := p.parseExpr()
			if expr.IsValid() {
				p.b.AddChild(interp, expr)
			}
			if closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}'"); ok {
				p.b.Get(interp).Span = p.b.Get(interp).Span.Cover(closeTok.Span)
			}
			p.b.AddChild(el, interp)
			p.b.Get(el).Span = p.b.Get(el).Span.Cover(p.b.Get(interp).Span)

		case token.LtSlash:
			p.next()
			closeName, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "closing tag name")
			if ok && closeName.Text != tagName {
				p.report(diag.SynMismatchedClosingTag, closeName.Span,
					"closing tag '"+closeName.Text+"' does not match opening tag '"+tagName+"'")
			}
			if gt, ok := p.expect(token.Gt, diag.SynUnclosedTag, "'>'"); ok {
				p.b.Get(el).Span = p.b.Get(el).Span.Cover(gt.Span)
			}
			return

		case token.EOF:
			p.report(diag.SynUnclosedTag, openSpan, "element '"+tagName+"' is never closed")
			return

		default:
			// Unexpected token inside children; drop it and carry on.
			bad := p.next()
			p.report(diag.SynUnexpectedToken, bad.Span, "unexpected '"+describe(bad)+"' in element content")
		}
	}
}
