package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parsePrimaryExpr parses literals, identifiers, parenthesized expressions,
// and match expressions.
func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	tok := p.ts.peek()

	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.ImaginaryLit, token.StringLit,
		token.CharLit, token.ByteLit, token.BoolLit, token.NoneLit:
		p.advance()
		return &ast.BasicLit{Kind: tok.Kind, Text: tok.Text, Sp: tok.Span}, true

	case token.Ident:
		p.advance()
		return &ast.Ident{Name: tok.Text, Sp: tok.Span}, true

	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		rp, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after expression")
		if !ok {
			return nil, false
		}
		return &ast.ParenExpr{X: inner, Sp: tok.Span.Cover(rp.Span)}, true

	case token.KwMatch:
		return p.parseMatchExpr()

	default:
		p.err(diag.SynExpectExpression, "expected expression")
		return nil, false
	}
}

// parseMatchExpr parses `match value { pattern => body, ... }`. Patterns are
// the wildcard '_' or arbitrary expressions; their matching semantics belong
// to a later stage, the parser only records arms in order.
func (p *Parser) parseMatchExpr() (ast.Expr, bool) {
	matchTok := p.advance() // 'match'

	value, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after match value"); !ok {
		return nil, false
	}

	var arms []ast.MatchArm
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		arm, ok := p.parseMatchArm()
		if !ok {
			return nil, false
		}
		arms = append(arms, arm)
		p.eat(token.Comma)
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close match")
	if !ok {
		return nil, false
	}

	return &ast.MatchExpr{
		Value: value,
		Arms:  arms,
		Sp:    matchTok.Span.Cover(rb.Span),
	}, true
}

func (p *Parser) parseMatchArm() (ast.MatchArm, bool) {
	start := p.ts.peek().Span

	var pattern ast.Expr
	if p.at(token.Underscore) {
		p.advance() // wildcard: nil pattern
	} else {
		var ok bool
		pattern, ok = p.parseExpr()
		if !ok {
			p.err(diag.SynExpectMatchArm, "expected match pattern")
			return ast.MatchArm{}, false
		}
	}

	if _, ok := p.expect(token.FatArrow, diag.SynExpectMatchArm, "expected '=>' after match pattern"); !ok {
		return ast.MatchArm{}, false
	}

	arm := ast.MatchArm{Pattern: pattern}
	if p.at(token.LBrace) {
		block, ok := p.parseBlock()
		if !ok {
			return ast.MatchArm{}, false
		}
		arm.Block = block
	} else {
		body, ok := p.parseExpr()
		if !ok {
			p.err(diag.SynExpectMatchArm, "expected match arm body")
			return ast.MatchArm{}, false
		}
		arm.Body = body
	}

	arm.Sp = p.spanFrom(start)
	return arm, true
}
