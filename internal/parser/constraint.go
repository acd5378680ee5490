package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parseConstraint parses a constraint expression: one or more terms joined
// by '&'. Negation with '~' is legal here but not in plain type position;
// that distinction is carried by which entry point the caller uses.
func (p *Parser) parseConstraint() (ast.Constraint, bool) {
	first, ok := p.parseConstraintTerm()
	if !ok {
		return nil, false
	}
	if !p.at(token.Amp) {
		return first, true
	}

	terms := []ast.Constraint{first}
	for p.eat(token.Amp) {
		next, ok := p.parseConstraintTerm()
		if !ok {
			return nil, false
		}
		terms = append(terms, next)
	}
	return &ast.ConstraintAnd{
		Terms: terms,
		Sp:    first.Span().Cover(terms[len(terms)-1].Span()),
	}, true
}

func (p *Parser) parseConstraintTerm() (ast.Constraint, bool) {
	tok := p.ts.peek()

	switch tok.Kind {
	case token.KwUnion:
		return p.parseConstraintUnion()

	case token.Tilde:
		p.advance()
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.ConstraintTerm{
			Negated: true,
			Type:    ty,
			Sp:      tok.Span.Cover(ty.Span()),
		}, true

	case token.LParen:
		p.advance()
		inner, ok := p.parseConstraint()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' to close constraint"); !ok {
			return nil, false
		}
		return inner, true
	}

	ty, ok := p.parseType()
	if !ok {
		p.err(diag.SynExpectConstraint, "expected constraint")
		return nil, false
	}
	return &ast.ConstraintTerm{Type: ty, Sp: ty.Span()}, true
}

// parseConstraintUnion parses `union { [~]T, ... }`. Unlike the type-level
// union, members here admit '~' negation.
func (p *Parser) parseConstraintUnion() (ast.Constraint, bool) {
	unionTok := p.advance() // 'union'

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'union'"); !ok {
		return nil, false
	}

	var terms []ast.ConstraintTerm
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		start := p.ts.peek().Span
		negated := p.eat(token.Tilde)
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		terms = append(terms, ast.ConstraintTerm{
			Negated: negated,
			Type:    ty,
			Sp:      start.Cover(ty.Span()),
		})
		if !p.eat(token.Comma) {
			break
		}
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close union constraint")
	if !ok {
		return nil, false
	}
	return &ast.ConstraintUnion{Terms: terms, Sp: unionTok.Span.Cover(rb.Span)}, true
}
