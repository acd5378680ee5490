package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parseFnDecl parses `fn [receiver] name [<TypeParams>] (params) [-> Return]
// (block | ';')`. A '(' right after 'fn' is ambiguous between a receiver
// group and a missing function name; parseReceiver settles it with one
// bounded speculation.
func (p *Parser) parseFnDecl() (ast.Stmt, bool) {
	fnTok := p.advance() // 'fn'

	var recv *ast.Receiver
	if p.at(token.LParen) {
		recv = p.parseReceiver()
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectFnName, "expected function name")
	if !ok {
		return nil, false
	}

	var typeParams []ast.TypeParam
	if p.at(token.Lt) {
		typeParams, ok = p.parseTypeParams()
		if !ok {
			return nil, false
		}
	}

	if _, ok := p.expect(token.LParen, diag.SynExpectParamList, "expected '(' after function name"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil, false
	}

	decl := &ast.FnDecl{
		Recv:       recv,
		Name:       &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
		TypeParams: typeParams,
		Params:     params,
	}

	if p.eat(token.Arrow) {
		ret, ok2 := p.parseType()
		if !ok2 {
			return nil, false
		}
		decl.Return = ret
	}

	if p.eat(token.Semicolon) {
		// declaration-only prototype
		decl.Sp = p.spanFrom(fnTok.Span)
		return decl, true
	}

	body, ok := p.parseBlock()
	if !ok {
		decl.Sp = p.spanFrom(fnTok.Span)
		return decl, false
	}
	decl.Body = body
	decl.Sp = fnTok.Span.Cover(body.Sp)
	return decl, true
}

// parseReceiver speculatively parses `(name: [@]Type)` and commits only when
// a function name with its own '(' or '<' follows, which is what separates a
// method from a malformed parameter list in name position. On failure the
// stream rewinds and the caller reports the missing name instead.
func (p *Parser) parseReceiver() *ast.Receiver {
	var recv *ast.Receiver

	p.speculate(func() bool {
		lp := p.advance() // '('
		if !p.at(token.Ident) {
			return false
		}
		nameTok := p.advance()
		if !p.eat(token.Colon) {
			return false
		}
		at := p.eat(token.At)
		ty, ok := p.parseType()
		if !ok {
			return false
		}
		rp := p.ts.peek()
		if !p.eat(token.RParen) {
			return false
		}
		// the method name must follow, with its parameter list or
		// type parameters right behind it
		if !p.at(token.Ident) {
			return false
		}
		next := p.ts.peekAt(1).Kind
		if next != token.LParen && next != token.Lt {
			return false
		}
		recv = &ast.Receiver{
			Name: &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
			At:   at,
			Type: ty,
			Sp:   lp.Span.Cover(rp.Span),
		}
		return true
	})

	return recv
}
