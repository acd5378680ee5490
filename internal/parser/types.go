package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parseType parses one type expression. Prefix qualifiers nest freely
// (`?#T`, `&mut ?T`); the result form `Err!Ok` is right-associative.
func (p *Parser) parseType() (ast.Type, bool) {
	ty, ok := p.parseTypePrefix()
	if !ok {
		return nil, false
	}

	// Err ! Ok — recursion makes A!B!C group as A!(B!C)
	if p.at(token.Bang) {
		p.advance()
		okTy, ok2 := p.parseType()
		if !ok2 {
			p.err(diag.SynExpectType, "expected success type after '!'")
			return ty, false
		}
		return &ast.ResultType{
			Err: ty,
			Ok:  okTy,
			Sp:  ty.Span().Cover(okTy.Span()),
		}, true
	}

	return ty, true
}

// parseTypePrefix handles the '?', '#', '&', '&mut' qualifiers by prefix
// recursion; no qualifier combination is special-cased.
func (p *Parser) parseTypePrefix() (ast.Type, bool) {
	tok := p.ts.peek()

	switch tok.Kind {
	case token.Question:
		p.advance()
		elem, ok := p.parseTypePrefix()
		if !ok {
			return nil, false
		}
		return &ast.OptionType{Elem: elem, Sp: tok.Span.Cover(elem.Span())}, true

	case token.Hash:
		p.advance()
		elem, ok := p.parseTypePrefix()
		if !ok {
			return nil, false
		}
		return &ast.HeapType{Elem: elem, Sp: tok.Span.Cover(elem.Span())}, true

	case token.Amp:
		p.advance()
		mut := p.eat(token.KwMut)
		elem, ok := p.parseTypePrefix()
		if !ok {
			return nil, false
		}
		return &ast.RefType{Mut: mut, Elem: elem, Sp: tok.Span.Cover(elem.Span())}, true
	}

	return p.parseTypeCore()
}

func (p *Parser) parseTypeCore() (ast.Type, bool) {
	tok := p.ts.peek()

	switch tok.Kind {
	case token.Primitive:
		p.advance()
		return &ast.PrimitiveType{Name: tok.Text, Sp: tok.Span}, true

	case token.Ident:
		return p.parseNamedTypeCore()

	case token.LBracket:
		return p.parseArrayOrSliceType()

	case token.KwMap:
		return p.parseMapType()

	case token.KwFn:
		return p.parseFuncType()

	case token.KwStruct:
		return p.parseStructType()

	case token.KwEnum:
		return p.parseEnumType()

	case token.KwUnion:
		return p.parseUnionType()

	case token.KwInterface:
		return p.parseInterfaceType()

	default:
		p.err(diag.SynExpectType, "expected type")
		return nil, false
	}
}

// parseNamedTypeCore parses `Name`, `scope::Name`, and the applied form
// `Name<Args>`. In type position '<' after a name is always a type-argument
// list; the generic-call ambiguity exists only in expression position.
func (p *Parser) parseNamedTypeCore() (ast.Type, bool) {
	nameTok := p.advance()

	var base ast.Type
	if p.at(token.ColonColon) {
		p.advance()
		member, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name after '::'")
		if !ok {
			return nil, false
		}
		base = &ast.ScopedType{
			Scope: nameTok.Text,
			Name:  member.Text,
			Sp:    nameTok.Span.Cover(member.Span),
		}
	} else {
		base = &ast.NamedType{Name: nameTok.Text, Sp: nameTok.Span}
	}

	if !p.at(token.Lt) {
		return base, true
	}

	p.advance() // '<'
	var args []ast.Type
	for {
		arg, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if p.eat(token.Comma) {
			continue
		}
		break
	}
	gt, ok := p.expect(token.Gt, diag.SynBadTypeArgs, "expected '>' to close type arguments")
	if !ok {
		return nil, false
	}

	return &ast.GenericType{
		Base: base,
		Args: args,
		Sp:   base.Span().Cover(gt.Span),
	}, true
}

func (p *Parser) parseArrayOrSliceType() (ast.Type, bool) {
	lb := p.advance() // '['

	if p.eat(token.RBracket) {
		elem, ok := p.parseTypePrefix()
		if !ok {
			return nil, false
		}
		return &ast.SliceType{Elem: elem, Sp: lb.Span.Cover(elem.Span())}, true
	}

	size, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' after array size"); !ok {
		return nil, false
	}
	elem, ok := p.parseTypePrefix()
	if !ok {
		return nil, false
	}
	return &ast.ArrayType{Size: size, Elem: elem, Sp: lb.Span.Cover(elem.Span())}, true
}

func (p *Parser) parseMapType() (ast.Type, bool) {
	mapTok := p.advance() // 'map'

	if _, ok := p.expect(token.LBracket, diag.SynExpectType, "expected '[' after 'map'"); !ok {
		return nil, false
	}
	key, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' after map key type"); !ok {
		return nil, false
	}
	value, ok := p.parseTypePrefix()
	if !ok {
		return nil, false
	}

	return &ast.MapType{
		Key:   key,
		Value: value,
		Sp:    mapTok.Span.Cover(value.Span()),
	}, true
}

// parseFuncType parses `fn(params) [-> Return]` in type position.
func (p *Parser) parseFuncType() (ast.Type, bool) {
	fnTok := p.advance() // 'fn'

	if _, ok := p.expect(token.LParen, diag.SynExpectParamList, "expected '(' in function type"); !ok {
		return nil, false
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil, false
	}

	ft := &ast.FuncType{Params: params, Sp: p.spanFrom(fnTok.Span)}
	if p.eat(token.Arrow) {
		ret, ok2 := p.parseType()
		if !ok2 {
			return nil, false
		}
		ft.Return = ret
		ft.Sp = fnTok.Span.Cover(ret.Span())
	}
	return ft, true
}

// parseParamList parses `name: Type {, name: Type} [,]` up to and including
// the closing ')'.
func (p *Parser) parseParamList() ([]ast.Param, bool) {
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{
			Name: nameTok.Text,
			Type: ty,
			Sp:   nameTok.Span.Cover(ty.Span()),
		})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

// parseStructType parses `struct { .name: Type, ... }` with an optional
// trailing comma.
func (p *Parser) parseStructType() (ast.Type, bool) {
	structTok := p.advance() // 'struct'

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'struct'"); !ok {
		return nil, false
	}

	var fields []ast.Field
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		dot, ok := p.expect(token.Dot, diag.SynUnexpectedToken, "expected '.' before field name")
		if !ok {
			return nil, false
		}
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fields = append(fields, ast.Field{
			Name: nameTok.Text,
			Type: ty,
			Sp:   dot.Span.Cover(ty.Span()),
		})
		if !p.eat(token.Comma) {
			break
		}
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close struct body")
	if !ok {
		return nil, false
	}
	return &ast.StructType{Fields: fields, Sp: structTok.Span.Cover(rb.Span)}, true
}

func (p *Parser) parseEnumType() (ast.Type, bool) {
	enumTok := p.advance() // 'enum'

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'enum'"); !ok {
		return nil, false
	}

	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum variant name")
		if !ok {
			return nil, false
		}
		variants = append(variants, ast.EnumVariant{Name: nameTok.Text, Sp: nameTok.Span})
		if !p.eat(token.Comma) {
			break
		}
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close enum body")
	if !ok {
		return nil, false
	}
	return &ast.EnumType{Variants: variants, Sp: enumTok.Span.Cover(rb.Span)}, true
}

// parseUnionType parses the type-level `union { T, U }`: a bare list of
// alternative types. The '~' negation is only legal in constraint context,
// which goes through parseConstraint instead — the context flag is the
// parser entry point itself.
func (p *Parser) parseUnionType() (ast.Type, bool) {
	unionTok := p.advance() // 'union'

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'union'"); !ok {
		return nil, false
	}

	var alts []ast.Type
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		alt, ok := p.parseType()
		if !ok {
			return nil, false
		}
		alts = append(alts, alt)
		if !p.eat(token.Comma) {
			break
		}
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close union body")
	if !ok {
		return nil, false
	}
	return &ast.UnionType{Alts: alts, Sp: unionTok.Span.Cover(rb.Span)}, true
}

// parseInterfaceType parses `interface { fn name(params) [-> T], ... }`.
func (p *Parser) parseInterfaceType() (ast.Type, bool) {
	ifaceTok := p.advance() // 'interface'

	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after 'interface'"); !ok {
		return nil, false
	}

	var methods []ast.InterfaceMethod
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fnTok, ok := p.expect(token.KwFn, diag.SynUnexpectedToken, "expected 'fn' to begin interface method")
		if !ok {
			return nil, false
		}
		nameTok, ok := p.expect(token.Ident, diag.SynExpectFnName, "expected method name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.LParen, diag.SynExpectParamList, "expected '(' after method name"); !ok {
			return nil, false
		}
		params, ok := p.parseParamList()
		if !ok {
			return nil, false
		}
		m := ast.InterfaceMethod{
			Name:   nameTok.Text,
			Params: params,
			Sp:     fnTok.Span.Cover(p.lastSpan),
		}
		if p.eat(token.Arrow) {
			ret, ok2 := p.parseType()
			if !ok2 {
				return nil, false
			}
			m.Return = ret
			m.Sp = fnTok.Span.Cover(ret.Span())
		}
		methods = append(methods, m)
		// methods separate by optional ',' or ';'
		for p.eat(token.Comma) || p.eat(token.Semicolon) {
		}
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close interface body")
	if !ok {
		return nil, false
	}
	return &ast.InterfaceType{Methods: methods, Sp: ifaceTok.Span.Cover(rb.Span)}, true
}
