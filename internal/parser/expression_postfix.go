package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parsePostfixExpr parses a primary expression followed by a left-to-right
// chain of field accesses, indexing, calls, generic calls, and error
// propagation.
func (p *Parser) parsePostfixExpr() (ast.Expr, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}

	for {
		switch p.ts.peek().Kind {
		case token.Dot:
			p.advance()
			nameTok, ok2 := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name after '.'")
			if !ok2 {
				return expr, false
			}
			expr = &ast.FieldExpr{
				X:    expr,
				Name: &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
				Sp:   expr.Span().Cover(nameTok.Span),
			}

		case token.LBracket:
			p.advance()
			index, ok2 := p.parseExpr()
			if !ok2 {
				return expr, false
			}
			rb, ok2 := p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']' after index expression")
			if !ok2 {
				return expr, false
			}
			expr = &ast.IndexExpr{
				X:     expr,
				Index: index,
				Sp:    expr.Span().Cover(rb.Span),
			}

		case token.LParen:
			call, ok2 := p.parseCallTail(expr, nil)
			if !ok2 {
				return expr, false
			}
			expr = call

		case token.Lt:
			// Possible generic call `name<T, ...>(args)`, ambiguous with a
			// relational chain. The attempt runs only when '<' directly abuts
			// the callee: `a < b > (c)` stays a comparison chain while
			// `Foo<int>(1)` goes through the speculative type-argument parse.
			// When the speculation does not pan out, the stream rewinds and
			// the binary-operator loop treats '<' as a comparison.
			if !isGenericCallee(expr) || len(p.ts.peek().Leading) != 0 {
				return expr, true
			}
			typeArgs, ok2 := p.tryTypeArgs()
			if !ok2 {
				return expr, true
			}
			call, ok2 := p.parseCallTail(expr, typeArgs)
			if !ok2 {
				return expr, false
			}
			expr = call

		case token.BangBang:
			bang := p.advance()
			expr = &ast.PropagateExpr{
				X:  expr,
				Sp: expr.Span().Cover(bang.Span),
			}

		default:
			return expr, true
		}
	}
}

// isGenericCallee limits the generic-call attempt to shapes that can actually
// name a function: a bare name or a field path.
func isGenericCallee(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Ident, *ast.FieldExpr:
		return true
	default:
		return false
	}
}

// tryTypeArgs attempts `< Type {, Type} >` directly followed by '('. On any
// mismatch the stream rewinds to before '<' and nil is returned; diagnostics
// from the attempt are suppressed.
func (p *Parser) tryTypeArgs() ([]ast.Type, bool) {
	var args []ast.Type
	ok := p.speculate(func() bool {
		p.advance() // '<'
		for {
			ty, tok := p.parseType()
			if !tok {
				return false
			}
			args = append(args, ty)
			if p.eat(token.Comma) {
				continue
			}
			break
		}
		if !p.eat(token.Gt) {
			return false
		}
		// the list only counts as type arguments when a call follows
		return p.at(token.LParen)
	})
	if !ok {
		return nil, false
	}
	return args, true
}

// parseCallTail parses `(args)` for a callee, with optional type arguments
// already in hand.
func (p *Parser) parseCallTail(callee ast.Expr, typeArgs []ast.Type) (ast.Expr, bool) {
	p.advance() // '('

	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseExpr()
		if !ok {
			return callee, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}

	rp, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after call arguments")
	if !ok {
		return callee, false
	}

	return &ast.CallExpr{
		Callee:   callee,
		TypeArgs: typeArgs,
		Args:     args,
		Sp:       callee.Span().Cover(rp.Span),
	}, true
}
