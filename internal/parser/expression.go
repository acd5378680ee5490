package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/source"
	"ferret/internal/token"
)

// parseExpr is the main entry point for expressions.
func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr implements precedence climbing. minPrec is the loosest
// level the current context still accepts.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}

	for {
		tok := p.ts.peek()

		switch tok.Kind {
		case token.KwCatch:
			if precCatch < minPrec {
				return left, true
			}
			left, ok = p.parseCatchTail(left)
			if !ok {
				return left, false
			}
			continue

		case token.KwIs, token.KwAs:
			if precIsAs < minPrec {
				return left, true
			}
			op := p.advance()
			ty, tok2 := p.parseType()
			if !tok2 {
				return left, false
			}
			sp := left.Span().Cover(ty.Span())
			if op.Kind == token.KwIs {
				left = &ast.TypeTestExpr{X: left, T: ty, Sp: sp}
			} else {
				left = &ast.CastExpr{X: left, To: ty, Sp: sp}
			}
			continue

		case token.DotDot:
			if precRange < minPrec {
				return left, true
			}
			p.advance()
			high, ok2 := p.parseBinaryExpr(precRange + 1)
			if !ok2 {
				p.err(diag.SynExpectExpression, "expected expression after '..'")
				return left, false
			}
			left = &ast.RangeExpr{
				Low:  left,
				High: high,
				Sp:   left.Span().Cover(high.Span()),
			}
			continue
		}

		prec, rightAssoc, isOp := binaryPrec(tok.Kind)
		if !isOp || prec < minPrec {
			return left, true
		}

		opTok := p.advance()

		nextMinPrec := prec + 1
		if rightAssoc {
			nextMinPrec = prec
		}

		right, ok2 := p.parseBinaryExpr(nextMinPrec)
		if !ok2 {
			p.err(diag.SynExpectExpression, "expected expression after '"+opTok.Text+"'")
			return left, false
		}

		left = &ast.BinaryExpr{
			Op: binaryOpFor(opTok.Kind),
			X:  left,
			Y:  right,
			Sp: left.Span().Cover(right.Span()),
		}
	}
}

// parseCatchTail parses `catch [errName { handler }] fallback` after the
// guarded expression. Without the handler block the fallback value is used
// directly on error.
func (p *Parser) parseCatchTail(guarded ast.Expr) (ast.Expr, bool) {
	p.advance() // 'catch'

	var errName *ast.Ident
	var handler *ast.BlockStmt

	// `catch e { ... } fallback` only when an identifier is directly
	// followed by a block; otherwise the identifier is the fallback itself
	if p.at(token.Ident) && p.ts.peekAt(1).Kind == token.LBrace {
		nameTok := p.advance()
		errName = &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span}
		var ok bool
		handler, ok = p.parseBlock()
		if !ok {
			return guarded, false
		}
	}

	fallback, ok := p.parseBinaryExpr(precCatch + 1)
	if !ok {
		p.err(diag.SynExpectExpression, "expected fallback expression after 'catch'")
		return guarded, false
	}

	return &ast.CatchExpr{
		X:        guarded,
		ErrName:  errName,
		Handler:  handler,
		Fallback: fallback,
		Sp:       guarded.Span().Cover(fallback.Span()),
	}, true
}

// parseUnaryExpr collects right-associative prefixes, then a postfix chain.
func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	type prefixOp struct {
		op   ast.UnaryOp
		span source.Span
	}

	var prefixes []prefixOp

	for {
		tok := p.ts.peek()

		// &mut spans two tokens
		if tok.Kind == token.Amp && p.ts.peekAt(1).Kind == token.KwMut {
			ampTok := p.advance()
			mutTok := p.advance()
			prefixes = append(prefixes, prefixOp{
				op:   ast.UnaryRefMut,
				span: ampTok.Span.Cover(mutTok.Span),
			})
			continue
		}

		if op, ok := unaryOpFor(tok.Kind); ok {
			opTok := p.advance()
			prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
			continue
		}
		break
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return nil, false
	}

	// apply prefixes right to left
	for i := len(prefixes) - 1; i >= 0; i-- {
		expr = &ast.UnaryExpr{
			Op: prefixes[i].op,
			X:  expr,
			Sp: prefixes[i].span.Cover(expr.Span()),
		}
	}

	return expr, true
}
