package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parseBlock parses `{ repeat(statement) }`. Failed statements inside the
// block recover the same way the top level does, so one malformed statement
// never loses the rest of the block.
func (p *Parser) parseBlock() (*ast.BlockStmt, bool) {
	lb, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")
	if !ok {
		return nil, false
	}

	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		p.eatTerminator()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		before := p.ts.mark()
		st, ok := p.parseStmt()
		if ok {
			stmts = append(stmts, st)
		} else {
			stmts = append(stmts, p.resyncStmt(before))
		}
		if p.ts.mark() == before && !p.at(token.EOF) && !p.at(token.RBrace) {
			p.advance()
		}
	}

	rb, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' to close block")
	if !ok {
		return &ast.BlockStmt{Stmts: stmts, Sp: p.spanFrom(lb.Span)}, false
	}
	return &ast.BlockStmt{Stmts: stmts, Sp: lb.Span.Cover(rb.Span)}, true
}

// parseIfStmt parses `if cond { } [else (if ... | { })]`. The else-if chain
// nests as IfStmt in Else.
func (p *Parser) parseIfStmt() (ast.Stmt, bool) {
	ifTok := p.advance() // 'if'

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	stmt := &ast.IfStmt{Cond: cond, Then: then, Sp: ifTok.Span.Cover(then.Sp)}
	if p.eat(token.KwElse) {
		var els ast.Stmt
		if p.at(token.KwIf) {
			els, ok = p.parseIfStmt()
		} else {
			var blk *ast.BlockStmt
			blk, ok = p.parseBlock()
			els = blk
		}
		if !ok {
			return stmt, false
		}
		stmt.Else = els
		stmt.Sp = ifTok.Span.Cover(els.Span())
	}
	return stmt, true
}

func (p *Parser) parseWhileStmt() (ast.Stmt, bool) {
	whileTok := p.advance() // 'while'

	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{
		Cond: cond,
		Body: body,
		Sp:   whileTok.Span.Cover(body.Sp),
	}, true
}

// parseForStmt parses `for value in iterable { }` and the indexed form
// `for index, value in iterable { }`.
func (p *Parser) parseForStmt() (ast.Stmt, bool) {
	forTok := p.advance() // 'for'

	first, ok := p.expect(token.Ident, diag.SynExpectForHeader, "expected loop variable after 'for'")
	if !ok {
		return nil, false
	}

	stmt := &ast.ForStmt{Value: &ast.Ident{Name: first.Text, Sp: first.Span}}
	if p.eat(token.Comma) {
		second, ok2 := p.expect(token.Ident, diag.SynExpectForHeader, "expected value variable after ','")
		if !ok2 {
			return nil, false
		}
		stmt.Index = stmt.Value
		stmt.Value = &ast.Ident{Name: second.Text, Sp: second.Span}
	}

	if _, ok := p.expect(token.KwIn, diag.SynExpectForHeader, "expected 'in' in for header"); !ok {
		return nil, false
	}
	iterable, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	stmt.Iterable = iterable
	stmt.Body = body
	stmt.Sp = forTok.Span.Cover(body.Sp)
	return stmt, true
}
