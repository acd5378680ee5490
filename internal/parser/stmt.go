package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/token"
)

// parseStmt parses one statement. Trailing ';' is optional everywhere; the
// caller (parseProgram / parseBlock) eats terminator runs between statements.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	tok := p.ts.peek()

	switch tok.Kind {
	case token.KwImport:
		return p.parseImportStmt()
	case token.KwLet:
		return p.parseLetStmt(false)
	case token.KwConst:
		return p.parseLetStmt(true)
	case token.KwConstraint:
		return p.parseConstraintDecl()
	case token.KwType:
		return p.parseTypeDecl()
	case token.KwFn:
		return p.parseFnDecl()
	case token.LBrace:
		blk, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return blk, true
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwReturn:
		return p.parseReturnStmt()

	case token.KwBreak:
		p.advance()
		return &ast.BreakStmt{Sp: tok.Span}, true
	case token.KwContinue:
		p.advance()
		return &ast.ContinueStmt{Sp: tok.Span}, true

	case token.KwDefer:
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.DeferStmt{X: x, Sp: tok.Span.Cover(x.Span())}, true

	case token.KwFork:
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.ForkStmt{X: x, Sp: tok.Span.Cover(x.Span())}, true

	case token.KwTry:
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.TryStmt{X: x, Sp: tok.Span.Cover(x.Span())}, true
	}

	return p.parseSimpleStmt()
}

// parseSimpleStmt covers the expression-led forms: assignment, compound
// assignment, '++'/'--', and the bare expression statement.
func (p *Parser) parseSimpleStmt() (ast.Stmt, bool) {
	lhs, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	tok := p.ts.peek()
	switch {
	case tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus:
		p.advance()
		p.checkAssignTarget(lhs)
		return &ast.IncDecStmt{
			X:   lhs,
			Dec: tok.Kind == token.MinusMinus,
			Sp:  lhs.Span().Cover(tok.Span),
		}, true

	case isAssignOp(tok.Kind):
		p.advance()
		rhs, ok2 := p.parseExpr()
		if !ok2 {
			return nil, false
		}
		p.checkAssignTarget(lhs)
		return &ast.AssignStmt{
			Op:  tok.Kind,
			Lhs: lhs,
			Rhs: rhs,
			Sp:  lhs.Span().Cover(rhs.Span()),
		}, true
	}

	return &ast.ExprStmt{X: lhs, Sp: lhs.Span()}, true
}

// checkAssignTarget reports non-assignable left sides. The tree keeps the
// expression either way so later stages can still see it.
func (p *Parser) checkAssignTarget(lhs ast.Expr) {
	switch lhs.(type) {
	case *ast.Ident, *ast.FieldExpr, *ast.IndexExpr, *ast.BadExpr:
		return
	case *ast.UnaryExpr:
		// deref-style targets stay legal; validation beyond shape is
		// a later stage's job
		return
	}
	p.reportAt(diag.SynBadAssignTarget, lhs.Span(), "cannot assign to this expression")
}

func (p *Parser) parseImportStmt() (ast.Stmt, bool) {
	importTok := p.advance() // 'import'

	pathTok, ok := p.expect(token.StringLit, diag.SynExpectImportPath, "expected import path string")
	if !ok {
		return nil, false
	}

	stmt := &ast.ImportStmt{Path: pathTok.Text, Sp: importTok.Span.Cover(pathTok.Span)}
	if p.eat(token.KwAs) {
		aliasTok, ok2 := p.expect(token.Ident, diag.SynExpectIdentifier, "expected alias after 'as'")
		if !ok2 {
			return nil, false
		}
		stmt.Alias = aliasTok.Text
		stmt.Sp = importTok.Span.Cover(aliasTok.Span)
	}
	return stmt, true
}

// parseLetStmt parses `let` and `const` declaration lists. One keyword
// governs every comma-separated item: `let a = 1, b: i32, c := next()`.
func (p *Parser) parseLetStmt(isConst bool) (ast.Stmt, bool) {
	kwTok := p.advance() // 'let' or 'const'

	var items []ast.LetItem
	for {
		item, ok := p.parseLetItem()
		if !ok {
			return nil, false
		}
		items = append(items, item)
		if !p.eat(token.Comma) {
			break
		}
	}

	return &ast.LetStmt{
		Const: isConst,
		Items: items,
		Sp:    kwTok.Span.Cover(items[len(items)-1].Sp),
	}, true
}

func (p *Parser) parseLetItem() (ast.LetItem, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
	if !ok {
		return ast.LetItem{}, false
	}

	item := ast.LetItem{
		Name: &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
		Sp:   nameTok.Span,
	}

	if p.eat(token.Colon) {
		ty, ok2 := p.parseType()
		if !ok2 {
			return ast.LetItem{}, false
		}
		item.Type = ty
		item.Sp = nameTok.Span.Cover(ty.Span())
	}

	if p.eat(token.ColonAssign) {
		item.Walrus = true
	} else if !p.eat(token.Assign) {
		return item, true
	}

	value, ok := p.parseExpr()
	if !ok {
		return ast.LetItem{}, false
	}
	item.Value = value
	item.Sp = nameTok.Span.Cover(value.Span())
	return item, true
}

// parseConstraintDecl parses `constraint Name = ConstraintExpr`.
func (p *Parser) parseConstraintDecl() (ast.Stmt, bool) {
	kwTok := p.advance() // 'constraint'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected constraint name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectAssign, "expected '=' after constraint name"); !ok {
		return nil, false
	}
	expr, ok := p.parseConstraint()
	if !ok {
		return nil, false
	}

	return &ast.ConstraintDecl{
		Name: &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
		Expr: expr,
		Sp:   kwTok.Span.Cover(expr.Span()),
	}, true
}

// parseTypeDecl parses `type Name [<TypeParams>] Type`. There is no '='
// between the name and the aliased type.
func (p *Parser) parseTypeDecl() (ast.Stmt, bool) {
	kwTok := p.advance() // 'type'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name")
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

	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}

	return &ast.TypeDecl{
		Name:       &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
		TypeParams: typeParams,
		Type:       ty,
		Sp:         kwTok.Span.Cover(ty.Span()),
	}, true
}

// parseTypeParams parses `<T [: Constraint] {, U [: Constraint]}>`.
func (p *Parser) parseTypeParams() ([]ast.TypeParam, bool) {
	p.advance() // '<'

	var params []ast.TypeParam
	for {
		nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type parameter name")
		if !ok {
			return nil, false
		}
		tp := ast.TypeParam{
			Name: &ast.Ident{Name: nameTok.Text, Sp: nameTok.Span},
			Sp:   nameTok.Span,
		}
		if p.eat(token.Colon) {
			bound, ok2 := p.parseConstraint()
			if !ok2 {
				return nil, false
			}
			tp.Bound = bound
			tp.Sp = nameTok.Span.Cover(bound.Span())
		}
		params = append(params, tp)
		if !p.eat(token.Comma) {
			break
		}
	}

	if _, ok := p.expect(token.Gt, diag.SynBadTypeArgs, "expected '>' to close type parameters"); !ok {
		return nil, false
	}
	return params, true
}

// parseReturnStmt parses `return [expr] ["!"]`. The trailing '!' marks the
// value as the error arm of a result type.
func (p *Parser) parseReturnStmt() (ast.Stmt, bool) {
	retTok := p.advance() // 'return'

	stmt := &ast.ReturnStmt{Sp: retTok.Span}
	if p.atExprStart() {
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Value = value
		stmt.Sp = retTok.Span.Cover(value.Span())
	}
	if p.at(token.Bang) {
		bang := p.advance()
		stmt.Err = true
		stmt.Sp = stmt.Sp.Cover(bang.Span)
	}
	return stmt, true
}

// atExprStart reports whether the current token can begin an expression.
// Used by bare `return` to avoid consuming the statement that follows.
func (p *Parser) atExprStart() bool {
	switch p.ts.peek().Kind {
	case token.Ident, token.IntLit, token.FloatLit, token.ImaginaryLit,
		token.StringLit, token.CharLit, token.ByteLit, token.BoolLit,
		token.NoneLit, token.LParen, token.KwMatch,
		token.Bang, token.Minus, token.Amp, token.At, token.Hash,
		token.Tilde, token.DotDotDot:
		return true
	}
	return false
}
