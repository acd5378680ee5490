// Package parser builds a Ferret syntax tree from tokens via hand-written
// recursive descent with precedence climbing for expressions. The grammar's
// ambiguity pairs (generic call vs comparison, receiver vs parameter list,
// union type vs union constraint) are resolved with bounded backtracking and
// an explicit constraint-context flag rather than grammar rewriting.
package parser

import (
	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/source"
	"ferret/internal/token"
)

type Options struct {
	// Reporter receives every diagnostic; nil drops them.
	Reporter diag.Reporter
	// MaxErrors stops reporting (not parsing) past the limit; 0 means
	// unlimited.
	MaxErrors uint
}

// Result bundles the best-effort tree with the diagnostics bag when the
// reporter was a BagReporter.
type Result struct {
	Program *ast.Program
	Bag     *diag.Bag
}

// Parser holds the state for one file parse. It is single-use: one Parser,
// one token stream, one Program.
type Parser struct {
	ts       *stream
	file     *source.File
	opts     Options
	errors   uint
	lastSpan source.Span
	// speculating suppresses diagnostics during backtracking attempts
	speculating int
}

// Parse consumes the token sequence of one file and returns the Program plus
// collected diagnostics. A non-empty diagnostics list never prevents a tree
// from being returned.
func Parse(file *source.File, toks []token.Token, opts Options) Result {
	p := &Parser{
		ts:   newStream(file, toks),
		file: file,
		opts: opts,
	}
	p.lastSpan = source.Span{File: fileIDOf(file)}

	program := p.parseProgram()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Program: program, Bag: bag}
}

// parseProgram is the top-level loop: repeat(statement) until EOF.
func (p *Parser) parseProgram() *ast.Program {
	startSpan := p.ts.peek().Span
	var stmts []ast.Stmt

	for !p.at(token.EOF) {
		p.eatTerminator()
		if p.at(token.EOF) {
			break
		}
		before := p.ts.mark()
		st, ok := p.parseStmt()
		if ok {
			stmts = append(stmts, st)
		} else {
			bad := p.resyncStmt(before)
			stmts = append(stmts, bad)
		}
		// always make progress, even on a statement that parsed to
		// success without consuming (cannot happen today, cheap to keep)
		if p.ts.mark() == before && !p.at(token.EOF) {
			p.advance()
		}
	}

	return &ast.Program{
		Stmts: stmts,
		Sp:    startSpan.Cover(p.ts.peek().Span),
	}
}

// resyncStmt recovers from a failed statement: tokens are discarded up to the
// next ';' (consumed), the enclosing '}' (left for the block parser), or a
// token that can begin a statement. The skipped region becomes a BadStmt and
// the first diagnostic of the failure gets a "resumed here" note.
func (p *Parser) resyncStmt(from streamMark) *ast.BadStmt {
	start := p.ts.peek().Span
	if p.ts.mark() == from && !p.at(token.EOF) && !p.at(token.RBrace) {
		// the failing token itself is part of the discarded region
		p.advance()
	}
	for !p.at(token.EOF) && !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.atStmtStarter() {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	sp := start.Cover(p.lastSpan)
	if sp.End < sp.Start {
		sp.End = sp.Start
	}
	p.note(p.ts.peek().Span, "parsing resumed here")
	return &ast.BadStmt{Sp: sp}
}

// atStmtStarter reports whether the current token can begin a statement, used
// as a recovery stop set.
func (p *Parser) atStmtStarter() bool {
	switch p.ts.peek().Kind {
	case token.KwImport, token.KwLet, token.KwConst, token.KwConstraint,
		token.KwType, token.KwFn, token.KwIf, token.KwWhile, token.KwFor,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwDefer,
		token.KwFork, token.KwTry:
		return true
	default:
		return false
	}
}
