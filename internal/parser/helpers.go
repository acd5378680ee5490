package parser

import (
	"ferret/internal/diag"
	"ferret/internal/source"
	"ferret/internal/token"
)

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.ts.next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.ts.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	cur := p.ts.peek().Kind
	for _, k := range kinds {
		if cur == k {
			return true
		}
	}
	return false
}

// eat consumes the current token when it matches k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// diagSpan picks the best span for a diagnostic at the current position. At
// EOF the caret lands just past the last consumed token instead of on a
// zero-width span at offset 0.
func (p *Parser) diagSpan() source.Span {
	peek := p.ts.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect requires a specific token. On mismatch it reports and returns an
// Invalid token without consuming anything.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.ts.peek().Text}, false
}

// err reports an error at the current position.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

// reportAt reports an error anchored on a specific span rather than the
// current token.
func (p *Parser) reportAt(code diag.Code, sp source.Span, msg string) {
	p.report(code, diag.SevError, sp, msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.speculating > 0 || p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.errors++
		if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
			return
		}
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

// note attaches a secondary note to the most recent diagnostic, when the
// reporter exposes its bag. Used to record the recovery point after resync.
func (p *Parser) note(sp source.Span, msg string) {
	br, ok := p.opts.Reporter.(*diag.BagReporter)
	if !ok || br.Bag == nil {
		return
	}
	items := br.Bag.Items()
	if len(items) == 0 {
		return
	}
	last := &items[len(items)-1]
	last.Notes = append(last.Notes, diag.Note{Span: sp, Msg: msg})
}

// spanFrom covers from a start span to the last consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

// eatTerminator consumes an optional statement terminator. A ';' is eaten;
// a newline or '}' terminates implicitly and is left in place.
func (p *Parser) eatTerminator() {
	for p.at(token.Semicolon) {
		p.advance()
	}
}

// speculate runs fn with diagnostics suppressed; on false the stream rewinds
// to where it started. Each ambiguous construct goes through this at most
// once.
func (p *Parser) speculate(fn func() bool) bool {
	m := p.ts.mark()
	saveLast := p.lastSpan
	p.speculating++
	ok := fn()
	p.speculating--
	if !ok {
		p.ts.rewind(m)
		p.lastSpan = saveLast
	}
	return ok
}
