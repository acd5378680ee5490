package lexer

import (
	"ferret/internal/diag"
	"ferret/internal/token"
)

// scanString scans "..." with escape validation. An unterminated literal is a
// lexical error at end-of-line or end-of-file.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.scanEscape()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanChar scans 'c' literals: exactly one escape sequence or one non-quote
// character between the quotes.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	return lx.scanCharBody(start, token.CharLit)
}

// scanByte scans b'c' literals, sharing the char body rules.
func (lx *Lexer) scanByte() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'b'
	lx.cursor.Bump() // opening '\''
	return lx.scanCharBody(start, token.ByteLit)
}

func (lx *Lexer) scanCharBody(start Mark, kind token.Kind) token.Token {
	bad := func(msg string) token.Token {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF() || b == '\n':
		return bad("unterminated character literal")
	case b == '\'':
		lx.cursor.Bump()
		return bad("empty character literal")
	case b == '\\':
		lx.scanEscape()
	default:
		lx.bumpRune()
	}

	if !lx.cursor.Eat('\'') {
		return bad("unterminated character literal")
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanEscape validates one escape sequence after the backslash:
// \n \r \t \' \" \\, \xHH (exactly two hex digits), \u{H+}.
// Anything else is a lexical error; the offending bytes stay consumed so the
// caller keeps scanning from a clean boundary.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'

	if lx.cursor.EOF() {
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "incomplete escape sequence")
		return
	}

	switch b := lx.cursor.Bump(); b {
	case 'n', 'r', 't', '\'', '"', '\\':
		return

	case 'x':
		for i := 0; i < 2; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "\\x requires exactly two hex digits")
				return
			}
			lx.cursor.Bump()
		}

	case 'u':
		if !lx.cursor.Eat('{') {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "\\u requires '{'")
			return
		}
		n := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		if n == 0 || !lx.cursor.Eat('}') {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "\\u{...} requires one or more hex digits")
			return
		}

	default:
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "unknown escape sequence")
	}
}
