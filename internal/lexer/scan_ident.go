package lexer

import (
	"ferret/internal/token"
)

// scanIdentOrKeyword scans an identifier and reclassifies it through
// token.LookupKeyword. Type names and value names both come out as Ident;
// only the parser position tells them apart.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// switch to the slow path if a multi-byte rune continues the word
		if lx.cursor.Peek() >= utf8RuneSelf {
			lx.scanIdentTailUnicode()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		lx.scanIdentTailUnicode()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

func (lx *Lexer) scanIdentTailUnicode() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
}
