package lexer

import (
	"ferret/internal/diag"
	"ferret/internal/token"
)

// Supported shapes: 0, 123, 42_000, 0b101, 0o17, 0x1A_B, 1.0, 1e-3, 1.5e+10,
// and imaginary forms 2i, 3.5i, 1e3i. A bare integer is never turned into a
// float without the '.'; '1..2' stays IntLit DotDot IntLit. Malformed forms
// report through Options.Reporter and come out as one Invalid token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// radix prefix?
	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				return lx.scanRadix(start, isHex, "hexadecimal")
			case 'o', 'O':
				return lx.scanRadix(start, isOctal, "octal")
			case 'b', 'B':
				return lx.scanRadix(start, isBinary, "binary")
			}
		}
	}

	// decimal integer part
	lx.scanDigits(isDec)

	// fractional part: only when a digit actually follows the dot,
	// otherwise the dot belongs to '..' or a field access
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		lx.scanDigits(isDec)
	}

	// exponent
	if p := lx.cursor.Peek(); p == 'e' || p == 'E' {
		if lx.exponentAhead() {
			kind = token.FloatLit
			lx.cursor.Bump() // e/E
			if p := lx.cursor.Peek(); p == '+' || p == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				return lx.badNumber(start, "expected digit after exponent")
			}
			lx.scanDigits(isDec)
		}
	}

	// imaginary suffix: 'i' not followed by another identifier character
	if lx.cursor.Peek() == 'i' {
		if _, b1, ok := lx.cursor.Peek2(); !ok || !isIdentContinueByte(b1) {
			lx.cursor.Bump()
			kind = token.ImaginaryLit
		}
	}

	if isIdentContinueByte(lx.cursor.Peek()) {
		return lx.badNumber(start, "invalid suffix on numeric literal")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanRadix consumes a 0x/0o/0b prefix plus its digits. At least one digit is
// required and '_' may not lead.
func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool, name string) token.Token {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // radix letter

	if !digit(lx.cursor.Peek()) {
		return lx.badNumber(start, "expected "+name+" digit")
	}
	lx.scanDigits(digit)

	if isIdentContinueByte(lx.cursor.Peek()) {
		return lx.badNumber(start, "invalid "+name+" digit")
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
}

// scanDigits consumes a run of digits with embedded '_' separators.
func (lx *Lexer) scanDigits(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if digit(b) || b == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}
}

// exponentAhead checks that 'e'/'E' really starts an exponent and is not the
// beginning of a trailing identifier (e.g. '2eggs').
func (lx *Lexer) exponentAhead() bool {
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}
	if isDec(b1) {
		return true
	}
	if b1 == '+' || b1 == '-' {
		_, _, b2, ok3 := lx.cursor.Peek3()
		return ok3 && isDec(b2)
	}
	return false
}

// badNumber consumes the rest of the word so the next scan starts at a
// plausible token boundary, then reports.
func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
