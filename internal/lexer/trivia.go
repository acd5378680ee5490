package lexer

import (
	"ferret/internal/diag"
	"ferret/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token:
//   - runs of ' '/'\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - //... up to \n -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (non-nesting; unterminated reports and
//     cuts at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		// lone \r survives CRLF normalization; treat as space
		if b == '\r' {
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold scans // and /* */ comments. Returns false when the '/'
// is an operator, not a comment opener.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	_, b1, ok := lx.cursor.Peek2()
	if !ok {
		return false
	}

	switch b1 {
	case '/':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for {
			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
				lx.pushTrivia(token.TriviaBlockComment, start)
				return true
			}
			if lx.try2('*', '/') {
				lx.pushTrivia(token.TriviaBlockComment, start)
				return true
			}
			lx.cursor.Bump()
		}

	default:
		return false
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: lx.text(sp),
	})
}
