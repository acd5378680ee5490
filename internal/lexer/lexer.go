// Package lexer converts raw Ferret source bytes into tokens.
// Every call to Next advances the cursor by at least one byte or returns EOF,
// so tokenization always terminates. Lexical errors are reported through
// Options.Reporter and produce an Invalid token; scanning continues after
// skipping the offending bytes.
package lexer

import (
	"ferret/internal/source"
	"ferret/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == 'b' && lx.isByteLitStart():
		tok = lx.scanByte()

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanChar()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) isByteLitStart() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == 'b' && b1 == '\''
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
