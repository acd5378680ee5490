package parser

import (
	"ferret/internal/source"
	"ferret/internal/token"
)

// stream is a cursor over a fully materialized token sequence. It supports
// lookahead and position save/restore, which the disambiguation paths use for
// bounded backtracking.
type stream struct {
	toks []token.Token
	pos  int
}

// newStream wraps toks, appending an EOF sentinel when the lexer did not
// provide one.
func newStream(file *source.File, toks []token.Token) *stream {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		end := uint32(0)
		if file != nil {
			end = uint32(len(file.Content))
		}
		toks = append(toks, token.Token{
			Kind: token.EOF,
			Span: source.Span{File: fileIDOf(file), Start: end, End: end},
		})
	}
	return &stream{toks: toks}
}

func fileIDOf(f *source.File) source.FileID {
	if f == nil {
		return 0
	}
	return f.ID
}

// peek returns the current token without consuming it.
func (s *stream) peek() token.Token {
	return s.toks[s.idx(s.pos)]
}

// peekAt returns the token n positions ahead (0 == peek).
func (s *stream) peekAt(n int) token.Token {
	return s.toks[s.idx(s.pos+n)]
}

// next consumes and returns the current token. The trailing EOF is sticky.
func (s *stream) next() token.Token {
	tok := s.toks[s.idx(s.pos)]
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
	return tok
}

func (s *stream) idx(i int) int {
	if i >= len(s.toks) {
		return len(s.toks) - 1
	}
	return i
}

// streamMark is a saved stream position.
type streamMark int

func (s *stream) mark() streamMark {
	return streamMark(s.pos)
}

// rewind restores a previously saved position. Used at most once per
// ambiguous construct.
func (s *stream) rewind(m streamMark) {
	s.pos = int(m)
}
