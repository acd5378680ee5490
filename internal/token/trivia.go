package token

import "ferret/internal/source"

// TriviaKind classifies parser-irrelevant content preceding a token.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Trivia(?)"
}

// Trivia is whitespace or a comment. It never appears in the significant
// token stream; each piece rides on the following token's Leading list so
// tooling can recover it by span.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
