package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ferret/internal/source"
	"ferret/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty writes one line per token:
// index, kind, lexeme, position range, and leading trivia kinds.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)

		if len(tok.Leading) > 0 {
			kinds := make([]string, len(tok.Leading))
			for j, trivia := range tok.Leading {
				kinds[j] = trivia.Kind.String()
			}
			fmt.Fprintf(w, " (leading: %s)", strings.Join(kinds, ", "))
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token list as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		var leading []string
		for _, trivia := range tok.Leading {
			leading = append(leading, trivia.Kind.String())
		}
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: leading,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
