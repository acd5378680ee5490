// Package token defines lexical token kinds and trivia for the Ferret
// front-end.
// Invariants:
//   - Token.Text is the exact source lexeme (byte-for-byte).
//   - Token.Span matches Text exactly (Begin..End).
//   - Keywords are recognized as a post-pass over the identifier pattern;
//     type names and value names share the Ident kind and are told apart
//     only by parse position.
//   - Comments and whitespace are Trivia and never appear in the main
//     token stream.
package token
