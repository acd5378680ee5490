package token_test

import (
	"testing"

	"ferret/internal/source"
	"ferret/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.ImaginaryLit, token.StringLit,
		token.CharLit, token.ByteLit, token.BoolLit, token.NoneLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwLet, token.KwFn, token.KwMatch, token.KwFork, token.KwTry,
		token.KwConstraint, token.Primitive,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatal("Ident must NOT be keyword")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   token.Kind
		ok     bool
	}{
		{"let", token.KwLet, true},
		{"fork", token.KwFork, true},
		{"catch", token.KwCatch, true},
		{"true", token.BoolLit, true},
		{"none", token.NoneLit, true},
		{"i32", token.Primitive, true},
		{"str", token.Primitive, true},
		{"Let", token.Ident, false},
		{"letter", token.Ident, false},
	}
	for _, tt := range tests {
		k, ok := token.LookupKeyword(tt.lexeme)
		if k != tt.kind || ok != tt.ok {
			t.Errorf("LookupKeyword(%q) = %v,%v; expected %v,%v", tt.lexeme, k, ok, tt.kind, tt.ok)
		}
	}
}
