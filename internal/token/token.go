package token

import (
	"ferret/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, boolean, string, char,
// byte, or none literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, ImaginaryLit, StringLit, CharLit, ByteLit, BoolLit, NoneLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, Percent, Assign, PlusAssign, MinusAssign,
		StarAssign, SlashAssign, PercentAssign, ColonAssign, PlusPlus, MinusMinus,
		EqEq, Bang, BangEq, BangBang, Lt, LtEq, Gt, GtEq, Amp, AndAnd, Pipe, OrOr,
		PipeGt, Caret, Tilde, Hash, At, Question, QuestionQuestion, Colon, ColonColon,
		Semicolon, Comma, Dot, DotDot, DotDotDot, Arrow, FatArrow, LParen, RParen,
		LBrace, RBrace, LBracket, RBracket, Underscore:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwConst, KwType, KwFn, KwIf, KwElse, KwWhile, KwFor, KwIn, KwReturn,
		KwBreak, KwContinue, KwDefer, KwFork, KwTry, KwImport, KwAs, KwIs, KwMatch,
		KwCatch, KwStruct, KwEnum, KwUnion, KwInterface, KwMap, KwConstraint, KwMut,
		Primitive:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
