package parser

import (
	"ferret/internal/ast"
	"ferret/internal/token"
)

// Precedence table for infix constructs, loosest to tightest. Bigger binds
// tighter.
const (
	precCatch          = 1  // catch
	precRange          = 2  // ..
	precPipeline       = 3  // |>
	precCoalesce       = 4  // ??
	precIsAs           = 5  // is, as (type operand on the right)
	precLogicalOr      = 6  // ||
	precLogicalAnd     = 7  // &&
	precBitwiseOr      = 8  // |
	precBitwiseXor     = 9  // ^
	precBitwiseAnd     = 10 // &
	precEquality       = 11 // == !=
	precComparison     = 12 // < <= > >=
	precAdditive       = 13 // + -
	precMultiplicative = 14 // * / %
	precPower          = 15 // ** (right-associative)
)

// binaryPrec returns (precedence, right-associative, is-binary-operator).
func binaryPrec(kind token.Kind) (int, bool, bool) {
	switch kind {
	case token.PipeGt:
		return precPipeline, false, true
	case token.QuestionQuestion:
		return precCoalesce, false, true
	case token.OrOr:
		return precLogicalOr, false, true
	case token.AndAnd:
		return precLogicalAnd, false, true
	case token.Pipe:
		return precBitwiseOr, false, true
	case token.Caret:
		return precBitwiseXor, false, true
	case token.Amp:
		return precBitwiseAnd, false, true
	case token.EqEq, token.BangEq:
		return precEquality, false, true
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false, true
	case token.Plus, token.Minus:
		return precAdditive, false, true
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false, true
	case token.StarStar:
		return precPower, true, true
	default:
		return -1, false, false
	}
}

func binaryOpFor(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.PipeGt:
		return ast.BinaryPipeline
	case token.QuestionQuestion:
		return ast.BinaryCoalesce
	case token.OrOr:
		return ast.BinaryLogicalOr
	case token.AndAnd:
		return ast.BinaryLogicalAnd
	case token.Pipe:
		return ast.BinaryBitOr
	case token.Caret:
		return ast.BinaryBitXor
	case token.Amp:
		return ast.BinaryBitAnd
	case token.EqEq:
		return ast.BinaryEq
	case token.BangEq:
		return ast.BinaryNotEq
	case token.Lt:
		return ast.BinaryLess
	case token.LtEq:
		return ast.BinaryLessEq
	case token.Gt:
		return ast.BinaryGreater
	case token.GtEq:
		return ast.BinaryGreaterEq
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.Star:
		return ast.BinaryMul
	case token.Slash:
		return ast.BinaryDiv
	case token.Percent:
		return ast.BinaryMod
	case token.StarStar:
		return ast.BinaryPow
	default:
		// unreachable while the table above stays in sync
		return ast.BinaryAdd
	}
}

// unaryOpFor returns the prefix operator for a token, if any. '&mut' is
// handled separately by the caller since it spans two tokens.
func unaryOpFor(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Bang:
		return ast.UnaryNot, true
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Amp:
		return ast.UnaryRef, true
	case token.At:
		return ast.UnaryAt, true
	case token.Hash:
		return ast.UnaryHeap, true
	case token.Tilde:
		return ast.UnaryBitNot, true
	case token.DotDotDot:
		return ast.UnarySpread, true
	default:
		return ast.UnaryNot, false
	}
}

// isAssignOp reports whether kind is a plain or compound assignment operator.
func isAssignOp(kind token.Kind) bool {
	switch kind {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign:
		return true
	default:
		return false
	}
}
