package ast

import (
	"ferret/internal/source"
	"ferret/internal/token"
)

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryNot    UnaryOp = iota // !
	UnaryNeg                   // -
	UnaryRef                   // &
	UnaryRefMut                // &mut
	UnaryAt                    // @
	UnaryHeap                  // #
	UnaryBitNot                // ~
	UnarySpread                // ...
)

var unaryNames = [...]string{
	UnaryNot:    "!",
	UnaryNeg:    "-",
	UnaryRef:    "&",
	UnaryRefMut: "&mut",
	UnaryAt:     "@",
	UnaryHeap:   "#",
	UnaryBitNot: "~",
	UnarySpread: "...",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "?"
}

// BinaryOp enumerates infix operators.
type BinaryOp uint8

const (
	BinaryPipeline   BinaryOp = iota // |>
	BinaryCoalesce                   // ??
	BinaryLogicalOr                  // ||
	BinaryLogicalAnd                 // &&
	BinaryBitOr                      // |
	BinaryBitXor                     // ^
	BinaryBitAnd                     // &
	BinaryEq                         // ==
	BinaryNotEq                      // !=
	BinaryLess                       // <
	BinaryGreater                    // >
	BinaryLessEq                     // <=
	BinaryGreaterEq                  // >=
	BinaryAdd                        // +
	BinarySub                        // -
	BinaryMul                        // *
	BinaryDiv                        // /
	BinaryMod                        // %
	BinaryPow                        // **
)

var binaryNames = [...]string{
	BinaryPipeline:   "|>",
	BinaryCoalesce:   "??",
	BinaryLogicalOr:  "||",
	BinaryLogicalAnd: "&&",
	BinaryBitOr:      "|",
	BinaryBitXor:     "^",
	BinaryBitAnd:     "&",
	BinaryEq:         "==",
	BinaryNotEq:      "!=",
	BinaryLess:       "<",
	BinaryGreater:    ">",
	BinaryLessEq:     "<=",
	BinaryGreaterEq:  ">=",
	BinaryAdd:        "+",
	BinarySub:        "-",
	BinaryMul:        "*",
	BinaryDiv:        "/",
	BinaryMod:        "%",
	BinaryPow:        "**",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "?"
}

// BasicLit is an integer, float, imaginary, string, char, byte, boolean, or
// none literal. Text is the exact source lexeme; decoding literal values is a
// later stage's concern.
type BasicLit struct {
	Kind token.Kind
	Text string
	Sp   source.Span
}

// UnaryExpr is a prefix operator applied to an operand.
type UnaryExpr struct {
	Op UnaryOp
	X  Expr
	Sp source.Span
}

// BinaryExpr is an infix operator with two operands.
type BinaryExpr struct {
	Op   BinaryOp
	X, Y Expr
	Sp   source.Span
}

// RangeExpr is the two-endpoint range value `low .. high`.
type RangeExpr struct {
	Low, High Expr
	Sp        source.Span
}

// CastExpr is `x as T`.
type CastExpr struct {
	X  Expr
	To Type
	Sp source.Span
}

// TypeTestExpr is `x is T`.
type TypeTestExpr struct {
	X  Expr
	T  Type
	Sp source.Span
}

// CatchExpr is `x catch fallback` or `x catch err { handler } fallback`.
// Handler and ErrName are nil for the shorthand form.
type CatchExpr struct {
	X        Expr
	ErrName  *Ident
	Handler  *BlockStmt
	Fallback Expr
	Sp       source.Span
}

// CallExpr is `callee(args)` or the generic form `callee<TypeArgs>(args)`.
type CallExpr struct {
	Callee   Expr
	TypeArgs []Type // nil for plain calls
	Args     []Expr
	Sp       source.Span
}

// IndexExpr is `x[index]`.
type IndexExpr struct {
	X     Expr
	Index Expr
	Sp    source.Span
}

// FieldExpr is `x.name`.
type FieldExpr struct {
	X    Expr
	Name *Ident
	Sp   source.Span
}

// PropagateExpr is the error-propagation postfix `x!!`.
type PropagateExpr struct {
	X  Expr
	Sp source.Span
}

// ParenExpr is `(x)`, kept so spans round-trip.
type ParenExpr struct {
	X  Expr
	Sp source.Span
}

// MatchExpr is `match value { pattern => body, ... }`. The parser records
// arms in source order and does not evaluate patterns.
type MatchExpr struct {
	Value Expr
	Arms  []MatchArm
	Sp    source.Span
}

// MatchArm is one `pattern => body` pair. A nil Pattern is the `_` wildcard.
// Exactly one of Body and Block is set.
type MatchArm struct {
	Pattern Expr
	Body    Expr
	Block   *BlockStmt
	Sp      source.Span
}

func (a MatchArm) Span() source.Span { return a.Sp }

// BadExpr marks a region where expression parsing failed and recovered.
type BadExpr struct {
	Sp source.Span
}

func (n *BasicLit) Span() source.Span      { return n.Sp }
func (n *UnaryExpr) Span() source.Span     { return n.Sp }
func (n *BinaryExpr) Span() source.Span    { return n.Sp }
func (n *RangeExpr) Span() source.Span     { return n.Sp }
func (n *CastExpr) Span() source.Span      { return n.Sp }
func (n *TypeTestExpr) Span() source.Span  { return n.Sp }
func (n *CatchExpr) Span() source.Span     { return n.Sp }
func (n *CallExpr) Span() source.Span      { return n.Sp }
func (n *IndexExpr) Span() source.Span     { return n.Sp }
func (n *FieldExpr) Span() source.Span     { return n.Sp }
func (n *PropagateExpr) Span() source.Span { return n.Sp }
func (n *ParenExpr) Span() source.Span     { return n.Sp }
func (n *MatchExpr) Span() source.Span     { return n.Sp }
func (n *BadExpr) Span() source.Span       { return n.Sp }

func (*BasicLit) exprNode()      {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*RangeExpr) exprNode()     {}
func (*CastExpr) exprNode()      {}
func (*TypeTestExpr) exprNode()  {}
func (*CatchExpr) exprNode()     {}
func (*CallExpr) exprNode()      {}
func (*IndexExpr) exprNode()     {}
func (*FieldExpr) exprNode()     {}
func (*PropagateExpr) exprNode() {}
func (*ParenExpr) exprNode()     {}
func (*MatchExpr) exprNode()     {}
func (*BadExpr) exprNode()       {}
