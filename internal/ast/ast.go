// Package ast defines the Ferret syntax tree as tagged variants: one struct
// per statement, expression, type, and constraint kind, each implementing the
// marker interface of its family. No node type inherits from another; a node
// owns its children exclusively and every child span is contained in its
// parent's span.
package ast

import (
	"ferret/internal/source"
)

// Node is anything with a source span.
type Node interface {
	Span() source.Span
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Type is implemented by every type-expression variant.
type Type interface {
	Node
	typeNode()
}

// Constraint is implemented by every constraint-expression variant, the
// sub-grammar bounding generic type parameters.
type Constraint interface {
	Node
	constraintNode()
}

// Program is the root of one parsed source file: an ordered sequence of
// top-level statements. It is built once per parse and then read-only.
type Program struct {
	Stmts []Stmt
	Sp    source.Span
}

func (p *Program) Span() source.Span { return p.Sp }

// Ident is a name occurrence, used both standalone and embedded in
// declarations.
type Ident struct {
	Name string
	Sp   source.Span
}

func (n *Ident) Span() source.Span { return n.Sp }
func (n *Ident) exprNode()         {}
