package ast

import (
	"ferret/internal/source"
)

// ConstraintTerm is a single optionally-negated type requirement, e.g. `~str`
// or `Number`.
type ConstraintTerm struct {
	Negated bool
	Type    Type
	Sp      source.Span
}

// ConstraintUnion is `union { [~]T, [~]U, ... }` in constraint context:
// alternatives rather than a concrete union type.
type ConstraintUnion struct {
	Terms []ConstraintTerm
	Sp    source.Span
}

// ConstraintAnd is a `&`-joined conjunction of two or more constraint terms.
type ConstraintAnd struct {
	Terms []Constraint
	Sp    source.Span
}

// BadConstraint marks a region where constraint parsing failed.
type BadConstraint struct {
	Sp source.Span
}

func (n *ConstraintTerm) Span() source.Span  { return n.Sp }
func (n *ConstraintUnion) Span() source.Span { return n.Sp }
func (n *ConstraintAnd) Span() source.Span   { return n.Sp }
func (n *BadConstraint) Span() source.Span   { return n.Sp }

func (*ConstraintTerm) constraintNode()  {}
func (*ConstraintUnion) constraintNode() {}
func (*ConstraintAnd) constraintNode()   {}
func (*BadConstraint) constraintNode()   {}
