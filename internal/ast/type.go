package ast

import (
	"ferret/internal/source"
)

// PrimitiveType is a built-in type name: i32, f64, str, bool, byte, ...
type PrimitiveType struct {
	Name string
	Sp   source.Span
}

// NamedType is a bare user type name.
type NamedType struct {
	Name string
	Sp   source.Span
}

// ScopedType is `scope::Name`.
type ScopedType struct {
	Scope string
	Name  string
	Sp    source.Span
}

// GenericType is an applied type `Base<Args>`.
type GenericType struct {
	Base Type
	Args []Type
	Sp   source.Span
}

// ArrayType is the fixed-size form `[N]T`.
type ArrayType struct {
	Size Expr
	Elem Type
	Sp   source.Span
}

// SliceType is the dynamic form `[]T`.
type SliceType struct {
	Elem Type
	Sp   source.Span
}

// MapType is `map[K]V`.
type MapType struct {
	Key   Type
	Value Type
	Sp    source.Span
}

// OptionType is `?T`.
type OptionType struct {
	Elem Type
	Sp   source.Span
}

// HeapType is `#T`, heap-allocated storage of the base type.
type HeapType struct {
	Elem Type
	Sp   source.Span
}

// RefType is `&T` or `&mut T`.
type RefType struct {
	Mut  bool
	Elem Type
	Sp   source.Span
}

// ResultType is `Err!Ok`, right-associative: A!B!C is A!(B!C).
type ResultType struct {
	Err Type
	Ok  Type
	Sp  source.Span
}

// Param is one `name: Type` entry in a parameter list.
type Param struct {
	Name string
	Type Type
	Sp   source.Span
}

func (p Param) Span() source.Span { return p.Sp }

// FuncType is `fn(params) [-> Return]` used in type position.
type FuncType struct {
	Params []Param
	Return Type // nil when omitted
	Sp     source.Span
}

// Field is one `.name: Type` entry of a struct body.
type Field struct {
	Name string
	Type Type
	Sp   source.Span
}

func (f Field) Span() source.Span { return f.Sp }

// StructType is `struct { .a: T, .b: U, }`.
type StructType struct {
	Fields []Field
	Sp     source.Span
}

// EnumVariant is one name of an enum body.
type EnumVariant struct {
	Name string
	Sp   source.Span
}

// EnumType is `enum { A, B, C }`.
type EnumType struct {
	Variants []EnumVariant
	Sp       source.Span
}

// UnionType is the type-level `union { T, U }`: a bare list of alternative
// types. Negation is only legal in the constraint-level union.
type UnionType struct {
	Alts []Type
	Sp   source.Span
}

// InterfaceMethod is one `fn name(params) [-> T]` signature of an interface
// body.
type InterfaceMethod struct {
	Name   string
	Params []Param
	Return Type
	Sp     source.Span
}

func (m InterfaceMethod) Span() source.Span { return m.Sp }

// InterfaceType is `interface { fn m(...) -> T, ... }`.
type InterfaceType struct {
	Methods []InterfaceMethod
	Sp      source.Span
}

// BadType marks a region where type parsing failed and recovered.
type BadType struct {
	Sp source.Span
}

func (n *PrimitiveType) Span() source.Span { return n.Sp }
func (n *NamedType) Span() source.Span     { return n.Sp }
func (n *ScopedType) Span() source.Span    { return n.Sp }
func (n *GenericType) Span() source.Span   { return n.Sp }
func (n *ArrayType) Span() source.Span     { return n.Sp }
func (n *SliceType) Span() source.Span     { return n.Sp }
func (n *MapType) Span() source.Span       { return n.Sp }
func (n *OptionType) Span() source.Span    { return n.Sp }
func (n *HeapType) Span() source.Span      { return n.Sp }
func (n *RefType) Span() source.Span       { return n.Sp }
func (n *ResultType) Span() source.Span    { return n.Sp }
func (n *FuncType) Span() source.Span      { return n.Sp }
func (n *StructType) Span() source.Span    { return n.Sp }
func (n *EnumType) Span() source.Span      { return n.Sp }
func (n *UnionType) Span() source.Span     { return n.Sp }
func (n *InterfaceType) Span() source.Span { return n.Sp }
func (n *BadType) Span() source.Span       { return n.Sp }

func (*PrimitiveType) typeNode() {}
func (*NamedType) typeNode()     {}
func (*ScopedType) typeNode()    {}
func (*GenericType) typeNode()   {}
func (*ArrayType) typeNode()     {}
func (*SliceType) typeNode()     {}
func (*MapType) typeNode()       {}
func (*OptionType) typeNode()    {}
func (*HeapType) typeNode()      {}
func (*RefType) typeNode()       {}
func (*ResultType) typeNode()    {}
func (*FuncType) typeNode()      {}
func (*StructType) typeNode()    {}
func (*EnumType) typeNode()      {}
func (*UnionType) typeNode()     {}
func (*InterfaceType) typeNode() {}
func (*BadType) typeNode()       {}
