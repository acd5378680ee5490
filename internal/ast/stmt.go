package ast

import (
	"ferret/internal/source"
	"ferret/internal/token"
)

// ImportStmt is `import "path" [as alias]`. Path is the unquoted value;
// Alias is "" when absent.
type ImportStmt struct {
	Path  string
	Alias string
	Sp    source.Span
}

// LetItem is one `name [: Type] [(:=|=) value]` entry of a declaration list.
type LetItem struct {
	Name   *Ident
	Type   Type // nil when inferred
	Walrus bool // ':=' rather than '='
	Value  Expr // nil when declared without initializer
	Sp     source.Span
}

func (it LetItem) Span() source.Span { return it.Sp }

// LetStmt is a `let` or `const` declaration list; one keyword governs every
// item.
type LetStmt struct {
	Const bool
	Items []LetItem
	Sp    source.Span
}

// ConstraintDecl is `constraint Name = ConstraintExpr`.
type ConstraintDecl struct {
	Name *Ident
	Expr Constraint
	Sp   source.Span
}

// TypeParam is one `<T: Bound>` entry; Bound is nil when unbounded.
type TypeParam struct {
	Name  *Ident
	Bound Constraint
	Sp    source.Span
}

func (tp TypeParam) Span() source.Span { return tp.Sp }

// TypeDecl is `type Name [<TypeParams>] Type`.
type TypeDecl struct {
	Name       *Ident
	TypeParams []TypeParam
	Type       Type
	Sp         source.Span
}

// Receiver is the method receiver group `(name: [@] Type)` before a function
// name. At records the optional '@' marker.
type Receiver struct {
	Name *Ident
	At   bool
	Type Type
	Sp   source.Span
}

func (r Receiver) Span() source.Span { return r.Sp }

// FnDecl is `fn [receiver] name [<TypeParams>] (params) [-> Return] body`.
// Body is nil for a declaration-only prototype terminated by ';'.
type FnDecl struct {
	Recv       *Receiver
	Name       *Ident
	TypeParams []TypeParam
	Params     []Param
	Return     Type // nil when omitted
	Body       *BlockStmt
	Sp         source.Span
}

// BlockStmt is `{ statement* }`.
type BlockStmt struct {
	Stmts []Stmt
	Sp    source.Span
}

// IfStmt is `if cond { } [else (if ... | { })]`. Else is nil, *IfStmt, or
// *BlockStmt.
type IfStmt struct {
	Cond Expr
	Then *BlockStmt
	Else Stmt
	Sp   source.Span
}

// WhileStmt is `while cond { }`.
type WhileStmt struct {
	Cond Expr
	Body *BlockStmt
	Sp   source.Span
}

// ForStmt is `for [index,]value in iterable { }`. Index is nil for the
// single-variable form.
type ForStmt struct {
	Index    *Ident
	Value    *Ident
	Iterable Expr
	Body     *BlockStmt
	Sp       source.Span
}

// ReturnStmt is `return [expr] [!]`; Err records the trailing error marker.
type ReturnStmt struct {
	Value Expr
	Err   bool
	Sp    source.Span
}

type BreakStmt struct {
	Sp source.Span
}

type ContinueStmt struct {
	Sp source.Span
}

// DeferStmt records one expression whose evaluation is deferred to scope
// exit; ordering semantics belong to a later stage.
type DeferStmt struct {
	X  Expr
	Sp source.Span
}

// ForkStmt records one expression launched concurrently; scheduling
// semantics belong to a later stage.
type ForkStmt struct {
	X  Expr
	Sp source.Span
}

// TryStmt is `try expr`.
type TryStmt struct {
	X  Expr
	Sp source.Span
}

// AssignStmt is plain or compound assignment; Op is the operator token kind
// (Assign, PlusAssign, ...).
type AssignStmt struct {
	Op  token.Kind
	Lhs Expr
	Rhs Expr
	Sp  source.Span
}

// IncDecStmt is `x++` or `x--`.
type IncDecStmt struct {
	X   Expr
	Dec bool
	Sp  source.Span
}

// ExprStmt is a bare expression in statement position.
type ExprStmt struct {
	X  Expr
	Sp source.Span
}

// BadStmt marks a statement region the parser discarded during recovery.
type BadStmt struct {
	Sp source.Span
}

func (n *ImportStmt) Span() source.Span     { return n.Sp }
func (n *LetStmt) Span() source.Span        { return n.Sp }
func (n *ConstraintDecl) Span() source.Span { return n.Sp }
func (n *TypeDecl) Span() source.Span       { return n.Sp }
func (n *FnDecl) Span() source.Span         { return n.Sp }
func (n *BlockStmt) Span() source.Span      { return n.Sp }
func (n *IfStmt) Span() source.Span         { return n.Sp }
func (n *WhileStmt) Span() source.Span      { return n.Sp }
func (n *ForStmt) Span() source.Span        { return n.Sp }
func (n *ReturnStmt) Span() source.Span     { return n.Sp }
func (n *BreakStmt) Span() source.Span      { return n.Sp }
func (n *ContinueStmt) Span() source.Span   { return n.Sp }
func (n *DeferStmt) Span() source.Span      { return n.Sp }
func (n *ForkStmt) Span() source.Span       { return n.Sp }
func (n *TryStmt) Span() source.Span        { return n.Sp }
func (n *AssignStmt) Span() source.Span     { return n.Sp }
func (n *IncDecStmt) Span() source.Span     { return n.Sp }
func (n *ExprStmt) Span() source.Span       { return n.Sp }
func (n *BadStmt) Span() source.Span        { return n.Sp }

func (*ImportStmt) stmtNode()     {}
func (*LetStmt) stmtNode()        {}
func (*ConstraintDecl) stmtNode() {}
func (*TypeDecl) stmtNode()       {}
func (*FnDecl) stmtNode()         {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*ForStmt) stmtNode()        {}
func (*ReturnStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()   {}
func (*DeferStmt) stmtNode()      {}
func (*ForkStmt) stmtNode()       {}
func (*TryStmt) stmtNode()        {}
func (*AssignStmt) stmtNode()     {}
func (*IncDecStmt) stmtNode()     {}
func (*ExprStmt) stmtNode()       {}
func (*BadStmt) stmtNode()        {}
