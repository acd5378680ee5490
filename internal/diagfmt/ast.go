package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"ferret/internal/ast"
	"ferret/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func child(parent *treeNode, c *treeNode) {
	parent.children = append(parent.children, c)
}

func leaf(parent *treeNode, format string, args ...any) {
	child(parent, &treeNode{label: fmt.Sprintf(format, args...)})
}

// FormatASTPretty writes the program as a box-drawing tree, one node per
// line with its span.
func FormatASTPretty(w io.Writer, program *ast.Program, fs *source.FileSet) error {
	root := buildProgramNode(program, fs)
	fmt.Fprintln(w, root.label)
	for i, c := range root.children {
		renderTree(w, c, "", i == len(root.children)-1)
	}
	return nil
}

func renderTree(w io.Writer, node *treeNode, prefix string, isLast bool) {
	connector := "├─ "
	childPrefix := prefix + "│  "
	if isLast {
		connector = "└─ "
		childPrefix = prefix + "   "
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, connector, node.label)
	for i, c := range node.children {
		renderTree(w, c, childPrefix, i == len(node.children)-1)
	}
}

// ASTNodeOutput mirrors the pretty tree for machine consumers.
type ASTNodeOutput struct {
	Label    string          `json:"label"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTJSON writes the same tree as indented JSON.
func FormatASTJSON(w io.Writer, program *ast.Program, fs *source.FileSet) error {
	root := buildProgramNode(program, fs)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toOutput(root))
}

func toOutput(node *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Label: node.label}
	for _, c := range node.children {
		out.Children = append(out.Children, toOutput(c))
	}
	return out
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil {
		return sp.String()
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func buildProgramNode(program *ast.Program, fs *source.FileSet) *treeNode {
	root := &treeNode{
		label: fmt.Sprintf("Program (span: %s)", formatSpan(program.Sp, fs)),
	}
	for i, st := range program.Stmts {
		node := buildStmtNode(st, fs)
		node.label = fmt.Sprintf("Stmt[%d]: %s", i, node.label)
		child(root, node)
	}
	return root
}

func buildStmtNode(st ast.Stmt, fs *source.FileSet) *treeNode {
	switch s := st.(type) {
	case *ast.ImportStmt:
		node := &treeNode{label: fmt.Sprintf("Import (span: %s)", formatSpan(s.Sp, fs))}
		leaf(node, "Path: %q", s.Path)
		if s.Alias != "" {
			leaf(node, "Alias: %s", s.Alias)
		}
		return node

	case *ast.LetStmt:
		kw := "Let"
		if s.Const {
			kw = "Const"
		}
		node := &treeNode{label: fmt.Sprintf("%s (span: %s)", kw, formatSpan(s.Sp, fs))}
		for _, item := range s.Items {
			itemNode := &treeNode{label: fmt.Sprintf("Item: %s", item.Name.Name)}
			if item.Type != nil {
				named := buildTypeNode(item.Type, fs)
				named.label = "Type: " + named.label
				child(itemNode, named)
			}
			if item.Value != nil {
				value := buildExprNode(item.Value, fs)
				if item.Walrus {
					value.label = "Value (:=): " + value.label
				} else {
					value.label = "Value: " + value.label
				}
				child(itemNode, value)
			}
			child(node, itemNode)
		}
		return node

	case *ast.ConstraintDecl:
		node := &treeNode{label: fmt.Sprintf("Constraint %s (span: %s)", s.Name.Name, formatSpan(s.Sp, fs))}
		child(node, buildConstraintNode(s.Expr, fs))
		return node

	case *ast.TypeDecl:
		node := &treeNode{label: fmt.Sprintf("Type %s (span: %s)", s.Name.Name, formatSpan(s.Sp, fs))}
		addTypeParams(node, s.TypeParams, fs)
		child(node, buildTypeNode(s.Type, fs))
		return node

	case *ast.FnDecl:
		node := &treeNode{label: fmt.Sprintf("Fn %s (span: %s)", s.Name.Name, formatSpan(s.Sp, fs))}
		if s.Recv != nil {
			recvNode := &treeNode{label: fmt.Sprintf("Receiver: %s", s.Recv.Name.Name)}
			if s.Recv.At {
				recvNode.label += " (@)"
			}
			child(recvNode, buildTypeNode(s.Recv.Type, fs))
			child(node, recvNode)
		}
		addTypeParams(node, s.TypeParams, fs)
		addParams(node, s.Params, fs)
		if s.Return != nil {
			ret := buildTypeNode(s.Return, fs)
			ret.label = "Return: " + ret.label
			child(node, ret)
		}
		if s.Body != nil {
			child(node, buildStmtNode(s.Body, fs))
		} else {
			leaf(node, "Body: <prototype>")
		}
		return node

	case *ast.BlockStmt:
		node := &treeNode{label: fmt.Sprintf("Block (span: %s)", formatSpan(s.Sp, fs))}
		for _, inner := range s.Stmts {
			child(node, buildStmtNode(inner, fs))
		}
		return node

	case *ast.IfStmt:
		node := &treeNode{label: fmt.Sprintf("If (span: %s)", formatSpan(s.Sp, fs))}
		cond := buildExprNode(s.Cond, fs)
		cond.label = "Cond: " + cond.label
		child(node, cond)
		child(node, buildStmtNode(s.Then, fs))
		if s.Else != nil {
			elseNode := buildStmtNode(s.Else, fs)
			elseNode.label = "Else: " + elseNode.label
			child(node, elseNode)
		}
		return node

	case *ast.WhileStmt:
		node := &treeNode{label: fmt.Sprintf("While (span: %s)", formatSpan(s.Sp, fs))}
		cond := buildExprNode(s.Cond, fs)
		cond.label = "Cond: " + cond.label
		child(node, cond)
		child(node, buildStmtNode(s.Body, fs))
		return node

	case *ast.ForStmt:
		node := &treeNode{label: fmt.Sprintf("For (span: %s)", formatSpan(s.Sp, fs))}
		if s.Index != nil {
			leaf(node, "Index: %s", s.Index.Name)
		}
		leaf(node, "Value: %s", s.Value.Name)
		iter := buildExprNode(s.Iterable, fs)
		iter.label = "In: " + iter.label
		child(node, iter)
		child(node, buildStmtNode(s.Body, fs))
		return node

	case *ast.ReturnStmt:
		label := "Return"
		if s.Err {
			label = "Return (!)"
		}
		node := &treeNode{label: fmt.Sprintf("%s (span: %s)", label, formatSpan(s.Sp, fs))}
		if s.Value != nil {
			child(node, buildExprNode(s.Value, fs))
		}
		return node

	case *ast.BreakStmt:
		return &treeNode{label: fmt.Sprintf("Break (span: %s)", formatSpan(s.Sp, fs))}
	case *ast.ContinueStmt:
		return &treeNode{label: fmt.Sprintf("Continue (span: %s)", formatSpan(s.Sp, fs))}

	case *ast.DeferStmt:
		node := &treeNode{label: fmt.Sprintf("Defer (span: %s)", formatSpan(s.Sp, fs))}
		child(node, buildExprNode(s.X, fs))
		return node
	case *ast.ForkStmt:
		node := &treeNode{label: fmt.Sprintf("Fork (span: %s)", formatSpan(s.Sp, fs))}
		child(node, buildExprNode(s.X, fs))
		return node
	case *ast.TryStmt:
		node := &treeNode{label: fmt.Sprintf("Try (span: %s)", formatSpan(s.Sp, fs))}
		child(node, buildExprNode(s.X, fs))
		return node

	case *ast.AssignStmt:
		node := &treeNode{label: fmt.Sprintf("Assign %s (span: %s)", s.Op.String(), formatSpan(s.Sp, fs))}
		child(node, buildExprNode(s.Lhs, fs))
		child(node, buildExprNode(s.Rhs, fs))
		return node

	case *ast.IncDecStmt:
		op := "++"
		if s.Dec {
			op = "--"
		}
		node := &treeNode{label: fmt.Sprintf("IncDec %s (span: %s)", op, formatSpan(s.Sp, fs))}
		child(node, buildExprNode(s.X, fs))
		return node

	case *ast.ExprStmt:
		node := buildExprNode(s.X, fs)
		node.label = "Expr: " + node.label
		return node

	case *ast.BadStmt:
		return &treeNode{label: fmt.Sprintf("BadStmt (span: %s)", formatSpan(s.Sp, fs))}

	default:
		return &treeNode{label: fmt.Sprintf("%T", st)}
	}
}

func addTypeParams(node *treeNode, params []ast.TypeParam, fs *source.FileSet) {
	if len(params) == 0 {
		return
	}
	group := &treeNode{label: "TypeParams"}
	for _, tp := range params {
		tpNode := &treeNode{label: tp.Name.Name}
		if tp.Bound != nil {
			bound := buildConstraintNode(tp.Bound, fs)
			bound.label = "Bound: " + bound.label
			child(tpNode, bound)
		}
		child(group, tpNode)
	}
	child(node, group)
}

func addParams(node *treeNode, params []ast.Param, fs *source.FileSet) {
	group := &treeNode{label: "Params"}
	for _, p := range params {
		pNode := &treeNode{label: p.Name}
		child(pNode, buildTypeNode(p.Type, fs))
		child(group, pNode)
	}
	child(node, group)
}

func buildExprNode(expr ast.Expr, fs *source.FileSet) *treeNode {
	switch e := expr.(type) {
	case *ast.BasicLit:
		return &treeNode{label: fmt.Sprintf("%s %q", e.Kind.String(), e.Text)}
	case *ast.Ident:
		return &treeNode{label: fmt.Sprintf("Ident %s", e.Name)}

	case *ast.UnaryExpr:
		node := &treeNode{label: fmt.Sprintf("Unary %s", e.Op.String())}
		child(node, buildExprNode(e.X, fs))
		return node

	case *ast.BinaryExpr:
		node := &treeNode{label: fmt.Sprintf("Binary %s", e.Op.String())}
		child(node, buildExprNode(e.X, fs))
		child(node, buildExprNode(e.Y, fs))
		return node

	case *ast.RangeExpr:
		node := &treeNode{label: "Range"}
		child(node, buildExprNode(e.Low, fs))
		child(node, buildExprNode(e.High, fs))
		return node

	case *ast.CastExpr:
		node := &treeNode{label: "Cast"}
		child(node, buildExprNode(e.X, fs))
		to := buildTypeNode(e.To, fs)
		to.label = "To: " + to.label
		child(node, to)
		return node

	case *ast.TypeTestExpr:
		node := &treeNode{label: "TypeTest"}
		child(node, buildExprNode(e.X, fs))
		ty := buildTypeNode(e.T, fs)
		ty.label = "Is: " + ty.label
		child(node, ty)
		return node

	case *ast.CatchExpr:
		node := &treeNode{label: "Catch"}
		child(node, buildExprNode(e.X, fs))
		if e.ErrName != nil {
			leaf(node, "ErrName: %s", e.ErrName.Name)
		}
		if e.Handler != nil {
			child(node, buildStmtNode(e.Handler, fs))
		}
		fb := buildExprNode(e.Fallback, fs)
		fb.label = "Fallback: " + fb.label
		child(node, fb)
		return node

	case *ast.CallExpr:
		node := &treeNode{label: "Call"}
		callee := buildExprNode(e.Callee, fs)
		callee.label = "Callee: " + callee.label
		child(node, callee)
		for _, ta := range e.TypeArgs {
			taNode := buildTypeNode(ta, fs)
			taNode.label = "TypeArg: " + taNode.label
			child(node, taNode)
		}
		for _, arg := range e.Args {
			child(node, buildExprNode(arg, fs))
		}
		return node

	case *ast.IndexExpr:
		node := &treeNode{label: "Index"}
		child(node, buildExprNode(e.X, fs))
		child(node, buildExprNode(e.Index, fs))
		return node

	case *ast.FieldExpr:
		node := &treeNode{label: fmt.Sprintf("Field .%s", e.Name.Name)}
		child(node, buildExprNode(e.X, fs))
		return node

	case *ast.PropagateExpr:
		node := &treeNode{label: "Propagate !!"}
		child(node, buildExprNode(e.X, fs))
		return node

	case *ast.ParenExpr:
		node := &treeNode{label: "Paren"}
		child(node, buildExprNode(e.X, fs))
		return node

	case *ast.MatchExpr:
		node := &treeNode{label: "Match"}
		value := buildExprNode(e.Value, fs)
		value.label = "Value: " + value.label
		child(node, value)
		for i, arm := range e.Arms {
			armNode := &treeNode{label: fmt.Sprintf("Arm[%d]", i)}
			if arm.Pattern == nil {
				leaf(armNode, "Pattern: _")
			} else {
				pat := buildExprNode(arm.Pattern, fs)
				pat.label = "Pattern: " + pat.label
				child(armNode, pat)
			}
			if arm.Block != nil {
				child(armNode, buildStmtNode(arm.Block, fs))
			} else {
				body := buildExprNode(arm.Body, fs)
				body.label = "Body: " + body.label
				child(armNode, body)
			}
			child(node, armNode)
		}
		return node

	case *ast.BadExpr:
		return &treeNode{label: fmt.Sprintf("BadExpr (span: %s)", formatSpan(e.Sp, fs))}

	default:
		return &treeNode{label: fmt.Sprintf("%T", expr)}
	}
}

func buildTypeNode(ty ast.Type, fs *source.FileSet) *treeNode {
	switch t := ty.(type) {
	case *ast.PrimitiveType:
		return &treeNode{label: fmt.Sprintf("Primitive %s", t.Name)}
	case *ast.NamedType:
		return &treeNode{label: fmt.Sprintf("Named %s", t.Name)}
	case *ast.ScopedType:
		return &treeNode{label: fmt.Sprintf("Scoped %s::%s", t.Scope, t.Name)}

	case *ast.GenericType:
		node := &treeNode{label: "Generic"}
		child(node, buildTypeNode(t.Base, fs))
		for _, arg := range t.Args {
			child(node, buildTypeNode(arg, fs))
		}
		return node

	case *ast.ArrayType:
		node := &treeNode{label: "Array"}
		size := buildExprNode(t.Size, fs)
		size.label = "Size: " + size.label
		child(node, size)
		child(node, buildTypeNode(t.Elem, fs))
		return node

	case *ast.SliceType:
		node := &treeNode{label: "Slice"}
		child(node, buildTypeNode(t.Elem, fs))
		return node

	case *ast.MapType:
		node := &treeNode{label: "Map"}
		key := buildTypeNode(t.Key, fs)
		key.label = "Key: " + key.label
		child(node, key)
		value := buildTypeNode(t.Value, fs)
		value.label = "Value: " + value.label
		child(node, value)
		return node

	case *ast.OptionType:
		node := &treeNode{label: "Option ?"}
		child(node, buildTypeNode(t.Elem, fs))
		return node

	case *ast.HeapType:
		node := &treeNode{label: "Heap #"}
		child(node, buildTypeNode(t.Elem, fs))
		return node

	case *ast.RefType:
		label := "Ref &"
		if t.Mut {
			label = "Ref &mut"
		}
		node := &treeNode{label: label}
		child(node, buildTypeNode(t.Elem, fs))
		return node

	case *ast.ResultType:
		node := &treeNode{label: "Result !"}
		errNode := buildTypeNode(t.Err, fs)
		errNode.label = "Err: " + errNode.label
		child(node, errNode)
		okNode := buildTypeNode(t.Ok, fs)
		okNode.label = "Ok: " + okNode.label
		child(node, okNode)
		return node

	case *ast.FuncType:
		node := &treeNode{label: "Func"}
		addParams(node, t.Params, fs)
		if t.Return != nil {
			ret := buildTypeNode(t.Return, fs)
			ret.label = "Return: " + ret.label
			child(node, ret)
		}
		return node

	case *ast.StructType:
		node := &treeNode{label: "Struct"}
		for _, f := range t.Fields {
			fNode := &treeNode{label: fmt.Sprintf(".%s", f.Name)}
			child(fNode, buildTypeNode(f.Type, fs))
			child(node, fNode)
		}
		return node

	case *ast.EnumType:
		node := &treeNode{label: "Enum"}
		for _, v := range t.Variants {
			leaf(node, "%s", v.Name)
		}
		return node

	case *ast.UnionType:
		node := &treeNode{label: "Union"}
		for _, alt := range t.Alts {
			child(node, buildTypeNode(alt, fs))
		}
		return node

	case *ast.InterfaceType:
		node := &treeNode{label: "Interface"}
		for _, m := range t.Methods {
			mNode := &treeNode{label: fmt.Sprintf("fn %s", m.Name)}
			addParams(mNode, m.Params, fs)
			if m.Return != nil {
				ret := buildTypeNode(m.Return, fs)
				ret.label = "Return: " + ret.label
				child(mNode, ret)
			}
			child(node, mNode)
		}
		return node

	case *ast.BadType:
		return &treeNode{label: fmt.Sprintf("BadType (span: %s)", formatSpan(t.Sp, fs))}

	default:
		return &treeNode{label: fmt.Sprintf("%T", ty)}
	}
}

func buildConstraintNode(c ast.Constraint, fs *source.FileSet) *treeNode {
	switch con := c.(type) {
	case *ast.ConstraintTerm:
		label := "Term"
		if con.Negated {
			label = "Term ~"
		}
		node := &treeNode{label: label}
		child(node, buildTypeNode(con.Type, fs))
		return node

	case *ast.ConstraintUnion:
		node := &treeNode{label: "UnionConstraint"}
		for _, term := range con.Terms {
			label := "Term"
			if term.Negated {
				label = "Term ~"
			}
			termNode := &treeNode{label: label}
			child(termNode, buildTypeNode(term.Type, fs))
			child(node, termNode)
		}
		return node

	case *ast.ConstraintAnd:
		node := &treeNode{label: "And &"}
		for _, term := range con.Terms {
			child(node, buildConstraintNode(term, fs))
		}
		return node

	case *ast.BadConstraint:
		return &treeNode{label: fmt.Sprintf("BadConstraint (span: %s)", formatSpan(con.Sp, fs))}

	default:
		return &treeNode{label: fmt.Sprintf("%T", c)}
	}
}
