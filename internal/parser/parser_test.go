package parser_test

import (
	"testing"

	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/lexer"
	"ferret/internal/parser"
	"ferret/internal/source"
	"ferret/internal/token"
)

func parseSource(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.fer", []byte(src)))
	bag := diag.NewBag(0)
	rep := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}

	res := parser.Parse(file, toks, parser.Options{Reporter: rep})
	if res.Program == nil {
		t.Fatalf("Parse returned nil program for %q", src)
	}
	return res.Program, bag
}

// parseClean parses source that must produce zero diagnostics.
func parseClean(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q:", src)
	}
	return program
}

// exprOf parses one expression statement and returns its expression.
func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	program := parseClean(t, src)
	if len(program.Stmts) != 1 {
		t.Fatalf("want 1 statement, got %d for %q", len(program.Stmts), src)
	}
	es, ok := program.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("want *ast.ExprStmt, got %T for %q", program.Stmts[0], src)
	}
	return es.X
}

func TestMulBindsTighterThanAdd(t *testing.T) {
	expr := exprOf(t, "2 + 3 * 4")

	add, ok := expr.(*ast.BinaryExpr)
	if !ok || add.Op != ast.BinaryAdd {
		t.Fatalf("want top-level '+', got %T", expr)
	}
	mul, ok := add.Y.(*ast.BinaryExpr)
	if !ok || mul.Op != ast.BinaryMul {
		t.Fatalf("want '*' on the right of '+', got %T", add.Y)
	}
	if lit, ok := add.X.(*ast.BasicLit); !ok || lit.Text != "2" {
		t.Errorf("want literal 2 on the left, got %#v", add.X)
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	expr := exprOf(t, "2 ** 3 ** 2")

	outer, ok := expr.(*ast.BinaryExpr)
	if !ok || outer.Op != ast.BinaryPow {
		t.Fatalf("want top-level '**', got %T", expr)
	}
	if lit, ok := outer.X.(*ast.BasicLit); !ok || lit.Text != "2" {
		t.Fatalf("want 2 ** (...), got %#v on the left", outer.X)
	}
	inner, ok := outer.Y.(*ast.BinaryExpr)
	if !ok || inner.Op != ast.BinaryPow {
		t.Fatalf("want nested '**' on the right, got %T", outer.Y)
	}
}

func TestRelationalChainStaysRelational(t *testing.T) {
	expr := exprOf(t, "a < b > (c)")

	gt, ok := expr.(*ast.BinaryExpr)
	if !ok || gt.Op != ast.BinaryGreater {
		t.Fatalf("want top-level '>', got %T", expr)
	}
	lt, ok := gt.X.(*ast.BinaryExpr)
	if !ok || lt.Op != ast.BinaryLess {
		t.Fatalf("want '<' on the left of '>', got %T", gt.X)
	}
	if _, ok := gt.Y.(*ast.ParenExpr); !ok {
		t.Errorf("want parenthesized right operand, got %T", gt.Y)
	}
	if _, ok := lt.X.(*ast.Ident); !ok {
		t.Errorf("want identifier on the far left, got %T", lt.X)
	}
}

func TestGenericCall(t *testing.T) {
	expr := exprOf(t, "Foo<int>(1)")

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("want *ast.CallExpr, got %T", expr)
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("want 1 type argument, got %d", len(call.TypeArgs))
	}
	if prim, ok := call.TypeArgs[0].(*ast.PrimitiveType); !ok || prim.Name != "int" {
		t.Errorf("want primitive type argument 'int', got %#v", call.TypeArgs[0])
	}
	if len(call.Args) != 1 {
		t.Errorf("want 1 call argument, got %d", len(call.Args))
	}
}

func TestGenericCallWithUserType(t *testing.T) {
	expr := exprOf(t, "parse<Config>(s)")

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("want *ast.CallExpr, got %T", expr)
	}
	if len(call.TypeArgs) != 1 {
		t.Fatalf("want 1 type argument, got %d", len(call.TypeArgs))
	}
	if named, ok := call.TypeArgs[0].(*ast.NamedType); !ok || named.Name != "Config" {
		t.Errorf("want named type argument 'Config', got %#v", call.TypeArgs[0])
	}
}

func TestGenericAttemptRewindsWithoutCall(t *testing.T) {
	// completes `<b>` but no '(' follows, so the stream must rewind and
	// the whole thing reads as comparisons
	expr := exprOf(t, "(a<b) > c")

	gt, ok := expr.(*ast.BinaryExpr)
	if !ok || gt.Op != ast.BinaryGreater {
		t.Fatalf("want top-level '>', got %T", expr)
	}
	paren, ok := gt.X.(*ast.ParenExpr)
	if !ok {
		t.Fatalf("want parenthesized left operand, got %T", gt.X)
	}
	if lt, ok := paren.X.(*ast.BinaryExpr); !ok || lt.Op != ast.BinaryLess {
		t.Errorf("want '<' inside parens, got %T", paren.X)
	}
}

func TestMethodReceiver(t *testing.T) {
	program := parseClean(t, "fn (x: &Point) area() -> f64 { }")

	fn, ok := program.Stmts[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("want *ast.FnDecl, got %T", program.Stmts[0])
	}
	if fn.Recv == nil {
		t.Fatal("want a receiver, got none")
	}
	if fn.Recv.Name.Name != "x" {
		t.Errorf("receiver name: want x, got %q", fn.Recv.Name.Name)
	}
	if ref, ok := fn.Recv.Type.(*ast.RefType); !ok || ref.Mut {
		t.Errorf("want immutable reference receiver type, got %#v", fn.Recv.Type)
	}
	if fn.Name.Name != "area" {
		t.Errorf("function name: want area, got %q", fn.Name.Name)
	}
	if len(fn.Params) != 0 {
		t.Errorf("want empty parameter list, got %d params", len(fn.Params))
	}
	if _, ok := fn.Return.(*ast.PrimitiveType); !ok {
		t.Errorf("want primitive return type, got %T", fn.Return)
	}
}

func TestFunctionWithoutReceiver(t *testing.T) {
	program := parseClean(t, "fn identity(x: i32) -> i32 { return x; }")

	fn, ok := program.Stmts[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("want *ast.FnDecl, got %T", program.Stmts[0])
	}
	if fn.Recv != nil {
		t.Fatalf("want no receiver, got %#v", fn.Recv)
	}
	if fn.Name.Name != "identity" {
		t.Errorf("function name: want identity, got %q", fn.Name.Name)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name != "x" {
		t.Fatalf("want one parameter x, got %#v", fn.Params)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("want one body statement, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok || ret.Value == nil || ret.Err {
		t.Errorf("want plain return with value, got %#v", fn.Body.Stmts[0])
	}
}

func TestFunctionPrototype(t *testing.T) {
	program := parseClean(t, "fn free(p: #i32);")

	fn, ok := program.Stmts[0].(*ast.FnDecl)
	if !ok {
		t.Fatalf("want *ast.FnDecl, got %T", program.Stmts[0])
	}
	if fn.Body != nil {
		t.Error("prototype must have nil body")
	}
	if _, ok := fn.Params[0].Type.(*ast.HeapType); !ok {
		t.Errorf("want heap-typed parameter, got %T", fn.Params[0].Type)
	}
}

func TestCatchShorthand(t *testing.T) {
	expr := exprOf(t, "x catch 0")

	c, ok := expr.(*ast.CatchExpr)
	if !ok {
		t.Fatalf("want *ast.CatchExpr, got %T", expr)
	}
	if c.ErrName != nil || c.Handler != nil {
		t.Error("shorthand catch must have no error name and no handler")
	}
	if lit, ok := c.Fallback.(*ast.BasicLit); !ok || lit.Text != "0" {
		t.Errorf("want fallback literal 0, got %#v", c.Fallback)
	}
}

func TestCatchWithHandler(t *testing.T) {
	expr := exprOf(t, "x catch e { log(e); } 0")

	c, ok := expr.(*ast.CatchExpr)
	if !ok {
		t.Fatalf("want *ast.CatchExpr, got %T", expr)
	}
	if c.ErrName == nil || c.ErrName.Name != "e" {
		t.Fatalf("want error name e, got %#v", c.ErrName)
	}
	if c.Handler == nil || len(c.Handler.Stmts) != 1 {
		t.Fatalf("want one handler statement, got %#v", c.Handler)
	}
	if lit, ok := c.Fallback.(*ast.BasicLit); !ok || lit.Text != "0" {
		t.Errorf("want fallback literal 0, got %#v", c.Fallback)
	}
}

func TestRecoveryAfterBadLet(t *testing.T) {
	program, bag := parseSource(t, "let x = ;\nlet y = 1;")

	errs := bag.ErrorCount()
	if errs != 1 {
		t.Fatalf("want exactly 1 error, got %d", errs)
	}
	if code := bag.Items()[0].Code; !code.IsSyntactic() {
		t.Errorf("want a syntax error code, got %v", code)
	}

	// the second statement parses unaffected
	var lets []*ast.LetStmt
	for _, st := range program.Stmts {
		if ls, ok := st.(*ast.LetStmt); ok {
			lets = append(lets, ls)
		}
	}
	if len(lets) != 1 {
		t.Fatalf("want 1 surviving let statement, got %d", len(lets))
	}
	if lets[0].Items[0].Name.Name != "y" {
		t.Errorf("surviving let: want y, got %q", lets[0].Items[0].Name.Name)
	}
}

func TestGenericStructDecl(t *testing.T) {
	program := parseClean(t, "type Pair<T> struct { .a: T, .b: T, }")

	decl, ok := program.Stmts[0].(*ast.TypeDecl)
	if !ok {
		t.Fatalf("want *ast.TypeDecl, got %T", program.Stmts[0])
	}
	if decl.Name.Name != "Pair" {
		t.Errorf("type name: want Pair, got %q", decl.Name.Name)
	}
	if len(decl.TypeParams) != 1 || decl.TypeParams[0].Name.Name != "T" {
		t.Fatalf("want one type parameter T, got %#v", decl.TypeParams)
	}
	st, ok := decl.Type.(*ast.StructType)
	if !ok {
		t.Fatalf("want *ast.StructType, got %T", decl.Type)
	}
	if len(st.Fields) != 2 {
		t.Fatalf("want 2 fields, got %d", len(st.Fields))
	}
	if st.Fields[0].Name != "a" || st.Fields[1].Name != "b" {
		t.Errorf("field names: want a, b; got %q, %q", st.Fields[0].Name, st.Fields[1].Name)
	}
	for i, f := range st.Fields {
		if named, ok := f.Type.(*ast.NamedType); !ok || named.Name != "T" {
			t.Errorf("field %d: want type T, got %#v", i, f.Type)
		}
	}
}

func TestResultTypeRightAssociative(t *testing.T) {
	program := parseClean(t, "fn f() -> A!B!C { }")

	fn := program.Stmts[0].(*ast.FnDecl)
	outer, ok := fn.Return.(*ast.ResultType)
	if !ok {
		t.Fatalf("want *ast.ResultType, got %T", fn.Return)
	}
	if named, ok := outer.Err.(*ast.NamedType); !ok || named.Name != "A" {
		t.Fatalf("want A as the error type, got %#v", outer.Err)
	}
	inner, ok := outer.Ok.(*ast.ResultType)
	if !ok {
		t.Fatalf("want nested result type on the success side, got %T", outer.Ok)
	}
	if named, ok := inner.Err.(*ast.NamedType); !ok || named.Name != "B" {
		t.Errorf("want B as the inner error type, got %#v", inner.Err)
	}
}

func TestTypeQualifiersNest(t *testing.T) {
	program := parseClean(t, "let x: &mut ?#i32")

	ls := program.Stmts[0].(*ast.LetStmt)
	ref, ok := ls.Items[0].Type.(*ast.RefType)
	if !ok || !ref.Mut {
		t.Fatalf("want mutable reference, got %#v", ls.Items[0].Type)
	}
	opt, ok := ref.Elem.(*ast.OptionType)
	if !ok {
		t.Fatalf("want optional under reference, got %T", ref.Elem)
	}
	heap, ok := opt.Elem.(*ast.HeapType)
	if !ok {
		t.Fatalf("want heap type under optional, got %T", opt.Elem)
	}
	if _, ok := heap.Elem.(*ast.PrimitiveType); !ok {
		t.Errorf("want primitive at the core, got %T", heap.Elem)
	}
}

func TestMapArraySliceTypes(t *testing.T) {
	program := parseClean(t, "let m: map[str]i32, a: [4]u8, s: []str")

	ls := program.Stmts[0].(*ast.LetStmt)
	if len(ls.Items) != 3 {
		t.Fatalf("want 3 items, got %d", len(ls.Items))
	}
	if _, ok := ls.Items[0].Type.(*ast.MapType); !ok {
		t.Errorf("m: want map type, got %T", ls.Items[0].Type)
	}
	arr, ok := ls.Items[1].Type.(*ast.ArrayType)
	if !ok {
		t.Fatalf("a: want array type, got %T", ls.Items[1].Type)
	}
	if lit, ok := arr.Size.(*ast.BasicLit); !ok || lit.Text != "4" {
		t.Errorf("array size: want literal 4, got %#v", arr.Size)
	}
	if _, ok := ls.Items[2].Type.(*ast.SliceType); !ok {
		t.Errorf("s: want slice type, got %T", ls.Items[2].Type)
	}
}

func TestConstraintDecl(t *testing.T) {
	program := parseClean(t, "constraint Num = union { i32, ~f64 } & Base")

	decl, ok := program.Stmts[0].(*ast.ConstraintDecl)
	if !ok {
		t.Fatalf("want *ast.ConstraintDecl, got %T", program.Stmts[0])
	}
	and, ok := decl.Expr.(*ast.ConstraintAnd)
	if !ok || len(and.Terms) != 2 {
		t.Fatalf("want 2-term conjunction, got %#v", decl.Expr)
	}
	union, ok := and.Terms[0].(*ast.ConstraintUnion)
	if !ok || len(union.Terms) != 2 {
		t.Fatalf("want 2-member union, got %#v", and.Terms[0])
	}
	if union.Terms[0].Negated || !union.Terms[1].Negated {
		t.Errorf("want i32 plain and f64 negated, got %#v", union.Terms)
	}
	if term, ok := and.Terms[1].(*ast.ConstraintTerm); !ok || term.Negated {
		t.Errorf("want plain type term Base, got %#v", and.Terms[1])
	}
}

func TestUnionTypeInTypeContext(t *testing.T) {
	program := parseClean(t, "type Value union { i32, str }")

	decl := program.Stmts[0].(*ast.TypeDecl)
	union, ok := decl.Type.(*ast.UnionType)
	if !ok {
		t.Fatalf("want *ast.UnionType, got %T", decl.Type)
	}
	if len(union.Alts) != 2 {
		t.Errorf("want 2 alternatives, got %d", len(union.Alts))
	}
}

func TestMatchExpression(t *testing.T) {
	program := parseClean(t, `let r = match x { 1 => "one", _ => "other" }`)

	ls := program.Stmts[0].(*ast.LetStmt)
	m, ok := ls.Items[0].Value.(*ast.MatchExpr)
	if !ok {
		t.Fatalf("want *ast.MatchExpr, got %T", ls.Items[0].Value)
	}
	if len(m.Arms) != 2 {
		t.Fatalf("want 2 arms, got %d", len(m.Arms))
	}
	if m.Arms[0].Pattern == nil {
		t.Error("first arm must have an explicit pattern")
	}
	if m.Arms[1].Pattern != nil {
		t.Error("wildcard arm must have a nil pattern")
	}
}

func TestImportWithAlias(t *testing.T) {
	program := parseClean(t, `import "std/io" as io`)

	imp, ok := program.Stmts[0].(*ast.ImportStmt)
	if !ok {
		t.Fatalf("want *ast.ImportStmt, got %T", program.Stmts[0])
	}
	if imp.Path != "std/io" {
		t.Errorf("path: want std/io, got %q", imp.Path)
	}
	if imp.Alias != "io" {
		t.Errorf("alias: want io, got %q", imp.Alias)
	}
}

func TestSemicolonsAreOptional(t *testing.T) {
	program := parseClean(t, "let a = 1\nlet b = 2")

	if len(program.Stmts) != 2 {
		t.Fatalf("want 2 statements, got %d", len(program.Stmts))
	}
	for i, st := range program.Stmts {
		if _, ok := st.(*ast.LetStmt); !ok {
			t.Errorf("statement %d: want let, got %T", i, st)
		}
	}
}

func TestForLoopForms(t *testing.T) {
	program := parseClean(t, "for v in items { }\nfor i, v in items { }")

	single := program.Stmts[0].(*ast.ForStmt)
	if single.Index != nil || single.Value.Name != "v" {
		t.Errorf("single form: want value v and no index, got %#v", single)
	}
	indexed := program.Stmts[1].(*ast.ForStmt)
	if indexed.Index == nil || indexed.Index.Name != "i" || indexed.Value.Name != "v" {
		t.Errorf("indexed form: want i, v; got %#v", indexed)
	}
}

func TestReturnErrorMarker(t *testing.T) {
	program := parseClean(t, "fn f() -> E!i32 { return notFound! }")

	fn := program.Stmts[0].(*ast.FnDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ret.Err {
		t.Error("want error marker on return")
	}
	if id, ok := ret.Value.(*ast.Ident); !ok || id.Name != "notFound" {
		t.Errorf("want returned identifier notFound, got %#v", ret.Value)
	}
}

func TestDeferForkTry(t *testing.T) {
	program := parseClean(t, "defer close(f)\nfork worker()\ntry risky()")

	if _, ok := program.Stmts[0].(*ast.DeferStmt); !ok {
		t.Errorf("want defer, got %T", program.Stmts[0])
	}
	if _, ok := program.Stmts[1].(*ast.ForkStmt); !ok {
		t.Errorf("want fork, got %T", program.Stmts[1])
	}
	if _, ok := program.Stmts[2].(*ast.TryStmt); !ok {
		t.Errorf("want try, got %T", program.Stmts[2])
	}
}

func TestAssignmentForms(t *testing.T) {
	program := parseClean(t, "x = 1\nx += 2\nx++\np.y[0] -= 3")

	if as, ok := program.Stmts[0].(*ast.AssignStmt); !ok || as.Op != token.Assign {
		t.Errorf("want plain assignment, got %#v", program.Stmts[0])
	}
	if as, ok := program.Stmts[1].(*ast.AssignStmt); !ok || as.Op != token.PlusAssign {
		t.Errorf("want compound assignment, got %#v", program.Stmts[1])
	}
	if inc, ok := program.Stmts[2].(*ast.IncDecStmt); !ok || inc.Dec {
		t.Errorf("want increment, got %#v", program.Stmts[2])
	}
	as, ok := program.Stmts[3].(*ast.AssignStmt)
	if !ok || as.Op != token.MinusAssign {
		t.Fatalf("want compound assignment to index target, got %#v", program.Stmts[3])
	}
	if _, ok := as.Lhs.(*ast.IndexExpr); !ok {
		t.Errorf("want index expression target, got %T", as.Lhs)
	}
}

func TestBadAssignTarget(t *testing.T) {
	_, bag := parseSource(t, "1 = 2")

	if bag.ErrorCount() != 1 {
		t.Fatalf("want 1 error, got %d", bag.ErrorCount())
	}
	if bag.Items()[0].Code != diag.SynBadAssignTarget {
		t.Errorf("want SynBadAssignTarget, got %v", bag.Items()[0].Code)
	}
}

func TestRangeAndPropagate(t *testing.T) {
	program := parseClean(t, "let r = 1..n\nlet v = load(path)!!")

	first := program.Stmts[0].(*ast.LetStmt)
	if _, ok := first.Items[0].Value.(*ast.RangeExpr); !ok {
		t.Errorf("want range expression, got %T", first.Items[0].Value)
	}
	second := program.Stmts[1].(*ast.LetStmt)
	prop, ok := second.Items[0].Value.(*ast.PropagateExpr)
	if !ok {
		t.Fatalf("want propagate expression, got %T", second.Items[0].Value)
	}
	if _, ok := prop.X.(*ast.CallExpr); !ok {
		t.Errorf("want call under '!!', got %T", prop.X)
	}
}

func TestIfElseChain(t *testing.T) {
	program := parseClean(t, "if a { } else if b { } else { }")

	top := program.Stmts[0].(*ast.IfStmt)
	second, ok := top.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("want nested if in else, got %T", top.Else)
	}
	if _, ok := second.Else.(*ast.BlockStmt); !ok {
		t.Errorf("want final else block, got %T", second.Else)
	}
}

func TestPipelineAndCoalesce(t *testing.T) {
	// ?? binds tighter than |>
	expr := exprOf(t, "data |> clean ?? fallback")

	pipe, ok := expr.(*ast.BinaryExpr)
	if !ok || pipe.Op != ast.BinaryPipeline {
		t.Fatalf("want top-level '|>', got %#v", expr)
	}
	if co, ok := pipe.Y.(*ast.BinaryExpr); !ok || co.Op != ast.BinaryCoalesce {
		t.Errorf("want '??' on the right, got %#v", pipe.Y)
	}
}

func TestCastAndTypeTest(t *testing.T) {
	program := parseClean(t, "let n = x as i64\nlet b = y is str")

	first := program.Stmts[0].(*ast.LetStmt)
	if _, ok := first.Items[0].Value.(*ast.CastExpr); !ok {
		t.Errorf("want cast expression, got %T", first.Items[0].Value)
	}
	second := program.Stmts[1].(*ast.LetStmt)
	if _, ok := second.Items[0].Value.(*ast.TypeTestExpr); !ok {
		t.Errorf("want type-test expression, got %T", second.Items[0].Value)
	}
}

func TestInterfaceDecl(t *testing.T) {
	program := parseClean(t, "type Shape interface { fn area() -> f64, fn name() -> str }")

	decl := program.Stmts[0].(*ast.TypeDecl)
	iface, ok := decl.Type.(*ast.InterfaceType)
	if !ok {
		t.Fatalf("want *ast.InterfaceType, got %T", decl.Type)
	}
	if len(iface.Methods) != 2 {
		t.Fatalf("want 2 methods, got %d", len(iface.Methods))
	}
	if iface.Methods[0].Name != "area" || iface.Methods[1].Name != "name" {
		t.Errorf("method names: got %q, %q", iface.Methods[0].Name, iface.Methods[1].Name)
	}
}

func TestEnumDecl(t *testing.T) {
	program := parseClean(t, "type Color enum { Red, Green, Blue }")

	decl := program.Stmts[0].(*ast.TypeDecl)
	enum, ok := decl.Type.(*ast.EnumType)
	if !ok {
		t.Fatalf("want *ast.EnumType, got %T", decl.Type)
	}
	if len(enum.Variants) != 3 {
		t.Errorf("want 3 variants, got %d", len(enum.Variants))
	}
}

func TestWalrusAndTypedLet(t *testing.T) {
	program := parseClean(t, "let a := next(), b: i32 = 0, c")

	ls := program.Stmts[0].(*ast.LetStmt)
	if len(ls.Items) != 3 {
		t.Fatalf("want 3 items, got %d", len(ls.Items))
	}
	if !ls.Items[0].Walrus || ls.Items[0].Value == nil {
		t.Errorf("a: want walrus initializer, got %#v", ls.Items[0])
	}
	if ls.Items[1].Type == nil || ls.Items[1].Value == nil || ls.Items[1].Walrus {
		t.Errorf("b: want typed '=' initializer, got %#v", ls.Items[1])
	}
	if ls.Items[2].Type != nil || ls.Items[2].Value != nil {
		t.Errorf("c: want bare declaration, got %#v", ls.Items[2])
	}
}

func TestRecoveryInsideBlock(t *testing.T) {
	program, bag := parseSource(t, "fn f() { let = 1; let ok = 2; }")

	if bag.ErrorCount() != 1 {
		t.Fatalf("want 1 error, got %d", bag.ErrorCount())
	}
	fn := program.Stmts[0].(*ast.FnDecl)
	var sawBad, sawOk bool
	for _, st := range fn.Body.Stmts {
		switch s := st.(type) {
		case *ast.BadStmt:
			sawBad = true
		case *ast.LetStmt:
			if s.Items[0].Name.Name == "ok" {
				sawOk = true
			}
		}
	}
	if !sawBad {
		t.Error("want a BadStmt for the malformed let")
	}
	if !sawOk {
		t.Error("want the following let to survive recovery")
	}
}

func TestSpreadAndRefMutPrefix(t *testing.T) {
	expr := exprOf(t, "...&mut xs")

	spread, ok := expr.(*ast.UnaryExpr)
	if !ok || spread.Op != ast.UnarySpread {
		t.Fatalf("want spread on the outside, got %#v", expr)
	}
	if ref, ok := spread.X.(*ast.UnaryExpr); !ok || ref.Op != ast.UnaryRefMut {
		t.Errorf("want &mut under spread, got %#v", spread.X)
	}
}
