package diagfmt_test

import (
	"strings"
	"testing"

	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/diagfmt"
	"ferret/internal/lexer"
	"ferret/internal/parser"
	"ferret/internal/source"
	"ferret/internal/token"
)

func parseForTest(t *testing.T, src string) (*ast.Program, []token.Token, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.fer", []byte(src)))
	bag := diag.NewBag(0)
	rep := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: rep})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	res := parser.Parse(file, toks, parser.Options{Reporter: rep})
	return res.Program, toks, bag, fs
}

func TestPrettyDiagnostics(t *testing.T) {
	_, _, bag, fs := parseForTest(t, "let x = ;")

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "test.fer:1:9:") {
		t.Errorf("missing position header in:\n%s", out)
	}
	if !strings.Contains(out, "ERROR[SYN") {
		t.Errorf("missing severity/code in:\n%s", out)
	}
	if !strings.Contains(out, "let x = ;") {
		t.Errorf("missing source line in:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret marker in:\n%s", out)
	}
}

func TestPrettyWithoutColorHasNoEscapes(t *testing.T) {
	_, _, bag, fs := parseForTest(t, "let x = ;")

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{Color: false})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("color disabled but output contains escape sequences")
	}
}

func TestJSONDiagnostics(t *testing.T) {
	_, _, bag, fs := parseForTest(t, "let x = ;")

	var buf strings.Builder
	err := diagfmt.JSON(&buf, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"severity": "ERROR"`, `"file": "test.fer"`, `"count": 1`, `"start_line": 1`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestJSONTruncation(t *testing.T) {
	_, _, bag, fs := parseForTest(t, "let a = ;\nlet b = ;\nlet c = ;")

	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 2})
	if len(out.Diagnostics) != 2 {
		t.Errorf("want 2 diagnostics after truncation, got %d", len(out.Diagnostics))
	}
	if out.Count != 3 {
		t.Errorf("count must reflect the full bag, got %d", out.Count)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	_, toks, _, fs := parseForTest(t, "let x = 42 // answer\n")

	var buf strings.Builder
	if err := diagfmt.FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"KwLet", "Ident", `"x"`, "IntLit", `"42"`, "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "LineComment") {
		t.Errorf("comment trivia not shown in:\n%s", out)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, toks, _, fs := parseForTest(t, "let x = 1")
	_ = fs

	var buf strings.Builder
	if err := diagfmt.FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"kind": "KwLet"`) {
		t.Errorf("missing token kind in:\n%s", out)
	}
}

func TestFormatASTPretty(t *testing.T) {
	program, _, bag, fs := parseForTest(t, "fn add(a: i32, b: i32) -> i32 { return a + b; }")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}

	var buf strings.Builder
	if err := diagfmt.FormatASTPretty(&buf, program, fs); err != nil {
		t.Fatalf("FormatASTPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Program", "Fn add", "Params", "Return: Primitive i32", "Binary +"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	program, _, _, fs := parseForTest(t, "let x = 1")

	var buf strings.Builder
	if err := diagfmt.FormatASTJSON(&buf, program, fs); err != nil {
		t.Fatalf("FormatASTJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"label": "Program`) {
		t.Errorf("missing program root in:\n%s", buf.String())
	}
}

func TestSarifOutput(t *testing.T) {
	_, _, bag, fs := parseForTest(t, "let x = ;")
	if !bag.HasErrors() {
		t.Fatal("fixture must produce at least one error")
	}

	var buf strings.Builder
	meta := diagfmt.SarifRunMeta{ToolName: "ferret", ToolVersion: "0.1.0"}
	if err := diagfmt.Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatalf("Sarif: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`"version": "2.1.0"`,
		`"name": "ferret"`,
		`"ruleId": "SYN`,
		`"level": "error"`,
		`"uri": "test.fer"`,
		`"startLine": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in:\n%s", want, out)
		}
	}
}
