package lexer_test

import (
	"testing"

	"ferret/internal/diag"
	"ferret/internal/lexer"
	"ferret/internal/source"
	"ferret/internal/token"
)

// testReporter collects every diagnostic the lexer emits.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func makeTestLexer(input string) (*lexer.Lexer, *source.File, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.fer", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, file, reporter
}

func lexAll(t *testing.T, input string) ([]token.Token, *source.File, *testReporter) {
	t.Helper()
	lx, file, rep := makeTestLexer(input)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, file, rep
		}
		if len(toks) > 10000 {
			t.Fatal("lexer did not terminate")
		}
	}
}

// kinds without the trailing EOF
func kindsOf(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		if tk.Kind == token.EOF {
			break
		}
		out = append(out, tk.Kind)
	}
	return out
}

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"decimal", "42"},
		{"decimal_sep", "42_000"},
		{"hex", "0x1A_B"},
		{"hex_upper", "0XFF"},
		{"octal", "0o17"},
		{"binary", "0b101"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _, rep := lexAll(t, tt.input)
			if rep.ErrorCount() != 0 {
				t.Fatalf("unexpected errors: %v", rep.diagnostics)
			}
			ks := kindsOf(toks)
			if len(ks) != 1 || ks[0] != token.IntLit {
				t.Fatalf("expected single IntLit, got %v", ks)
			}
			if toks[0].Text != tt.input {
				t.Fatalf("expected lexeme %q, got %q", tt.input, toks[0].Text)
			}
		})
	}
}

func TestBadIntegerLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"hex_no_digits", "0x"},
		{"binary_no_digits", "0b"},
		{"octal_bad_digit", "0o8"},
		{"decimal_suffix", "123abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _, rep := lexAll(t, tt.input)
			if rep.ErrorCount() != 1 {
				t.Fatalf("expected one error, got %d", rep.ErrorCount())
			}
			ks := kindsOf(toks)
			if len(ks) != 1 || ks[0] != token.Invalid {
				t.Fatalf("expected single Invalid token, got %v", ks)
			}
		})
	}
}

func TestFloatAndImaginaryLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"3.14", token.FloatLit},
		{"1.0e10", token.FloatLit},
		{"2.5e-3", token.FloatLit},
		{"1e3", token.FloatLit},
		{"2i", token.ImaginaryLit},
		{"3.5i", token.ImaginaryLit},
		{"1e3i", token.ImaginaryLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, _, rep := lexAll(t, tt.input)
			if rep.ErrorCount() != 0 {
				t.Fatalf("unexpected errors: %v", rep.diagnostics)
			}
			ks := kindsOf(toks)
			if len(ks) != 1 || ks[0] != tt.kind {
				t.Fatalf("expected single %v, got %v", tt.kind, ks)
			}
		})
	}
}

func TestIntNotReinterpretedAsFloat(t *testing.T) {
	toks, _, _ := lexAll(t, "1..2")
	ks := kindsOf(toks)
	want := []token.Kind{token.IntLit, token.DotDot, token.IntLit}
	if len(ks) != len(want) {
		t.Fatalf("expected %v, got %v", want, ks)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ks)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	toks, _, rep := lexAll(t, `"hello \n \t \" \\ \x41 \u{1F600} world"`)
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", rep.diagnostics)
	}
	ks := kindsOf(toks)
	if len(ks) != 1 || ks[0] != token.StringLit {
		t.Fatalf("expected single StringLit, got %v", ks)
	}
}

func TestBadEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown", `"\q"`},
		{"x_short", `"\x4"`},
		{"u_no_brace", `"\u41"`},
		{"u_empty", `"\u{}"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, rep := lexAll(t, tt.input)
			if rep.ErrorCount() != 1 {
				t.Fatalf("expected one escape error, got %d: %v", rep.ErrorCount(), rep.diagnostics)
			}
			if rep.diagnostics[0].Code != diag.LexBadEscape {
				t.Fatalf("expected LexBadEscape, got %v", rep.diagnostics[0].Code)
			}
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	for _, input := range []string{`"abc`, "\"abc\nx"} {
		_, _, rep := lexAll(t, input)
		if rep.ErrorCount() != 1 {
			t.Fatalf("%q: expected one error, got %d", input, rep.ErrorCount())
		}
		if rep.diagnostics[0].Code != diag.LexUnterminatedString {
			t.Fatalf("%q: expected LexUnterminatedString, got %v", input, rep.diagnostics[0].Code)
		}
	}
}

func TestCharAndByteLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{`'a'`, token.CharLit},
		{`'\n'`, token.CharLit},
		{`'\''`, token.CharLit},
		{`'\x41'`, token.CharLit},
		{`b'a'`, token.ByteLit},
		{`b'\t'`, token.ByteLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, _, rep := lexAll(t, tt.input)
			if rep.ErrorCount() != 0 {
				t.Fatalf("unexpected errors: %v", rep.diagnostics)
			}
			ks := kindsOf(toks)
			if len(ks) != 1 || ks[0] != tt.kind {
				t.Fatalf("expected single %v, got %v", tt.kind, ks)
			}
			if toks[0].Text != tt.input {
				t.Fatalf("expected lexeme %q, got %q", tt.input, toks[0].Text)
			}
		})
	}
}

func TestEmptyCharLiteral(t *testing.T) {
	_, _, rep := lexAll(t, "''")
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected one error, got %d", rep.ErrorCount())
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	toks, _, _ := lexAll(t, "let fork Letx i32 foo match")
	ks := kindsOf(toks)
	want := []token.Kind{token.KwLet, token.KwFork, token.Ident, token.Primitive, token.Ident, token.KwMatch}
	if len(ks) != len(want) {
		t.Fatalf("expected %v, got %v", want, ks)
	}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("pos %d: expected %v, got %v", i, want[i], ks[i])
		}
	}
}

func TestOperatorGreediness(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"|> || |", []token.Kind{token.PipeGt, token.OrOr, token.Pipe}},
		{"** *= *", []token.Kind{token.StarStar, token.StarAssign, token.Star}},
		{"!! != !", []token.Kind{token.BangBang, token.BangEq, token.Bang}},
		{"... .. .", []token.Kind{token.DotDotDot, token.DotDot, token.Dot}},
		{":: := :", []token.Kind{token.ColonColon, token.ColonAssign, token.Colon}},
		{"?? ?", []token.Kind{token.QuestionQuestion, token.Question}},
		{"-> -- -=", []token.Kind{token.Arrow, token.MinusMinus, token.MinusAssign}},
		{"=> == =", []token.Kind{token.FatArrow, token.EqEq, token.Assign}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, _, _ := lexAll(t, tt.input)
			ks := kindsOf(toks)
			if len(ks) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, ks)
			}
			for i := range tt.want {
				if ks[i] != tt.want[i] {
					t.Fatalf("pos %d: expected %v, got %v", i, tt.want[i], ks[i])
				}
			}
		})
	}
}

func TestCommentsAreTrivia(t *testing.T) {
	toks, _, rep := lexAll(t, "// line\nlet /* block */ x")
	if rep.ErrorCount() != 0 {
		t.Fatalf("unexpected errors: %v", rep.diagnostics)
	}
	ks := kindsOf(toks)
	if len(ks) != 2 || ks[0] != token.KwLet || ks[1] != token.Ident {
		t.Fatalf("comments leaked into token stream: %v", ks)
	}

	var sawLine, sawBlock bool
	for _, tr := range toks[0].Leading {
		if tr.Kind == token.TriviaLineComment {
			sawLine = true
		}
	}
	for _, tr := range toks[1].Leading {
		if tr.Kind == token.TriviaBlockComment {
			sawBlock = true
		}
	}
	if !sawLine || !sawBlock {
		t.Fatalf("expected comment trivia on following tokens (line=%v block=%v)", sawLine, sawBlock)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, _, rep := lexAll(t, "/* never closed")
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected one error, got %d", rep.ErrorCount())
	}
	if rep.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected LexUnterminatedBlockComment, got %v", rep.diagnostics[0].Code)
	}
}

func TestUnknownCharResync(t *testing.T) {
	toks, _, rep := lexAll(t, "let $ x")
	if rep.ErrorCount() != 1 {
		t.Fatalf("expected one error, got %d", rep.ErrorCount())
	}
	ks := kindsOf(toks)
	want := []token.Kind{token.KwLet, token.Invalid, token.Ident}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ks)
		}
	}
}

// Re-slicing the recorded spans must reproduce every lexeme byte-for-byte.
func TestSpanRoundTrip(t *testing.T) {
	input := "fn main() -> i32 {\n\tlet x = 0x1A_B + 3.14 ** 2\n\treturn x!\n}\n"
	toks, file, _ := lexAll(t, input)
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			break
		}
		got := string(file.Content[tok.Span.Start:tok.Span.End])
		if got != tok.Text {
			t.Fatalf("span %v: content %q != lexeme %q", tok.Span, got, tok.Text)
		}
	}
}

func TestUnderscoreForms(t *testing.T) {
	toks, _, _ := lexAll(t, "_ _foo __bar")
	ks := kindsOf(toks)
	want := []token.Kind{token.Underscore, token.Ident, token.Ident}
	for i := range want {
		if ks[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ks)
		}
	}
}
