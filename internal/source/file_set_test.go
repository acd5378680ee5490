package source

import "testing"

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fer", []byte("\xEF\xBB\xBFlet a = 1\r\nlet b = 2\r\n"))

	f := fs.Get(id)
	if f == nil {
		t.Fatal("expected file")
	}
	if string(f.Content) != "let a = 1\nlet b = 2\n" {
		t.Fatalf("content not normalized: %q", f.Content)
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fer", []byte("let a = 1\nlet b = 2\n"))

	// "b" sits on line 2, column 5
	start, end := fs.Resolve(Span{File: id, Start: 14, End: 15})
	if start.Line != 2 || start.Col != 5 {
		t.Fatalf("start: expected 2:5, got %d:%d", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Fatalf("end: expected 2:6, got %d:%d", end.Line, end.Col)
	}
}

func TestResolveFirstLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fer", []byte("x\ny"))

	start, _ := fs.Resolve(Span{File: id, Start: 0, End: 1})
	if start.Line != 1 || start.Col != 1 {
		t.Fatalf("expected 1:1, got %d:%d", start.Line, start.Col)
	}

	start, _ = fs.Resolve(Span{File: id, Start: 2, End: 3})
	if start.Line != 2 || start.Col != 1 {
		t.Fatalf("expected 2:1, got %d:%d", start.Line, start.Col)
	}
}

func TestLineText(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.fer", []byte("first\nsecond\nthird"))

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := fs.LineText(id, tt.line); got != tt.want {
			t.Errorf("line %d: expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.fer", []byte("old"))
	fs.AddVirtual("a.fer", []byte("new"))

	f, ok := fs.GetByPath("a.fer")
	if !ok {
		t.Fatal("expected file")
	}
	if string(f.Content) != "new" {
		t.Fatalf("index must point at the latest version, got %q", f.Content)
	}
}
