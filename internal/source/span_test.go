package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Fatalf("expected 2-8, got %d-%d", got.Start, got.End)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cover across files must be a no-op, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	inner := Span{File: 0, Start: 3, End: 7}

	if !outer.Contains(inner) {
		t.Fatal("expected outer to contain inner")
	}
	if inner.Contains(outer) {
		t.Fatal("inner must not contain outer")
	}
}

func TestSpanEmptyLen(t *testing.T) {
	s := Span{Start: 5, End: 5}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("expected empty zero-length span, got len %d", s.Len())
	}
}
