package diag

import (
	"fmt"
	"sort"
)

// Bag accumulates diagnostics for one pass, bounded by a maximum count so a
// hopeless input cannot flood the caller.
type Bag struct {
	items []Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(max, 64)),
		max:   uint16(max),
	}
}

// Add appends a diagnostic, honoring the limit.
// Returns false if the diagnostic was dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max != 0 && len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether at least one diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether at least one diagnostic is a warning or worse.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-severity diagnostics.
func (b *Bag) ErrorCount() int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			n++
		}
	}
	return n
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the collected diagnostics.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends the diagnostics from other, growing the limit if needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if b.max != 0 && newTotal > int(b.max) {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, start, end, severity (desc), code for a
// stable, deterministic output order.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup drops repeated diagnostics with the same code and primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	out := b.items[:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.ID(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}
