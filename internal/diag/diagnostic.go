package diag

import (
	"ferret/internal/source"
)

// Note attaches a secondary location and message to a diagnostic, e.g. the
// point where the parser resumed after recovery.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of d with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
