// Package diagfmt renders diagnostics, token streams, and syntax trees for
// human and machine consumers. It never mutates what it formats; callers are
// expected to Sort() a Bag before printing it.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"ferret/internal/diag"
	"ferret/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
	posColor     = color.New(color.Bold)
)

// Pretty writes every diagnostic of the bag in the form
//
//	<path>:<line>:<col>: <SEVERITY>[<CODE>]: <message>
//
// followed by the offending source line with a caret underline, then the
// notes indented below.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	head := fmt.Sprintf("%s:%d:%d:", displayPath(file, opts.PathMode), start.Line, start.Col)
	sev := fmt.Sprintf("%s[%s]:", d.Severity.String(), d.Code.ID())

	fmt.Fprintf(w, "%s %s %s\n",
		paint(opts.Color, posColor, head),
		paint(opts.Color, severityColor(d.Severity), sev),
		d.Message)

	writeSourceLine(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			noteFile := fs.Get(note.Span.File)
			fmt.Fprintf(w, "  %s:%d:%d: %s %s\n",
				displayPath(noteFile, opts.PathMode),
				noteStart.Line, noteStart.Col,
				paint(opts.Color, infoColor, "note:"),
				note.Msg)
		}
	}
}

// writeSourceLine prints the first line the span touches with a ^~~~ marker
// underneath. Tabs in the prefix are preserved so the marker lines up.
func writeSourceLine(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	line := fs.LineText(sp.File, start.Line)
	if line == "" && sp.Len() == 0 && start.Col == 1 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	var pad strings.Builder
	for i := 0; i < col-1 && i < len(line); i++ {
		if line[i] == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	for i := len(line); i < col-1; i++ {
		pad.WriteByte(' ')
	}

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", pad.String(), paint(opts.Color, caretColor, marker))
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func paint(enabled bool, c *color.Color, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

func displayPath(f *source.File, mode PathMode) string {
	if f == nil {
		return "<unknown>"
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	default:
		return f.Path
	}
}
