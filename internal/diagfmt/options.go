package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows the path the way it was registered.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// SarifRunMeta provides tool metadata for SARIF output.
type SarifRunMeta struct {
	ToolName    string
	ToolVersion string
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col alongside byte offsets
	PathMode         PathMode
	Max              int // output truncation, does not touch the Bag
	IncludeNotes     bool
}
