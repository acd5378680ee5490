package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves spans to
// human-readable positions.
type FileSet struct {
	files []File
	index map[string]FileID // path -> latest id
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and
// returns a fresh FileID. A path may be added more than once; the index always
// points at the latest version.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	content, hadBOM := removeBOM(raw)
	if hadBOM {
		flags |= FileHadBOM
	}
	content, changed := normalizeCRLF(content)
	if changed {
		flags |= FileNormalizedCRLF
	}

	return fileSet.Add(path, content, flags), nil
}

// AddVirtual registers an in-memory file (tests, stdin).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	normalized, _ := removeBOM(content)
	normalized, _ = normalizeCRLF(normalized)
	return fileSet.Add(name, normalized, FileVirtual)
}

// Get returns the file for id, or nil if the id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return &fileSet.files[id]
}

// GetByPath returns the latest version of the file registered under path.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	if !ok {
		return nil, false
	}
	return &fileSet.files[id], true
}

// Len returns the number of registered files.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve maps a span to start/end line-column pairs in its file.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LineText returns the raw text of a 1-based line, without the trailing
// newline. Out-of-range lines yield "".
func (fileSet *FileSet) LineText(id FileID, line uint32) string {
	f := fileSet.Get(id)
	if f == nil || line == 0 {
		return ""
	}
	idx := int(line) - 1 // 0-based
	var start uint32
	if idx > 0 {
		if idx-1 >= len(f.LineIdx) {
			return ""
		}
		start = f.LineIdx[idx-1] + 1
	}
	end := uint32(len(f.Content))
	if idx < len(f.LineIdx) {
		end = f.LineIdx[idx]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}
