// Package project locates and reads the ferret.toml manifest that marks a
// project root.
package project

import (
	"fmt"
	"path/filepath"
	"unicode"

	"github.com/BurntSushi/toml"
)

const ManifestName = "ferret.toml"

type Package struct {
	Name string `toml:"name"`
	// Root is the source directory relative to the manifest, "." when empty.
	Root string `toml:"root"`
}

type Manifest struct {
	// Path is the manifest file location, Dir its directory.
	Path    string
	Dir     string
	Package Package `toml:"package"`
}

// SourceRoot returns the absolute directory that holds the project's .fer
// files.
func (m *Manifest) SourceRoot() string {
	root := m.Package.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(m.Dir, root)
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package] section", path)
	}
	if !IsValidPackageName(m.Package.Name) {
		return nil, fmt.Errorf("%s: invalid package name %q", path, m.Package.Name)
	}

	m.Path = path
	m.Dir = filepath.Dir(path)
	return &m, nil
}

// IsValidPackageName accepts ASCII identifiers: letter or underscore first,
// letters, digits, and underscores after.
func IsValidPackageName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r > unicode.MaxASCII {
			return false
		}
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
