// Package driver wires the front-end phases together: file loading,
// tokenization, parsing, directory-wide parallel parsing, and the disk cache
// used to skip clean unchanged files.
package driver

import (
	"ferret/internal/diag"
	"ferret/internal/lexer"
	"ferret/internal/source"
	"ferret/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and scans it to EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeBytes scans in-memory content registered under name.
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
