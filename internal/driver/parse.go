package driver

import (
	"fortio.org/safecast"

	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/lexer"
	"ferret/internal/parser"
	"ferret/internal/source"
	"ferret/internal/token"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads one file, tokenizes it, and builds its syntax tree. Lexical and
// syntactic diagnostics land in the same bag; an error return means I/O
// failure only.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID), maxDiagnostics)
}

// ParseBytes parses in-memory content registered under name.
func ParseBytes(name string, content []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fs.Get(fileID), maxDiagnostics)
}

func parseFile(fs *source.FileSet, file *source.File, maxDiagnostics int) (*ParseResult, error) {
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}

	result := parser.Parse(file, tokens, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Program: result.Program,
		Bag:     bag,
	}, nil
}
