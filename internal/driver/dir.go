package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ferret/internal/ast"
	"ferret/internal/diag"
	"ferret/internal/source"
)

// SourceExt is the conventional Ferret file extension.
const SourceExt = ".fer"

// ParseDirResult is the outcome for one file of a directory parse.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Program *ast.Program
	Bag     *diag.Bag
}

// listSourceFiles returns every *.fer file under dir, sorted for
// deterministic output order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every .fer file under dir concurrently. Files are loaded
// sequentially (the FileSet is not safe for concurrent writes); each parse
// then runs with its own lexer, stream, and bag, so workers share nothing
// mutable. jobs <= 0 means GOMAXPROCS.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// index per goroutine is unique, no mutex needed
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(maxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			parsed, err := parseFile(fileSet, fileSet.Get(fileID), maxDiagnostics)
			if err != nil {
				return err
			}

			results[i] = ParseDirResult{
				Path:    path,
				FileID:  fileID,
				Program: parsed.Program,
				Bag:     parsed.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
