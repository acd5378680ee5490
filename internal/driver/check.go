package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"ferret/internal/diag"
	"ferret/internal/source"
)

// CheckResult is the outcome for one file of a directory check.
type CheckResult struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// CheckDir parses every .fer file under dir and reports diagnostics only.
// With a non-nil cache, files whose content hash already has a stored result
// are not re-parsed; fresh results are stored back. cache may be nil.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *CheckCache) (*source.FileSet, []CheckResult, error) {
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

	results := make([]CheckResult, len(files))

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
				results[i] = CheckResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if payload, hit, err := cache.Get(file.Hash); err == nil && hit {
				results[i] = CheckResult{
					Path:      path,
					FileID:    fileID,
					Bag:       payload.Replay(fileID, maxDiagnostics),
					FromCache: true,
				}
				return nil
			}

			parsed, err := parseFile(fileSet, file, maxDiagnostics)
			if err != nil {
				return err
			}
			// a failed Put only costs the next run a re-parse
			_ = cache.Put(file.Hash, path, parsed.Bag)

			results[i] = CheckResult{
				Path:   path,
				FileID: fileID,
				Bag:    parsed.Bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
