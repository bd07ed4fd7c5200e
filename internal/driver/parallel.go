package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"bassil/internal/diag"
	"bassil/internal/lexer"
	"bassil/internal/source"
	"bassil/internal/token"
)

// FileResult is the per-file outcome of a multi-file tokenize run.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
	ScanErr error
	// FileSet is the set the file was loaded into, shared across the run.
	FileSet *source.FileSet
}

// ListSourceFiles returns every *.bas file under dir, sorted for a
// deterministic run order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".bas") {
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

// TokenizeFiles scans the given files concurrently. Loading happens up front
// on one goroutine; a file that fails to load gets an IO diagnostic in its
// bag instead of aborting the whole run. Results keep the input order.
func TokenizeFiles(ctx context.Context, paths []string, jobs int, opts TokenizeOptions) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error)
	for _, path := range paths {
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

	// one slot per goroutine, no mutex needed
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, failed := loadErrors[path]; failed {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOFileUnreadable,
					Primary:  source.Span{File: source.NoFile},
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = FileResult{Path: path, FileID: source.NoFile, Bag: bag, FileSet: fileSet}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			lx := lexer.New(file, lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
				Trace:    opts.Trace,
			})
			var tokens []token.Token
			for {
				tok := lx.Next()
				if tok.Kind == token.EOF {
					break
				}
				tokens = append(tokens, tok)
			}

			results[i] = FileResult{
				Path:    path,
				FileID:  fileID,
				Tokens:  tokens,
				Bag:     bag,
				ScanErr: lx.Err(),
				FileSet: fileSet,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
