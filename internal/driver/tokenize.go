// Package driver wires the scanning pipeline together: file loading,
// tokenization, diagnostics collection, and the token stream cache.
package driver

import (
	"github.com/sirupsen/logrus"

	"bassil/internal/diag"
	"bassil/internal/lexer"
	"bassil/internal/source"
	"bassil/internal/token"
)

// TokenizeOptions configures one tokenize run.
type TokenizeOptions struct {
	// MaxDiagnostics caps the diagnostics bag. Zero or negative means
	// unlimited.
	MaxDiagnostics int
	// Trace, when non-nil, receives the lexer's verbose scan log.
	Trace logrus.FieldLogger
}

// TokenizeResult carries everything a caller needs after scanning one file.
// Tokens holds only significant tokens; the terminating sentinel is an
// internal detail and is never included.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// ScanErr is the fatal scan error, if any. Tokens produced before the
	// failure are still present.
	ScanErr error
}

// Tokenize loads and scans a single file. The returned error covers loading
// only; scan failures land in ScanErr so partial results stay usable.
func Tokenize(path string, opts TokenizeOptions) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scanFile(fs, fileID, opts), nil
}

// TokenizeString scans in-memory content under a display name.
func TokenizeString(name, content string, opts TokenizeOptions) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, []byte(content))
	return scanFile(fs, fileID, opts)
}

func scanFile(fs *source.FileSet, fileID source.FileID, opts TokenizeOptions) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

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

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		ScanErr: lx.Err(),
	}
}
