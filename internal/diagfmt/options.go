package diagfmt

import "path/filepath"

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path exactly as recorded in the file set.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// displayPath rewrites a recorded path according to the mode. Rewrites that
// need the filesystem fall back to the recorded path on error.
func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return filepath.ToSlash(abs)
	case PathModeRelative:
		wd, err := filepath.Abs(".")
		if err != nil {
			return path
		}
		rel, err := filepath.Rel(wd, path)
		if err != nil {
			return path
		}
		return filepath.ToSlash(rel)
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
