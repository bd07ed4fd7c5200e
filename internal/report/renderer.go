// Package report renders a caret-marked excerpt of a source file for one
// externally supplied position: path, line, and an inclusive column range.
// It reads the file itself, so it works on inputs the tokenizer never saw.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"bassil/internal/diagfmt"
	"bassil/internal/persist"
)

// BadColumnRangeError rejects a range before any file access happens.
type BadColumnRangeError struct {
	Start, End uint32
}

func (e *BadColumnRangeError) Error() string {
	return fmt.Sprintf("invalid column range %d-%d", e.Start, e.End)
}

// FileUnreadableError wraps the open failure for the requested path.
type FileUnreadableError struct {
	Path string
	Err  error
}

func (e *FileUnreadableError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileUnreadableError) Unwrap() error { return e.Err }

// LineOutOfRangeError reports a line number past the end of the file.
type LineOutOfRangeError struct {
	Path string
	Line uint32
	Err  error
}

func (e *LineOutOfRangeError) Error() string {
	return fmt.Sprintf("%s has no line %d", e.Path, e.Line)
}

func (e *LineOutOfRangeError) Unwrap() error { return e.Err }

// Options configures a Renderer.
type Options struct {
	// Decorate requests ANSI styling of the header and marker.
	Decorate bool
	// Available reports whether the sink can render escapes. Decoration
	// requested against an incapable sink falls back to plain output with a
	// one-time notice.
	Available bool
}

// Renderer writes caret-marked excerpts to a single output stream.
type Renderer struct {
	out    io.Writer
	opts   Options
	warned bool
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	return &Renderer{out: out, opts: opts}
}

func (r *Renderer) decorate() bool {
	if !r.opts.Decorate {
		return false
	}
	if r.opts.Available {
		return true
	}
	if !r.warned {
		r.warned = true
		fmt.Fprintln(r.out, "note: decorated output unavailable, using plain markers")
	}
	return false
}

// Report prints a three-line block for the given position:
//
//	<path>:<line>:<start>-<end>: error: <message>
//	  <source line>
//	  <caret marker>
//
// Columns are 1-based and inclusive on both ends. The range is validated
// before the file is touched; a start past the end performs no file access.
func (r *Renderer) Report(path string, line, startCol, endCol uint32, msg string) error {
	if startCol < 1 || endCol < startCol {
		return &BadColumnRangeError{Start: startCol, End: endCol}
	}

	src, err := persist.OpenLineSource(path)
	if err != nil {
		return &FileUnreadableError{Path: path, Err: err}
	}
	defer src.Close()

	text, err := src.Line(line)
	if err != nil {
		if errors.Is(err, persist.ErrLineOutOfRange) {
			return &LineOutOfRangeError{Path: path, Line: line, Err: err}
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	header := fmt.Sprintf("%s:%d:%d-%d: error: %s", path, line, startCol, endCol, msg)
	marker := diagfmt.Underline(text, startCol, endCol)
	if r.decorate() {
		header = color.New(color.FgRed, color.Bold).Sprint(header)
		marker = color.New(color.FgRed).Sprint(marker)
	}

	if _, err := fmt.Fprintf(r.out, "%s\n  %s\n  %s\n", header, text, marker); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
