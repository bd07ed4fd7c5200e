package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"bassil/internal/diag"
	"bassil/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	  <source line>
//	  <caret marker under the offending columns>
//
// The caller is expected to Sort() the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := prettyOne(w, &d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	sev := severityLabel(d.Severity, opts.Color)

	// diagnostics without a source anchor (unreadable file, stream errors)
	// render as a bare message line
	file := fs.Get(d.Primary.File)
	if file == nil {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return err
	}

	line, startCol, endCol := fs.ResolveInclusive(d.Primary)
	path := displayPath(file.Path, opts.PathMode)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, line, startCol, sev, d.Code.ID(), d.Message); err != nil {
		return err
	}

	src := file.GetLine(line)
	if src != "" {
		marker := Underline(src, startCol, endCol)
		if opts.Color {
			marker = color.New(severityColor(d.Severity)).Sprint(marker)
		}
		if _, err := fmt.Fprintf(w, "  %s\n  %s\n", src, marker); err != nil {
			return err
		}
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nLine, nCol, _ := fs.ResolveInclusive(n.Span)
			if _, err := fmt.Fprintf(w, "  note: %d:%d: %s\n", nLine, nCol, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Underline builds the caret marker for 1-based inclusive character columns.
// The filler is sized by the display width of the runes before the range, so
// the carets align under tabs and wide runes; columns past the end of the
// line pad one cell each. The caret count is always end-start+1.
func Underline(src string, startCol, endCol uint32) string {
	if startCol < 1 {
		startCol = 1
	}
	if endCol < startCol {
		endCol = startCol
	}

	runes := []rune(src)
	pad := 0
	for i := uint32(1); i < startCol; i++ {
		if int(i) <= len(runes) {
			r := runes[i-1]
			if r == '\t' {
				// tabs count one cell since the source line is echoed
				// verbatim right above the marker
				pad++
			} else {
				pad += runewidth.RuneWidth(r)
			}
			continue
		}
		pad++
	}
	carets := int(endCol - startCol + 1)
	return strings.Repeat(" ", pad) + strings.Repeat("^", carets)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	return color.New(severityColor(sev)).Sprint(label)
}

func severityColor(sev diag.Severity) color.Attribute {
	switch sev {
	case diag.SevError:
		return color.FgRed
	case diag.SevWarning:
		return color.FgYellow
	default:
		return color.FgCyan
	}
}
