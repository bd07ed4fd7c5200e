package source

import (
	"path/filepath"
	"slices"
	"unicode/utf8"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the new slice and whether anything changed.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// buildLineIndex records the byte offset of every \n in content.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// lineStart locates the 1-based line containing off and the byte offset of
// that line's first byte.
func lineStart(lineIdx []uint32, off uint32) (line, startOff uint32) {
	if len(lineIdx) == 0 {
		return 1, 0
	}

	// binary search: largest lineIdx[i] <= off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	// off precedes the first newline
	if hi < 0 {
		return 1, 0
	}
	return uint32(hi + 2), lineIdx[hi] + 1
}

// toLineCol resolves a byte offset to a line and 1-based column. Columns
// count characters of the line, not bytes, so a multi-byte rune advances the
// column by one. A newline byte resolves to column 0 of the following line.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	line, startOff := lineStart(lineIdx, off)

	// only the newline byte itself sits before its line's start
	if off < startOff {
		return LineCol{Line: line, Col: 0}
	}
	if lim := uint32(len(content)); off > lim {
		off = lim
	}
	col := uint32(utf8.RuneCount(content[startOff:off])) + 1
	return LineCol{Line: line, Col: col}
}

func normalizePath(p string) string {
	// one canonical shape for cross-platform diffs
	return filepath.ToSlash(filepath.Clean(p))
}
