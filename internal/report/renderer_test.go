package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.bas")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReportSingleColumn(t *testing.T) {
	path := writeTestFile(t, "int x = 5\n")

	var buf strings.Builder
	r := NewRenderer(&buf, Options{})
	if err := r.Report(path, 1, 5, 5, "unexpected token"); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], ":1:5-5: error: unexpected token") {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "  int x = 5" {
		t.Errorf("source line = %q", lines[1])
	}
	if lines[2] != "      ^" {
		t.Errorf("marker = %q, want a single caret under column 5", lines[2])
	}
}

func TestReportRange(t *testing.T) {
	path := writeTestFile(t, "first\nfloat ratio = 1.5;\n")

	var buf strings.Builder
	r := NewRenderer(&buf, Options{})
	if err := r.Report(path, 2, 7, 11, "unused variable"); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[2] != "        ^^^^^" {
		t.Errorf("marker = %q, want five carets under columns 7-11", lines[2])
	}
}

func TestReportBadColumnRange(t *testing.T) {
	// the path does not exist; validation must fire before any file access
	var buf strings.Builder
	r := NewRenderer(&buf, Options{})

	err := r.Report("no/such/file.bas", 1, 9, 3, "msg")
	var bad *BadColumnRangeError
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want BadColumnRangeError", err)
	}
	if bad.Start != 9 || bad.End != 3 {
		t.Errorf("range = %d-%d", bad.Start, bad.End)
	}
	if buf.Len() != 0 {
		t.Error("nothing may be written for a rejected range")
	}

	if err := r.Report("no/such/file.bas", 1, 0, 3, "msg"); err == nil {
		t.Error("column zero must be rejected")
	}
}

func TestReportFileUnreadable(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, Options{})

	err := r.Report(filepath.Join(t.TempDir(), "missing.bas"), 1, 1, 1, "msg")
	var unreadable *FileUnreadableError
	if !errors.As(err, &unreadable) {
		t.Fatalf("err = %v, want FileUnreadableError", err)
	}
}

func TestReportLineOutOfRange(t *testing.T) {
	path := writeTestFile(t, "one line\n")

	var buf strings.Builder
	r := NewRenderer(&buf, Options{})

	err := r.Report(path, 7, 1, 1, "msg")
	var oor *LineOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("err = %v, want LineOutOfRangeError", err)
	}
	if oor.Line != 7 {
		t.Errorf("line = %d", oor.Line)
	}
}

func TestDecorationFallbackNoticeOnce(t *testing.T) {
	path := writeTestFile(t, "a\nb\n")

	var buf strings.Builder
	r := NewRenderer(&buf, Options{Decorate: true, Available: false})
	if err := r.Report(path, 1, 1, 1, "first"); err != nil {
		t.Fatal(err)
	}
	if err := r.Report(path, 2, 1, 1, "second"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Error("plain fallback must not emit escape sequences")
	}
	if got := strings.Count(out, "decorated output unavailable"); got != 1 {
		t.Errorf("fallback notice printed %d times, want once", got)
	}
}

func TestReportMultibyteColumns(t *testing.T) {
	// columns are characters, so the two-byte rune shifts nothing
	path := writeTestFile(t, "däta = 1\n")

	var buf strings.Builder
	r := NewRenderer(&buf, Options{})
	if err := r.Report(path, 1, 1, 4, "unused variable"); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[2] != "  ^^^^" {
		t.Errorf("marker = %q, want four carets under the identifier", lines[2])
	}
}
