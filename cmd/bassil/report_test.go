package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportCommandRedirected(t *testing.T) {
	// cobra's output stream is a buffer here, not a terminal; the renderer
	// must probe that stream and stay plain without a fallback notice
	path := filepath.Join(t.TempDir(), "prog.bas")
	if err := os.WriteFile(path, []byte("int x = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	reportCmd.SetOut(&buf)
	defer reportCmd.SetOut(nil)

	if err := runReport(reportCmd, []string{path, "1", "5", "5", "unexpected token"}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		":1:5-5: error: unexpected token",
		"  int x = 5",
		"      ^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("redirected output must not carry escape sequences")
	}
	if strings.Contains(out, "decorated output unavailable") {
		t.Error("no fallback notice expected when decoration was never enabled")
	}
}

func TestWriterIsTerminal(t *testing.T) {
	if writerIsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if writerIsTerminal(w) {
		t.Error("a pipe is not a terminal")
	}
}
