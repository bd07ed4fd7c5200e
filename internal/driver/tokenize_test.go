package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bassil/internal/diag"
	"bassil/internal/source"
	"bassil/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.bas", "int x = 5;\n")

	res, err := Tokenize(path, TokenizeOptions{MaxDiagnostics: 100})
	if err != nil {
		t.Fatal(err)
	}
	if res.ScanErr != nil {
		t.Fatalf("scan error: %v", res.ScanErr)
	}

	want := []token.Kind{token.KwInt, token.Ident, token.Assign, token.IntLit, token.Semicolon}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Errorf("token %d = %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
	if res.Bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %d", res.Bag.Len())
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "absent.bas"), TokenizeOptions{})
	if err == nil {
		t.Fatal("expected load error")
	}
}

func TestTokenizeStringPartialOnFatal(t *testing.T) {
	res := TokenizeString("snippet.bas", `int s = "open`, TokenizeOptions{MaxDiagnostics: 10})

	if res.ScanErr == nil {
		t.Fatal("expected a fatal scan error")
	}
	if len(res.Tokens) != 3 {
		t.Fatalf("partial tokens lost: got %d, want 3", len(res.Tokens))
	}
	if !res.Bag.HasErrors() {
		t.Error("the fatal condition must appear in the bag too")
	}
}

func TestTokenizeStringCollectsWarnings(t *testing.T) {
	res := TokenizeString("warn.bas", "3.14.15 @", TokenizeOptions{MaxDiagnostics: 10})

	if res.ScanErr != nil {
		t.Fatalf("unexpected fatal: %v", res.ScanErr)
	}
	if got := res.Bag.Len(); got != 2 {
		t.Errorf("diagnostics = %d, want 2 (bad number, unknown char)", got)
	}
}

func TestTokenizeFilesParallel(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.bas", "int a;\n")
	writeSource(t, dir, "b.bas", "float b = 1.5;\n")
	writeSource(t, dir, "c.bas", "@\n")

	paths, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("found %d files, want 3", len(paths))
	}

	_, results, err := TokenizeFiles(context.Background(), paths, 2, TokenizeOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}

	// input order preserved
	if filepath.Base(results[0].Path) != "a.bas" || filepath.Base(results[2].Path) != "c.bas" {
		t.Errorf("result order: %s, %s, %s", results[0].Path, results[1].Path, results[2].Path)
	}
	if len(results[0].Tokens) != 3 {
		t.Errorf("a.bas tokens = %d, want 3", len(results[0].Tokens))
	}
	if results[2].Bag.Len() == 0 {
		t.Error("c.bas should carry an unknown-character diagnostic")
	}
}

func TestTokenizeFilesLoadFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.bas", "int g;\n")
	missing := filepath.Join(dir, "gone.bas")

	_, results, err := TokenizeFiles(context.Background(), []string{good, missing}, 0, TokenizeOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}
	if results[0].Bag.HasErrors() {
		t.Error("good file must not carry errors")
	}
	if !results[1].Bag.HasErrors() {
		t.Fatal("missing file must carry an IO diagnostic")
	}
	if results[1].Bag.Items()[0].Code != diag.IOFileUnreadable {
		t.Errorf("code = %v", results[1].Bag.Items()[0].Code)
	}
	// the diagnostic has no source anchor, so it must not point at file 0
	if results[1].FileID != source.NoFile {
		t.Errorf("FileID = %v, want NoFile", results[1].FileID)
	}
	if results[1].Bag.Items()[0].Primary.File != source.NoFile {
		t.Errorf("diagnostic file = %v, want NoFile", results[1].Bag.Items()[0].Primary.File)
	}
}
