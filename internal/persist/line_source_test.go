package persist

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bas")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLineRetrieval(t *testing.T) {
	path := writeTestFile(t, "first\nsecond\nthird\n")
	src, err := OpenLineSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	cases := []struct {
		n    uint32
		want string
	}{
		{1, "first"},
		{3, "third"},
		{2, "second"},
		{1, "first"}, // going backwards works, retrieval is not sequential
	}
	for _, tc := range cases {
		got, err := src.Line(tc.n)
		if err != nil {
			t.Fatalf("Line(%d): %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestLineOutOfRange(t *testing.T) {
	path := writeTestFile(t, "only\n")
	src, err := OpenLineSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	for _, n := range []uint32{0, 2, 100} {
		if _, err := src.Line(n); !errors.Is(err, ErrLineOutOfRange) {
			t.Errorf("Line(%d) = %v, want ErrLineOutOfRange", n, err)
		}
	}
}

func TestLineNoTrailingNewline(t *testing.T) {
	path := writeTestFile(t, "a\nlast line")
	src, err := OpenLineSource(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	got, err := src.Line(2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "last line" {
		t.Errorf("Line(2) = %q", got)
	}
}

// TestSharedHandlePositionPreserved: a consumer part-way through the file
// must find its offset untouched after a line lookup on the same handle.
func TestSharedHandlePositionPreserved(t *testing.T) {
	path := writeTestFile(t, "aaa\nbbb\nccc\n")
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := make([]byte, 4)
	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatal(err)
	}

	src := NewSeekLineSource(f)
	if _, err := src.Line(3); err != nil {
		t.Fatal(err)
	}

	if _, err := io.ReadFull(f, buf); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "bbb\n" {
		t.Errorf("read after lookup = %q, want %q", buf, "bbb\n")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.jsonl")
	err := WriteFileAtomic(path, func(f *os.File) error {
		_, err := f.WriteString("payload\n")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload\n" {
		t.Errorf("content = %q", data)
	}
	// no temp leftovers
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the artifact, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicCleanupOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	sentinel := errors.New("write failed")
	err := WriteFileAtomic(path, func(*os.File) error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v", err)
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(entries) != 0 {
		t.Errorf("temp file not cleaned up: %v", entries)
	}
}
