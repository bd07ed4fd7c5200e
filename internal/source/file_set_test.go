package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.bas", []byte("int x = 5;\nx = 7;"))
	f := fs.Get(id)

	if f.Path != "test.bas" {
		t.Errorf("Path = %q, want test.bas", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}

	// span of "x" on line 2 (offset 11, len 1)
	line, startCol, endCol := fs.ResolveInclusive(Span{File: id, Start: 11, End: 12})
	if line != 2 || startCol != 1 || endCol != 1 {
		t.Errorf("ResolveInclusive = %d:%d-%d, want 2:1-1", line, startCol, endCol)
	}

	// span of "int" on line 1
	line, startCol, endCol = fs.ResolveInclusive(Span{File: id, Start: 0, End: 3})
	if line != 1 || startCol != 1 || endCol != 3 {
		t.Errorf("ResolveInclusive = %d:%d-%d, want 1:1-3", line, startCol, endCol)
	}
}

func TestResolveInclusiveMultibyte(t *testing.T) {
	fs := NewFileSet()
	// "däta" is five bytes, four characters
	id := fs.AddVirtual("test.bas", []byte("däta = 1"))

	line, startCol, endCol := fs.ResolveInclusive(Span{File: id, Start: 0, End: 5})
	if line != 1 || startCol != 1 || endCol != 4 {
		t.Errorf("identifier span = %d:%d-%d, want 1:1-4", line, startCol, endCol)
	}

	// "=" sits at byte 6 but is the sixth character
	line, startCol, endCol = fs.ResolveInclusive(Span{File: id, Start: 6, End: 7})
	if line != 1 || startCol != 6 || endCol != 6 {
		t.Errorf("assign span = %d:%d-%d, want 1:6-6", line, startCol, endCol)
	}
}

func TestGetUnknownID(t *testing.T) {
	fs := NewFileSet()
	if fs.Get(NoFile) != nil {
		t.Error("Get(NoFile) must return nil")
	}
	if fs.Get(0) != nil {
		t.Error("Get on an empty set must return nil")
	}
	fs.AddVirtual("a.bas", []byte("x"))
	if fs.Get(0) == nil {
		t.Error("Get(0) must return the added file")
	}
	if fs.Get(1) != nil {
		t.Error("Get past the last ID must return nil")
	}
}

func TestResolveInclusiveEmptySpan(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.bas", []byte("ab"))
	line, startCol, endCol := fs.ResolveInclusive(Span{File: id, Start: 2, End: 2})
	if line != 1 || startCol != 3 || endCol != 3 {
		t.Errorf("empty span at EOL = %d:%d-%d, want 1:3-3", line, startCol, endCol)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.bas", []byte("first\nsecond\n\nfourth"))
	f := fs.Get(id)

	cases := []struct {
		num  uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, ""},
		{4, "fourth"},
		{5, ""},
	}
	for _, c := range cases {
		if got := f.GetLine(c.num); got != c.want {
			t.Errorf("GetLine(%d) = %q, want %q", c.num, got, c.want)
		}
	}
}

func TestNumLines(t *testing.T) {
	fs := NewFileSet()
	cases := []struct {
		content string
		want    uint32
	}{
		{"", 0},
		{"a", 1},
		{"a\n", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
	}
	for _, c := range cases {
		id := fs.AddVirtual("n.bas", []byte(c.content))
		if got := fs.Get(id).NumLines(); got != c.want {
			t.Errorf("NumLines(%q) = %d, want %d", c.content, got, c.want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.bas")
	if err := os.WriteFile(path, []byte("int a = 1;\r\nint b = 2;"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
	if f.GetLine(2) != "int b = 2;" {
		t.Errorf("GetLine(2) = %q", f.GetLine(2))
	}
}

func TestGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("dir/a.bas", []byte("x"))
	if _, ok := fs.GetByPath("dir/a.bas"); !ok {
		t.Error("expected to find dir/a.bas")
	}
	if _, ok := fs.GetByPath("dir/missing.bas"); ok {
		t.Error("did not expect to find dir/missing.bas")
	}
}
