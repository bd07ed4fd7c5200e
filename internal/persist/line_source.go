// Package persist covers the on-disk side of the pipeline: reading single
// lines out of shared file handles and writing token stream artifacts.
package persist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// LineSource yields one line of text by 1-based line number, without the
// trailing newline.
type LineSource interface {
	Line(n uint32) (string, error)
}

// ErrLineOutOfRange marks a request past the last line (or line zero).
var ErrLineOutOfRange = errors.New("line number out of range")

const maxLineBytes = 1 << 20

// SeekLineSource reads lines from a shared handle without disturbing it: the
// current offset is saved before the scan and restored on every return path,
// so other consumers of the same handle keep their position.
type SeekLineSource struct {
	rs io.ReadSeeker
}

func NewSeekLineSource(rs io.ReadSeeker) *SeekLineSource {
	return &SeekLineSource{rs: rs}
}

func (s *SeekLineSource) Line(n uint32) (line string, err error) {
	if n == 0 {
		return "", fmt.Errorf("%w: 0", ErrLineOutOfRange)
	}

	saved, err := s.rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", fmt.Errorf("save position: %w", err)
	}
	defer func() {
		if _, seekErr := s.rs.Seek(saved, io.SeekStart); seekErr != nil && err == nil {
			err = fmt.Errorf("restore position: %w", seekErr)
		}
	}()

	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind: %w", err)
	}

	sc := bufio.NewScanner(s.rs)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var cur uint32
	for sc.Scan() {
		cur++
		if cur == n {
			return sc.Text(), nil
		}
	}
	if scanErr := sc.Err(); scanErr != nil {
		return "", fmt.Errorf("scan: %w", scanErr)
	}
	return "", fmt.Errorf("%w: %d (input has %d)", ErrLineOutOfRange, n, cur)
}

// FileLineSource is a SeekLineSource over a file it owns.
type FileLineSource struct {
	f *os.File
	SeekLineSource
}

// OpenLineSource opens path for line retrieval. The caller must Close it.
func OpenLineSource(path string) (*FileLineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileLineSource{f: f, SeekLineSource: SeekLineSource{rs: f}}, nil
}

func (s *FileLineSource) Close() error {
	return s.f.Close()
}
