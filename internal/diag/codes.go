package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified findings.
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Reporting / IO
	IOInfo           Code = 4000
	IOFileUnreadable Code = 4001
	IOLineOutOfRange Code = 4002
	IOStream         Code = 4003
	IOBadColumnRange Code = 4004
)

// ID returns the stable printable identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) String() string {
	switch c {
	case LexInfo:
		return "lexical note"
	case LexUnknownChar:
		return "unknown character"
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexBadNumber:
		return "malformed numeric literal"
	case IOInfo:
		return "io note"
	case IOFileUnreadable:
		return "file unreadable"
	case IOLineOutOfRange:
		return "line out of range"
	case IOStream:
		return "stream error"
	case IOBadColumnRange:
		return "invalid column range"
	}
	return "unknown"
}
