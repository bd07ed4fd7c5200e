package lexer

import (
	"fmt"

	"bassil/internal/source"
	"bassil/internal/token"
)

// Lexer scans one file in a single forward pass. It holds no state between
// files; construct a new Lexer per input.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer
	fatal  error        // set once; afterwards Next yields only EOF
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// UnterminatedStringError is the one fatal scan condition: a string literal
// still open when the input (or its line) ends. It aborts the scan; tokens
// produced before the failure remain valid.
type UnterminatedStringError struct {
	Path string
	Pos  source.LineCol
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("%s:%d:%d: unterminated string literal", e.Path, e.Pos.Line, e.Pos.Col)
}

// Err returns the fatal error that stopped the scan, or nil.
func (lx *Lexer) Err() error {
	return lx.fatal
}

// Next returns the next significant token. After EOF, or after a fatal
// error, it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.fatal != nil {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Text: ""}
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Text: ""}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// possible Unicode identifier; scanIdentOrKeyword sorts it out
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) lexeme(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
