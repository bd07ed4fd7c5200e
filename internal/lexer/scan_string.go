package lexer

import (
	"bassil/internal/diag"
	"bassil/internal/token"
)

// scanString scans a double-quoted literal. A backslash escapes the
// following character; both bytes are consumed and the escape is kept
// unresolved in Token.Text (validity of the escape is not this layer's
// concern). The literal must close on its own line: a newline or the end of
// input before the closing quote is the scan's one fatal condition.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.trace("scanString", "start")
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.lexeme(sp)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}

	// no closing quote: abort the scan, keep everything lexed so far
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	lx.fatal = &UnterminatedStringError{
		Path: lx.file.Path,
		Pos:  lx.file.Pos(sp.Start),
	}
	return token.Token{Kind: token.EOF, Span: lx.emptySpan(), Text: ""}
}
