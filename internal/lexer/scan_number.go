package lexer

import (
	"bassil/internal/diag"
	"bassil/internal/token"
)

// scanNumber scans a decimal run: digits with at most one decimal point.
// A second decimal point ends the run; it is reported through the Reporter
// but the token already consumed stays valid, so the scan resumes exactly at
// the second point (which then lexes on its own). "3.14.15" therefore yields
// Float("3.14") plus a diagnostic.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	lx.trace("scanNumber", "start")

	kind := token.IntLit

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fractional part: a single '.', digits optional ("1." is a float)
	if lx.cursor.Peek() == '.' {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)

	// a second decimal point right after the run is a malformed literal
	if kind == token.FloatLit && lx.cursor.Peek() == '.' {
		dotSpan := lx.emptySpan()
		dotSpan.End++
		lx.warn(diag.LexBadNumber, dotSpan, "second decimal point in numeric literal")
	}

	return token.Token{Kind: kind, Span: sp, Text: lx.lexeme(sp)}
}
