package lexer

import (
	"unicode/utf8"

	"bassil/internal/diag"
	"bassil/internal/token"
)

// scanOperatorOrPunct matches greedily: two-character operators first, then
// the one-character set. Anything else becomes a single Unknown token; the
// scan never stops on an unrecognized character.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: lx.lexeme(sp),
		}
	}

	switch {
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	}

	ch := lx.cursor.Peek()
	if ch >= utf8RuneSelf {
		// an unrecognized multi-byte rune is one Unknown token, not one per byte
		_, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
		for range sz {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.warn(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Unknown, Span: sp, Text: lx.lexeme(sp)}
	}

	lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.warn(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Unknown, Span: sp, Text: lx.lexeme(sp)}
	}
}
