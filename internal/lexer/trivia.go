package lexer

// skipTrivia consumes everything between significant tokens: spaces, tabs,
// carriage returns, newlines, and // line comments. Line and column
// bookkeeping is positional (byte spans resolved against the file's newline
// index), so nothing is recorded here.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' || b == '\n' {
			lx.cursor.Bump()
			continue
		}

		// "//" comment runs to end of line; a lone '/' is the division
		// operator and stays for the operator scanner
		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
				continue
			}
		}

		break
	}
}
