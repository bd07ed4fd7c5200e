// Package token defines the lexical token kinds of the bassil front end.
// Invariants:
//   - Token.Text is the exact source lexeme: string literals keep their
//     quotes, escape sequences stay unresolved, floats keep the decimal point.
//   - Token.Span matches Text exactly (byte offsets into the original file).
//   - The kind set is closed; every kind has a stable String() name used by
//     the serialized token stream.
//   - Unknown tokens are one character long and never abort the scan.
package token
