package token

import (
	"bassil/internal/source"
)

// Token represents a single source token. Text is the exact lexeme: string
// literals keep their quotes and escapes unresolved, floats keep the decimal
// point. Tokens are produced once by a scan and never mutated.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a typed keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsTypeKeyword() }

// IsOperator reports whether the token is an operator of any category or the
// equals sign.
func (t Token) IsOperator() bool {
	return t.Kind.IsMathOperator() || t.Kind.IsComparisonOperator() ||
		t.Kind.IsLogicalOperator() || t.Kind == Assign
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
