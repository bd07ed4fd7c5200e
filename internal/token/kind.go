package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown marks a character the scanner could not classify. It is
	// always one character long and never aborts the scan.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwInt represents the 'int' type keyword.
	KwInt // int
	// KwChar represents the 'char' type keyword.
	KwChar // char
	// KwFloat represents the 'float' type keyword.
	KwFloat // float
	// KwString represents the 'string' type keyword.
	KwString // string

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token, quotes included.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %

	// Assign represents the equals-sign token.
	Assign // =
	// EqEq represents the equality comparison token.
	EqEq // ==
	// BangEq represents the inequality comparison token.
	BangEq // !=
	// Lt represents the less-than comparison token.
	Lt // <
	// LtEq represents the less-or-equal comparison token.
	LtEq // <=
	// Gt represents the greater-than comparison token.
	Gt // >
	// GtEq represents the greater-or-equal comparison token.
	GtEq // >=

	// AndAnd represents the logical-and token.
	AndAnd // &&
	// OrOr represents the logical-or token.
	OrOr // ||
	// Bang represents the logical-not token.
	Bang // !

	// Semicolon represents the ';' token.
	Semicolon // ;
	// Comma represents the ',' token.
	Comma // ,
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
)

// kindNames are the stable serialization names of each kind. They appear in
// the token stream output and must not change between releases.
var kindNames = [...]string{
	Unknown:   "Unknown",
	EOF:       "EOF",
	Ident:     "Identifier",
	KwInt:     "TypeInteger",
	KwChar:    "TypeChar",
	KwFloat:   "TypeFloat",
	KwString:  "TypeString",
	IntLit:    "Integer",
	FloatLit:  "Float",
	StringLit: "String",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Assign:    "EqualsSign",
	EqEq:      "EqualEqual",
	BangEq:    "BangEqual",
	Lt:        "Less",
	LtEq:      "LessEqual",
	Gt:        "Greater",
	GtEq:      "GreaterEqual",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	Bang:      "Bang",
	Semicolon: "Semicolon",
	Comma:     "Comma",
	LParen:    "LeftParen",
	RParen:    "RightParen",
	LBrace:    "LeftBrace",
	RBrace:    "RightBrace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsTypeKeyword reports whether the kind is one of the typed keywords.
func (k Kind) IsTypeKeyword() bool {
	switch k {
	case KwInt, KwChar, KwFloat, KwString:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the kind is a numeric or string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsMathOperator reports whether the kind is an arithmetic operator.
func (k Kind) IsMathOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent:
		return true
	default:
		return false
	}
}

// IsComparisonOperator reports whether the kind is a comparison operator.
func (k Kind) IsComparisonOperator() bool {
	switch k {
	case EqEq, BangEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// IsLogicalOperator reports whether the kind is a logical operator.
func (k Kind) IsLogicalOperator() bool {
	switch k {
	case AndAnd, OrOr, Bang:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the kind is punctuation.
func (k Kind) IsPunct() bool {
	switch k {
	case Semicolon, Comma, LParen, RParen, LBrace, RBrace:
		return true
	default:
		return false
	}
}
