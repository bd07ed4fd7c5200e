package token

var keywords = map[string]Kind{
	"int":    KwInt,
	"char":   KwChar,
	"float":  KwFloat,
	"string": KwString,
}

// LookupKeyword returns the keyword kind for an identifier lexeme, if any.
// Keywords are case-sensitive; only the lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
