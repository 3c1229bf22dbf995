package token

var keywords = map[string]Kind{
	"let":         KwLet,
	"function":    KwFunction,
	"class":       KwClass,
	"constructor": KwConstructor,
	"return":      KwReturn,
	"instanceof":  KwInstanceof,
	"true":        KwTrue,
	"false":       KwFalse,
	"null":        KwNull,
	"undefined":   KwUndefined,
}

// LookupKeyword returns the keyword kind for ident, if any. Keywords are
// case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
