package token

var keywords = map[string]Kind{
	"let":    KwLet,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
	"null":   KwNull,
}

// LookupKeyword maps an identifier spelling to its keyword kind,
// or Ident when the spelling is not reserved.
func LookupKeyword(s string) Kind {
	if k, ok := keywords[s]; ok {
		return k
	}
	return Ident
}
