package lexer

import "sort"

// keywords must stay sorted by word; lookup is a binary search.
var keywords = []struct {
	word string
	tok  TokenType
}{
	{"assign", ASSIGN},
	{"begin", BEGIN},
	{"data", DATA},
	{"end", END},
	{"exit", EXIT},
	{"getter", GETTER},
	{"if", IF},
	{"loop", LOOP},
	{"main", MAIN},
	{"outter", OUTTER},
	{"proc", PROC},
	{"then", THEN},
	{"void", VOID},
	{"while", WHILE},
}

// Lookup returns the keyword kind for ident, or IDENT if it is not reserved.
func Lookup(ident string) TokenType {
	i := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].word >= ident
	})
	if i < len(keywords) && keywords[i].word == ident {
		return keywords[i].tok
	}
	return IDENT
}
