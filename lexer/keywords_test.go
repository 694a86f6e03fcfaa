package lexer

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsSorted(t *testing.T) {
	require.True(t, sort.SliceIsSorted(keywords, func(i, j int) bool {
		return keywords[i].word < keywords[j].word
	}), "keyword table must be sorted for binary search")
}

func TestLookup(t *testing.T) {
	for _, kw := range keywords {
		assert.Equal(t, kw.tok, Lookup(kw.word), kw.word)
		assert.Equal(t, "Keyword_"+kw.word, kw.tok.String())
	}

	for _, ident := range []string{"", "a", "zzz", "begin1", "beg", "BEGIN", "mains", "procs", "assig"} {
		assert.Equal(t, IDENT, Lookup(ident), ident)
	}
}
