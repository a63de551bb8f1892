package lexgrammar

import (
	"sort"

	"github.com/JarvisCraft/javac-rs/src/ast"
)

// keywordTable lists every reserved word longest-spelling-first (spec
// §4.7 "Keyword recognition": "longer-prefix keywords ordered before
// their shorter prefixes (double before do, finally before final,
// interface before int, throws before throw)"), built once from
// ast.Keywords() rather than hand-duplicated here.
var keywordTable = buildKeywordTable()

type keywordEntry struct {
	spelling string
	keyword  ast.Keyword
}

func buildKeywordTable() []keywordEntry {
	spellings := ast.Keywords()
	entries := make([]keywordEntry, 0, len(spellings))
	for k, s := range spellings {
		entries = append(entries, keywordEntry{spelling: s, keyword: k})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].spelling) != len(entries[j].spelling) {
			return len(entries[i].spelling) > len(entries[j].spelling)
		}
		return entries[i].spelling < entries[j].spelling
	})
	return entries
}

// ParseKeyword matches one of the 50 reserved words, requiring a
// negative lookahead of an identifier-continuation character so it
// never matches a keyword's prefix inside a longer identifier (spec
// §8 boundary: "integer is not int").
func ParseKeyword(s string) (ast.Expression, int, error) {
	for _, entry := range keywordTable {
		n := len(entry.spelling)
		if len(s) < n || s[:n] != entry.spelling {
			continue
		}
		if n < len(s) && isIdentifierPart(s[n]) {
			continue
		}
		return ast.NewKeywordExpression(entry.keyword), n, nil
	}
	return ast.Expression{}, 0, errAt(0, "not a keyword")
}
