package lexgrammar

import "github.com/JarvisCraft/javac-rs/src/ast"

// ParseIdentifier matches a letter/underscore/dollar followed by any
// number of letters/digits/underscore/dollar, provided the whole match
// is not a keyword (spec §4.7 "Identifier": "enforced by a not-predicate
// over the keyword rule").
func ParseIdentifier(s string) (ast.Expression, int, error) {
	if len(s) == 0 || !isIdentifierStart(s[0]) {
		return ast.Expression{}, 0, errAt(0, "expected an identifier")
	}
	n := 1
	for n < len(s) && isIdentifierPart(s[n]) {
		n++
	}
	if _, kwLen, err := ParseKeyword(s); err == nil && kwLen == n {
		return ast.Expression{}, 0, errAt(0, "identifier matches a keyword")
	}
	return ast.NewIdentifierExpression(s[:n]), n, nil
}
