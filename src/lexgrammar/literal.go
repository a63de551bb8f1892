package lexgrammar

import "github.com/JarvisCraft/javac-rs/src/ast"

// ParseNullLiteral matches the literal keyword `null`.
func ParseNullLiteral(s string) (ast.Expression, int, error) {
	return matchWord(s, "null", ast.NewLiteralExpression(ast.NewNullLiteral()))
}

// ParseBooleanLiteral matches `true` or `false`.
func ParseBooleanLiteral(s string) (ast.Expression, int, error) {
	if expr, n, err := matchWord(s, "true", ast.NewLiteralExpression(ast.NewBooleanLiteral(true))); err == nil {
		return expr, n, nil
	}
	return matchWord(s, "false", ast.NewLiteralExpression(ast.NewBooleanLiteral(false)))
}

// matchWord matches word literally, requiring a negative lookahead of
// an identifier-continuation character (null/true/false are literals,
// not keywords, but share the same prefix-boundary rule: "nullable"
// must not match "null").
func matchWord(s, word string, expr ast.Expression) (ast.Expression, int, error) {
	n := len(word)
	if len(s) < n || s[:n] != word {
		return ast.Expression{}, 0, errAt(0, "expected %q", word)
	}
	if n < len(s) && isIdentifierPart(s[n]) {
		return ast.Expression{}, 0, errAt(0, "expected %q", word)
	}
	return expr, n, nil
}

// ParseLiteral is the combined literal rule (spec §6.3): it tries, in
// order, null, boolean, char, then the shared numeric scanner which
// itself disambiguates among int/long/float/double. Numeric forms are
// tried last since null/true/false/'...' all have an unambiguous first
// byte, while numbers require the most backtracking.
func ParseLiteral(s string) (ast.Expression, int, error) {
	if expr, n, err := ParseNullLiteral(s); err == nil {
		return expr, n, nil
	}
	if expr, n, err := ParseBooleanLiteral(s); err == nil {
		return expr, n, nil
	}
	if len(s) > 0 && s[0] == '\'' {
		return ParseCharLiteral(s)
	}
	c := newCursor(s)
	lit, n, err := scanNumber(c)
	if err != nil {
		return ast.Expression{}, 0, err
	}
	return ast.NewLiteralExpression(lit), n, nil
}
