package lexgrammar

import "github.com/JarvisCraft/javac-rs/src/ast"

// ParseComment matches a line comment (`//` up to but not past the line
// terminator or end of input) or a block comment (`/*` up to and
// including the first `*/`; nesting is not supported, per spec §4.7).
func ParseComment(s string) (ast.Expression, int, error) {
	if len(s) < 2 || s[0] != '/' {
		return ast.Expression{}, 0, errAt(0, "expected a comment")
	}
	switch s[1] {
	case '/':
		n := 2
		for n < len(s) && s[n] != '\n' && s[n] != '\r' {
			n++
		}
		return ast.NewCommentExpression(ast.NewComment(ast.CommentLine, s[2:n])), n, nil
	case '*':
		end := indexOfCloseComment(s, 2)
		if end < 0 {
			return ast.Expression{}, 0, errAt(0, "unterminated block comment")
		}
		return ast.NewCommentExpression(ast.NewComment(ast.CommentBlock, s[2:end])), end + 2, nil
	default:
		return ast.Expression{}, 0, errAt(0, "expected a comment")
	}
}

func indexOfCloseComment(s string, from int) int {
	for i := from; i+1 < len(s); i++ {
		if s[i] == '*' && s[i+1] == '/' {
			return i
		}
	}
	return -1
}
