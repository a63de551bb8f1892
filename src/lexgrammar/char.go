package lexgrammar

import (
	"github.com/JarvisCraft/javac-rs/src/ast"
	"github.com/JarvisCraft/javac-rs/src/javatypes"
)

var simpleEscapes = map[byte]javatypes.JChar{
	'b':  0x08,
	't':  0x09,
	'n':  0x0A,
	'f':  0x0C,
	'r':  0x0D,
	'"':  0x22,
	'\'': 0x27,
	'\\': 0x5C,
}

// scanCharBody matches one character literal's payload (everything
// between the quotes, but not the quotes themselves): a plain byte, a
// simple escape, an octal escape (1-3 octal digits; if three, the
// first must be 0-3 per JVMS/JLS), or a \uXXXX Unicode escape.
func scanCharBody(c *cursor) (javatypes.JChar, error) {
	start := c.mark()
	if c.eof() {
		return 0, errAt(start, "unterminated character literal")
	}
	if c.peek() != '\\' {
		return javatypes.JChar(c.advance()), nil
	}
	c.advance()
	if c.eof() {
		return 0, errAt(start, "unterminated escape sequence")
	}
	b := c.peek()
	if esc, ok := simpleEscapes[b]; ok {
		c.advance()
		return esc, nil
	}
	if b == 'u' {
		c.advance()
		var v javatypes.JChar
		for i := 0; i < 4; i++ {
			if !isHexDigit(c.peek()) {
				return 0, errAt(c.mark(), "\\u escape requires exactly four hex digits")
			}
			v = v<<4 | javatypes.JChar(digitValue(c.advance()))
		}
		return v, nil
	}
	if isOctDigit(b) {
		digits := []byte{c.advance()}
		for len(digits) < 3 && isOctDigit(c.peek()) {
			digits = append(digits, c.advance())
		}
		if len(digits) == 3 && digits[0] > '3' {
			return 0, causedErrAt(start, ErrDigitOutOfRange)
		}
		v, err := parseUnsigned(string(digits), 8, 0xFF)
		if err != nil {
			return 0, causedErrAt(start, err)
		}
		return javatypes.JChar(v), nil
	}
	return 0, errAt(start, "unrecognized escape sequence")
}

// ParseCharLiteral matches a quoted char literal, e.g. 'a', '\n', or
// an octal/\u escape.
func ParseCharLiteral(s string) (ast.Expression, int, error) {
	c := newCursor(s)
	start := c.mark()
	if c.peek() != '\'' {
		return ast.Expression{}, 0, errAt(start, "expected opening quote")
	}
	c.advance()
	v, err := scanCharBody(c)
	if err != nil {
		return ast.Expression{}, 0, err
	}
	if c.peek() != '\'' {
		return ast.Expression{}, 0, errAt(c.mark(), "expected closing quote")
	}
	c.advance()
	return ast.NewLiteralExpression(ast.NewCharLiteral(v)), c.mark() - start, nil
}
