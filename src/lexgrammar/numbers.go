package lexgrammar

import (
	"strconv"

	"github.com/JarvisCraft/javac-rs/src/ast"
)

// scanNumber is the combined int/long/float/double rule: prefix
// dispatch (0x/0X hex, 0b/0B binary, leading 0 octal-or-decimal,
// otherwise decimal), then significand/exponent/suffix composition
// (spec §4.7 "significand composition", "exponent composition").
func scanNumber(c *cursor) (ast.Literal, int, error) {
	start := c.mark()
	if c.peek() == '0' && (c.peekAt(1) == 'x' || c.peekAt(1) == 'X') {
		return scanHexNumber(c, start)
	}
	if c.peek() == '0' && (c.peekAt(1) == 'b' || c.peekAt(1) == 'B') {
		return scanBinaryNumber(c, start)
	}
	if !isDecDigit(c.peek()) && !(c.peek() == '.' && isDecDigit(c.peekAt(1))) {
		return ast.Literal{}, 0, errAt(start, "expected a digit")
	}
	return scanDecimalOrOctalNumber(c, start)
}

func scanBinaryNumber(c *cursor, start int) (ast.Literal, int, error) {
	c.advance()
	c.advance()
	digits := scanDigits(c, isBinDigit)
	suffix := consumeIntegerSuffix(c)
	return finishInteger(digits, 2, suffix, start, c.mark())
}

func scanDecimalOrOctalNumber(c *cursor, start int) (ast.Literal, int, error) {
	leadingZero := c.peek() == '0'
	intPart := scanDigits(c, isDecDigit)

	hasDot := false
	fracPart := ""
	if c.peek() == '.' {
		hasDot = true
		c.advance()
		fracPart = scanDigits(c, isDecDigit)
		if intPart == "" && fracPart == "" {
			return ast.Literal{}, 0, errAt(start, "floating-point literal has no digits")
		}
	}

	hasExp := false
	expText := ""
	if c.peek() == 'e' || c.peek() == 'E' {
		hasExp = true
		c.advance()
		sign := ""
		if c.peek() == '+' || c.peek() == '-' {
			sign = string(c.advance())
		}
		expDigits := scanDigits(c, isDecDigit)
		if expDigits == "" {
			return ast.Literal{}, 0, errAt(c.mark(), "exponent has no digits")
		}
		expText = sign + expDigits
	}

	if hasDot || hasExp {
		return finishDecimalFloat(c, start, intPart, fracPart, hasDot, hasExp, expText)
	}
	if isFloatSuffix(c.peek()) {
		suffix := c.advance()
		return finishFloatFromText(intPart, suffix, start, c.mark())
	}

	suffix := consumeIntegerSuffix(c)
	if leadingZero && len(intPart) > 1 {
		for i := 1; i < len(intPart); i++ {
			if !isOctDigit(intPart[i]) {
				return ast.Literal{}, 0, causedErrAt(start, ErrDigitOutOfRange)
			}
		}
		return finishInteger(intPart[1:], 8, suffix, start, c.mark())
	}
	return finishInteger(intPart, 10, suffix, start, c.mark())
}

func scanHexNumber(c *cursor, start int) (ast.Literal, int, error) {
	c.advance()
	c.advance()
	intPart := scanDigits(c, isHexDigit)

	hasDot := false
	fracPart := ""
	if c.peek() == '.' {
		hasDot = true
		c.advance()
		fracPart = scanDigits(c, isHexDigit)
		if intPart == "" && fracPart == "" {
			return ast.Literal{}, 0, errAt(start, "hex floating-point literal has no digits")
		}
	}

	if c.peek() == 'p' || c.peek() == 'P' {
		c.advance()
		sign := ""
		if c.peek() == '+' || c.peek() == '-' {
			sign = string(c.advance())
		}
		expDigits := scanDigits(c, isDecDigit)
		if expDigits == "" {
			return ast.Literal{}, 0, errAt(c.mark(), "hex exponent has no digits")
		}
		suffix := byte(0)
		if isFloatSuffix(c.peek()) {
			suffix = c.advance()
		}
		text := "0x" + intPart + "." + fracPart + "p" + sign + expDigits
		return finishFloatFromText(text, suffix, start, c.mark())
	}
	if hasDot {
		return ast.Literal{}, 0, errAt(start, "hex floating-point literal requires a binary exponent")
	}

	suffix := consumeIntegerSuffix(c)
	return finishInteger(intPart, 16, suffix, start, c.mark())
}

func isFloatSuffix(b byte) bool { return b == 'f' || b == 'F' || b == 'd' || b == 'D' }

func consumeIntegerSuffix(c *cursor) byte {
	if c.peek() == 'l' || c.peek() == 'L' {
		return c.advance()
	}
	return 0
}

func finishDecimalFloat(c *cursor, start int, intPart, fracPart string, hasDot, hasExp bool, expText string) (ast.Literal, int, error) {
	suffix := byte(0)
	if isFloatSuffix(c.peek()) {
		suffix = c.advance()
	}
	text := intPart
	if hasDot {
		text += "." + fracPart
	}
	if hasExp {
		text += "e" + expText
	}
	return finishFloatFromText(text, suffix, start, c.mark())
}

func finishFloatFromText(text string, suffix byte, start, end int) (ast.Literal, int, error) {
	bitSize := 64
	if suffix == 'f' || suffix == 'F' {
		bitSize = 32
	}
	v, err := strconv.ParseFloat(text, bitSize)
	if err != nil {
		return ast.Literal{}, 0, errAt(start, "invalid floating-point literal: %v", err)
	}
	if bitSize == 32 {
		return ast.NewFloatLiteral(float32(v)), end - start, nil
	}
	return ast.NewDoubleLiteral(v), end - start, nil
}

func finishInteger(digits string, radix int, suffix byte, start, end int) (ast.Literal, int, error) {
	isLong := suffix == 'l' || suffix == 'L'
	bitWidth := 32
	if isLong {
		bitWidth = 64
	}
	v, err := parseUnsigned(digits, radix, maxUnsignedForRadix(radix, bitWidth))
	if err != nil {
		return ast.Literal{}, 0, causedErrAt(start, err)
	}
	if isLong {
		return ast.NewLongLiteral(int64(v)), end - start, nil
	}
	return ast.NewIntLiteral(int32(uint32(v))), end - start, nil
}

// ParseIntLiteral matches a decimal/hex/octal/binary int literal.
func ParseIntLiteral(s string) (ast.Expression, int, error) {
	c := newCursor(s)
	lit, n, err := scanNumber(c)
	if err != nil {
		return ast.Expression{}, 0, err
	}
	if lit.Kind() != ast.LiteralInt {
		return ast.Expression{}, 0, errAt(0, "not an int literal")
	}
	return ast.NewLiteralExpression(lit), n, nil
}

// ParseLongLiteral matches a decimal/hex/octal/binary long literal
// (requires the L/l suffix, as Java has no other way to denote one).
func ParseLongLiteral(s string) (ast.Expression, int, error) {
	c := newCursor(s)
	lit, n, err := scanNumber(c)
	if err != nil {
		return ast.Expression{}, 0, err
	}
	if lit.Kind() != ast.LiteralLong {
		return ast.Expression{}, 0, errAt(0, "not a long literal")
	}
	return ast.NewLiteralExpression(lit), n, nil
}

// ParseFloatLiteral matches a decimal or hex float literal (requires
// the f/F suffix).
func ParseFloatLiteral(s string) (ast.Expression, int, error) {
	c := newCursor(s)
	lit, n, err := scanNumber(c)
	if err != nil {
		return ast.Expression{}, 0, err
	}
	if lit.Kind() != ast.LiteralFloat {
		return ast.Expression{}, 0, errAt(0, "not a float literal")
	}
	return ast.NewLiteralExpression(lit), n, nil
}

// ParseDoubleLiteral matches a decimal or hex double literal (the
// default floating kind when no f/F suffix is present).
func ParseDoubleLiteral(s string) (ast.Expression, int, error) {
	c := newCursor(s)
	lit, n, err := scanNumber(c)
	if err != nil {
		return ast.Expression{}, 0, err
	}
	if lit.Kind() != ast.LiteralDouble {
		return ast.Expression{}, 0, errAt(0, "not a double literal")
	}
	return ast.NewLiteralExpression(lit), n, nil
}
