package lexgrammar

// Digit classes and digit-separator handling (spec §4.7: "digit
// classes, digit separators (_)").

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }

func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinDigit(b byte) bool { return b == '0' || b == '1' }

func isHexDigit(b byte) bool {
	return isDecDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentifierStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) || isDecDigit(b)
}

// digitValue returns b's value as a hex digit (0-15), or -1 if b is not
// a hex digit at all; whether the value is in range for a given radix is
// the caller's business via parseUnsigned's own check.
func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return -1
	}
}

// scanDigits consumes a maximal run of digit-or-underscore bytes
// accepted by accept, stripping underscores from the returned text.
// Consecutive or trailing underscores are tolerated here; the only
// thing that matters downstream is whether any digit was found at all,
// which parseUnsigned's ErrNoDigits already covers.
func scanDigits(c *cursor, accept func(byte) bool) string {
	var out []byte
	for !c.eof() {
		b := c.peek()
		if b == '_' {
			c.advance()
			continue
		}
		if !accept(b) {
			break
		}
		out = append(out, b)
		c.advance()
	}
	return string(out)
}
