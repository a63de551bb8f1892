package lexgrammar

import (
	"errors"
	"math"
)

// The original javac-rs-parser/src/parser/literals.rs distinguishes
// three numeric-literal failure causes under one error type rather than
// collapsing to one "bad literal" error (spec supplement #7); these
// three sentinels preserve that split.
var (
	ErrNoDigits        = errors.New("lexgrammar: no digits after radix prefix")
	ErrDigitOutOfRange = errors.New("lexgrammar: digit out of range for radix")
	ErrOverflow        = errors.New("lexgrammar: numeric literal overflows its target width")
)

// maxUnsignedForRadix returns the largest unsigned value a literal of
// the given radix and target bit width may carry (spec §4.7 "Numeric
// conversion"). Decimal literals are only permitted up to 2^(width-1)
// (the JLS's Integer.MIN_VALUE/Long.MIN_VALUE bare-literal carve-out);
// hex, binary, and octal literals allow the full unsigned range.
func maxUnsignedForRadix(radix, bitWidth int) uint64 {
	if radix == 10 {
		return uint64(1) << (bitWidth - 1)
	}
	if bitWidth >= 64 {
		return math.MaxUint64
	}
	return uint64(1)<<bitWidth - 1
}

// parseUnsigned converts digits (already stripped of separators) under
// radix into its unsigned value, failing with ErrNoDigits,
// ErrDigitOutOfRange, or ErrOverflow as appropriate.
func parseUnsigned(digits string, radix int, maxVal uint64) (uint64, error) {
	if len(digits) == 0 {
		return 0, ErrNoDigits
	}
	r := uint64(radix)
	var val uint64
	for i := 0; i < len(digits); i++ {
		d := digitValue(digits[i])
		if d < 0 || uint64(d) >= r {
			return 0, ErrDigitOutOfRange
		}
		if val > (math.MaxUint64-uint64(d))/r {
			return 0, ErrOverflow
		}
		val = val*r + uint64(d)
		if val > maxVal {
			return 0, ErrOverflow
		}
	}
	return val, nil
}
