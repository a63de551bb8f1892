package javatypes

// Primitive-name aliases for Java's fixed-width numeric types (spec §3).
// These exist purely so the rest of the module can read "JByte"/"JChar"/
// etc. instead of reasoning about which Go built-in type backs each one;
// nothing here changes the underlying representation.
type (
	// JByte is Java's signed 8-bit integer.
	JByte = int8
	// JShort is Java's signed 16-bit integer.
	JShort = int16
	// JChar is Java's unsigned 16-bit integer (not a Go rune: Java chars
	// are UTF-16 code units, never full Unicode scalar values).
	JChar = uint16
	// JInt is Java's signed 32-bit integer.
	JInt = int32
	// JLong is Java's signed 64-bit integer.
	JLong = int64
	// JFloat is IEEE 754 binary32.
	JFloat = float32
	// JDouble is IEEE 754 binary64.
	JDouble = float64
	// JBoolean is Java's 1-bit logical type.
	JBoolean = bool
)

// Numeric conversion boundaries of the literal grammar (spec §4.7,
// §8). Expressed as the unsigned twin's max value, since int/long
// literals are parsed as unsigned and then reinterpreted. src/lexgrammar
// computes the same bounds itself (maxUnsignedForRadix) and does not
// read these constants.
const (
	MaxUint32AsLiteral = uint64(1)<<32 - 1
	MaxUint64AsLiteral = ^uint64(0)

	// IntMinAsUnsigned is the bit pattern of Integer.MIN_VALUE (2^31),
	// which the JLS permits as a bare decimal int literal.
	IntMinAsUnsigned = uint64(1) << 31
	// LongMinAsUnsigned is the bit pattern of Long.MIN_VALUE (2^63).
	LongMinAsUnsigned = uint64(1) << 63
)
