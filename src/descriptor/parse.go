package descriptor

import "fmt"

// Parse is the inverse of String (spec §8: "round-trip descriptor").
// It is not needed by the emitter itself — callers that only build
// descriptors never need to parse them back — but is provided so the
// round-trip property is checkable, and because a real compiler wires
// this core to a type-checking pass that does need to read descriptors
// back out of the constant pool.
func Parse(s string) (Descriptor, error) {
	d, rest, err := parseOne(s)
	if err != nil {
		return Descriptor{}, err
	}
	if rest != "" {
		return Descriptor{}, fmt.Errorf("descriptor: trailing data after %q: %q", s, rest)
	}
	return d, nil
}

func parseOne(s string) (Descriptor, string, error) {
	if s == "" {
		return Descriptor{}, "", fmt.Errorf("descriptor: empty descriptor")
	}
	switch s[0] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return NewPrimitive(Primitive(s[0])), s[1:], nil
	case 'L':
		end := -1
		for i := 1; i < len(s); i++ {
			if s[i] == ';' {
				end = i
				break
			}
		}
		if end < 0 {
			return Descriptor{}, "", fmt.Errorf("descriptor: unterminated class descriptor in %q", s)
		}
		return NewClass(s[1:end]), s[end+1:], nil
	case '[':
		component, rest, err := parseOne(s[1:])
		if err != nil {
			return Descriptor{}, "", err
		}
		return NewArray(component), rest, nil
	default:
		return Descriptor{}, "", fmt.Errorf("descriptor: invalid leading byte %q in %q", s[0], s)
	}
}
