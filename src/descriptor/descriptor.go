// Package descriptor implements the recursive JVM type descriptor value
// described in spec §4.5/§6.2: primitive descriptors (B C D F I J S Z),
// class references (L<internal-name>;), and arrays ([<component>).
// Descriptors are immutable once built; the canonical string form is
// produced by String and is the only thing the constant pool and
// attribute model ever need to intern.
package descriptor

import "strings"

// Kind discriminates the three descriptor shapes.
type Kind int

const (
	KindPrimitive Kind = iota
	KindClass
	KindArray
)

// Primitive identifies one of the eight JVM primitive descriptor codes.
type Primitive byte

const (
	Byte    Primitive = 'B'
	Char    Primitive = 'C'
	Double  Primitive = 'D'
	Float   Primitive = 'F'
	Int     Primitive = 'I'
	Long    Primitive = 'J'
	Short   Primitive = 'S'
	Boolean Primitive = 'Z'
)

func (p Primitive) valid() bool {
	switch p {
	case Byte, Char, Double, Float, Int, Long, Short, Boolean:
		return true
	default:
		return false
	}
}

// Descriptor is an immutable JVM type descriptor tree.
type Descriptor struct {
	kind      Kind
	primitive Primitive
	className string // internal binary name, e.g. "java/lang/Object"; KindClass only
	component *Descriptor
}

// NewPrimitive builds a primitive descriptor. It panics if p is not one
// of the eight JVM primitive codes — callers are expected to use the
// named constants (Byte, Int, ...), never raw bytes.
func NewPrimitive(p Primitive) Descriptor {
	if !p.valid() {
		panic("descriptor: invalid primitive code")
	}
	return Descriptor{kind: KindPrimitive, primitive: p}
}

// NewClass builds a class-reference descriptor wrapping an internal
// binary name (slash-separated, no leading L or trailing ;).
func NewClass(internalName string) Descriptor {
	return Descriptor{kind: KindClass, className: internalName}
}

// NewArray wraps component in one array dimension.
func NewArray(component Descriptor) Descriptor {
	return Descriptor{kind: KindArray, component: &component}
}

// ArrayOf wraps component in dims array dimensions (spec §6.2: "Array
// dimensionality factory wraps a component in N layers"). ArrayOf(c, 0)
// returns c unchanged.
func ArrayOf(component Descriptor, dims int) Descriptor {
	result := component
	for i := 0; i < dims; i++ {
		result = NewArray(result)
	}
	return result
}

// Kind reports which descriptor shape this is.
func (d Descriptor) Kind() Kind {
	return d.kind
}

// Primitive returns the primitive code and true if this is a primitive
// descriptor.
func (d Descriptor) Primitive() (Primitive, bool) {
	if d.kind != KindPrimitive {
		return 0, false
	}
	return d.primitive, true
}

// ClassName returns the internal binary name and true if this is a
// class-reference descriptor.
func (d Descriptor) ClassName() (string, bool) {
	if d.kind != KindClass {
		return "", false
	}
	return d.className, true
}

// Component returns the wrapped descriptor and true if this is an array
// descriptor.
func (d Descriptor) Component() (Descriptor, bool) {
	if d.kind != KindArray {
		return Descriptor{}, false
	}
	return *d.component, true
}

// String renders the canonical JVMS descriptor string.
func (d Descriptor) String() string {
	switch d.kind {
	case KindPrimitive:
		return string(rune(d.primitive))
	case KindClass:
		var b strings.Builder
		b.WriteByte('L')
		b.WriteString(d.className)
		b.WriteByte(';')
		return b.String()
	case KindArray:
		return "[" + d.component.String()
	default:
		return ""
	}
}
