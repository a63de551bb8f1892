// Package annotation implements the runtime-visible/invisible annotation
// element-value union and the type-annotation target-info hierarchy
// (spec §4.5 "Annotation model", JVMS §4.7.16 and §4.7.20). Grounded on
// the original javac-rs-classfile's annotation.rs, translated from a
// Rust tagged enum into a Go struct carrying a discriminant plus the
// fields each variant needs.
package annotation

import (
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/sink"
)

// ElementTag is the single byte JVMS §4.7.16.1 uses to discriminate an
// element_value, always an ASCII letter chosen to read as the kind it
// names (B)yte, (C)har, ... (s)tring, (e)num, (c)lass, (@)annotation,
// ([)array.
type ElementTag byte

const (
	ElByte       ElementTag = 'B'
	ElChar       ElementTag = 'C'
	ElDouble     ElementTag = 'D'
	ElFloat      ElementTag = 'F'
	ElInt        ElementTag = 'I'
	ElLong       ElementTag = 'J'
	ElShort      ElementTag = 'S'
	ElBoolean    ElementTag = 'Z'
	ElString     ElementTag = 's'
	ElEnum       ElementTag = 'e'
	ElClass      ElementTag = 'c'
	ElAnnotation ElementTag = '@'
	ElArray      ElementTag = '['
)

// ElementValue is one element_value union (JVMS §4.7.16.1): a constant,
// an enum constant, a class literal, a nested annotation, or an array of
// further element values. The scalar variants (Byte/Char/.../Boolean)
// all reference an Integer pool entry, matching the original's reuse of
// ConstIntegerInfo across them — the source language's int/short/char/
// byte/boolean literals are all stored as CONSTANT_Integer.
type ElementValue struct {
	tag ElementTag

	scalarIndex constpool.RawIndex // Byte/Char/Int/Short/Boolean (Integer), Long, Float, Double, String, Class
	enumType    constpool.Index[constpool.Utf8Marker]
	enumConst   constpool.Index[constpool.Utf8Marker]
	annotation  *Annotation
	array       []ElementValue
}

func ByteValue(idx constpool.Index[constpool.IntegerMarker]) ElementValue {
	return ElementValue{tag: ElByte, scalarIndex: idx.Raw()}
}
func CharValue(idx constpool.Index[constpool.IntegerMarker]) ElementValue {
	return ElementValue{tag: ElChar, scalarIndex: idx.Raw()}
}
func ShortValue(idx constpool.Index[constpool.IntegerMarker]) ElementValue {
	return ElementValue{tag: ElShort, scalarIndex: idx.Raw()}
}
func BooleanValue(idx constpool.Index[constpool.IntegerMarker]) ElementValue {
	return ElementValue{tag: ElBoolean, scalarIndex: idx.Raw()}
}
func IntValue(idx constpool.Index[constpool.IntegerMarker]) ElementValue {
	return ElementValue{tag: ElInt, scalarIndex: idx.Raw()}
}
func LongValue(idx constpool.Index[constpool.LongMarker]) ElementValue {
	return ElementValue{tag: ElLong, scalarIndex: idx.Raw()}
}
func FloatValue(idx constpool.Index[constpool.FloatMarker]) ElementValue {
	return ElementValue{tag: ElFloat, scalarIndex: idx.Raw()}
}
func DoubleValue(idx constpool.Index[constpool.DoubleMarker]) ElementValue {
	return ElementValue{tag: ElDouble, scalarIndex: idx.Raw()}
}
func StringValue(idx constpool.Index[constpool.Utf8Marker]) ElementValue {
	return ElementValue{tag: ElString, scalarIndex: idx.Raw()}
}

// EnumValue names an enum constant by its type descriptor and constant
// name, both interned as Utf8.
func EnumValue(typeName, constName constpool.Index[constpool.Utf8Marker]) ElementValue {
	return ElementValue{tag: ElEnum, enumType: typeName, enumConst: constName}
}

// ClassValue names a class literal (`Foo.class`) by its return
// descriptor, interned as Utf8 (JVMS: `void.class` uses "V").
func ClassValue(descriptor constpool.Index[constpool.Utf8Marker]) ElementValue {
	return ElementValue{tag: ElClass, scalarIndex: descriptor.Raw()}
}

// AnnotationValue nests a complete annotation as another element's
// value (JVMS's annotation-typed element, e.g. `@Outer(@Inner)`).
func AnnotationValue(ann Annotation) ElementValue {
	return ElementValue{tag: ElAnnotation, annotation: &ann}
}

// ArrayValue lists zero or more further element values; the elements
// need not share a tag at this layer, though the source language they
// came from would enforce that.
func ArrayValue(elements []ElementValue) ElementValue {
	return ElementValue{tag: ElArray, array: elements}
}

// Tag reports the element_value's wire discriminant.
func (v ElementValue) Tag() ElementTag { return v.tag }

func (v ElementValue) Emit(w *sink.Writer) {
	w.U1(byte(v.tag))
	switch v.tag {
	case ElByte, ElChar, ElInt, ElShort, ElBoolean, ElFloat, ElLong, ElDouble, ElString, ElClass:
		w.U2(uint16(v.scalarIndex))
	case ElEnum:
		w.U2(uint16(v.enumType.Raw()))
		w.U2(uint16(v.enumConst.Raw()))
	case ElAnnotation:
		v.annotation.Emit(w)
	case ElArray:
		w.U2(uint16(len(v.array)))
		for _, e := range v.array {
			e.Emit(w)
		}
	}
}
