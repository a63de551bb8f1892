package annotation

import (
	"github.com/JarvisCraft/javac-rs/src/boundedseq"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/sink"
)

// NamedElementValue is one (name, value) pair inside an Annotation's
// element_value_pairs table.
type NamedElementValue struct {
	Name  constpool.Index[constpool.Utf8Marker]
	Value ElementValue
}

func (p NamedElementValue) Emit(w *sink.Writer) {
	w.U2(uint16(p.Name.Raw()))
	p.Value.Emit(w)
}

// Annotation is a single `annotation` structure (JVMS §4.7.16): a type
// descriptor plus its named element-value pairs.
type Annotation struct {
	TypeName constpool.Index[constpool.Utf8Marker]
	Elements *boundedseq.Seq[NamedElementValue]
}

// NewAnnotation constructs an empty Annotation of type typeName, to
// which element-value pairs are appended with Elements.Push.
func NewAnnotation(typeName constpool.Index[constpool.Utf8Marker]) Annotation {
	return Annotation{TypeName: typeName, Elements: boundedseq.New[NamedElementValue](boundedseq.W2)}
}

func (a Annotation) Emit(w *sink.Writer) {
	w.U2(uint16(a.TypeName.Raw()))
	a.Elements.Emit(w, func(w *sink.Writer, p NamedElementValue) { p.Emit(w) })
}
