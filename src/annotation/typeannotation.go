package annotation

import (
	"github.com/JarvisCraft/javac-rs/src/boundedseq"
	"github.com/JarvisCraft/javac-rs/src/sink"
)

// TypePathEntry is one step of a type_path (JVMS §4.7.20.2): which
// nested type, within a possibly-generic/array/nested type, the
// annotation actually targets.
type TypePathEntry struct {
	TypePathKind      uint8
	TypeArgumentIndex uint8
}

func (e TypePathEntry) Emit(w *sink.Writer) {
	w.U1(e.TypePathKind)
	w.U1(e.TypeArgumentIndex)
}

const (
	PathKindArray            uint8 = 0
	PathKindNested           uint8 = 1
	PathKindWildcardBound    uint8 = 2
	PathKindTypeArgument     uint8 = 3
)

// NewTypePath constructs an empty type_path, to which steps are
// appended with Push.
func NewTypePath() *boundedseq.Seq[TypePathEntry] {
	return boundedseq.New[TypePathEntry](boundedseq.W1)
}

// TypeAnnotation is the full `type_annotation` structure (JVMS §4.7.20):
// a target-info position, the type path within that position, and the
// annotation itself.
type TypeAnnotation struct {
	Target     TargetInfo
	TypePath   *boundedseq.Seq[TypePathEntry]
	Annotation Annotation
}

func NewTypeAnnotation(target TargetInfo, annotation Annotation) TypeAnnotation {
	return TypeAnnotation{Target: target, TypePath: NewTypePath(), Annotation: annotation}
}

func (t TypeAnnotation) Emit(w *sink.Writer) {
	t.Target.Emit(w)
	t.TypePath.Emit(w, func(w *sink.Writer, e TypePathEntry) { e.Emit(w) })
	t.Annotation.Emit(w)
}
