package annotation

import (
	"bytes"
	"testing"

	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/stretchr/testify/require"
)

func emit(t *testing.T, e interface{ Emit(*sink.Writer) }) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := sink.NewWriter(&buf)
	e.Emit(w)
	require.NoError(t, w.Err())
	return buf.Bytes()
}

func TestScalarElementValueEmitsTagThenIndex(t *testing.T) {
	p := constpool.New()
	idx, err := p.StoreInteger(7)
	require.NoError(t, err)

	b := emit(t, IntValue(idx))
	require.Equal(t, byte('I'), b[0])
	require.Len(t, b, 3)
}

func TestEnumElementValueEmitsTwoIndices(t *testing.T) {
	p := constpool.New()
	typeName, err := p.StoreUtf8("Lcom/example/Color;")
	require.NoError(t, err)
	constName, err := p.StoreUtf8("RED")
	require.NoError(t, err)

	b := emit(t, EnumValue(typeName, constName))
	require.Equal(t, byte('e'), b[0])
	require.Len(t, b, 5)
}

func TestArrayElementValueEmitsCountThenElements(t *testing.T) {
	p := constpool.New()
	i1, err := p.StoreInteger(1)
	require.NoError(t, err)
	i2, err := p.StoreInteger(2)
	require.NoError(t, err)

	b := emit(t, ArrayValue([]ElementValue{IntValue(i1), IntValue(i2)}))
	require.Equal(t, byte('['), b[0])
	require.Equal(t, uint16(2), uint16(b[1])<<8|uint16(b[2]))
}

func TestAnnotationEmitsNameThenElementPairs(t *testing.T) {
	p := constpool.New()
	typeName, err := p.StoreUtf8("Lcom/example/Nullable;")
	require.NoError(t, err)
	elemName, err := p.StoreUtf8("value")
	require.NoError(t, err)
	intIdx, err := p.StoreInteger(1)
	require.NoError(t, err)

	ann := NewAnnotation(typeName)
	_, err = ann.Elements.Push(NamedElementValue{Name: elemName, Value: IntValue(intIdx)})
	require.NoError(t, err)

	b := emit(t, ann)
	// type_name(2) + num_pairs(2) + name(2) + tag(1) + index(2)
	require.Len(t, b, 2+2+2+1+2)
}

func TestTargetInfoFieldTargetIsTagOnly(t *testing.T) {
	b := emit(t, FieldDeclaration())
	require.Equal(t, []byte{byte(TagField)}, b)
}

func TestTargetInfoClassExtendsUsesSentinelSupertype(t *testing.T) {
	b := emit(t, ClassExtends())
	require.Equal(t, byte(TagClassExtendsOrImplements), b[0])
	require.Equal(t, []byte{0xFF, 0xFF}, b[1:])
}

func TestTargetInfoLocalVariableEmitsTable(t *testing.T) {
	info := LocalVariable([]LocalVarTargetEntry{{StartPC: 0, Length: 10, Index: 1}})
	b := emit(t, info)
	require.Equal(t, byte(TagLocalVariable), b[0])
	require.Len(t, b, 1+2+6)
}

func TestTypeAnnotationEmitsTargetPathThenAnnotation(t *testing.T) {
	p := constpool.New()
	typeName, err := p.StoreUtf8("Lcom/example/NonNull;")
	require.NoError(t, err)

	ta := NewTypeAnnotation(FieldDeclaration(), NewAnnotation(typeName))
	_, err = ta.TypePath.Push(TypePathEntry{TypePathKind: PathKindArray, TypeArgumentIndex: 0})
	require.NoError(t, err)

	b := emit(t, ta)
	// target(1) + path_count(1) + one path entry(2) + annotation(2 name + 2 count)
	require.Len(t, b, 1+1+2+2+2)
}
