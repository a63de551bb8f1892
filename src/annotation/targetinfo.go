package annotation

import "github.com/JarvisCraft/javac-rs/src/sink"

// TargetTag is the target_type byte (JVMS §4.7.20-table) that selects
// both which contextual position a type annotation attaches to and the
// shape of the target_info union that follows it.
type TargetTag byte

const (
	TagGenericClassOrInterfaceTypeParameter  TargetTag = 0x00
	TagGenericMethodOrConstructorTypeParameter TargetTag = 0x01
	TagClassExtendsOrImplements               TargetTag = 0x10
	TagGenericClassOrInterfaceBound           TargetTag = 0x11
	TagGenericMethodOrConstructorBound        TargetTag = 0x12
	TagField                                  TargetTag = 0x13
	TagMethodOrConstructorReturn               TargetTag = 0x14
	TagReceiver                               TargetTag = 0x15
	TagFormalParameter                        TargetTag = 0x16
	TagThrows                                 TargetTag = 0x17
	TagLocalVariable                          TargetTag = 0x40
	TagResourceVariable                       TargetTag = 0x41
	TagExceptionParameter                     TargetTag = 0x42
	TagInstanceof                             TargetTag = 0x43
	TagNew                                    TargetTag = 0x44
	TagConstructorReference                   TargetTag = 0x45
	TagMethodReference                        TargetTag = 0x46
	TagCastTypeArgument                       TargetTag = 0x47
	TagConstructorInvocationTypeArgument        TargetTag = 0x48
	TagMethodInvocationTypeArgument            TargetTag = 0x49
	TagConstructorReferenceTypeArgument         TargetTag = 0x4A
	TagMethodReferenceTypeArgument             TargetTag = 0x4B
)

// TargetInfo is the target_info union (JVMS §4.7.20.1) naming the
// program construct a type annotation applies to. One struct carries
// every variant's fields; Tag says which are populated, mirroring the
// original's per-kind struct set collapsed into a single discriminated
// record the way constpool's entry and verify's Frame already do in
// this module.
type TargetInfo struct {
	tag TargetTag

	typeParameterIndex uint8
	supertypeIndex      uint16 // 65535 means "extends", else an implemented interface index
	boundIndex          uint8
	formalParameterIndex uint8
	throwsTypeIndex     uint16
	localVarTable       []LocalVarTargetEntry
	exceptionTableIndex uint16
	offset              uint16
	typeArgumentIndex   uint8
}

// LocalVarTargetEntry is one row of a local_variable_target's table
// (JVMS §4.7.20.1): the live range of a local slot this annotation
// describes.
type LocalVarTargetEntry struct {
	StartPC uint16
	Length  uint16
	Index   uint16
}

func (e LocalVarTargetEntry) Emit(w *sink.Writer) {
	w.U2(e.StartPC)
	w.U2(e.Length)
	w.U2(e.Index)
}

func TypeParameterOfGenericClassOrInterface(index uint8) TargetInfo {
	return TargetInfo{tag: TagGenericClassOrInterfaceTypeParameter, typeParameterIndex: index}
}

func TypeParameterOfGenericMethodOrConstructor(index uint8) TargetInfo {
	return TargetInfo{tag: TagGenericMethodOrConstructorTypeParameter, typeParameterIndex: index}
}

// ClassExtends targets the class's extends clause (supertype index
// 65535, JVMS's reserved sentinel for "the superclass, not an
// interface").
func ClassExtends() TargetInfo {
	return TargetInfo{tag: TagClassExtendsOrImplements, supertypeIndex: 0xFFFF}
}

// ClassImplements targets the interfaceIndex'th entry of the class's
// implements clause.
func ClassImplements(interfaceIndex uint16) TargetInfo {
	return TargetInfo{tag: TagClassExtendsOrImplements, supertypeIndex: interfaceIndex}
}

func TypeParameterBoundOfGenericClassOrInterface(typeParameterIndex, boundIndex uint8) TargetInfo {
	return TargetInfo{tag: TagGenericClassOrInterfaceBound, typeParameterIndex: typeParameterIndex, boundIndex: boundIndex}
}

func TypeParameterBoundOfGenericMethodOrConstructor(typeParameterIndex, boundIndex uint8) TargetInfo {
	return TargetInfo{tag: TagGenericMethodOrConstructorBound, typeParameterIndex: typeParameterIndex, boundIndex: boundIndex}
}

func FieldDeclaration() TargetInfo       { return TargetInfo{tag: TagField} }
func MethodOrConstructorReturnType() TargetInfo {
	return TargetInfo{tag: TagMethodOrConstructorReturn}
}
func ReceiverType() TargetInfo { return TargetInfo{tag: TagReceiver} }

func FormalParameter(index uint8) TargetInfo {
	return TargetInfo{tag: TagFormalParameter, formalParameterIndex: index}
}

func ThrowsClause(throwsTypeIndex uint16) TargetInfo {
	return TargetInfo{tag: TagThrows, throwsTypeIndex: throwsTypeIndex}
}

func LocalVariable(table []LocalVarTargetEntry) TargetInfo {
	return TargetInfo{tag: TagLocalVariable, localVarTable: table}
}

func ResourceVariable(table []LocalVarTargetEntry) TargetInfo {
	return TargetInfo{tag: TagResourceVariable, localVarTable: table}
}

func ExceptionParameter(exceptionTableIndex uint16) TargetInfo {
	return TargetInfo{tag: TagExceptionParameter, exceptionTableIndex: exceptionTableIndex}
}

func InstanceofExpression(offset uint16) TargetInfo {
	return TargetInfo{tag: TagInstanceof, offset: offset}
}

func NewExpression(offset uint16) TargetInfo { return TargetInfo{tag: TagNew, offset: offset} }

func ConstructorReferenceExpression(offset uint16) TargetInfo {
	return TargetInfo{tag: TagConstructorReference, offset: offset}
}

func MethodReferenceExpression(offset uint16) TargetInfo {
	return TargetInfo{tag: TagMethodReference, offset: offset}
}

func CastExpression(offset uint16, typeArgumentIndex uint8) TargetInfo {
	return TargetInfo{tag: TagCastTypeArgument, offset: offset, typeArgumentIndex: typeArgumentIndex}
}

func ConstructorInvocationTypeArgument(offset uint16, typeArgumentIndex uint8) TargetInfo {
	return TargetInfo{tag: TagConstructorInvocationTypeArgument, offset: offset, typeArgumentIndex: typeArgumentIndex}
}

func MethodInvocationTypeArgument(offset uint16, typeArgumentIndex uint8) TargetInfo {
	return TargetInfo{tag: TagMethodInvocationTypeArgument, offset: offset, typeArgumentIndex: typeArgumentIndex}
}

func ConstructorReferenceTypeArgument(offset uint16, typeArgumentIndex uint8) TargetInfo {
	return TargetInfo{tag: TagConstructorReferenceTypeArgument, offset: offset, typeArgumentIndex: typeArgumentIndex}
}

func MethodReferenceTypeArgument(offset uint16, typeArgumentIndex uint8) TargetInfo {
	return TargetInfo{tag: TagMethodReferenceTypeArgument, offset: offset, typeArgumentIndex: typeArgumentIndex}
}

// Tag reports the target_type byte.
func (t TargetInfo) Tag() TargetTag { return t.tag }

func (t TargetInfo) Emit(w *sink.Writer) {
	w.U1(byte(t.tag))
	switch t.tag {
	case TagGenericClassOrInterfaceTypeParameter, TagGenericMethodOrConstructorTypeParameter:
		w.U1(t.typeParameterIndex)
	case TagClassExtendsOrImplements:
		w.U2(t.supertypeIndex)
	case TagGenericClassOrInterfaceBound, TagGenericMethodOrConstructorBound:
		w.U1(t.typeParameterIndex)
		w.U1(t.boundIndex)
	case TagField, TagMethodOrConstructorReturn, TagReceiver:
		// empty_target: no further bytes
	case TagFormalParameter:
		w.U1(t.formalParameterIndex)
	case TagThrows:
		w.U2(t.throwsTypeIndex)
	case TagLocalVariable, TagResourceVariable:
		w.U2(uint16(len(t.localVarTable)))
		for _, e := range t.localVarTable {
			e.Emit(w)
		}
	case TagExceptionParameter:
		w.U2(t.exceptionTableIndex)
	case TagInstanceof, TagNew, TagConstructorReference, TagMethodReference:
		w.U2(t.offset)
	case TagCastTypeArgument, TagConstructorInvocationTypeArgument, TagMethodInvocationTypeArgument,
		TagConstructorReferenceTypeArgument, TagMethodReferenceTypeArgument:
		w.U2(t.offset)
		w.U1(t.typeArgumentIndex)
	}
}
