// Package attribute implements the attribute tagged union described in
// spec §4.5: one named variant per standard JVMS §4.7 attribute, plus a
// raw custom-payload escape hatch. Grounded on the original
// javac-rs-classfile's attribute.rs (translated here from a Rust enum
// of structs into one Go struct carrying a discriminant and the fields
// its kind needs), and on jacobin's flatter `attr{attrName, attrSize,
// attrContent}` model which this generalizes from raw bytes into typed
// payloads.
package attribute

import (
	"errors"

	"github.com/JarvisCraft/javac-rs/src/annotation"
	"github.com/JarvisCraft/javac-rs/src/boundedseq"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/flagset"
	"github.com/JarvisCraft/javac-rs/src/javatypes"
	"github.com/JarvisCraft/javac-rs/src/moduleattr"
	"github.com/JarvisCraft/javac-rs/src/sink"
	"github.com/JarvisCraft/javac-rs/src/verify"
)

// ErrConstantValueKindMismatch is returned by NewConstantValue when the
// supplied pool entry's tag does not match the field descriptor's
// required kind (spec §5 supplement #1).
var ErrConstantValueKindMismatch = errors.New("attribute: ConstantValue index does not match field descriptor kind")

// Kind discriminates the attribute tagged union. It has no wire
// representation of its own — each NamedAttribute carries its kind's
// canonical name string as an interned Utf8 index instead.
type Kind int

const (
	KindConstantValue Kind = iota
	KindCode
	KindStackMapTable
	KindExceptions
	KindInnerClasses
	KindEnclosingMethod
	KindSynthetic
	KindSignature
	KindSourceFile
	KindLineNumberTable
	KindLocalVariableTable
	KindLocalVariableTypeTable
	KindDeprecated
	KindRuntimeVisibleAnnotations
	KindRuntimeInvisibleAnnotations
	KindRuntimeVisibleParameterAnnotations
	KindRuntimeInvisibleParameterAnnotations
	KindRuntimeVisibleTypeAnnotations
	KindRuntimeInvisibleTypeAnnotations
	KindAnnotationDefault
	KindBootstrapMethods
	KindMethodParameters
	KindModule
	KindModulePackages
	KindModuleMainClass
	KindNestHost
	KindNestMembers
	KindCustom
)

// CanonicalName returns the attribute name JVMS §4.7 reserves for kind,
// or "" for KindCustom (whose name is caller-supplied).
func (k Kind) CanonicalName() string {
	switch k {
	case KindConstantValue:
		return "ConstantValue"
	case KindCode:
		return "Code"
	case KindStackMapTable:
		return "StackMapTable"
	case KindExceptions:
		return "Exceptions"
	case KindInnerClasses:
		return "InnerClasses"
	case KindEnclosingMethod:
		return "EnclosingMethod"
	case KindSynthetic:
		return "Synthetic"
	case KindSignature:
		return "Signature"
	case KindSourceFile:
		return "SourceFile"
	case KindLineNumberTable:
		return "LineNumberTable"
	case KindLocalVariableTable:
		return "LocalVariableTable"
	case KindLocalVariableTypeTable:
		return "LocalVariableTypeTable"
	case KindDeprecated:
		return "Deprecated"
	case KindRuntimeVisibleAnnotations:
		return "RuntimeVisibleAnnotations"
	case KindRuntimeInvisibleAnnotations:
		return "RuntimeInvisibleAnnotations"
	case KindRuntimeVisibleParameterAnnotations:
		return "RuntimeVisibleParameterAnnotations"
	case KindRuntimeInvisibleParameterAnnotations:
		return "RuntimeInvisibleParameterAnnotations"
	case KindRuntimeVisibleTypeAnnotations:
		return "RuntimeVisibleTypeAnnotations"
	case KindRuntimeInvisibleTypeAnnotations:
		return "RuntimeInvisibleTypeAnnotations"
	case KindAnnotationDefault:
		return "AnnotationDefault"
	case KindBootstrapMethods:
		return "BootstrapMethods"
	case KindMethodParameters:
		return "MethodParameters"
	case KindModule:
		return "Module"
	case KindModulePackages:
		return "ModulePackages"
	case KindModuleMainClass:
		return "ModuleMainClass"
	case KindNestHost:
		return "NestHost"
	case KindNestMembers:
		return "NestMembers"
	default:
		return ""
	}
}

// NamedAttribute is one attribute_info record (JVMS §4.7): an interned
// name index plus a payload. Emit writes the name index, a u4 length,
// and the payload body — except KindCustom, whose already
// length-prefixed-by-construction payload bypasses length computation
// (spec §4.5 "raw custom attribute bypasses length computation").
type NamedAttribute struct {
	Name constpool.Index[constpool.Utf8Marker]
	kind Kind

	constantValue  constpool.RawIndex
	code           *CodeBody
	stackMapTable  []verify.Frame
	exceptions     []constpool.Index[constpool.ClassMarker]
	innerClasses   []InnerClassEntry
	enclosing      EnclosingMethodBody
	signature      constpool.Index[constpool.Utf8Marker]
	sourceFile     constpool.Index[constpool.Utf8Marker]
	lineNumbers    []LineNumberEntry
	localVars      []LocalVariableEntry
	localVarTypes  []LocalVariableTypeEntry
	annotations    []annotation.Annotation
	paramAnnos     [][]annotation.Annotation
	typeAnnos      []annotation.TypeAnnotation
	annotationDflt annotation.ElementValue
	bootstraps     []BootstrapMethod
	methodParams   []MethodParameterEntry
	module         *moduleattr.Module
	modulePackages []constpool.Index[constpool.PackageMarker]
	moduleMain     constpool.Index[constpool.ClassMarker]
	nestHost       constpool.Index[constpool.ClassMarker]
	nestMembers    []constpool.Index[constpool.ClassMarker]
	customPayload  []byte
}

// Kind reports which attribute variant this is.
func (a NamedAttribute) Kind() Kind { return a.kind }

func internName(p *constpool.Pool, kind Kind) (constpool.Index[constpool.Utf8Marker], error) {
	return p.StoreUtf8(kind.CanonicalName())
}

// NewConstantValue builds a ConstantValue attribute, enforcing that
// value's pool entry kind matches what fieldDescriptor's first
// character demands (spec §5 supplement #1): int/short/char/byte/
// boolean descriptors require an Integer entry, long a Long entry,
// float a Float entry, double a Double entry; String is the only
// reference type ConstantValue may target.
func NewConstantValue(p *constpool.Pool, fieldDescriptor byte, value constpool.RawIndex, valueTag constpool.Tag) (NamedAttribute, error) {
	var want constpool.Tag
	switch fieldDescriptor {
	case 'B', 'S', 'C', 'I', 'Z':
		want = constpool.TagInteger
	case 'J':
		want = constpool.TagLong
	case 'F':
		want = constpool.TagFloat
	case 'D':
		want = constpool.TagDouble
	default:
		want = constpool.TagString
	}
	if valueTag != want {
		javatypes.Errorf("attribute: ConstantValue descriptor %q wants pool tag %v, got %v", string(fieldDescriptor), want, valueTag)
		return NamedAttribute{}, ErrConstantValueKindMismatch
	}
	name, err := internName(p, KindConstantValue)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindConstantValue, constantValue: value}, nil
}

// CodeBody is the payload of a Code attribute (spec §4.4 "Finalization").
type CodeBody struct {
	MaxStack   uint16
	MaxLocals  uint16
	Code       []byte
	Exceptions []ExceptionTableEntry
	Attributes []NamedAttribute
}

// ExceptionTableEntry is one row of a Code attribute's exception table.
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType constpool.Index[constpool.ClassMarker] // 0 means catch-all (finally)
}

func NewCode(p *constpool.Pool, body CodeBody) (NamedAttribute, error) {
	if len(body.Code) > (1<<32 - 1) {
		javatypes.Errorf("attribute: Code body is %d bytes, exceeds u4 bound", len(body.Code))
		return NamedAttribute{}, boundedseq.ErrSourceTooBig
	}
	name, err := internName(p, KindCode)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindCode, code: &body}, nil
}

func NewStackMapTable(p *constpool.Pool, frames []verify.Frame) (NamedAttribute, error) {
	name, err := internName(p, KindStackMapTable)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindStackMapTable, stackMapTable: frames}, nil
}

func NewExceptions(p *constpool.Pool, exceptions []constpool.Index[constpool.ClassMarker]) (NamedAttribute, error) {
	name, err := internName(p, KindExceptions)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindExceptions, exceptions: exceptions}, nil
}

// InnerClassEntry is one row of an InnerClasses attribute's table.
type InnerClassEntry struct {
	InnerClass constpool.Index[constpool.ClassMarker]
	OuterClass constpool.Index[constpool.ClassMarker] // 0 if not a member
	InnerName  constpool.Index[constpool.Utf8Marker]  // 0 if anonymous
	Flags      flagset.FlagSet
}

func NewInnerClasses(p *constpool.Pool, classes []InnerClassEntry) (NamedAttribute, error) {
	name, err := internName(p, KindInnerClasses)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindInnerClasses, innerClasses: classes}, nil
}

// EnclosingMethodBody is the payload of an EnclosingMethod attribute.
type EnclosingMethodBody struct {
	Class  constpool.Index[constpool.ClassMarker]
	Method constpool.Index[constpool.NameAndTypeMarker] // 0 if not enclosed by a method
}

func NewEnclosingMethod(p *constpool.Pool, body EnclosingMethodBody) (NamedAttribute, error) {
	name, err := internName(p, KindEnclosingMethod)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindEnclosingMethod, enclosing: body}, nil
}

func NewSynthetic(p *constpool.Pool) (NamedAttribute, error) {
	name, err := internName(p, KindSynthetic)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindSynthetic}, nil
}

func NewDeprecated(p *constpool.Pool) (NamedAttribute, error) {
	name, err := internName(p, KindDeprecated)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindDeprecated}, nil
}

// NewSignature builds a Signature attribute carrying signature, the
// generic signature string distinct from the member's erased
// descriptor (spec §5 supplement #3). The signature is interned as a
// plain Utf8 entry, the same index type a descriptor uses, so the types
// do not stop a caller from passing one where the other is expected.
func NewSignature(p *constpool.Pool, signature string) (NamedAttribute, error) {
	name, err := internName(p, KindSignature)
	if err != nil {
		return NamedAttribute{}, err
	}
	idx, err := p.StoreUtf8(signature)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindSignature, signature: idx}, nil
}

func NewSourceFile(p *constpool.Pool, filename string) (NamedAttribute, error) {
	name, err := internName(p, KindSourceFile)
	if err != nil {
		return NamedAttribute{}, err
	}
	idx, err := p.StoreUtf8(filename)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindSourceFile, sourceFile: idx}, nil
}

// LineNumberEntry is one row of a LineNumberTable attribute.
type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

func NewLineNumberTable(p *constpool.Pool, entries []LineNumberEntry) (NamedAttribute, error) {
	name, err := internName(p, KindLineNumberTable)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindLineNumberTable, lineNumbers: entries}, nil
}

// LocalVariableEntry is one row of a LocalVariableTable attribute.
type LocalVariableEntry struct {
	StartPC    uint16
	Length     uint16
	Name       constpool.Index[constpool.Utf8Marker]
	Descriptor constpool.Index[constpool.Utf8Marker]
	Index      uint16
}

func NewLocalVariableTable(p *constpool.Pool, entries []LocalVariableEntry) (NamedAttribute, error) {
	name, err := internName(p, KindLocalVariableTable)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindLocalVariableTable, localVars: entries}, nil
}

// LocalVariableTypeEntry is one row of a LocalVariableTypeTable
// attribute — Signature's local-variable analog (spec §5 supplement
// #3): a generic signature string, not the erased descriptor.
type LocalVariableTypeEntry struct {
	StartPC   uint16
	Length    uint16
	Name      constpool.Index[constpool.Utf8Marker]
	Signature constpool.Index[constpool.Utf8Marker]
	Index     uint16
}

func NewLocalVariableTypeTable(p *constpool.Pool, entries []LocalVariableTypeEntry) (NamedAttribute, error) {
	name, err := internName(p, KindLocalVariableTypeTable)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindLocalVariableTypeTable, localVarTypes: entries}, nil
}

func NewRuntimeVisibleAnnotations(p *constpool.Pool, annotations []annotation.Annotation) (NamedAttribute, error) {
	name, err := internName(p, KindRuntimeVisibleAnnotations)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindRuntimeVisibleAnnotations, annotations: annotations}, nil
}

func NewRuntimeInvisibleAnnotations(p *constpool.Pool, annotations []annotation.Annotation) (NamedAttribute, error) {
	name, err := internName(p, KindRuntimeInvisibleAnnotations)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindRuntimeInvisibleAnnotations, annotations: annotations}, nil
}

// NewRuntimeVisibleParameterAnnotations builds the per-parameter
// annotations attribute; perParam[i] lists the annotations on the i-th
// formal parameter. Bounded to 255 parameters (u1 count, JVMS §4.7.18).
func NewRuntimeVisibleParameterAnnotations(p *constpool.Pool, perParam [][]annotation.Annotation) (NamedAttribute, error) {
	if len(perParam) > 255 {
		return NamedAttribute{}, boundedseq.ErrSourceTooBig
	}
	name, err := internName(p, KindRuntimeVisibleParameterAnnotations)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindRuntimeVisibleParameterAnnotations, paramAnnos: perParam}, nil
}

func NewRuntimeInvisibleParameterAnnotations(p *constpool.Pool, perParam [][]annotation.Annotation) (NamedAttribute, error) {
	if len(perParam) > 255 {
		return NamedAttribute{}, boundedseq.ErrSourceTooBig
	}
	name, err := internName(p, KindRuntimeInvisibleParameterAnnotations)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindRuntimeInvisibleParameterAnnotations, paramAnnos: perParam}, nil
}

func NewRuntimeVisibleTypeAnnotations(p *constpool.Pool, annotations []annotation.TypeAnnotation) (NamedAttribute, error) {
	name, err := internName(p, KindRuntimeVisibleTypeAnnotations)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindRuntimeVisibleTypeAnnotations, typeAnnos: annotations}, nil
}

func NewRuntimeInvisibleTypeAnnotations(p *constpool.Pool, annotations []annotation.TypeAnnotation) (NamedAttribute, error) {
	name, err := internName(p, KindRuntimeInvisibleTypeAnnotations)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindRuntimeInvisibleTypeAnnotations, typeAnnos: annotations}, nil
}

func NewAnnotationDefault(p *constpool.Pool, value annotation.ElementValue) (NamedAttribute, error) {
	name, err := internName(p, KindAnnotationDefault)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindAnnotationDefault, annotationDflt: value}, nil
}

// BootstrapMethod is one entry of a BootstrapMethods attribute's table
// (spec §5 supplement #5): a MethodHandle plus its static arguments,
// addressed by `invokedynamic`/dynamic-constant pool entries via a
// bootstrap-methods index that is not itself a pool index.
type BootstrapMethod struct {
	Method    constpool.Index[constpool.MethodHandleMarker]
	Arguments []constpool.RawIndex
}

func NewBootstrapMethods(p *constpool.Pool, methods []BootstrapMethod) (NamedAttribute, error) {
	name, err := internName(p, KindBootstrapMethods)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindBootstrapMethods, bootstraps: methods}, nil
}

// MethodParameterEntry is one row of a MethodParameters attribute.
type MethodParameterEntry struct {
	Name  constpool.Index[constpool.Utf8Marker] // 0 if unnamed
	Flags flagset.FlagSet
}

func NewMethodParameters(p *constpool.Pool, params []MethodParameterEntry) (NamedAttribute, error) {
	if len(params) > 255 {
		return NamedAttribute{}, boundedseq.ErrSourceTooBig
	}
	name, err := internName(p, KindMethodParameters)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindMethodParameters, methodParams: params}, nil
}

func NewModule(p *constpool.Pool, module *moduleattr.Module) (NamedAttribute, error) {
	name, err := internName(p, KindModule)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindModule, module: module}, nil
}

func NewModulePackages(p *constpool.Pool, packages []constpool.Index[constpool.PackageMarker]) (NamedAttribute, error) {
	name, err := internName(p, KindModulePackages)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindModulePackages, modulePackages: packages}, nil
}

func NewModuleMainClass(p *constpool.Pool, mainClass constpool.Index[constpool.ClassMarker]) (NamedAttribute, error) {
	name, err := internName(p, KindModuleMainClass)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindModuleMainClass, moduleMain: mainClass}, nil
}

func NewNestHost(p *constpool.Pool, host constpool.Index[constpool.ClassMarker]) (NamedAttribute, error) {
	name, err := internName(p, KindNestHost)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindNestHost, nestHost: host}, nil
}

func NewNestMembers(p *constpool.Pool, members []constpool.Index[constpool.ClassMarker]) (NamedAttribute, error) {
	name, err := internName(p, KindNestMembers)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: name, kind: KindNestMembers, nestMembers: members}, nil
}

// NewCustom builds a raw, already-encoded attribute whose payload the
// caller fully controls and whose length prefix is the payload's own
// byte count — it bypasses this package's per-kind emission switch
// entirely (spec §4.5 "the raw custom attribute bypasses length
// computation because its payload is already a length-prefixed u4
// sequence").
func NewCustom(p *constpool.Pool, name string, payload []byte) (NamedAttribute, error) {
	if len(payload) > (1<<32 - 1) {
		return NamedAttribute{}, boundedseq.ErrSourceTooBig
	}
	idx, err := p.StoreUtf8(name)
	if err != nil {
		return NamedAttribute{}, err
	}
	return NamedAttribute{Name: idx, kind: KindCustom, customPayload: payload}, nil
}

// Emit writes the name index, a u4 body-length, and the body itself.
func (a NamedAttribute) Emit(w *sink.Writer) {
	w.U2(uint16(a.Name.Raw()))
	if a.kind == KindCustom {
		w.U4(uint32(len(a.customPayload)))
		w.Bytes(a.customPayload)
		return
	}
	body := a.body()
	w.U4(uint32(len(body)))
	w.Bytes(body)
}

// body serializes the kind-specific payload into its own buffer so its
// exact byte length can be written before the bytes themselves — every
// non-custom attribute is length-prefixed up front (JVMS §4.7).
func (a NamedAttribute) body() []byte {
	var buf byteBuf
	bw := sink.NewWriter(&buf)
	switch a.kind {
	case KindConstantValue:
		bw.U2(uint16(a.constantValue))
	case KindCode:
		a.emitCode(bw)
	case KindStackMapTable:
		bw.U2(uint16(len(a.stackMapTable)))
		for _, f := range a.stackMapTable {
			f.Emit(bw)
		}
	case KindExceptions:
		bw.U2(uint16(len(a.exceptions)))
		for _, e := range a.exceptions {
			bw.U2(uint16(e.Raw()))
		}
	case KindInnerClasses:
		bw.U2(uint16(len(a.innerClasses)))
		for _, c := range a.innerClasses {
			bw.U2(uint16(c.InnerClass.Raw()))
			bw.U2(uint16(c.OuterClass.Raw()))
			bw.U2(uint16(c.InnerName.Raw()))
			bw.U2(c.Flags.Raw())
		}
	case KindEnclosingMethod:
		bw.U2(uint16(a.enclosing.Class.Raw()))
		bw.U2(uint16(a.enclosing.Method.Raw()))
	case KindSynthetic, KindDeprecated:
		// empty body
	case KindSignature:
		bw.U2(uint16(a.signature.Raw()))
	case KindSourceFile:
		bw.U2(uint16(a.sourceFile.Raw()))
	case KindLineNumberTable:
		bw.U2(uint16(len(a.lineNumbers)))
		for _, e := range a.lineNumbers {
			bw.U2(e.StartPC)
			bw.U2(e.LineNumber)
		}
	case KindLocalVariableTable:
		bw.U2(uint16(len(a.localVars)))
		for _, e := range a.localVars {
			bw.U2(e.StartPC)
			bw.U2(e.Length)
			bw.U2(uint16(e.Name.Raw()))
			bw.U2(uint16(e.Descriptor.Raw()))
			bw.U2(e.Index)
		}
	case KindLocalVariableTypeTable:
		bw.U2(uint16(len(a.localVarTypes)))
		for _, e := range a.localVarTypes {
			bw.U2(e.StartPC)
			bw.U2(e.Length)
			bw.U2(uint16(e.Name.Raw()))
			bw.U2(uint16(e.Signature.Raw()))
			bw.U2(e.Index)
		}
	case KindRuntimeVisibleAnnotations, KindRuntimeInvisibleAnnotations:
		bw.U2(uint16(len(a.annotations)))
		for _, ann := range a.annotations {
			ann.Emit(bw)
		}
	case KindRuntimeVisibleParameterAnnotations, KindRuntimeInvisibleParameterAnnotations:
		bw.U1(uint8(len(a.paramAnnos)))
		for _, perParam := range a.paramAnnos {
			bw.U2(uint16(len(perParam)))
			for _, ann := range perParam {
				ann.Emit(bw)
			}
		}
	case KindRuntimeVisibleTypeAnnotations, KindRuntimeInvisibleTypeAnnotations:
		bw.U2(uint16(len(a.typeAnnos)))
		for _, ta := range a.typeAnnos {
			ta.Emit(bw)
		}
	case KindAnnotationDefault:
		a.annotationDflt.Emit(bw)
	case KindBootstrapMethods:
		bw.U2(uint16(len(a.bootstraps)))
		for _, m := range a.bootstraps {
			bw.U2(uint16(m.Method.Raw()))
			bw.U2(uint16(len(m.Arguments)))
			for _, arg := range m.Arguments {
				bw.U2(uint16(arg))
			}
		}
	case KindMethodParameters:
		bw.U1(uint8(len(a.methodParams)))
		for _, mp := range a.methodParams {
			bw.U2(uint16(mp.Name.Raw()))
			bw.U2(mp.Flags.Raw())
		}
	case KindModule:
		a.module.Emit(bw)
	case KindModulePackages:
		bw.U2(uint16(len(a.modulePackages)))
		for _, pkg := range a.modulePackages {
			bw.U2(uint16(pkg.Raw()))
		}
	case KindModuleMainClass:
		bw.U2(uint16(a.moduleMain.Raw()))
	case KindNestHost:
		bw.U2(uint16(a.nestHost.Raw()))
	case KindNestMembers:
		bw.U2(uint16(len(a.nestMembers)))
		for _, m := range a.nestMembers {
			bw.U2(uint16(m.Raw()))
		}
	}
	return buf
}

func (a NamedAttribute) emitCode(bw *sink.Writer) {
	c := a.code
	bw.U2(c.MaxStack)
	bw.U2(c.MaxLocals)
	bw.U4(uint32(len(c.Code)))
	bw.Bytes(c.Code)
	bw.U2(uint16(len(c.Exceptions)))
	for _, e := range c.Exceptions {
		bw.U2(e.StartPC)
		bw.U2(e.EndPC)
		bw.U2(e.HandlerPC)
		bw.U2(uint16(e.CatchType.Raw()))
	}
	bw.U2(uint16(len(c.Attributes)))
	for _, nested := range c.Attributes {
		nested.Emit(bw)
	}
}

// byteBuf is the minimal append-only Sink this package needs to
// pre-render a kind-specific body before writing its length prefix.
type byteBuf []byte

func (b *byteBuf) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}
