package constpool

// StoreFieldRef interns a FieldRef entry pointing at class (already
// interned) and a freshly interned (name, descriptor) NameAndType.
func (p *Pool) StoreFieldRef(class Index[ClassMarker], name, descriptor string) (Index[FieldRefMarker], error) {
	nat, err := p.StoreNameAndType(name, descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagFieldRef, classIdx: RawIndex(class), natIdx: RawIndex(nat)})
	return Index[FieldRefMarker](idx), err
}

// StoreMethodRef interns a MethodRef entry pointing at class and a
// freshly interned (name, descriptor) NameAndType.
func (p *Pool) StoreMethodRef(class Index[ClassMarker], name, descriptor string) (Index[MethodRefMarker], error) {
	nat, err := p.StoreNameAndType(name, descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagMethodRef, classIdx: RawIndex(class), natIdx: RawIndex(nat)})
	return Index[MethodRefMarker](idx), err
}

// StoreInterfaceMethodRef interns an InterfaceMethodRef entry pointing at
// class and a freshly interned (name, descriptor) NameAndType.
func (p *Pool) StoreInterfaceMethodRef(class Index[ClassMarker], name, descriptor string) (Index[InterfaceMethodRefMarker], error) {
	nat, err := p.StoreNameAndType(name, descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagInterfaceMethodRef, classIdx: RawIndex(class), natIdx: RawIndex(nat)})
	return Index[InterfaceMethodRefMarker](idx), err
}

// StoreMethodHandleToField interns a MethodHandle whose referent is a
// FieldRef (refKind must be one of REF_getField/getStatic/putField/
// putStatic). Fails with ErrIllegalMethodHandle otherwise (spec §5
// supplement #2).
func (p *Pool) StoreMethodHandleToField(kind RefKind, field Index[FieldRefMarker]) (Index[MethodHandleMarker], error) {
	if !refKindLegalAgainst(kind, TagFieldRef) {
		return 0, ErrIllegalMethodHandle
	}
	idx, err := p.findOrPush(entry{tag: TagMethodHandle, refKind: kind, refIndex: RawIndex(field)})
	return Index[MethodHandleMarker](idx), err
}

// StoreMethodHandleToMethod interns a MethodHandle whose referent is a
// MethodRef (refKind must be one of REF_invokeVirtual/invokeStatic/
// invokeSpecial/newInvokeSpecial).
func (p *Pool) StoreMethodHandleToMethod(kind RefKind, method Index[MethodRefMarker]) (Index[MethodHandleMarker], error) {
	if !refKindLegalAgainst(kind, TagMethodRef) {
		return 0, ErrIllegalMethodHandle
	}
	idx, err := p.findOrPush(entry{tag: TagMethodHandle, refKind: kind, refIndex: RawIndex(method)})
	return Index[MethodHandleMarker](idx), err
}

// StoreMethodHandleToInterfaceMethod interns a MethodHandle whose
// referent is an InterfaceMethodRef (refKind must be
// REF_invokeInterface, or REF_invokeVirtual/invokeStatic/invokeSpecial/
// newInvokeSpecial under classfile versions that permit interface-method
// referents for those kinds).
func (p *Pool) StoreMethodHandleToInterfaceMethod(kind RefKind, method Index[InterfaceMethodRefMarker]) (Index[MethodHandleMarker], error) {
	if !refKindLegalAgainst(kind, TagInterfaceMethodRef) {
		return 0, ErrIllegalMethodHandle
	}
	idx, err := p.findOrPush(entry{tag: TagMethodHandle, refKind: kind, refIndex: RawIndex(method)})
	return Index[MethodHandleMarker](idx), err
}

// StoreDynamic interns a Dynamic (dynamic constant) entry. bootstrapIdx
// is a raw index into the class's bootstrap_methods table, not the
// constant pool (spec §9 Open Question: "the bootstrap-methods table is
// addressed by its own index space, not the constant pool").
func (p *Pool) StoreDynamic(bootstrapIdx uint16, name, descriptor string) (Index[DynamicMarker], error) {
	nat, err := p.StoreNameAndType(name, descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagDynamic, bootstrapMethodAttrIdx: bootstrapIdx, dynamicNatIdx: RawIndex(nat)})
	return Index[DynamicMarker](idx), err
}

// StoreInvokeDynamic interns an InvokeDynamic entry, analogous to
// StoreDynamic.
func (p *Pool) StoreInvokeDynamic(bootstrapIdx uint16, name, descriptor string) (Index[InvokeDynamicMarker], error) {
	nat, err := p.StoreNameAndType(name, descriptor)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagInvokeDynamic, bootstrapMethodAttrIdx: bootstrapIdx, dynamicNatIdx: RawIndex(nat)})
	return Index[InvokeDynamicMarker](idx), err
}

// StoreModule interns a Module entry naming a module.
func (p *Pool) StoreModule(name string) (Index[ModuleMarker], error) {
	nameIdx, err := p.StoreUtf8(name)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagModule, nameIdx: RawIndex(nameIdx)})
	return Index[ModuleMarker](idx), err
}

// StorePackage interns a Package entry naming a package.
func (p *Pool) StorePackage(name string) (Index[PackageMarker], error) {
	nameIdx, err := p.StoreUtf8(name)
	if err != nil {
		return 0, err
	}
	idx, err := p.findOrPush(entry{tag: TagPackage, nameIdx: RawIndex(nameIdx)})
	return Index[PackageMarker](idx), err
}

// LoadableValue is the scalar union spec §4.3 calls a "loadable value"
// (integer, float, long, double, string) — whichever an ldc/ldc2_w
// instruction can push. StoreLoadable materializes it into whichever
// scalar CP entry it demands and returns the untyped index, since
// ldc-family instructions accept several referent kinds interchangeably.
type LoadableValue struct {
	kind loadableKind
	i    int32
	f    float32
	l    int64
	d    float64
	s    string
}

type loadableKind int

const (
	loadableInt loadableKind = iota
	loadableFloat
	loadableLong
	loadableDouble
	loadableString
)

func LoadableInt(v int32) LoadableValue       { return LoadableValue{kind: loadableInt, i: v} }
func LoadableFloat(v float32) LoadableValue   { return LoadableValue{kind: loadableFloat, f: v} }
func LoadableLong(v int64) LoadableValue      { return LoadableValue{kind: loadableLong, l: v} }
func LoadableDouble(v float64) LoadableValue  { return LoadableValue{kind: loadableDouble, d: v} }
func LoadableString(v string) LoadableValue   { return LoadableValue{kind: loadableString, s: v} }

// StoreLoadable interns v as whichever scalar entry kind it demands and
// returns the untyped, serializable index plus the tag of the entry it
// produced (callers that need to pick ldc vs. ldc2_w check the tag).
func (p *Pool) StoreLoadable(v LoadableValue) (RawIndex, Tag, error) {
	switch v.kind {
	case loadableInt:
		idx, err := p.StoreInteger(v.i)
		return RawIndex(idx), TagInteger, err
	case loadableFloat:
		idx, err := p.StoreFloat(v.f)
		return RawIndex(idx), TagFloat, err
	case loadableLong:
		idx, err := p.StoreLong(v.l)
		return RawIndex(idx), TagLong, err
	case loadableDouble:
		idx, err := p.StoreDouble(v.d)
		return RawIndex(idx), TagDouble, err
	case loadableString:
		idx, err := p.StoreString(v.s)
		return RawIndex(idx), TagString, err
	default:
		panic("constpool: invalid LoadableValue")
	}
}
