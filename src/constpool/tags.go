package constpool

// Tag is a constant-pool entry's wire tag byte (JVMS §4.4, spec §3). The
// numeric values are load-bearing: they are what actually gets written
// to the byte stream, so the table is kept flat and data-driven rather
// than assigned via iota (spec §9: "tag computation should be
// data-driven... whenever the mapping is dense").
type Tag byte

const (
	tagEmpty              Tag = 0 // never written; slot 0 and long/double fillers
	TagUtf8                Tag = 1
	TagInteger             Tag = 3
	TagFloat               Tag = 4
	TagLong                Tag = 5
	TagDouble              Tag = 6
	TagClass               Tag = 7
	TagString              Tag = 8
	TagFieldRef            Tag = 9
	TagMethodRef           Tag = 10
	TagInterfaceMethodRef  Tag = 11
	TagNameAndType         Tag = 12
	TagMethodHandle        Tag = 15
	TagMethodType          Tag = 16
	TagDynamic             Tag = 17
	TagInvokeDynamic       Tag = 18
	TagModule              Tag = 19
	TagPackage             Tag = 20
)

// RefKind is one of the nine CONSTANT_MethodHandle reference kinds
// (JVMS §5.4.3.5, Table 5.4.3.5-A / spec §3 "MethodHandle=15").
type RefKind byte

const (
	RefGetField         RefKind = 1
	RefGetStatic        RefKind = 2
	RefPutField         RefKind = 3
	RefPutStatic        RefKind = 4
	RefInvokeVirtual    RefKind = 5
	RefInvokeStatic     RefKind = 6
	RefInvokeSpecial    RefKind = 7
	RefNewInvokeSpecial RefKind = 8
	RefInvokeInterface  RefKind = 9
)

// refKindLegalAgainst enumerates which RefKind values may reference which
// CP entry kind, per the original javac-rs constpool.rs table (spec
// §5 supplement #2: "MethodHandle reference-kind legality table").
// JVMS §4.4.8 additionally requires REF_newInvokeSpecial's referent to be
// a <init> method and disallows it (and REF_invokeInterface) from
// pointing at an interface method when the reference kind says
// otherwise; that name-based check is left to formatCheck-style callers
// with access to the referenced name, since this table only knows entry
// kinds.
func refKindLegalAgainst(kind RefKind, referent Tag) bool {
	switch kind {
	case RefGetField, RefGetStatic, RefPutField, RefPutStatic:
		return referent == TagFieldRef
	case RefInvokeVirtual, RefInvokeStatic, RefInvokeSpecial, RefNewInvokeSpecial:
		return referent == TagMethodRef || referent == TagInterfaceMethodRef
	case RefInvokeInterface:
		return referent == TagInterfaceMethodRef
	default:
		return false
	}
}
