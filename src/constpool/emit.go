package constpool

import "github.com/JarvisCraft/javac-rs/src/sink"

// Emit writes the pool's entries in insertion order per spec §6.1: tag
// byte then body for each occupied slot; Empty slots (slot 0 and the
// filler after every Long/Double) emit nothing. The constant_pool_count
// u2 itself is the caller's responsibility (spec: it is written by the
// enclosing class header, immediately before the entries), obtained via
// Count.
func (p *Pool) Emit(w *sink.Writer) {
	for i := 1; i < len(p.entries); i++ {
		e := p.entries[i]
		if e.tag == tagEmpty {
			continue
		}
		w.U1(byte(e.tag))
		switch e.tag {
		case TagUtf8:
			w.U2(uint16(len(e.utf8)))
			w.Bytes([]byte(e.utf8))
		case TagInteger:
			w.I4(e.intVal)
		case TagFloat:
			w.F4(e.floatVal)
		case TagLong:
			w.I8(e.longVal)
		case TagDouble:
			w.F8(e.doubleVal)
		case TagClass:
			w.U2(uint16(e.nameIdx))
		case TagString:
			w.U2(uint16(e.nameIdx))
		case TagFieldRef, TagMethodRef, TagInterfaceMethodRef:
			w.U2(uint16(e.classIdx))
			w.U2(uint16(e.natIdx))
		case TagNameAndType:
			w.U2(uint16(e.ntNameIdx))
			w.U2(uint16(e.ntDescIdx))
		case TagMethodHandle:
			w.U1(byte(e.refKind))
			w.U2(uint16(e.refIndex))
		case TagMethodType:
			w.U2(uint16(e.methodTypeDescIdx))
		case TagDynamic, TagInvokeDynamic:
			w.U2(e.bootstrapMethodAttrIdx)
			w.U2(uint16(e.dynamicNatIdx))
		case TagModule:
			w.U2(uint16(e.nameIdx))
		case TagPackage:
			w.U2(uint16(e.nameIdx))
		}
	}
}
