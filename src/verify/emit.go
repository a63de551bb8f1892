package verify

import "github.com/JarvisCraft/javac-rs/src/sink"

// Emit writes frame_type followed by the variant-specific bytes (spec
// §4.5). The frame_type value itself is computed here, data-driven off
// which shape constructor built the Frame and (for Same/SameLocals1
// StackItem) whether offsetDelta needs the extended encoding.
func (f Frame) Emit(w *sink.Writer) {
	switch f.kind {
	case kindSame:
		if f.offsetDelta <= 63 {
			w.U1(byte(f.offsetDelta))
		} else {
			w.U1(251)
			w.U2(f.offsetDelta)
		}
	case kindSameLocals1StackItem:
		if f.offsetDelta <= 63 {
			w.U1(64 + byte(f.offsetDelta))
		} else {
			w.U1(247)
			w.U2(f.offsetDelta)
		}
		f.stackTop[0].emit(w)
	case kindChop:
		w.U1(byte(251 - f.chopCount))
		w.U2(f.offsetDelta)
	case kindAppend:
		w.U1(byte(251 + len(f.locals)))
		w.U2(f.offsetDelta)
		for _, l := range f.locals {
			l.emit(w)
		}
	case kindFull:
		w.U1(255)
		w.U2(f.offsetDelta)
		w.U2(uint16(len(f.locals)))
		for _, l := range f.locals {
			l.emit(w)
		}
		w.U2(uint16(len(f.stack)))
		for _, s := range f.stack {
			s.emit(w)
		}
	}
}

func (v VerificationType) emit(w *sink.Writer) {
	w.U1(byte(v.tag))
	switch v.tag {
	case VObject:
		w.U2(v.CpoolIndex)
	case VUninitialized:
		w.U2(v.Offset)
	}
}
