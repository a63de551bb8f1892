package boundedseq

import "github.com/JarvisCraft/javac-rs/src/sink"

// Emit writes the sequence's length prefix (sized per Width) followed by
// each element in insertion order, via writeElem. This is how every
// classfile array (interfaces, fields, methods, attributes, exception
// tables, ...) is serialized per spec §6.1.
func (s *Seq[T]) Emit(w *sink.Writer, writeElem func(*sink.Writer, T)) {
	switch s.width {
	case W1:
		w.U1(uint8(len(s.items)))
	case W2:
		w.U2(uint16(len(s.items)))
	case W4:
		w.U4(uint32(len(s.items)))
	}
	for _, item := range s.items {
		writeElem(w, item)
	}
}
