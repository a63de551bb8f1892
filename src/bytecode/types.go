package bytecode

import "github.com/JarvisCraft/javac-rs/src/constpool"

// New allocates an uninitialized instance of class, pushing its
// reference; the constructor is invoked separately via InvokeSpecial.
func (b *Bytecode) New(class constpool.Index[constpool.ClassMarker]) (Offset, error) {
	if err := b.stackUpdate(0, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opNew)
	hi, lo := indexOperand(class.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}

// Checkcast verifies the reference on top of the stack is assignable
// to class, raising ClassCastException at run time otherwise; the
// stack depth is unaffected.
func (b *Bytecode) Checkcast(class constpool.Index[constpool.ClassMarker]) (Offset, error) {
	if err := b.stackUpdate(1, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opCheckcast)
	hi, lo := indexOperand(class.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}

// Instanceof pops a reference and pushes 1 or 0 depending on whether
// it is assignable to class.
func (b *Bytecode) Instanceof(class constpool.Index[constpool.ClassMarker]) (Offset, error) {
	if err := b.stackUpdate(1, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opInstanceof)
	hi, lo := indexOperand(class.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}
