package bytecode

// Iload, Lload, Fload, Dload and Aload push the named local variable
// slot, selecting the short/generic/wide encoding via accessLocal.
func (b *Bytecode) Iload(index uint16) (Offset, error) {
	return b.instrLoad(opIload, opIload0, index, false)
}
func (b *Bytecode) Lload(index uint16) (Offset, error) {
	return b.instrLoad(opLload, opLload0, index, true)
}
func (b *Bytecode) Fload(index uint16) (Offset, error) {
	return b.instrLoad(opFload, opFload0, index, false)
}
func (b *Bytecode) Dload(index uint16) (Offset, error) {
	return b.instrLoad(opDload, opDload0, index, true)
}
func (b *Bytecode) Aload(index uint16) (Offset, error) {
	return b.instrLoad(opAload, opAload0, index, false)
}

// Istore, Lstore, Fstore, Dstore and Astore pop the top of stack into
// the named local variable slot.
func (b *Bytecode) Istore(index uint16) (Offset, error) {
	return b.instrStore(opIstore, opIstore0, index, false)
}
func (b *Bytecode) Lstore(index uint16) (Offset, error) {
	return b.instrStore(opLstore, opLstore0, index, true)
}
func (b *Bytecode) Fstore(index uint16) (Offset, error) {
	return b.instrStore(opFstore, opFstore0, index, false)
}
func (b *Bytecode) Dstore(index uint16) (Offset, error) {
	return b.instrStore(opDstore, opDstore0, index, true)
}
func (b *Bytecode) Astore(index uint16) (Offset, error) {
	return b.instrStore(opAstore, opAstore0, index, false)
}

// Iinc adds a constant to a local int variable without touching the
// operand stack, widening to the wide-prefixed four-byte operand form
// when either the index or the delta overflows a signed/unsigned byte
// (JVMS §6.5.iinc / §6.5.wide).
func (b *Bytecode) Iinc(index uint16, delta int16) (Offset, error) {
	if err := b.checkLocalIndex(index); err != nil {
		return 0, err
	}
	if index < 256 && delta >= -128 && delta <= 127 {
		offset := b.pushInstr(opIinc)
		b.pushOps(byte(index), byte(int8(delta)))
		return offset, nil
	}
	offset := b.pushInstr(opWide)
	d := uint16(delta)
	b.pushOps(opIinc, byte(index>>8), byte(index), byte(d>>8), byte(d))
	return offset, nil
}
