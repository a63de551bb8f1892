package bytecode

// branchOffset computes the signed delta JVMS §6.5 branch instructions
// encode: relative to the address of the opcode byte itself.
func branchOffset(instrStart Offset, target int32) int32 {
	return target - int32(instrStart)
}

// gotoLike emits goto/jsr, selecting the 16-bit form when the relative
// offset fits and the 32-bit `_w` form otherwise (spec §4.4 "Branch
// width").
func (b *Bytecode) gotoLike(shortOp, wideOp byte, pop, push uint16, target int32) (Offset, error) {
	if err := b.stackUpdate(pop, push); err != nil {
		return 0, err
	}
	offset := b.Offset()
	rel := branchOffset(offset, target)
	if rel >= -32768 && rel <= 32767 {
		b.pushInstr(shortOp)
		u := uint16(int16(rel))
		b.pushOps(byte(u>>8), byte(u))
		return offset, nil
	}
	b.pushInstr(wideOp)
	ur := uint32(rel)
	b.pushOps(byte(ur>>24), byte(ur>>16), byte(ur>>8), byte(ur))
	return offset, nil
}

// Goto transfers control unconditionally to target (an absolute code
// offset, e.g. one previously captured via Offset()).
func (b *Bytecode) Goto(target int32) (Offset, error) {
	return b.gotoLike(opGoto, opGotoW, 0, 0, target)
}

// Jsr pushes a return address and jumps to target. Deprecated by the
// JVM since Java 7 but still a legal, assemblable instruction.
func (b *Bytecode) Jsr(target int32) (Offset, error) {
	return b.gotoLike(opJsr, opJsrW, 0, 1, target)
}

// Ret returns from a subroutine entered via Jsr, reading the return
// address from the named local variable slot.
func (b *Bytecode) Ret(index uint16) (Offset, error) {
	if err := b.checkLocalIndex(index); err != nil {
		return 0, err
	}
	if index < 256 {
		offset := b.pushInstr(opRet)
		b.pushOps(byte(index))
		return offset, nil
	}
	offset := b.pushInstr(opWide)
	b.pushOps(opRet, byte(index>>8), byte(index))
	return offset, nil
}

// ifBranch emits a conditional branch; if-family opcodes have no wide
// form (JVMS §6.5 defines no if*_w instructions), so the offset must
// fit in 16 bits.
func (b *Bytecode) ifBranch(opcode byte, pop uint16, target int32) (Offset, error) {
	if err := b.stackUpdate(pop, 0); err != nil {
		return 0, err
	}
	offset := b.Offset()
	rel := branchOffset(offset, target)
	if rel < -32768 || rel > 32767 {
		return 0, ErrOutOfSpace
	}
	b.pushInstr(opcode)
	u := uint16(int16(rel))
	b.pushOps(byte(u>>8), byte(u))
	return offset, nil
}

// Ifeq through Ifle compare the top int against zero.
func (b *Bytecode) Ifeq(target int32) (Offset, error) { return b.ifBranch(opIfeq, 1, target) }
func (b *Bytecode) Ifne(target int32) (Offset, error) { return b.ifBranch(opIfne, 1, target) }
func (b *Bytecode) Iflt(target int32) (Offset, error) { return b.ifBranch(opIflt, 1, target) }
func (b *Bytecode) Ifge(target int32) (Offset, error) { return b.ifBranch(opIfge, 1, target) }
func (b *Bytecode) Ifgt(target int32) (Offset, error) { return b.ifBranch(opIfgt, 1, target) }
func (b *Bytecode) Ifle(target int32) (Offset, error) { return b.ifBranch(opIfle, 1, target) }

// IfIcmpeq through IfIcmple compare two ints.
func (b *Bytecode) IfIcmpeq(target int32) (Offset, error) { return b.ifBranch(opIfIcmpeq, 2, target) }
func (b *Bytecode) IfIcmpne(target int32) (Offset, error) { return b.ifBranch(opIfIcmpne, 2, target) }
func (b *Bytecode) IfIcmplt(target int32) (Offset, error) { return b.ifBranch(opIfIcmplt, 2, target) }
func (b *Bytecode) IfIcmpge(target int32) (Offset, error) { return b.ifBranch(opIfIcmpge, 2, target) }
func (b *Bytecode) IfIcmpgt(target int32) (Offset, error) { return b.ifBranch(opIfIcmpgt, 2, target) }
func (b *Bytecode) IfIcmple(target int32) (Offset, error) { return b.ifBranch(opIfIcmple, 2, target) }

// IfAcmpeq and IfAcmpne compare two references for identity.
func (b *Bytecode) IfAcmpeq(target int32) (Offset, error) { return b.ifBranch(opIfAcmpeq, 2, target) }
func (b *Bytecode) IfAcmpne(target int32) (Offset, error) { return b.ifBranch(opIfAcmpne, 2, target) }

// Ifnull and Ifnonnull test a reference against null.
func (b *Bytecode) Ifnull(target int32) (Offset, error)    { return b.ifBranch(opIfnull, 1, target) }
func (b *Bytecode) Ifnonnull(target int32) (Offset, error) { return b.ifBranch(opIfnonnull, 1, target) }

// PatchBranch overwrites a previously emitted branch's operand bytes
// with the relative offset to target, for the case where the target
// was not yet known at emission time (spec §4.4 "State machine": "the
// caller is free to append... and later patch bytes at a stored
// offset"). at must be the offset a Goto/Jsr/if* call returned; the
// width (2 or 4 operand bytes) is inferred from the opcode already
// written there.
func (b *Bytecode) PatchBranch(at Offset, target int32) error {
	opcode, ok := b.code.At(int(at))
	if !ok {
		return ErrOutOfSpace
	}
	rel := branchOffset(at, target)
	switch opcode {
	case opGotoW, opJsrW:
		b1, b2, b3, b4 := b.code.AtPtr(int(at)+1), b.code.AtPtr(int(at)+2), b.code.AtPtr(int(at)+3), b.code.AtPtr(int(at)+4)
		if b1 == nil || b2 == nil || b3 == nil || b4 == nil {
			return ErrOutOfSpace
		}
		ur := uint32(rel)
		*b1, *b2, *b3, *b4 = byte(ur>>24), byte(ur>>16), byte(ur>>8), byte(ur)
		return nil
	default:
		if rel < -32768 || rel > 32767 {
			return ErrOutOfSpace
		}
		b1, b2 := b.code.AtPtr(int(at)+1), b.code.AtPtr(int(at)+2)
		if b1 == nil || b2 == nil {
			return ErrOutOfSpace
		}
		u := uint16(int16(rel))
		*b1, *b2 = byte(u>>8), byte(u)
		return nil
	}
}
