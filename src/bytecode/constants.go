package bytecode

import "github.com/JarvisCraft/javac-rs/src/constpool"

// AconstNull pushes the null reference.
func (b *Bytecode) AconstNull() (Offset, error) { return b.simple(opAconstNull) }

// IconstM1 through Iconst5 push the int constants -1..5 using the
// dedicated zero-operand opcodes (spec §4.4 "small-int fast paths").
func (b *Bytecode) IconstM1() (Offset, error) { return b.simple(opIconstM1) }
func (b *Bytecode) Iconst0() (Offset, error)  { return b.simple(opIconst0) }
func (b *Bytecode) Iconst1() (Offset, error)  { return b.simple(opIconst0 + 1) }
func (b *Bytecode) Iconst2() (Offset, error)  { return b.simple(opIconst0 + 2) }
func (b *Bytecode) Iconst3() (Offset, error)  { return b.simple(opIconst0 + 3) }
func (b *Bytecode) Iconst4() (Offset, error)  { return b.simple(opIconst0 + 4) }
func (b *Bytecode) Iconst5() (Offset, error)  { return b.simple(opIconst0 + 5) }

// Lconst0 and Lconst1 push the long constants 0 and 1.
func (b *Bytecode) Lconst0() (Offset, error) { return b.simple(opLconst0) }
func (b *Bytecode) Lconst1() (Offset, error) { return b.simple(opLconst0 + 1) }

// Fconst0 through Fconst2 push the float constants 0.0, 1.0, 2.0.
func (b *Bytecode) Fconst0() (Offset, error) { return b.simple(opFconst0) }
func (b *Bytecode) Fconst1() (Offset, error) { return b.simple(opFconst0 + 1) }
func (b *Bytecode) Fconst2() (Offset, error) { return b.simple(opFconst0 + 2) }

// Dconst0 and Dconst1 push the double constants 0.0 and 1.0.
func (b *Bytecode) Dconst0() (Offset, error) { return b.simple(opDconst0) }
func (b *Bytecode) Dconst1() (Offset, error) { return b.simple(opDconst0 + 1) }

// Bipush pushes a sign-extended byte immediate as an int.
func (b *Bytecode) Bipush(value int8) (Offset, error) {
	if err := b.stackUpdate(0, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opBipush)
	b.pushOps(byte(value))
	return offset, nil
}

// Sipush pushes a sign-extended short immediate as an int.
func (b *Bytecode) Sipush(value int16) (Offset, error) {
	if err := b.stackUpdate(0, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opSipush)
	u := uint16(value)
	b.pushOps(byte(u>>8), byte(u))
	return offset, nil
}

// ldc picks the narrow (one-byte index) or wide (two-byte index)
// form of ldc depending on how far into the pool the entry landed
// (spec §4.4 "branch/index-width selection").
func (b *Bytecode) ldc(raw constpool.RawIndex) (Offset, error) {
	if err := b.stackUpdate(0, 1); err != nil {
		return 0, err
	}
	if raw < 256 {
		offset := b.pushInstr(opLdc)
		b.pushOps(byte(raw))
		return offset, nil
	}
	offset := b.pushInstr(opLdcW)
	b.pushOps(byte(raw>>8), byte(raw))
	return offset, nil
}

// LdcInt loads an int constant from the pool.
func (b *Bytecode) LdcInt(idx constpool.Index[constpool.IntegerMarker]) (Offset, error) {
	return b.ldc(idx.Raw())
}

// LdcFloat loads a float constant from the pool.
func (b *Bytecode) LdcFloat(idx constpool.Index[constpool.FloatMarker]) (Offset, error) {
	return b.ldc(idx.Raw())
}

// LdcString loads a String constant from the pool.
func (b *Bytecode) LdcString(idx constpool.Index[constpool.StringMarker]) (Offset, error) {
	return b.ldc(idx.Raw())
}

// LdcClass loads a Class constant from the pool (for Class literals,
// JVMS §5.1 "resolved to an instance of Class").
func (b *Bytecode) LdcClass(idx constpool.Index[constpool.ClassMarker]) (Offset, error) {
	return b.ldc(idx.Raw())
}

// Ldc2Long loads a long constant using the wide-only ldc2_w form
// (JVMS §6.5.ldc2_w: long and double never use the narrow ldc).
func (b *Bytecode) Ldc2Long(idx constpool.Index[constpool.LongMarker]) (Offset, error) {
	if err := b.stackUpdate(0, 2); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opLdc2W)
	raw := idx.Raw()
	b.pushOps(byte(raw>>8), byte(raw))
	return offset, nil
}

// Ldc2Double loads a double constant using the wide-only ldc2_w form.
func (b *Bytecode) Ldc2Double(idx constpool.Index[constpool.DoubleMarker]) (Offset, error) {
	if err := b.stackUpdate(0, 2); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opLdc2W)
	raw := idx.Raw()
	b.pushOps(byte(raw>>8), byte(raw))
	return offset, nil
}
