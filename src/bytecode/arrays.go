package bytecode

import "github.com/JarvisCraft/javac-rs/src/constpool"

// Iaload through Saload push an array element of the named primitive
// or reference type onto the stack.
func (b *Bytecode) Iaload() (Offset, error) { return b.simple(opIaload) }
func (b *Bytecode) Laload() (Offset, error) { return b.simple(opLaload) }
func (b *Bytecode) Faload() (Offset, error) { return b.simple(opFaload) }
func (b *Bytecode) Daload() (Offset, error) { return b.simple(opDaload) }
func (b *Bytecode) Aaload() (Offset, error) { return b.simple(opAaload) }
func (b *Bytecode) Baload() (Offset, error) { return b.simple(opBaload) }
func (b *Bytecode) Caload() (Offset, error) { return b.simple(opCaload) }
func (b *Bytecode) Saload() (Offset, error) { return b.simple(opSaload) }

// Iastore through Sastore store a value into an array element.
func (b *Bytecode) Iastore() (Offset, error) { return b.simple(opIastore) }
func (b *Bytecode) Lastore() (Offset, error) { return b.simple(opLastore) }
func (b *Bytecode) Fastore() (Offset, error) { return b.simple(opFastore) }
func (b *Bytecode) Dastore() (Offset, error) { return b.simple(opDastore) }
func (b *Bytecode) Aastore() (Offset, error) { return b.simple(opAastore) }
func (b *Bytecode) Bastore() (Offset, error) { return b.simple(opBastore) }
func (b *Bytecode) Castore() (Offset, error) { return b.simple(opCastore) }
func (b *Bytecode) Sastore() (Offset, error) { return b.simple(opSastore) }

// Arraylength pushes the length of the array reference on top of the
// stack.
func (b *Bytecode) Arraylength() (Offset, error) { return b.simple(opArraylength) }

// Newarray allocates a new array of a primitive component type
// (spec §4.4 "newarray type enum"); atype values outside the eight
// primitive descriptors are rejected before any byte is emitted.
func (b *Bytecode) Newarray(atype ArrayType) (Offset, error) {
	switch atype {
	case ArrayBoolean, ArrayChar, ArrayFloat, ArrayDouble, ArrayByte, ArrayShort, ArrayInt, ArrayLong:
	default:
		return 0, ErrInvalidType
	}
	if err := b.stackUpdate(1, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opNewarray)
	b.pushOps(byte(atype))
	return offset, nil
}

// Anewarray allocates a new array of a reference component type.
func (b *Bytecode) Anewarray(class constpool.Index[constpool.ClassMarker]) (Offset, error) {
	if err := b.stackUpdate(1, 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opAnewarray)
	raw := class.Raw()
	b.pushOps(byte(raw>>8), byte(raw))
	return offset, nil
}

// Multianewarray allocates a multi-dimensional array, popping one
// dimension-size int per declared dimension (JVMS §6.5.multianewarray).
func (b *Bytecode) Multianewarray(class constpool.Index[constpool.ClassMarker], dimensions uint8) (Offset, error) {
	if dimensions == 0 {
		return 0, ErrInvalidType
	}
	if err := b.stackUpdate(uint16(dimensions), 1); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opMultianewarray)
	raw := class.Raw()
	b.pushOps(byte(raw>>8), byte(raw), dimensions)
	return offset, nil
}
