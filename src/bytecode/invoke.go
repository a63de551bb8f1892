package bytecode

import "github.com/JarvisCraft/javac-rs/src/constpool"

const maxInvokePopCount = 255

func indexOperand(raw constpool.RawIndex) (byte, byte) { return byte(raw >> 8), byte(raw) }

// Getstatic pushes a static field's value; returnSlots is 2 for long
// and double fields, 1 otherwise.
func (b *Bytecode) Getstatic(field constpool.Index[constpool.FieldRefMarker], returnSlots uint16) (Offset, error) {
	if err := b.stackUpdate(0, returnSlots); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opGetstatic)
	hi, lo := indexOperand(field.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}

// Putstatic pops a value into a static field.
func (b *Bytecode) Putstatic(field constpool.Index[constpool.FieldRefMarker], valueSlots uint16) (Offset, error) {
	if err := b.stackUpdate(valueSlots, 0); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opPutstatic)
	hi, lo := indexOperand(field.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}

// Getfield pops an objectref and pushes the named instance field's
// value.
func (b *Bytecode) Getfield(field constpool.Index[constpool.FieldRefMarker], returnSlots uint16) (Offset, error) {
	if err := b.stackUpdate(1, returnSlots); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opGetfield)
	hi, lo := indexOperand(field.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}

// Putfield pops an objectref and a value, storing into an instance
// field.
func (b *Bytecode) Putfield(field constpool.Index[constpool.FieldRefMarker], valueSlots uint16) (Offset, error) {
	if err := b.stackUpdate(1+valueSlots, 0); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opPutfield)
	hi, lo := indexOperand(field.Raw())
	b.pushOps(hi, lo)
	return offset, nil
}

// InvokeVirtual invokes an instance method by dynamic dispatch,
// popping the receiver plus argSlots and pushing returnSlots (spec
// §4.4 "Method invocation").
func (b *Bytecode) InvokeVirtual(method constpool.Index[constpool.MethodRefMarker], argSlots, returnSlots uint16) (Offset, error) {
	return b.invokeRef(opInvokevirtual, method.Raw(), argSlots+1, returnSlots)
}

// InvokeSpecial invokes a constructor, private method, or superclass
// method; always non-static, so it too pops the receiver.
func (b *Bytecode) InvokeSpecial(method constpool.Index[constpool.MethodRefMarker], argSlots, returnSlots uint16) (Offset, error) {
	return b.invokeRef(opInvokespecial, method.Raw(), argSlots+1, returnSlots)
}

// InvokeStatic invokes a static method, popping only its arguments.
func (b *Bytecode) InvokeStatic(method constpool.Index[constpool.MethodRefMarker], argSlots, returnSlots uint16) (Offset, error) {
	return b.invokeRef(opInvokestatic, method.Raw(), argSlots, returnSlots)
}

func (b *Bytecode) invokeRef(opcode byte, raw constpool.RawIndex, popCount, returnSlots uint16) (Offset, error) {
	if popCount > maxInvokePopCount {
		return 0, ErrTooMuchMethodParameters
	}
	if err := b.stackUpdate(popCount, returnSlots); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opcode)
	hi, lo := indexOperand(raw)
	b.pushOps(hi, lo)
	return offset, nil
}

// InvokeInterface invokes an interface method. argSlots excludes the
// receiver, matching InvokeVirtual/InvokeSpecial's convention; the
// JVMS §6.5.invokeinterface count operand (receiver plus arguments,
// "must not be zero") is computed as argSlots+1 and emitted as an
// explicit count byte followed by the reserved zero byte.
func (b *Bytecode) InvokeInterface(method constpool.Index[constpool.InterfaceMethodRefMarker], argSlots uint16, returnSlots uint16) (Offset, error) {
	popCount := argSlots + 1
	if popCount > maxInvokePopCount {
		return 0, ErrTooMuchMethodParameters
	}
	if err := b.stackUpdate(popCount, returnSlots); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opInvokeinterface)
	hi, lo := indexOperand(method.Raw())
	b.pushOps(hi, lo, byte(popCount), 0)
	return offset, nil
}

// InvokeDynamic invokes a call site resolved via a bootstrap method,
// popping only its declared arguments (no implicit receiver).
func (b *Bytecode) InvokeDynamic(callSite constpool.Index[constpool.InvokeDynamicMarker], argSlots, returnSlots uint16) (Offset, error) {
	if argSlots > maxInvokePopCount {
		return 0, ErrTooMuchMethodParameters
	}
	if err := b.stackUpdate(argSlots, returnSlots); err != nil {
		return 0, err
	}
	offset := b.pushInstr(opInvokedynamic)
	hi, lo := indexOperand(callSite.Raw())
	b.pushOps(hi, lo, 0, 0)
	return offset, nil
}
