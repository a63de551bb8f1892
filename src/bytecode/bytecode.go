// Package bytecode implements the stack-balanced bytecode assembler
// described in spec §4.4: one operation per opcode, each updating the
// tracked operand-stack depth and max_stack atomically, appending its
// bytes to a monotonically growing code buffer, and returning the
// offset it began at so callers can record branch targets. Grounded on
// the original javac-rs-classfile's bytecode.rs (translated from one
// `instr_*` method per mnemonic into the same shape here), enriched by
// lookbusy1344-arm_emulator/encoder's per-family dispatch and
// fmt.Errorf-per-failure idiom.
package bytecode

import (
	"errors"

	"github.com/JarvisCraft/javac-rs/src/attribute"
	"github.com/JarvisCraft/javac-rs/src/boundedseq"
	"github.com/JarvisCraft/javac-rs/src/constpool"
	"github.com/JarvisCraft/javac-rs/src/javatypes"
)

// Offset is the byte position within the code buffer an instruction
// began at, suitable for recording as a future branch target.
type Offset = uint32

var (
	ErrOutOfSpace              = errors.New("bytecode: code buffer exceeds u4 length bound")
	ErrCorruptedStack          = errors.New("bytecode: operand-stack underflow or width mismatch")
	ErrLocalIndexOutOfBounds   = errors.New("bytecode: local variable index exceeds max_locals")
	ErrTooMuchMethodParameters = errors.New("bytecode: too many arguments for a method invocation instruction")
	ErrInvalidType             = errors.New("bytecode: type not legal in this context")
)

// Bytecode accumulates one method body's instructions, tracking
// max_stack/max_locals as it goes (spec §4.4 "Contract"). code,
// exceptions, and attributes are bounded sequences (spec §4.2/§4.4: "a
// u4-bounded byte sequence for code, a u2-bounded sequence of exception
// entries... a u2-bounded sequence of nested attributes"), matching the
// same boundedseq.Seq idiom already wired into annotation/moduleattr, so
// a body that runs past its wire-format width fails deterministically
// instead of silently truncating at emission.
type Bytecode struct {
	maxStack  uint16
	maxLocals uint16
	code      *boundedseq.Seq[byte]
	stack     uint16
	codeErr   error // sticky, set by the first pushInstr/pushOps that overflows code

	exceptions *boundedseq.Seq[attribute.ExceptionTableEntry]
	attributes *boundedseq.Seq[attribute.NamedAttribute]
}

// New starts an empty method body bounded to maxLocals local-variable
// slots.
func New(maxLocals uint16) *Bytecode {
	return &Bytecode{
		maxLocals:  maxLocals,
		code:       boundedseq.New[byte](boundedseq.W4),
		exceptions: boundedseq.New[attribute.ExceptionTableEntry](boundedseq.W2),
		attributes: boundedseq.New[attribute.NamedAttribute](boundedseq.W2),
	}
}

// Offset reports the current code buffer length — the offset the next
// instruction will begin at.
func (b *Bytecode) Offset() Offset { return uint32(b.code.Len()) }

// MaxStack reports the peak operand-stack depth observed so far.
func (b *Bytecode) MaxStack() uint16 { return b.maxStack }

// MaxLocals reports the local-variable slot bound this body was built
// with.
func (b *Bytecode) MaxLocals() uint16 { return b.maxLocals }

// Stack reports the current (not peak) operand-stack depth, useful for
// asserting balance at a join point before patching a forward branch.
func (b *Bytecode) Stack() uint16 { return b.stack }

func (b *Bytecode) checkLocalIndex(index uint16) error {
	if index >= b.maxLocals {
		javatypes.Errorf("bytecode: local index %d exceeds max_locals %d", index, b.maxLocals)
		return ErrLocalIndexOutOfBounds
	}
	return nil
}

// stackUpdate applies a (pop, push) delta atomically: on underflow
// neither stack nor maxStack is changed (spec §4.4.2: "fails with
// CorruptedStack if pop would underflow").
func (b *Bytecode) stackUpdate(pop, push uint16) error {
	if pop > b.stack {
		javatypes.Errorf("bytecode: stack underflow popping %d with only %d present", pop, b.stack)
		return ErrCorruptedStack
	}
	next := b.stack - pop + push
	b.stack = next
	if next > b.maxStack {
		b.maxStack = next
	}
	return nil
}

// setCodeErr records the first code-buffer overflow, mirroring
// sink.Writer's own sticky-error idiom: once set, further pushInstr/
// pushOps calls are no-ops and Finalize reports it.
func (b *Bytecode) setCodeErr(err error) {
	if b.codeErr == nil {
		javatypes.Errorf("bytecode: %v", err)
		b.codeErr = err
	}
}

func (b *Bytecode) pushInstr(opcode byte) Offset {
	offset := b.Offset()
	if _, err := b.code.Push(opcode); err != nil {
		b.setCodeErr(err)
	}
	return offset
}

func (b *Bytecode) pushOps(operands ...byte) {
	for _, op := range operands {
		if _, err := b.code.Push(op); err != nil {
			b.setCodeErr(err)
			return
		}
	}
}

func slotSize(fat bool) uint16 {
	if fat {
		return 2
	}
	return 1
}

// accessLocal picks the local-index form (spec §4.4 "Local-index form
// selection"): the short specific-index opcode for 0..=3, the generic
// single-byte form for <256, otherwise the wide-prefixed two-byte form.
func (b *Bytecode) accessLocal(genericOpcode, specific0Opcode byte, index uint16) Offset {
	switch {
	case index <= 3:
		return b.pushInstr(specific0Opcode + byte(index))
	case index < 256:
		offset := b.pushInstr(genericOpcode)
		b.pushOps(byte(index))
		return offset
	default:
		offset := b.pushInstr(opWide)
		b.pushOps(genericOpcode, byte(index>>8), byte(index))
		return offset
	}
}

func (b *Bytecode) instrLoad(genericOpcode, specific0Opcode byte, index uint16, fat bool) (Offset, error) {
	if err := b.checkLocalIndex(index); err != nil {
		return 0, err
	}
	if err := b.stackUpdate(0, slotSize(fat)); err != nil {
		return 0, err
	}
	return b.accessLocal(genericOpcode, specific0Opcode, index), nil
}

func (b *Bytecode) instrStore(genericOpcode, specific0Opcode byte, index uint16, fat bool) (Offset, error) {
	if err := b.checkLocalIndex(index); err != nil {
		return 0, err
	}
	if err := b.stackUpdate(slotSize(fat), 0); err != nil {
		return 0, err
	}
	return b.accessLocal(genericOpcode, specific0Opcode, index), nil
}

// simple emits a fixed, operand-less opcode whose stack effect is a
// constant (pop, push) pair — the common case covering arithmetic,
// conversions, array element access, stack manipulation, and monitor
// instructions (spec §9: "tag computation should be data-driven... when
// the mapping is dense"; the per-mnemonic exported methods in this
// package are thin wrappers over this one shared path and the
// opcodeEffects table in table.go).
func (b *Bytecode) simple(opcode byte) (Offset, error) {
	eff, ok := opcodeEffects[opcode]
	if !ok {
		panic("bytecode: opcode missing from opcodeEffects table")
	}
	if err := b.stackUpdate(eff.pop, eff.push); err != nil {
		return 0, err
	}
	return b.pushInstr(opcode), nil
}

// AddException appends a row to the exception table this body will be
// finalized with, failing deterministically once the table is already
// at its u2 bound.
func (b *Bytecode) AddException(startPC, endPC, handlerPC uint16, catchType constpool.Index[constpool.ClassMarker]) error {
	_, err := b.exceptions.Push(attribute.ExceptionTableEntry{
		StartPC: startPC, EndPC: endPC, HandlerPC: handlerPC, CatchType: catchType,
	})
	if err != nil {
		javatypes.Errorf("bytecode: %v", err)
	}
	return err
}

// AddAttribute appends a nested attribute (e.g. LineNumberTable) to the
// Code attribute this body will be finalized into, failing
// deterministically once the attribute list is already at its u2 bound.
func (b *Bytecode) AddAttribute(attr attribute.NamedAttribute) error {
	_, err := b.attributes.Push(attr)
	if err != nil {
		javatypes.Errorf("bytecode: %v", err)
	}
	return err
}

// Finalize converts the accumulated instructions into a Code attribute
// (spec §4.4 "Finalization"): max_stack, max_locals, code bytes,
// exception table, and nested attributes, all already resolved.
func (b *Bytecode) Finalize(p *constpool.Pool) (attribute.NamedAttribute, error) {
	if b.codeErr != nil {
		return attribute.NamedAttribute{}, b.codeErr
	}
	return attribute.NewCode(p, attribute.CodeBody{
		MaxStack:   b.maxStack,
		MaxLocals:  b.maxLocals,
		Code:       b.code.All(),
		Exceptions: b.exceptions.All(),
		Attributes: b.attributes.All(),
	})
}
