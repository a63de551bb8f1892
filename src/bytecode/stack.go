package bytecode

// Nop emits a no-op.
func (b *Bytecode) Nop() (Offset, error) { return b.simple(opNop) }

// Pop discards the top stack word, Pop2 discards the top two.
func (b *Bytecode) Pop() (Offset, error)  { return b.simple(opPop) }
func (b *Bytecode) Pop2() (Offset, error) { return b.simple(opPop2) }

// Dup duplicates the top word. DupX1/DupX2/Dup2/Dup2X1/Dup2X2 cover the
// remaining JVMS §6.5 dup family shapes; they differ in where the copy
// is inserted, which this net-depth tracker does not need to model.
func (b *Bytecode) Dup() (Offset, error)    { return b.simple(opDup) }
func (b *Bytecode) DupX1() (Offset, error)  { return b.simple(opDupX1) }
func (b *Bytecode) DupX2() (Offset, error)  { return b.simple(opDupX2) }
func (b *Bytecode) Dup2() (Offset, error)   { return b.simple(opDup2) }
func (b *Bytecode) Dup2X1() (Offset, error) { return b.simple(opDup2X1) }
func (b *Bytecode) Dup2X2() (Offset, error) { return b.simple(opDup2X2) }

// Swap exchanges the top two single-word values.
func (b *Bytecode) Swap() (Offset, error) { return b.simple(opSwap) }

// Iadd through Drem cover the four arithmetic operators across int,
// long, float and double.
func (b *Bytecode) Iadd() (Offset, error) { return b.simple(opIadd) }
func (b *Bytecode) Ladd() (Offset, error) { return b.simple(opLadd) }
func (b *Bytecode) Fadd() (Offset, error) { return b.simple(opFadd) }
func (b *Bytecode) Dadd() (Offset, error) { return b.simple(opDadd) }
func (b *Bytecode) Isub() (Offset, error) { return b.simple(opIsub) }
func (b *Bytecode) Lsub() (Offset, error) { return b.simple(opLsub) }
func (b *Bytecode) Fsub() (Offset, error) { return b.simple(opFsub) }
func (b *Bytecode) Dsub() (Offset, error) { return b.simple(opDsub) }
func (b *Bytecode) Imul() (Offset, error) { return b.simple(opImul) }
func (b *Bytecode) Lmul() (Offset, error) { return b.simple(opLmul) }
func (b *Bytecode) Fmul() (Offset, error) { return b.simple(opFmul) }
func (b *Bytecode) Dmul() (Offset, error) { return b.simple(opDmul) }
func (b *Bytecode) Idiv() (Offset, error) { return b.simple(opIdiv) }
func (b *Bytecode) Ldiv() (Offset, error) { return b.simple(opLdiv) }
func (b *Bytecode) Fdiv() (Offset, error) { return b.simple(opFdiv) }
func (b *Bytecode) Ddiv() (Offset, error) { return b.simple(opDdiv) }
func (b *Bytecode) Irem() (Offset, error) { return b.simple(opIrem) }
func (b *Bytecode) Lrem() (Offset, error) { return b.simple(opLrem) }
func (b *Bytecode) Frem() (Offset, error) { return b.simple(opFrem) }
func (b *Bytecode) Drem() (Offset, error) { return b.simple(opDrem) }

// Ineg through Dneg negate the top value in place.
func (b *Bytecode) Ineg() (Offset, error) { return b.simple(opIneg) }
func (b *Bytecode) Lneg() (Offset, error) { return b.simple(opLneg) }
func (b *Bytecode) Fneg() (Offset, error) { return b.simple(opFneg) }
func (b *Bytecode) Dneg() (Offset, error) { return b.simple(opDneg) }

// Ishl through Lxor cover the integer bitwise and shift operators.
func (b *Bytecode) Ishl() (Offset, error)  { return b.simple(opIshl) }
func (b *Bytecode) Lshl() (Offset, error)  { return b.simple(opLshl) }
func (b *Bytecode) Ishr() (Offset, error)  { return b.simple(opIshr) }
func (b *Bytecode) Lshr() (Offset, error)  { return b.simple(opLshr) }
func (b *Bytecode) Iushr() (Offset, error) { return b.simple(opIushr) }
func (b *Bytecode) Lushr() (Offset, error) { return b.simple(opLushr) }
func (b *Bytecode) Iand() (Offset, error)  { return b.simple(opIand) }
func (b *Bytecode) Land() (Offset, error)  { return b.simple(opLand) }
func (b *Bytecode) Ior() (Offset, error)   { return b.simple(opIor) }
func (b *Bytecode) Lor() (Offset, error)   { return b.simple(opLor) }
func (b *Bytecode) Ixor() (Offset, error)  { return b.simple(opIxor) }
func (b *Bytecode) Lxor() (Offset, error)  { return b.simple(opLxor) }

// I2l through I2s cover the numeric conversion opcodes.
func (b *Bytecode) I2l() (Offset, error) { return b.simple(opI2l) }
func (b *Bytecode) I2f() (Offset, error) { return b.simple(opI2f) }
func (b *Bytecode) I2d() (Offset, error) { return b.simple(opI2d) }
func (b *Bytecode) L2i() (Offset, error) { return b.simple(opL2i) }
func (b *Bytecode) L2f() (Offset, error) { return b.simple(opL2f) }
func (b *Bytecode) L2d() (Offset, error) { return b.simple(opL2d) }
func (b *Bytecode) F2i() (Offset, error) { return b.simple(opF2i) }
func (b *Bytecode) F2l() (Offset, error) { return b.simple(opF2l) }
func (b *Bytecode) F2d() (Offset, error) { return b.simple(opF2d) }
func (b *Bytecode) D2i() (Offset, error) { return b.simple(opD2i) }
func (b *Bytecode) D2l() (Offset, error) { return b.simple(opD2l) }
func (b *Bytecode) D2f() (Offset, error) { return b.simple(opD2f) }
func (b *Bytecode) I2b() (Offset, error) { return b.simple(opI2b) }
func (b *Bytecode) I2c() (Offset, error) { return b.simple(opI2c) }
func (b *Bytecode) I2s() (Offset, error) { return b.simple(opI2s) }

// Lcmp, Fcmpl/Fcmpg and Dcmpl/Dcmpg push a three-valued comparison
// result; the l/g suffix on the float/double forms picks which result
// NaN produces (JVMS §6.5.fcmp_op).
func (b *Bytecode) Lcmp() (Offset, error)  { return b.simple(opLcmp) }
func (b *Bytecode) Fcmpl() (Offset, error) { return b.simple(opFcmpl) }
func (b *Bytecode) Fcmpg() (Offset, error) { return b.simple(opFcmpg) }
func (b *Bytecode) Dcmpl() (Offset, error) { return b.simple(opDcmpl) }
func (b *Bytecode) Dcmpg() (Offset, error) { return b.simple(opDcmpg) }

// Ireturn through Areturn return a value of the named type; Return
// returns void.
func (b *Bytecode) Ireturn() (Offset, error) { return b.simple(opIreturn) }
func (b *Bytecode) Lreturn() (Offset, error) { return b.simple(opLreturn) }
func (b *Bytecode) Freturn() (Offset, error) { return b.simple(opFreturn) }
func (b *Bytecode) Dreturn() (Offset, error) { return b.simple(opDreturn) }
func (b *Bytecode) Areturn() (Offset, error) { return b.simple(opAreturn) }
func (b *Bytecode) Return() (Offset, error)  { return b.simple(opReturn) }

// Athrow raises the throwable on top of the stack.
func (b *Bytecode) Athrow() (Offset, error) { return b.simple(opAthrow) }

// Monitorenter and Monitorexit acquire/release the monitor associated
// with the object on top of the stack.
func (b *Bytecode) Monitorenter() (Offset, error) { return b.simple(opMonitorenter) }
func (b *Bytecode) Monitorexit() (Offset, error)  { return b.simple(opMonitorexit) }
