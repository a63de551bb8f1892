package bytecode

// stackEffect is the (pop, push) pair a fixed-arity, operand-less
// opcode applies to the operand stack, in category-2-aware slot counts
// (spec §4.4: long/double contribute two slots).
type stackEffect struct {
	pop, push uint16
}

// opcodeEffects covers every opcode whose stack effect is constant and
// whose encoding carries no operand bytes — the set simple() dispatches
// through. Branch, local-variable, constant-loading, and invocation
// opcodes compute their own effect because it depends on an operand
// (branch width excepted, since it never affects the stack) and are
// defined in their own family files.
var opcodeEffects = map[byte]stackEffect{
	opNop: {0, 0},

	opAconstNull:  {0, 1},
	opIconstM1:    {0, 1},
	opIconst0:     {0, 1},
	opIconst0 + 1: {0, 1},
	opIconst0 + 2: {0, 1},
	opIconst0 + 3: {0, 1},
	opIconst0 + 4: {0, 1},
	opIconst0 + 5: {0, 1},
	opLconst0:     {0, 2},
	opLconst0 + 1: {0, 2},
	opFconst0:     {0, 1},
	opFconst0 + 1: {0, 1},
	opFconst0 + 2: {0, 1},
	opDconst0:     {0, 2},
	opDconst0 + 1: {0, 2},

	opIaload: {2, 1},
	opLaload: {2, 2},
	opFaload: {2, 1},
	opDaload: {2, 2},
	opAaload: {2, 1},
	opBaload: {2, 1},
	opCaload: {2, 1},
	opSaload: {2, 1},

	opIastore: {3, 0},
	opLastore: {4, 0},
	opFastore: {3, 0},
	opDastore: {4, 0},
	opAastore: {3, 0},
	opBastore: {3, 0},
	opCastore: {3, 0},
	opSastore: {3, 0},

	opPop:    {1, 0},
	opPop2:   {2, 0},
	opDup:    {1, 2},
	opDupX1:  {2, 3},
	opDupX2:  {3, 4},
	opDup2:   {2, 4},
	opDup2X1: {3, 5},
	opDup2X2: {4, 6},
	opSwap:   {2, 2},

	opIadd: {2, 1}, opLadd: {4, 2}, opFadd: {2, 1}, opDadd: {4, 2},
	opIsub: {2, 1}, opLsub: {4, 2}, opFsub: {2, 1}, opDsub: {4, 2},
	opImul: {2, 1}, opLmul: {4, 2}, opFmul: {2, 1}, opDmul: {4, 2},
	opIdiv: {2, 1}, opLdiv: {4, 2}, opFdiv: {2, 1}, opDdiv: {4, 2},
	opIrem: {2, 1}, opLrem: {4, 2}, opFrem: {2, 1}, opDrem: {4, 2},

	opIneg: {1, 1}, opLneg: {2, 2}, opFneg: {1, 1}, opDneg: {2, 2},

	opIshl: {2, 1}, opLshl: {3, 2},
	opIshr: {2, 1}, opLshr: {3, 2},
	opIushr: {2, 1}, opLushr: {3, 2},
	opIand: {2, 1}, opLand: {4, 2},
	opIor: {2, 1}, opLor: {4, 2},
	opIxor: {2, 1}, opLxor: {4, 2},

	opI2l: {1, 2}, opI2f: {1, 1}, opI2d: {1, 2},
	opL2i: {2, 1}, opL2f: {2, 1}, opL2d: {2, 2},
	opF2i: {1, 1}, opF2l: {1, 2}, opF2d: {1, 2},
	opD2i: {2, 1}, opD2l: {2, 2}, opD2f: {2, 1},
	opI2b: {1, 1}, opI2c: {1, 1}, opI2s: {1, 1},

	opLcmp:  {4, 1},
	opFcmpl: {2, 1}, opFcmpg: {2, 1},
	opDcmpl: {4, 1}, opDcmpg: {4, 1},

	opIreturn: {1, 0}, opLreturn: {2, 0}, opFreturn: {1, 0},
	opDreturn: {2, 0}, opAreturn: {1, 0}, opReturn: {0, 0},

	opArraylength: {1, 1},
	opAthrow:      {1, 1},

	opMonitorenter: {1, 0},
	opMonitorexit:  {1, 0},
}
