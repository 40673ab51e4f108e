package cpu

// Operand identifies where an instruction reads or writes a value. The
// same kind is used for both directions, so that read-modify-write
// instructions such as INC (HL) address the same location twice.
type Operand uint8

const (
	None Operand = iota

	// 8-bit registers
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL

	// 16-bit registers
	PairAF
	PairBC
	PairDE
	PairHL
	PairSP

	// immediates, fetched after the opcode
	Imm8  // d8
	Imm16 // d16, a16
	Rel8  // r8, signed

	// memory
	MemBC    // (BC)
	MemDE    // (DE)
	MemHL    // (HL)
	MemHLI   // (HL+), HL incremented after the access
	MemHLD   // (HL-), HL decremented after the access
	MemImm16 // (a16)
	HighImm8 // (0xFF00+a8)
	HighC    // (0xFF00+C)
)

var operandNames = [...]string{
	None:     "",
	RegA:     "A",
	RegB:     "B",
	RegC:     "C",
	RegD:     "D",
	RegE:     "E",
	RegH:     "H",
	RegL:     "L",
	PairAF:   "AF",
	PairBC:   "BC",
	PairDE:   "DE",
	PairHL:   "HL",
	PairSP:   "SP",
	Imm8:     "d8",
	Imm16:    "d16",
	Rel8:     "r8",
	MemBC:    "(BC)",
	MemDE:    "(DE)",
	MemHL:    "(HL)",
	MemHLI:   "(HL+)",
	MemHLD:   "(HL-)",
	MemImm16: "(a16)",
	HighImm8: "(a8)",
	HighC:    "(C)",
}

func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return "?"
}

// Wide reports whether the operand holds a 16-bit value.
func (o Operand) Wide() bool {
	switch o {
	case PairAF, PairBC, PairDE, PairHL, PairSP, Imm16:
		return true
	}
	return false
}

// immediateBytes returns the number of bytes the operand adds to the
// encoding of an instruction.
func (o Operand) immediateBytes() uint8 {
	switch o {
	case Imm8, Rel8, HighImm8:
		return 1
	case Imm16, MemImm16:
		return 2
	}
	return 0
}

// Condition is the flag test of a conditional jump, call or return.
type Condition uint8

const (
	CondAlways Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// condition returns true if the given condition holds for the current
// flags.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	case CondC:
		return c.isFlagSet(FlagCarry)
	}
	return true
}
