package cpu

import "fmt"

// Op is the operation performed by an Instruction.
type Op uint8

const (
	OpInvalid Op = iota
	OpPrefix     // 0xCB, selects the extended page

	OpNOP
	OpSTOP
	OpHALT
	OpDI
	OpEI

	OpLD
	OpLDHL // LD HL, SP+r8

	OpINC
	OpDEC
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpADDHL
	OpADDSP
	OpDAA
	OpCPL
	OpSCF
	OpCCF

	OpRLCA
	OpRRCA
	OpRLA
	OpRRA
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL

	OpBIT
	OpRES
	OpSET

	OpJP
	OpJPHL
	OpJR
	OpCALL
	OpRET
	OpRETI
	OpRST
	OpPUSH
	OpPOP
)

var opNames = [...]string{
	OpInvalid: "ILLEGAL",
	OpPrefix:  "PREFIX CB",
	OpNOP:     "NOP",
	OpSTOP:    "STOP",
	OpHALT:    "HALT",
	OpDI:      "DI",
	OpEI:      "EI",
	OpLD:      "LD",
	OpLDHL:    "LD",
	OpINC:     "INC",
	OpDEC:     "DEC",
	OpADD:     "ADD",
	OpADC:     "ADC",
	OpSUB:     "SUB",
	OpSBC:     "SBC",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpOR:      "OR",
	OpCP:      "CP",
	OpADDHL:   "ADD",
	OpADDSP:   "ADD",
	OpDAA:     "DAA",
	OpCPL:     "CPL",
	OpSCF:     "SCF",
	OpCCF:     "CCF",
	OpRLCA:    "RLCA",
	OpRRCA:    "RRCA",
	OpRLA:     "RLA",
	OpRRA:     "RRA",
	OpRLC:     "RLC",
	OpRRC:     "RRC",
	OpRL:      "RL",
	OpRR:      "RR",
	OpSLA:     "SLA",
	OpSRA:     "SRA",
	OpSWAP:    "SWAP",
	OpSRL:     "SRL",
	OpBIT:     "BIT",
	OpRES:     "RES",
	OpSET:     "SET",
	OpJP:      "JP",
	OpJPHL:    "JP",
	OpJR:      "JR",
	OpCALL:    "CALL",
	OpRET:     "RET",
	OpRETI:    "RETI",
	OpRST:     "RST",
	OpPUSH:    "PUSH",
	OpPOP:     "POP",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Instruction describes a decoded opcode. Instructions are produced by
// Decode and never modified.
type Instruction struct {
	Op Op
	// Dst is the operand written by the instruction, or the single
	// operand of INC, DEC, PUSH, POP and the extended page.
	Dst Operand
	// Src is the operand read by the instruction.
	Src Operand
	// Cond is the flag test of JP, JR, CALL and RET.
	Cond Condition
	// Bit is the bit index (0-7) of BIT, RES and SET.
	Bit uint8
	// Vector is the target address of RST.
	Vector uint16
	// Length is the encoded length in bytes, including the 0xCB prefix
	// of extended instructions.
	Length uint8
}

// String returns the assembler mnemonic of the instruction.
func (i Instruction) String() string {
	name := i.Op.String()
	switch i.Op {
	case OpLD:
		return fmt.Sprintf("%s %s, %s", name, i.Dst, i.Src)
	case OpLDHL:
		return "LD HL, SP+r8"
	case OpADDHL:
		return fmt.Sprintf("ADD HL, %s", i.Src)
	case OpADDSP:
		return "ADD SP, r8"
	case OpADD, OpADC, OpSBC:
		return fmt.Sprintf("%s A, %s", name, i.Src)
	case OpSUB, OpAND, OpXOR, OpOR, OpCP:
		return fmt.Sprintf("%s %s", name, i.Src)
	case OpINC, OpDEC, OpPUSH, OpPOP,
		OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		return fmt.Sprintf("%s %s", name, i.Dst)
	case OpBIT, OpRES, OpSET:
		return fmt.Sprintf("%s %d, %s", name, i.Bit, i.Dst)
	case OpJP, OpJR, OpCALL:
		target := "a16"
		if i.Op == OpJR {
			target = "r8"
		}
		if i.Cond != CondAlways {
			return fmt.Sprintf("%s %s, %s", name, i.Cond, target)
		}
		return fmt.Sprintf("%s %s", name, target)
	case OpJPHL:
		return "JP HL"
	case OpRET:
		if i.Cond != CondAlways {
			return fmt.Sprintf("%s %s", name, i.Cond)
		}
	case OpRST:
		return fmt.Sprintf("%s %02XH", name, i.Vector)
	}
	return name
}
