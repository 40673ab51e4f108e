package cpu

import "fmt"

// The SM83 encodes most of its instruction set in bit fields:
//
//	xx yyy zzz
//	   pp q
//
// x selects the quarter of the opcode space, y and z select the
// operation and its register operands (index 6 being (HL)), p and q
// split y for the 16-bit instructions.

// PrefixCB is the opcode that selects the extended page for the
// following byte.
const PrefixCB = 0xCB

// undefinedOpcodes are the base page opcodes with no instruction.
var undefinedOpcodes = [...]uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

var (
	registerOperands = [8]Operand{RegB, RegC, RegD, RegE, RegH, RegL, MemHL, RegA}
	pairOperands     = [4]Operand{PairBC, PairDE, PairHL, PairSP}
	stackOperands    = [4]Operand{PairBC, PairDE, PairHL, PairAF}
	indirectOperands = [4]Operand{MemBC, MemDE, MemHLI, MemHLD}
	conditions       = [4]Condition{CondNZ, CondZ, CondNC, CondC}

	aluOps         = [8]Op{OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP}
	accumulatorOps = [8]Op{OpRLCA, OpRRCA, OpRLA, OpRRA, OpDAA, OpCPL, OpSCF, OpCCF}
	rotateOps      = [8]Op{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL}
	bitOps         = [4]Op{OpInvalid, OpBIT, OpRES, OpSET}
)

var (
	// InstructionSet holds the decoded base page.
	InstructionSet [256]Instruction
	// InstructionSetCB holds the decoded extended page.
	InstructionSetCB [256]Instruction
)

func init() {
	for i := 0; i < 256; i++ {
		instr := decodeBase(uint8(i))
		if instr.Op != OpInvalid {
			instr.Length = 1 + instr.Dst.immediateBytes() + instr.Src.immediateBytes()
			if instr.Op == OpSTOP {
				instr.Length = 2
			}
		}
		InstructionSet[i] = instr

		instr = decodeCB(uint8(i))
		instr.Length = 2
		InstructionSetCB[i] = instr
	}

	for _, opcode := range undefinedOpcodes {
		InstructionSet[opcode] = Instruction{Op: OpInvalid}
	}
}

// Decode returns the instruction for opcode on the base page, or on
// the extended page when extended is set. Undefined base page opcodes
// return an error wrapping ErrUndefinedOpcode; Step reports them as an
// *OpcodeError carrying the fetch address.
func Decode(opcode uint8, extended bool) (Instruction, error) {
	if extended {
		return InstructionSetCB[opcode], nil
	}
	instr := InstructionSet[opcode]
	if instr.Op == OpInvalid {
		return instr, fmt.Errorf("cpu: %02X: %w", opcode, ErrUndefinedOpcode)
	}
	return instr, nil
}

func decodeBase(instr uint8) Instruction {
	x, y, z := instr>>6&0x3, instr>>3&0x7, instr&0x7
	p, q := y>>1, y&1

	switch x {
	case 0: // 0x00 - 0x3F
		switch z {
		case 0:
			switch y {
			case 0:
				return Instruction{Op: OpNOP}
			case 1: // LD (a16), SP
				return Instruction{Op: OpLD, Dst: MemImm16, Src: PairSP}
			case 2:
				return Instruction{Op: OpSTOP}
			case 3: // JR r8
				return Instruction{Op: OpJR, Src: Rel8}
			default: // JR cc, r8
				return Instruction{Op: OpJR, Src: Rel8, Cond: conditions[y-4]}
			}
		case 1:
			if q == 0 { // LD rr, d16
				return Instruction{Op: OpLD, Dst: pairOperands[p], Src: Imm16}
			}
			return Instruction{Op: OpADDHL, Dst: PairHL, Src: pairOperands[p]}
		case 2:
			if q == 0 { // LD (rr), A
				return Instruction{Op: OpLD, Dst: indirectOperands[p], Src: RegA}
			}
			return Instruction{Op: OpLD, Dst: RegA, Src: indirectOperands[p]}
		case 3: // INC/DEC rr
			if q == 0 {
				return Instruction{Op: OpINC, Dst: pairOperands[p]}
			}
			return Instruction{Op: OpDEC, Dst: pairOperands[p]}
		case 4:
			return Instruction{Op: OpINC, Dst: registerOperands[y]}
		case 5:
			return Instruction{Op: OpDEC, Dst: registerOperands[y]}
		case 6: // LD r, d8
			return Instruction{Op: OpLD, Dst: registerOperands[y], Src: Imm8}
		case 7:
			return Instruction{Op: accumulatorOps[y]}
		}
	case 1: // 0x40 - 0x7F
		if instr == 0x76 {
			return Instruction{Op: OpHALT}
		}
		return Instruction{Op: OpLD, Dst: registerOperands[y], Src: registerOperands[z]}
	case 2: // 0x80 - 0xBF (ALU)
		return Instruction{Op: aluOps[y], Dst: RegA, Src: registerOperands[z]}
	case 3: // 0xC0 - 0xFF
		switch z {
		case 0:
			switch y {
			case 4: // LDH (a8), A
				return Instruction{Op: OpLD, Dst: HighImm8, Src: RegA}
			case 5:
				return Instruction{Op: OpADDSP, Dst: PairSP, Src: Rel8}
			case 6: // LDH A, (a8)
				return Instruction{Op: OpLD, Dst: RegA, Src: HighImm8}
			case 7:
				return Instruction{Op: OpLDHL, Dst: PairHL, Src: Rel8}
			}
			return Instruction{Op: OpRET, Cond: conditions[y]}
		case 1:
			if q == 0 {
				return Instruction{Op: OpPOP, Dst: stackOperands[p]}
			}
			switch p {
			case 0:
				return Instruction{Op: OpRET}
			case 1:
				return Instruction{Op: OpRETI}
			case 2:
				return Instruction{Op: OpJPHL}
			case 3: // LD SP, HL
				return Instruction{Op: OpLD, Dst: PairSP, Src: PairHL}
			}
		case 2:
			switch y {
			case 4: // LD (C), A
				return Instruction{Op: OpLD, Dst: HighC, Src: RegA}
			case 5: // LD (a16), A
				return Instruction{Op: OpLD, Dst: MemImm16, Src: RegA}
			case 6: // LD A, (C)
				return Instruction{Op: OpLD, Dst: RegA, Src: HighC}
			case 7: // LD A, (a16)
				return Instruction{Op: OpLD, Dst: RegA, Src: MemImm16}
			}
			return Instruction{Op: OpJP, Src: Imm16, Cond: conditions[y]}
		case 3:
			switch y {
			case 0:
				return Instruction{Op: OpJP, Src: Imm16}
			case 1:
				return Instruction{Op: OpPrefix}
			case 6:
				return Instruction{Op: OpDI}
			case 7:
				return Instruction{Op: OpEI}
			}
		case 4:
			if y < 4 {
				return Instruction{Op: OpCALL, Src: Imm16, Cond: conditions[y]}
			}
		case 5:
			if q == 0 {
				return Instruction{Op: OpPUSH, Dst: stackOperands[p]}
			}
			if p == 0 {
				return Instruction{Op: OpCALL, Src: Imm16}
			}
		case 6: // ALU d8
			return Instruction{Op: aluOps[y], Dst: RegA, Src: Imm8}
		case 7:
			return Instruction{Op: OpRST, Vector: uint16(y) * 8}
		}
	}

	return Instruction{Op: OpInvalid}
}

// decodeCB decodes an instruction of the extended page.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func decodeCB(instr uint8) Instruction {
	x, y, z := instr>>6&0x3, instr>>3&0x7, instr&0x7
	if x == 0 {
		return Instruction{Op: rotateOps[y], Dst: registerOperands[z]}
	}
	return Instruction{Op: bitOps[x], Dst: registerOperands[z], Bit: y}
}
