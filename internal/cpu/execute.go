package cpu

import "github.com/thelolagemann/sm83/internal/types"

// execute performs the decoded instruction. Immediate operands have
// already been fetched, and PC points to the next instruction.
func (c *CPU) execute(instr Instruction) {
	switch instr.Op {
	case OpNOP:
	case OpSTOP, OpHALT:
		c.halted = true
	case OpDI:
		c.IME = false
	case OpEI:
		c.IME = true

	// loads
	case OpLD:
		c.load(instr.Dst, instr.Src)
	case OpLDHL:
		c.HL.SetUint16(c.addSPSigned(c.read8(instr.Src)))

	// arithmetic
	case OpINC:
		if instr.Dst.Wide() {
			c.write16(instr.Dst, c.read16(instr.Dst)+1)
		} else {
			c.write8(instr.Dst, c.increment(c.read8(instr.Dst)))
		}
	case OpDEC:
		if instr.Dst.Wide() {
			c.write16(instr.Dst, c.read16(instr.Dst)-1)
		} else {
			c.write8(instr.Dst, c.decrement(c.read8(instr.Dst)))
		}
	case OpADD:
		c.add(c.read8(instr.Src), false)
	case OpADC:
		c.add(c.read8(instr.Src), true)
	case OpSUB:
		c.sub(c.read8(instr.Src), false)
	case OpSBC:
		c.sub(c.read8(instr.Src), true)
	case OpAND:
		c.and(c.read8(instr.Src))
	case OpXOR:
		c.xor(c.read8(instr.Src))
	case OpOR:
		c.or(c.read8(instr.Src))
	case OpCP:
		c.compare(c.read8(instr.Src))
	case OpADDHL:
		c.addHL(c.read16(instr.Src))
	case OpADDSP:
		c.SP = c.addSPSigned(c.read8(instr.Src))
	case OpDAA:
		c.decimalAdjust()
	case OpCPL:
		c.complement()
	case OpSCF:
		c.setCarryFlag(false)
	case OpCCF:
		c.setCarryFlag(true)

	// rotates, shifts and bits
	case OpRLCA, OpRRCA, OpRLA, OpRRA:
		c.rotateAccumulator(instr.Op)
	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		c.write8(instr.Dst, c.rotate(instr.Op, c.read8(instr.Dst)))
	case OpBIT:
		c.testBit(c.read8(instr.Dst), types.Mask(instr.Bit))
	case OpRES:
		c.write8(instr.Dst, c.read8(instr.Dst)&^types.Mask(instr.Bit))
	case OpSET:
		c.write8(instr.Dst, c.read8(instr.Dst)|types.Mask(instr.Bit))

	// control flow
	case OpJP:
		c.jumpAbsoluteConditional(c.condition(instr.Cond), c.read16(instr.Src))
	case OpJPHL:
		c.PC = c.HL.Uint16()
	case OpJR:
		c.jumpRelativeConditional(c.condition(instr.Cond), c.read8(instr.Src))
	case OpCALL:
		c.callConditional(c.condition(instr.Cond), c.read16(instr.Src))
	case OpRET:
		c.retConditional(c.condition(instr.Cond))
	case OpRETI:
		c.ret()
		c.IME = true
	case OpRST:
		c.call(instr.Vector)

	// stack
	case OpPUSH:
		c.pushStack(c.read16(instr.Dst))
	case OpPOP:
		c.write16(instr.Dst, c.popStack())
	}
}
