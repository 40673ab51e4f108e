package cpu

import "github.com/thelolagemann/sm83/internal/types"

// The rotate and shift instructions of the extended page share their
// flags:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit shifted out.
//
// The accumulator forms of the base page (RLCA, RRCA, RLA, RRA) reset
// Z instead.

// rotateLeftCarry rotates n left, bit 7 to both bit 0 and the carry.
//
//	RLC n
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	computed := n<<1 | n>>7
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightCarry rotates n right, bit 0 to both bit 7 and the carry.
//
//	RRC n
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	computed := n>>1 | n<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// rotateLeftThroughCarry rotates n left through the carry flag.
//
//	RL n
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	computed := n<<1 | c.carryIn(true)
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// rotateRightThroughCarry rotates n right through the carry flag.
//
//	RR n
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	computed := n>>1 | c.carryIn(true)<<7
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftLeftArithmetic shifts n left into the carry, bit 0 reset.
//
//	SLA n
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	computed := n << 1
	c.setFlags(computed == 0, false, false, n&types.Bit7 == types.Bit7)
	return computed
}

// shiftRightArithmetic shifts n right into the carry, bit 7 unchanged.
//
//	SRA n
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	computed := n&types.Bit7 | n>>1
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// shiftRightLogical shifts n right into the carry, bit 7 reset.
//
//	SRL n
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	computed := n >> 1
	c.setFlags(computed == 0, false, false, n&types.Bit0 == types.Bit0)
	return computed
}

// swap the upper and lower nibbles of a byte.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	computed := value<<4 | value>>4
	c.setFlags(computed == 0, false, false, false)
	return computed
}

// rotate applies the rotate or shift operation op to n.
func (c *CPU) rotate(op Op, n uint8) uint8 {
	switch op {
	case OpRLC, OpRLCA:
		return c.rotateLeftCarry(n)
	case OpRRC, OpRRCA:
		return c.rotateRightCarry(n)
	case OpRL, OpRLA:
		return c.rotateLeftThroughCarry(n)
	case OpRR, OpRRA:
		return c.rotateRightThroughCarry(n)
	case OpSLA:
		return c.shiftLeftArithmetic(n)
	case OpSRA:
		return c.shiftRightArithmetic(n)
	case OpSWAP:
		return c.swap(n)
	case OpSRL:
		return c.shiftRightLogical(n)
	}
	return n
}

// rotateAccumulator applies RLCA, RRCA, RLA or RRA to the A Register.
func (c *CPU) rotateAccumulator(op Op) {
	c.A = c.rotate(op, c.A)
	c.clearFlag(FlagZero)
}
