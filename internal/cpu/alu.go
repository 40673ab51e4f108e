package cpu

import "github.com/thelolagemann/sm83/internal/types"

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, without storing the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(n uint8) {
	a := c.A
	c.sub(n, false)
	c.A = a
}

// carryIn returns the carry flag as an operand when shouldCarry is set.
func (c *CPU) carryIn(shouldCarry bool) uint8 {
	if shouldCarry && c.isFlagSet(FlagCarry) {
		return 1
	}
	return 0
}

// add adds n (plus the carry flag for ADC) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, shouldCarry bool) {
	carry := c.carryIn(shouldCarry)
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, (c.A&0xF)+(n&0xF)+carry > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (plus the carry flag for SBC) from the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, shouldCarry bool) {
	carry := c.carryIn(shouldCarry)
	diff := int16(c.A) - int16(n) - int16(carry)
	c.setFlags(uint8(diff) == 0, true, c.A&0xF < n&0xF+carry, diff < 0)
	c.A = uint8(diff)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 0x01
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.isFlagSet(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 0x01
	c.setFlags(decremented == 0, true, n&0xF == 0x0, c.isFlagSet(FlagCarry))
	return decremented
}

// addHL adds n to the HL RegisterPair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(FlagZero), false, (hl&0xFFF)+(n&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.HL.SetUint16(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e.
//
//	ADD SP, e
//	LD HL, SP+e
//	e = 8-bit signed immediate value
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if the 16-bit sum overflows.
func (c *CPU) addSPSigned(e uint8) uint16 {
	offset := uint16(int8(e))
	sum := uint32(c.SP) + uint32(offset)
	c.setFlags(false, false, (c.SP&0xF)+(offset&0xF) > 0xF, sum > 0xFFFF)
	return uint16(sum)
}

// decimalAdjust adjusts the A Register to hold a binary coded decimal
// after an addition or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to the operation.
func (c *CPU) decimalAdjust() {
	if !c.isFlagSet(FlagSubtract) {
		if c.isFlagSet(FlagCarry) || c.A > 0x99 {
			c.A += 0x60
			c.setFlag(FlagCarry)
		}
		if c.isFlagSet(FlagHalfCarry) || c.A&0xF > 0x9 {
			c.A += 0x06
		}
	} else {
		if c.isFlagSet(FlagCarry) {
			c.A -= 0x60
		}
		if c.isFlagSet(FlagHalfCarry) {
			c.A -= 0x06
		}
	}
	c.clearFlag(FlagHalfCarry)
	c.shouldZeroFlag(c.A)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = 0xFF ^ c.A
	c.setFlag(FlagSubtract)
	c.setFlag(FlagHalfCarry)
}

// setCarryFlag sets the carry flag, or flips it for CCF.
//
//	SCF
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set, or complemented.
func (c *CPU) setCarryFlag(complement bool) {
	carry := true
	if complement {
		carry = !c.isFlagSet(FlagCarry)
	}
	c.setFlags(c.isFlagSet(FlagZero), false, false, carry)
}

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, b types.Bit) {
	c.setFlags(value&b != b, false, true, c.isFlagSet(FlagCarry))
}
