package cpu

// pushStack pushes a 16 bit value onto the stack, high byte first.
//
//	PUSH nn
//	nn = AF, BC, DE, HL
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16 bit value off the stack, low byte first.
//
//	POP nn
//	nn = AF, BC, DE, HL
func (c *CPU) popStack() uint16 {
	lower := uint16(c.readByte(c.SP))
	c.SP++
	upper := uint16(c.readByte(c.SP))
	c.SP++
	return upper<<8 | lower
}
