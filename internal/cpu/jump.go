package cpu

// jumpAbsoluteConditional jumps to the given address if the given
// condition is true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if !condition {
		c.branchNotTaken = true
		return
	}
	c.PC = address
}

// jumpRelativeConditional jumps to the address relative to the next
// instruction if the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if !condition {
		c.branchNotTaken = true
		return
	}
	c.PC += uint16(int8(offset))
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	RST n
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// callConditional calls the given address if the given condition is
// true.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool, address uint16) {
	if !condition {
		c.branchNotTaken = true
		return
	}
	c.call(address)
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
}

// retConditional returns if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if !condition {
		c.branchNotTaken = true
		return
	}
	c.ret()
}
