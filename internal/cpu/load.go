package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// register returns a pointer to the 8-bit register named by the operand.
func (c *CPU) register(o Operand) *Register {
	switch o {
	case RegA:
		return &c.A
	case RegB:
		return &c.B
	case RegC:
		return &c.C
	case RegD:
		return &c.D
	case RegE:
		return &c.E
	case RegH:
		return &c.H
	case RegL:
		return &c.L
	}
	return nil
}

// address returns the effective address of a memory operand. (HL+) and
// (HL-) adjust HL here, so each access fires the side effect once.
func (c *CPU) address(o Operand) uint16 {
	switch o {
	case MemBC:
		return c.BC.Uint16()
	case MemDE:
		return c.DE.Uint16()
	case MemHL:
		return c.HL.Uint16()
	case MemHLI:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl + 1)
		return hl
	case MemHLD:
		hl := c.HL.Uint16()
		c.HL.SetUint16(hl - 1)
		return hl
	case MemImm16:
		return c.operand
	case HighImm8:
		return types.HighPage + c.operand&0xFF
	case HighC:
		return types.HighPage + uint16(c.C)
	}
	panic(fmt.Sprintf("cpu: %s is not a memory operand", o))
}

// read8 returns the 8-bit value of the operand.
func (c *CPU) read8(o Operand) uint8 {
	if r := c.register(o); r != nil {
		return *r
	}
	switch o {
	case Imm8, Rel8:
		return uint8(c.operand)
	}
	return c.readByte(c.address(o))
}

// write8 stores an 8-bit value in the operand.
func (c *CPU) write8(o Operand, value uint8) {
	if r := c.register(o); r != nil {
		*r = value
		return
	}
	c.writeByte(c.address(o), value)
}

// pair returns the RegisterPair named by the operand, or nil for SP.
func (c *CPU) pair(o Operand) *RegisterPair {
	switch o {
	case PairAF:
		return c.AF
	case PairBC:
		return c.BC
	case PairDE:
		return c.DE
	case PairHL:
		return c.HL
	}
	return nil
}

// read16 returns the 16-bit value of the operand.
func (c *CPU) read16(o Operand) uint16 {
	if p := c.pair(o); p != nil {
		return p.Uint16()
	}
	switch o {
	case PairSP:
		return c.SP
	case Imm16:
		return c.operand
	}
	panic(fmt.Sprintf("cpu: %s is not a 16-bit operand", o))
}

// write16 stores a 16-bit value in the operand. A memory operand
// receives the low byte first, at the lower address.
func (c *CPU) write16(o Operand, value uint16) {
	if p := c.pair(o); p != nil {
		p.SetUint16(value)
		return
	}
	switch o {
	case PairSP:
		c.SP = value
	case MemImm16:
		c.writeByte(c.operand, uint8(value))
		c.writeByte(c.operand+1, uint8(value>>8))
	default:
		panic(fmt.Sprintf("cpu: %s is not a 16-bit destination", o))
	}
}

// load copies src to dst.
//
//	LD dst, src
func (c *CPU) load(dst, src Operand) {
	if dst.Wide() || src.Wide() {
		c.write16(dst, c.read16(src))
		return
	}
	c.write8(dst, c.read8(src))
}
