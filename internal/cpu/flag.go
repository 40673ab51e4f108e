package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Flag is the mask of a flag held in the F register.
type Flag = uint8

const (
	FlagZero      Flag = types.Bit7
	FlagSubtract  Flag = types.Bit6
	FlagHalfCarry Flag = types.Bit5
	FlagCarry     Flag = types.Bit4
)

// Flags is the structured form of the F register.
//
//	Bit 7 - Z - Zero
//	Bit 6 - N - Subtract
//	Bit 5 - H - Half Carry
//	Bit 4 - C - Carry
//
// Bits 3-0 are always 0.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte unpacks the flags of an F register value. The lower
// nibble is ignored.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      types.Test(b, FlagZero),
		Subtract:  types.Test(b, FlagSubtract),
		HalfCarry: types.Test(b, FlagHalfCarry),
		Carry:     types.Test(b, FlagCarry),
	}
}

// Byte packs the flags into an F register value.
func (f Flags) Byte() uint8 {
	return types.BoolBit(f.Zero, FlagZero) |
		types.BoolBit(f.Subtract, FlagSubtract) |
		types.BoolBit(f.HalfCarry, FlagHalfCarry) |
		types.BoolBit(f.Carry, FlagCarry)
}

// Flags returns the current flags of the CPU.
func (c *CPU) Flags() Flags {
	return FlagsFromByte(c.F)
}

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F &^= flag
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F |= flag
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return c.F&flag == flag
}

// setFlags replaces all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{zero, subtract, halfCarry, carry}.Byte()
}

// shouldZeroFlag sets FlagZero if the given value is 0.
func (c *CPU) shouldZeroFlag(value uint8) {
	if value == 0 {
		c.setFlag(FlagZero)
	} else {
		c.clearFlag(FlagZero)
	}
}
