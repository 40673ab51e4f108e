package types

// Bit is a single-bit mask within a byte.
type Bit = uint8

const (
	Bit0 Bit = 1 << iota // 0b0000_0001
	Bit1                 // 0b0000_0010
	Bit2                 // 0b0000_0100
	Bit3                 // 0b0000_1000
	Bit4                 // 0b0001_0000
	Bit5                 // 0b0010_0000
	Bit6                 // 0b0100_0000
	Bit7                 // 0b1000_0000
)

// Mask returns the mask for the bit at index i (0-7).
func Mask(i uint8) Bit {
	return 1 << (i & 0x7)
}

// Test reports whether the masked bit is set in b.
func Test(b uint8, bit Bit) bool {
	return b&bit == bit
}

// BoolBit returns bit if v is true, otherwise 0. It is used
// when packing structured registers back into their byte form.
func BoolBit(v bool, bit Bit) uint8 {
	if v {
		return bit
	}
	return 0
}
