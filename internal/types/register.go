package types

// Register represents an SM83 register which is used to hold an 8-bit
// value. The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F
// register is special in that only its upper nibble is used, holding
// the flags.
type Register = uint8

// RegisterPair represents a pair of Registers which is used to access
// two 8-bit registers as a single 16-bit value. The high register holds
// the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register

	// lowMask is applied to the low byte when writing, so that
	// AF can never hold a non-zero lower nibble in F.
	lowMask uint8
}

// NewRegisterPair returns a RegisterPair for the given registers.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low register only
// stores the bits set in mask.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, lowMask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value) & r.lowMask
}
