package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Register represents a single 8-bit register of the CPU.
type Register = types.Register

// RegisterPair represents two registers accessed as a 16-bit value.
type RegisterPair = types.RegisterPair

// Registers represents the register file of the SM83. Each register
// is 8 bits wide, and can be combined with another into a 16-bit
// RegisterPair:
//
//	AF, BC, DE, HL
//
// Only the upper nibble of F is used, see Flags.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	AF *RegisterPair
	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
}

// initPairs points the register pairs at their registers. F is masked,
// so that writing AF never sets the lower nibble.
func (r *Registers) initPairs() {
	r.AF = types.NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
	r.BC = types.NewRegisterPair(&r.B, &r.C)
	r.DE = types.NewRegisterPair(&r.D, &r.E)
	r.HL = types.NewRegisterPair(&r.H, &r.L)
}
