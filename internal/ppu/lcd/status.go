package lcd

import "github.com/thelolagemann/sm83/internal/types"

// Status represents the LCD status register. It contains information about the
// current state of the LCD controller. Its value is stored in the STAT register
// (0xFF41) as follows:
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag       (Mode 0-3, see Mode)  (Read Only)
//
// Bit 7 is unused and packs as 0.
type Status struct {
	// CoincidenceInterrupt is set when the LYC=LY coincidence interrupt is
	// enabled.
	CoincidenceInterrupt bool
	// OAMInterrupt is set when the OAM interrupt is enabled.
	OAMInterrupt bool
	// VBlankInterrupt is set when the V-Blank interrupt is enabled.
	VBlankInterrupt bool
	// HBlankInterrupt is set when the H-Blank interrupt is enabled.
	HBlankInterrupt bool
	// Coincidence is set while LY equals LYC.
	Coincidence bool
	// Mode is the current mode of the LCD controller.
	Mode Mode
}

// NewStatus returns a new Status.
func NewStatus() *Status {
	return &Status{}
}

// Unpack sets every field of the status from value.
func (s *Status) Unpack(value uint8) {
	s.Write(value)
	s.Coincidence = types.Test(value, types.Bit2)
	s.Mode = Mode(value & 0x03)
}

// Write sets the interrupt enable bits (6-3) from a bus write. The
// coincidence flag and the mode are owned by the controller.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = types.Test(value, types.Bit6)
	s.OAMInterrupt = types.Test(value, types.Bit5)
	s.VBlankInterrupt = types.Test(value, types.Bit4)
	s.HBlankInterrupt = types.Test(value, types.Bit3)
}

// Pack returns the register value of the status.
func (s *Status) Pack() uint8 {
	return types.BoolBit(s.CoincidenceInterrupt, types.Bit6) |
		types.BoolBit(s.OAMInterrupt, types.Bit5) |
		types.BoolBit(s.VBlankInterrupt, types.Bit4) |
		types.BoolBit(s.HBlankInterrupt, types.Bit3) |
		types.BoolBit(s.Coincidence, types.Bit2) |
		uint8(s.Mode)&0x03
}
