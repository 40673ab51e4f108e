package cartridge

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/utils"
)

const bankSize = 0x4000

// MemoryBankedCartridge1 represents an MBC1 cartridge. Bank 0 is fixed
// at 0x0000-0x3FFF and the bank selected by the bank register is
// mapped at 0x4000-0x7FFF. External RAM is not modelled.
type MemoryBankedCartridge1 struct {
	baseCartridge

	// bank holds the last byte written to 0x2000-0x3FFF.
	bank uint8
}

// NewMemoryBankedCartridge1 returns a new MBC1 cartridge with bank 1
// selected.
func NewMemoryBankedCartridge1(base baseCartridge) *MemoryBankedCartridge1 {
	return &MemoryBankedCartridge1{
		baseCartridge: base,
		bank:          1,
	}
}

// Bank returns the effective ROM bank mapped at 0x4000-0x7FFF: the
// low 5 bits of the bank register, with 0 selecting bank 1.
func (m *MemoryBankedCartridge1) Bank() uint8 {
	return utils.ZeroAdjust8(m.bank & 0x1F)
}

// Read returns the value from the fixed or the switchable ROM bank.
func (m *MemoryBankedCartridge1) Read(address uint16) (uint8, error) {
	var offset int
	switch {
	case address < bankSize:
		offset = int(address) // first bank is always fixed
	case address < 2*bankSize:
		offset = int(address) + (int(m.Bank())-1)*bankSize
	default:
		return 0, &types.AddressError{Address: address, Access: types.AccessRead, Region: "mbc1"}
	}

	if offset >= len(m.rom) {
		return 0, &types.AddressError{Address: address, Access: types.AccessRead, Region: "mbc1"}
	}
	return m.rom[offset], nil
}

// Write selects the ROM bank when written in 0x2000-0x3FFF. Writes to
// the RAM enable (0x0000-0x1FFF), RAM bank (0x4000-0x5FFF) and mode
// select (0x6000-0x7FFF) ranges are accepted and ignored.
func (m *MemoryBankedCartridge1) Write(address uint16, value uint8) error {
	switch {
	case address < 0x2000:
	case address < 0x4000:
		m.bank = value
	case address < 0x8000:
	default:
		return &types.AddressError{Address: address, Access: types.AccessWrite, Region: "mbc1"}
	}
	return nil
}

var _ types.Stater = (*MemoryBankedCartridge1)(nil)

// Load restores the bank register. The ROM itself is read-only.
func (m *MemoryBankedCartridge1) Load(s *types.State) {
	m.bank = s.Read8()
}

// Save stores the bank register.
func (m *MemoryBankedCartridge1) Save(s *types.State) {
	s.Write8(m.bank)
}
