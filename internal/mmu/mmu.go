// Package mmu provides the memory bus of the SM83. The MMU is unaware
// of what the other components do with an access, it only resolves
// every address of the 64kB space to the component that owns it.
package mmu

import (
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// ErrUnmappedAddress is returned for an access to an address that no
// component owns.
var ErrUnmappedAddress = types.ErrUnmappedAddress

// AddressError describes the failed access.
type AddressError = types.AddressError

const (
	// generalRAMStart is the first address backed by general RAM; every
	// address from here up that is not an I/O register belongs to it.
	generalRAMStart = 0xA000
	generalRAMSize  = 0x10000 - generalRAMStart
)

// Video is the interface that the MMU uses to reach video RAM and the
// LCD registers.
type Video interface {
	ReadVRAM(offset uint16) uint8
	WriteVRAM(offset uint16, value uint8)
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// MMU is the memory management unit. It handles all memory reads and
// writes to the 64kB of address space, and delegates to the cartridge,
// the video controller and general RAM.
type MMU struct {
	// 64kB address space, nil entries are unmapped
	raw [65536]*types.Address

	// 0x0000 - 0x7FFF - ROM (through the mapper)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFF40, 0xFF41, 0xFF44, 0xFF45 - LCD registers
	Video Video

	// 0xA000 - 0xFFFF - general RAM, except the LCD registers
	RAM *ram.RAM

	Log log.Logger

	noGeneralRAM bool
}

// Opt configures an MMU.
type Opt func(*MMU)

// WithLogger sets the logger of the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithoutGeneralRAM leaves the general RAM region unmapped, so that an
// access outside the cartridge, video RAM and LCD registers fails
// with ErrUnmappedAddress.
func WithoutGeneralRAM() Opt {
	return func(m *MMU) {
		m.noGeneralRAM = true
	}
}

// NewMMU returns a new MMU routing to cart and video.
func NewMMU(cart cartridge.Cartridge, video Video, opts ...Opt) *MMU {
	m := &MMU{
		Cart:  cart,
		Video: video,
		Log:   log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if !m.noGeneralRAM {
		m.RAM = ram.NewRAM(generalRAMSize)
	}

	m.init()

	return m
}

// init fills the address table. Regions are installed lowest priority
// first, so that each later region overrides what it overlaps.
func (m *MMU) init() {
	addresses := []types.Address{
		{Read: m.Cart.Read, Write: m.Cart.Write},
		{Read: m.readVRAM, Write: m.writeVRAM},
		{Read: m.Video.Read, Write: m.Video.Write},
	}

	// general RAM
	if m.RAM != nil {
		general := &types.Address{
			Read:  readOffset(m.RAM.Read, generalRAMStart),
			Write: writeOffset(m.RAM.Write, generalRAMStart),
		}
		for i := generalRAMStart; i <= 0xFFFF; i++ {
			m.raw[i] = general
		}
	}

	// LCD registers
	for _, address := range []types.HardwareAddress{types.LCDC, types.STAT, types.LY, types.LYC} {
		m.raw[address] = &addresses[2]
	}

	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := types.VRAMStart; i <= types.VRAMEnd; i++ {
		m.raw[i] = &addresses[1]
	}

	// 0x0000 - 0x7FFF - ROM (32kB)
	for i := types.CartridgeStart; i <= types.CartridgeEnd; i++ {
		m.raw[i] = &addresses[0]
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) (uint8, error) {
	return func(addr uint16) (uint8, error) {
		return read(addr - offset), nil
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) error {
	return func(addr uint16, v uint8) error {
		write(addr-offset, v)
		return nil
	}
}

func (m *MMU) readVRAM(address uint16) (uint8, error) {
	return m.Video.ReadVRAM(address - types.VRAMStart), nil
}

func (m *MMU) writeVRAM(address uint16, value uint8) error {
	m.Video.WriteVRAM(address-types.VRAMStart, value)
	return nil
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	if a := m.raw[address]; a != nil {
		return a.Read(address)
	}
	m.Log.Debugf("mmu: read of unmapped address 0x%04X", address)
	return 0, &AddressError{Address: address, Access: types.AccessRead}
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	if a := m.raw[address]; a != nil {
		return a.Write(address, value)
	}
	m.Log.Debugf("mmu: write of 0x%02X to unmapped address 0x%04X", value, address)
	return &AddressError{Address: address, Access: types.AccessWrite}
}

// Mapped reports whether the address resolves to a component.
func (m *MMU) Mapped(address uint16) bool {
	return m.raw[address] != nil
}

var _ types.Stater = (*MMU)(nil)

// Load restores the MMU and every component it routes to.
func (m *MMU) Load(s *types.State) {
	m.Cart.Load(s)
	if v, ok := m.Video.(types.Stater); ok {
		v.Load(s)
	}
	if m.RAM != nil {
		m.RAM.Load(s)
	}
}

// Save stores the MMU and every component it routes to.
func (m *MMU) Save(s *types.State) {
	m.Cart.Save(s)
	if v, ok := m.Video.(types.Stater); ok {
		v.Save(s)
	}
	if m.RAM != nil {
		m.RAM.Save(s)
	}
}
