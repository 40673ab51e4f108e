// Package ppu provides the video controller surface seen by the CPU:
// video RAM with an eagerly decoded tile cache, the LCD registers and
// a cycle-driven scanline counter. Pixel compositing is not performed.
package ppu

import (
	"github.com/thelolagemann/sm83/internal/ppu/lcd"
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VRAMSize is the size of video RAM in bytes.
	VRAMSize = 0x2000
	// tileDataSize is the size of the tile data area at the start of
	// video RAM; writes above it do not touch the tile cache.
	tileDataSize = 0x1800

	// ScanlineCycles is the number of cycles spent on each scanline.
	ScanlineCycles = 456
	// LastScanline is the last value of LY before it wraps to 0.
	LastScanline = 153
)

// PPU implements the video controller surface of the Game Boy.
type PPU struct {
	Controller *lcd.Controller
	Status     *lcd.Status

	vram  [VRAMSize]uint8
	tiles [TileCount]Tile

	ly  uint8
	lyc uint8

	// counter holds the cycles elapsed on the current scanline
	counter uint32
}

// New returns a new PPU with cleared video RAM and LY at 0.
func New() *PPU {
	p := &PPU{
		Controller: lcd.NewController(),
		Status:     lcd.NewStatus(),
	}
	p.compare()
	return p
}

// ReadVRAM returns the byte at offset within video RAM. The offset is
// masked to the 8KB window.
func (p *PPU) ReadVRAM(offset uint16) uint8 {
	return p.vram[offset&(VRAMSize-1)]
}

// WriteVRAM stores value at offset within video RAM. Writes inside the
// tile data area re-decode the affected tile row before returning, so
// the tile cache is always consistent with video RAM.
func (p *PPU) WriteVRAM(offset uint16, value uint8) {
	offset &= VRAMSize - 1
	p.vram[offset] = value
	if offset >= tileDataSize {
		return
	}
	p.updateTile(offset)
}

// updateTile re-decodes the row of the tile containing offset.
func (p *PPU) updateTile(offset uint16) {
	base := offset & 0xFFFE
	tile := offset / 16
	row := (offset % 16) / 2
	p.tiles[tile].decodeRow(int(row), p.vram[base], p.vram[base+1])
}

// Tile returns the decoded tile at index i (0-383).
func (p *PPU) Tile(i int) Tile {
	return p.tiles[i]
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// LYC returns the scanline compare value.
func (p *PPU) LYC() uint8 {
	return p.lyc
}

// Update advances the scanline counter by the given number of cycles,
// moving LY forward once for every full scanline elapsed.
func (p *PPU) Update(cycles uint16) {
	p.counter += uint32(cycles)
	for p.counter >= ScanlineCycles {
		p.counter -= ScanlineCycles
		p.ly++
		if p.ly > LastScanline {
			p.ly = 0
		}
		p.compare()
	}
}

// compare refreshes the coincidence flag of the status register.
func (p *PPU) compare() {
	p.Status.Coincidence = p.ly == p.lyc
}

// Read returns the value of the LCD register at address.
func (p *PPU) Read(address uint16) (uint8, error) {
	switch address {
	case types.LCDC:
		return p.Controller.Pack(), nil
	case types.STAT:
		return p.Status.Pack(), nil
	case types.LY:
		return p.ly, nil
	case types.LYC:
		return p.lyc, nil
	}
	return 0, &types.AddressError{Address: address, Access: types.AccessRead, Region: "ppu"}
}

// Write writes value to the LCD register at address. Writes to LY are
// accepted and discarded; writes to STAT only affect the interrupt
// select bits.
func (p *PPU) Write(address uint16, value uint8) error {
	switch address {
	case types.LCDC:
		p.Controller.Unpack(value)
	case types.STAT:
		p.Status.Write(value)
	case types.LY:
		// read-only
	case types.LYC:
		p.lyc = value
		p.compare()
	default:
		return &types.AddressError{Address: address, Access: types.AccessWrite, Region: "ppu"}
	}
	return nil
}

var _ types.Stater = (*PPU)(nil)

// Load restores the PPU from the state. The tile cache is rebuilt from
// video RAM.
func (p *PPU) Load(s *types.State) {
	p.Controller.Unpack(s.Read8())
	p.Status.Unpack(s.Read8())
	p.ly = s.Read8()
	p.lyc = s.Read8()
	p.counter = uint32(s.Read16())
	s.ReadData(p.vram[:])
	for offset := uint16(0); offset < tileDataSize; offset += 2 {
		p.updateTile(offset)
	}
}

// Save stores the PPU in the state.
func (p *PPU) Save(s *types.State) {
	s.Write8(p.Controller.Pack())
	s.Write8(p.Status.Pack())
	s.Write8(p.ly)
	s.Write8(p.lyc)
	s.Write16(uint16(p.counter))
	s.WriteData(p.vram[:])
}
