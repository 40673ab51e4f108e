package types

import "fmt"

// Address represents a memory address in the SM83's address space,
// which can be read from or written to. The bus keeps one Address per
// mapped location, so that dispatch is a single table lookup.
type Address struct {
	// Read is called when the CPU reads from the address.
	Read func(address uint16) (uint8, error)
	// Write is called when the CPU writes to the address.
	Write func(address uint16, value uint8) error
}

// HardwareAddress represents the address of a memory-mapped
// I/O register.
type HardwareAddress = uint16

const (
	// LCDC is the address of the LCD control register. See
	// lcd.Controller for the layout of its bits.
	LCDC HardwareAddress = 0xFF40
	// STAT is the address of the LCD status register. See
	// lcd.Status for the layout of its bits.
	STAT HardwareAddress = 0xFF41
	// LY is the address of the current scanline register. It is
	// read-only from the bus, writes are discarded.
	LY HardwareAddress = 0xFF44
	// LYC is the address of the scanline compare register.
	LYC HardwareAddress = 0xFF45
)

const (
	// CartridgeStart is the first address delegated to the cartridge.
	CartridgeStart = 0x0000
	// CartridgeEnd is the last address delegated to the cartridge.
	CartridgeEnd = 0x7FFF
	// VRAMStart is the first address of video RAM.
	VRAMStart = 0x8000
	// VRAMEnd is the last address of video RAM.
	VRAMEnd = 0x9FFF
	// HighPage is the base of the high-memory page addressed by
	// LDH and LD (C).
	HighPage = 0xFF00
)

// HardwareName returns a printable name of the I/O register at
// address, or a hex representation for any other address.
func HardwareName(address uint16) string {
	switch address {
	case LCDC:
		return "LCDC"
	case STAT:
		return "STAT"
	case LY:
		return "LY"
	case LYC:
		return "LYC"
	}
	return fmt.Sprintf("0x%04X", address)
}
