package cartridge

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	headerStart = 0x0100
	headerEnd   = 0x0150

	titleOffset         = 0x0134
	titleEnd            = 0x0144
	typeOffset          = 0x0147
	romSizeOffset       = 0x0148
	ramSizeOffset       = 0x0149
	headerChecksumIndex = 0x014D
)

// Type is the mapper type byte of a cartridge (0x0147).
type Type uint8

const (
	ROM         Type = 0x00
	MBC1        Type = 0x01
	MBC1RAM     Type = 0x02
	MBC1RAMBATT Type = 0x03
	MBC2        Type = 0x05
	MBC3        Type = 0x11
	MBC5        Type = 0x19
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBATT:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC3:
		return "MBC3"
	case MBC5:
		return "MBC5"
	}
	return fmt.Sprintf("Type(0x%02X)", uint8(t))
}

// RAMSize describes the external RAM declared by a cartridge (0x0149).
type RAMSize uint8

const (
	RAMNone RAMSize = iota
	RAMUnused
	RAMOneBank
)

func (r RAMSize) String() string {
	switch r {
	case RAMNone:
		return "none"
	case RAMUnused:
		return "unused"
	case RAMOneBank:
		return "1 bank"
	}
	return "unknown"
}

var (
	romBanks = map[uint8]int{
		0x00: 2,
		0x01: 4,
	}
	ramSizes = map[uint8]RAMSize{
		0x00: RAMNone,
		0x01: RAMUnused,
		0x02: RAMOneBank,
	}
)

// Header represents the header of a cartridge, located at the address
// space 0x0100-0x014F. Only the fields the core consumes are decoded;
// the checksum is recorded but never validated.
type Header struct {
	// 0x0134-0x0143 - Title of the game
	Title string
	// 0x0147 - mapper type
	CartridgeType Type
	// 0x0148 - number of 16kB ROM banks
	ROMBanks int
	// 0x0149 - external RAM declaration
	RAMSize RAMSize
	// 0x014D - header checksum, as stored
	HeaderChecksum uint8
}

// parseHeader parses the header of the given ROM image. Every
// unsupported field is reported, not only the first one.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < headerEnd {
		return Header{}, fmt.Errorf("cartridge: %d bytes: %w", len(rom), ErrImageTooSmall)
	}

	h := Header{
		Title:          parseTitle(rom[titleOffset:titleEnd]),
		CartridgeType:  Type(rom[typeOffset]),
		HeaderChecksum: rom[headerChecksumIndex],
	}

	var result *multierror.Error
	if h.CartridgeType != MBC1 {
		result = multierror.Append(result, &HeaderError{typeOffset, rom[typeOffset], ErrUnsupportedCartridgeType})
	}

	if banks, ok := romBanks[rom[romSizeOffset]]; ok {
		h.ROMBanks = banks
	} else {
		result = multierror.Append(result, &HeaderError{romSizeOffset, rom[romSizeOffset], ErrUnsupportedROMSize})
	}

	if size, ok := ramSizes[rom[ramSizeOffset]]; ok {
		h.RAMSize = size
	} else {
		result = multierror.Append(result, &HeaderError{ramSizeOffset, rom[ramSizeOffset], ErrUnsupportedRAMSize})
	}

	return h, result.ErrorOrNil()
}

// parseTitle trims the zero padding of the title area.
func parseTitle(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimSpace(string(b))
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | %s | ROM: %d banks (%dkB) | RAM: %s", h.Title, h.CartridgeType, h.ROMBanks, h.ROMBanks*16, h.RAMSize)
}
