// Package cartridge provides the Cartridge interface and the mapper
// implementations that translate bus addresses into offsets of the
// ROM image.
package cartridge

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/types"
)

// Cartridge represents a game cartridge as seen from the memory bus,
// covering the address range 0x0000-0x7FFF.
type Cartridge interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error

	Header() Header
	Title() string
	// Hash returns the xxhash of the ROM image, identifying the
	// cartridge independently of its header contents.
	Hash() uint64

	types.Stater
}

type baseCartridge struct {
	rom    []byte
	header Header
	hash   uint64
}

func (c *baseCartridge) Header() Header {
	return c.header
}

// Title returns the trimmed cartridge title.
func (c *baseCartridge) Title() string {
	return c.header.Title
}

func (c *baseCartridge) Hash() uint64 {
	return c.hash
}

// New parses the header of rom and returns a Cartridge using the mapper
// it declares. The image is copied, so the caller may reuse rom.
func New(rom []byte) (Cartridge, error) {
	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	image := make([]byte, len(rom))
	copy(image, rom)
	base := baseCartridge{
		rom:    image,
		header: header,
		hash:   xxhash.Sum64(image),
	}

	// parseHeader rejects every type but MBC1
	return NewMemoryBankedCartridge1(base), nil
}
