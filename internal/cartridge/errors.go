package cartridge

import (
	"errors"
	"fmt"
)

var (
	// ErrImageTooSmall is returned when the image cannot hold a header.
	ErrImageTooSmall = errors.New("image too small to hold a cartridge header")
	// ErrUnsupportedCartridgeType is returned for any mapper type byte
	// other than MBC1.
	ErrUnsupportedCartridgeType = errors.New("unsupported cartridge type")
	// ErrUnsupportedROMSize is returned for an unrecognised ROM size code.
	ErrUnsupportedROMSize = errors.New("unsupported ROM size")
	// ErrUnsupportedRAMSize is returned for an unrecognised RAM size code.
	ErrUnsupportedRAMSize = errors.New("unsupported RAM size")
)

// HeaderError records a rejected header byte.
type HeaderError struct {
	Offset uint16 // absolute offset of the byte in the image
	Value  uint8
	Err    error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("cartridge: header byte 0x%04X = 0x%02X: %v", e.Offset, e.Value, e.Err)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}
