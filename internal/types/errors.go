package types

import (
	"errors"
	"fmt"
)

// ErrUnmappedAddress is returned when an address does not resolve to
// any backing store.
var ErrUnmappedAddress = errors.New("unmapped address")

// AccessKind is the direction of a memory access.
type AccessKind uint8

const (
	AccessRead AccessKind = iota
	AccessWrite
)

func (a AccessKind) String() string {
	if a == AccessWrite {
		return "write"
	}
	return "read"
}

// AddressError describes a failed access to the address space.
type AddressError struct {
	Address uint16
	Access  AccessKind
	Region  string // component that rejected the access, if any
}

func (e *AddressError) Error() string {
	if e.Region != "" {
		return fmt.Sprintf("%s: %s of %s: %v", e.Region, e.Access, HardwareName(e.Address), ErrUnmappedAddress)
	}
	return fmt.Sprintf("%s of %s: %v", e.Access, HardwareName(e.Address), ErrUnmappedAddress)
}

// Unwrap allows errors.Is(err, ErrUnmappedAddress).
func (e *AddressError) Unwrap() error {
	return ErrUnmappedAddress
}
