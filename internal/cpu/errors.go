package cpu

import (
	"errors"
	"fmt"
)

// ErrUndefinedOpcode is returned for an opcode that has no instruction
// on the SM83.
var ErrUndefinedOpcode = errors.New("undefined opcode")

// OpcodeError records an undefined opcode and where it was fetched.
type OpcodeError struct {
	Opcode   uint8
	Extended bool
	Address  uint16
}

func (e *OpcodeError) Error() string {
	prefix := ""
	if e.Extended {
		prefix = "CB "
	}
	return fmt.Sprintf("cpu: %s%02X at 0x%04X: %v", prefix, e.Opcode, e.Address, ErrUndefinedOpcode)
}

func (e *OpcodeError) Unwrap() error {
	return ErrUndefinedOpcode
}
