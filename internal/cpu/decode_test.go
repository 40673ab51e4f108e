package cpu

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode_Totality(t *testing.T) {
	undefined := map[uint8]bool{}
	for _, opcode := range undefinedOpcodes {
		undefined[opcode] = true
	}
	if len(undefined) != 11 {
		t.Fatalf("expected 11 undefined opcodes, got %d", len(undefined))
	}

	for i := 0; i < 256; i++ {
		opcode := uint8(i)
		instr, err := Decode(opcode, false)
		switch {
		case undefined[opcode]:
			if !errors.Is(err, ErrUndefinedOpcode) {
				t.Errorf("0x%02X: expected ErrUndefinedOpcode, got %v", opcode, err)
			}
			if err != nil && strings.Contains(err.Error(), " at ") {
				t.Errorf("0x%02X: expected no fetch address in %q", opcode, err)
			}
		case opcode == PrefixCB:
			if err != nil || instr.Op != OpPrefix {
				t.Errorf("0xCB: expected prefix, got %s (%v)", instr, err)
			}
		default:
			if err != nil || instr.Op == OpInvalid || instr.Op == OpPrefix {
				t.Errorf("0x%02X: expected an instruction, got %s (%v)", opcode, instr, err)
			}
		}

		instr, err = Decode(opcode, true)
		if err != nil || instr.Op < OpRLC || instr.Op > OpSET {
			t.Errorf("CB %02X: expected an extended instruction, got %s (%v)", opcode, instr, err)
		}
		if instr.Length != 2 {
			t.Errorf("CB %02X: expected length 2, got %d", opcode, instr.Length)
		}
	}
}

func TestDecode_Instructions(t *testing.T) {
	tests := []struct {
		opcode   uint8
		extended bool
		want     string
		length   uint8
	}{
		{0x00, false, "NOP", 1},
		{0x01, false, "LD BC, d16", 3},
		{0x08, false, "LD (a16), SP", 3},
		{0x10, false, "STOP", 2},
		{0x18, false, "JR r8", 2},
		{0x20, false, "JR NZ, r8", 2},
		{0x22, false, "LD (HL+), A", 1},
		{0x3A, false, "LD A, (HL-)", 1},
		{0x36, false, "LD (HL), d8", 2},
		{0x39, false, "ADD HL, SP", 1},
		{0x41, false, "LD B, C", 1},
		{0x76, false, "HALT", 1},
		{0x86, false, "ADD A, (HL)", 1},
		{0x9F, false, "SBC A, A", 1},
		{0xB8, false, "CP B", 1},
		{0xC1, false, "POP BC", 1},
		{0xC3, false, "JP a16", 3},
		{0xCC, false, "CALL Z, a16", 3},
		{0xD8, false, "RET C", 1},
		{0xD9, false, "RETI", 1},
		{0xE0, false, "LD (a8), A", 2},
		{0xE2, false, "LD (C), A", 1},
		{0xE8, false, "ADD SP, r8", 2},
		{0xE9, false, "JP HL", 1},
		{0xEA, false, "LD (a16), A", 3},
		{0xF5, false, "PUSH AF", 1},
		{0xF8, false, "LD HL, SP+r8", 2},
		{0xF9, false, "LD SP, HL", 1},
		{0xFE, false, "CP d8", 2},
		{0xFF, false, "RST 38H", 1},
		{0x00, true, "RLC B", 2},
		{0x1E, true, "RR (HL)", 2},
		{0x37, true, "SWAP A", 2},
		{0x7C, true, "BIT 7, H", 2},
		{0x86, true, "RES 0, (HL)", 2},
		{0xFF, true, "SET 7, A", 2},
	}
	for _, tt := range tests {
		instr, err := Decode(tt.opcode, tt.extended)
		if err != nil {
			t.Fatalf("0x%02X: %v", tt.opcode, err)
		}
		if instr.String() != tt.want {
			t.Errorf("0x%02X: expected %q, got %q", tt.opcode, tt.want, instr.String())
		}
		if instr.Length != tt.length {
			t.Errorf("0x%02X: expected length %d, got %d", tt.opcode, tt.length, instr.Length)
		}
	}
}

func TestDecode_RST(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		instr, _ := Decode(0xC7|i<<3, false)
		if instr.Op != OpRST || instr.Vector != uint16(i)*8 {
			t.Errorf("expected RST %02XH, got %s", i*8, instr)
		}
	}
}
