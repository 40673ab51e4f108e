package cpu

import "testing"

func TestInstruction_Rotate(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		value   uint8
		carry   bool
		want    uint8
		z, c    bool
	}{
		{"RLC B", []uint8{0xCB, 0x00}, 0x85, false, 0x0B, false, true},
		{"RLC B zero", []uint8{0xCB, 0x00}, 0x00, false, 0x00, true, false},
		{"RRC B", []uint8{0xCB, 0x08}, 0x01, false, 0x80, false, true},
		{"RRC B no carry", []uint8{0xCB, 0x08}, 0x02, false, 0x01, false, false},
		{"RL B", []uint8{0xCB, 0x10}, 0x80, false, 0x00, true, true},
		{"RL B carry in", []uint8{0xCB, 0x10}, 0x11, true, 0x23, false, false},
		{"RR B", []uint8{0xCB, 0x18}, 0x01, false, 0x00, true, true},
		{"RR B carry in", []uint8{0xCB, 0x18}, 0x8A, true, 0xC5, false, false},
		{"SLA B", []uint8{0xCB, 0x20}, 0x81, false, 0x02, false, true},
		{"SLA B carry ignored", []uint8{0xCB, 0x20}, 0x01, true, 0x02, false, false},
		{"SRA B", []uint8{0xCB, 0x28}, 0x8A, false, 0xC5, false, false},
		{"SRA B carry out", []uint8{0xCB, 0x28}, 0x01, false, 0x00, true, true},
		{"SRL B", []uint8{0xCB, 0x38}, 0x01, false, 0x00, true, true},
		{"SRL B high bit", []uint8{0xCB, 0x38}, 0xFF, false, 0x7F, false, true},
		{"SWAP B", []uint8{0xCB, 0x30}, 0xF0, true, 0x0F, false, false},
		{"SWAP B zero", []uint8{0xCB, 0x30}, 0x00, false, 0x00, true, false},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, tt.program, func(t *testing.T, c *CPU, _ *testBus) {
			c.B = tt.value
			if tt.carry {
				c.setFlag(FlagCarry)
			}
			step(t, c)
			if c.B != tt.want {
				t.Errorf("expected B to be 0x%02X, got 0x%02X", tt.want, c.B)
			}
			expectFlags(t, c, tt.z, false, false, tt.c)
		})
	}

	testInstruction(t, "RR (HL)", []uint8{0xCB, 0x1E}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xC000)
		bus.mem[0xC000] = 0x03
		step(t, c)
		if bus.mem[0xC000] != 0x01 {
			t.Errorf("expected 0x01 at 0xC000, got 0x%02X", bus.mem[0xC000])
		}
		expectFlags(t, c, false, false, false, true)
	})
}

func TestInstruction_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		value   uint8
		carry   bool
		want    uint8
		c       bool
	}{
		{"RLCA", []uint8{0x07}, 0x80, false, 0x01, true},
		{"RRCA", []uint8{0x0F}, 0x01, false, 0x80, true},
		{"RLA", []uint8{0x17}, 0x80, false, 0x00, true},
		{"RRA", []uint8{0x1F}, 0x01, false, 0x00, true},
		{"RRA carry in", []uint8{0x1F}, 0x00, true, 0x80, false},
	}
	for _, tt := range tests {
		testInstruction(t, tt.name, tt.program, func(t *testing.T, c *CPU, _ *testBus) {
			c.A = tt.value
			if tt.carry {
				c.setFlag(FlagCarry)
			}
			step(t, c)
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			// the accumulator forms never set Z, even on a zero result
			expectFlags(t, c, false, false, false, tt.c)
		})
	}
}

func TestInstruction_Bits(t *testing.T) {
	testInstruction(t, "BIT 7, H set", []uint8{0xCB, 0x7C}, func(t *testing.T, c *CPU, _ *testBus) {
		c.H = 0x80
		c.setFlag(FlagCarry)
		step(t, c)
		expectFlags(t, c, false, false, true, true)
	})
	testInstruction(t, "BIT 7, H clear", []uint8{0xCB, 0x7C}, func(t *testing.T, c *CPU, _ *testBus) {
		c.H = 0x7F
		step(t, c)
		expectFlags(t, c, true, false, true, false)
	})
	testInstruction(t, "BIT 0, (HL)", []uint8{0xCB, 0x46}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xC000)
		bus.mem[0xC000] = 0x01
		step(t, c)
		expectFlags(t, c, false, false, true, false)
	})

	for bit := uint8(0); bit < 8; bit++ {
		set := 0xC0 | bit<<3 | 0x07 // SET bit, A
		res := 0x80 | bit<<3 | 0x07 // RES bit, A
		testInstruction(t, "SET and RES", []uint8{0xCB, set, 0xCB, res}, func(t *testing.T, c *CPU, _ *testBus) {
			c.F = 0xF0
			step(t, c)
			if c.A != 1<<bit {
				t.Errorf("SET %d: expected A to be 0x%02X, got 0x%02X", bit, 1<<bit, c.A)
			}
			step(t, c)
			if c.A != 0 {
				t.Errorf("RES %d: expected A to be 0x00, got 0x%02X", bit, c.A)
			}
			if c.F != 0xF0 {
				t.Errorf("expected flags to be unaffected, got 0x%02X", c.F)
			}
		})
	}

	testInstruction(t, "RES 0, (HL)", []uint8{0xCB, 0x86}, func(t *testing.T, c *CPU, bus *testBus) {
		c.HL.SetUint16(0xC000)
		bus.mem[0xC000] = 0xFF
		step(t, c)
		if bus.mem[0xC000] != 0xFE {
			t.Errorf("expected 0xFE at 0xC000, got 0x%02X", bus.mem[0xC000])
		}
	})
}
