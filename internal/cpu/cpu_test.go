package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// testBus is a flat 64kB address space. Addresses in unmapped fail.
type testBus struct {
	mem      [0x10000]uint8
	unmapped map[uint16]bool
}

func (b *testBus) Read(address uint16) (uint8, error) {
	if b.unmapped[address] {
		return 0, &types.AddressError{Address: address, Access: types.AccessRead}
	}
	return b.mem[address], nil
}

func (b *testBus) Write(address uint16, value uint8) error {
	if b.unmapped[address] {
		return &types.AddressError{Address: address, Access: types.AccessWrite}
	}
	b.mem[address] = value
	return nil
}

// videoRecorder records every cycle notification.
type videoRecorder struct {
	updates []uint16
}

func (v *videoRecorder) Update(cycles uint16) {
	v.updates = append(v.updates, cycles)
}

// newTestCPU returns a CPU with program loaded at address 0, PC at 0
// and every flag clear.
func newTestCPU(program ...uint8) (*CPU, *testBus, *videoRecorder) {
	bus := &testBus{}
	copy(bus.mem[:], program)
	video := &videoRecorder{}

	c := NewCPU(bus, video, log.NewNullLogger())
	c.PC = 0
	c.F = 0
	return c, bus, video
}

// step executes one instruction, failing the test on error.
func step(t *testing.T, c *CPU) uint16 {
	t.Helper()
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cycles
}

// expectFlags compares the flags of c with z, n, h and cy.
func expectFlags(t *testing.T, c *CPU, z, n, h, cy bool) {
	t.Helper()
	want := Flags{Zero: z, Subtract: n, HalfCarry: h, Carry: cy}
	if got := c.Flags(); got != want {
		t.Errorf("expected flags %+v, got %+v", want, got)
	}
}

// testInstruction runs fn as a subtest against a fresh CPU executing
// program from address 0.
func testInstruction(t *testing.T, name string, program []uint8, fn func(t *testing.T, c *CPU, bus *testBus)) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		c, bus, _ := newTestCPU(program...)
		fn(t, c, bus)
	})
}

func TestNewCPU(t *testing.T) {
	c := NewCPU(&testBus{}, &videoRecorder{}, nil)

	for _, reg := range []struct {
		name      string
		got, want uint16
	}{
		{"AF", c.AF.Uint16(), 0x01B0},
		{"BC", c.BC.Uint16(), 0x0013},
		{"DE", c.DE.Uint16(), 0x00D8},
		{"HL", c.HL.Uint16(), 0x014D},
		{"SP", c.SP, 0xFFFE},
		{"PC", c.PC, 0x0100},
	} {
		if reg.got != reg.want {
			t.Errorf("expected %s to be 0x%04X, got 0x%04X", reg.name, reg.want, reg.got)
		}
	}
	if c.StepOverhead != DefaultStepOverhead {
		t.Errorf("expected step overhead %d, got %d", DefaultStepOverhead, c.StepOverhead)
	}
}

func TestCPU_StepCycles(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		setup   func(c *CPU)
		cycles  uint16
	}{
		{"NOP", []uint8{0x00}, nil, 4},
		{"LD BC, d16", []uint8{0x01, 0x34, 0x12}, nil, 12},
		{"JR NZ taken", []uint8{0x20, 0x05}, nil, 12},
		{"JR NZ not taken", []uint8{0x20, 0x05}, func(c *CPU) { c.setFlag(FlagZero) }, 8},
		{"JP Z not taken", []uint8{0xCA, 0x00, 0x10}, nil, 12},
		{"CALL C taken", []uint8{0xDC, 0x00, 0x10}, func(c *CPU) { c.setFlag(FlagCarry) }, 24},
		{"CALL NC not taken", []uint8{0xD4, 0x00, 0x10}, func(c *CPU) { c.setFlag(FlagCarry) }, 12},
		{"RET Z not taken", []uint8{0xC8}, nil, 8},
		{"RLC B", []uint8{0xCB, 0x00}, nil, 8},
		{"RLC (HL)", []uint8{0xCB, 0x06}, nil, 16},
		{"BIT 0, (HL)", []uint8{0xCB, 0x46}, nil, 12},
		{"SET 7, (HL)", []uint8{0xCB, 0xFE}, nil, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, video := newTestCPU(tt.program...)
			c.HL.SetUint16(0x8000)
			c.SP = 0xFFFE
			if tt.setup != nil {
				tt.setup(c)
			}

			if cycles := step(t, c); cycles != tt.cycles {
				t.Errorf("expected %d cycles, got %d", tt.cycles, cycles)
			}
			want := []uint16{tt.cycles, DefaultStepOverhead}
			if len(video.updates) != 2 || video.updates[0] != want[0] || video.updates[1] != want[1] {
				t.Errorf("expected video updates %v, got %v", want, video.updates)
			}
		})
	}

	t.Run("without overhead", func(t *testing.T) {
		c, _, video := newTestCPU(0x00)
		c.StepOverhead = 0
		step(t, c)
		if len(video.updates) != 1 || video.updates[0] != 4 {
			t.Errorf("expected video updates [4], got %v", video.updates)
		}
	})
}

func TestCPU_Halt(t *testing.T) {
	c, _, video := newTestCPU(0x76, 0x00)
	step(t, c)
	if !c.Halted() {
		t.Fatal("expected CPU to be halted")
	}
	if c.PC != 0x0001 {
		t.Errorf("expected PC to be 0x0001, got 0x%04X", c.PC)
	}

	updates := len(video.updates)
	for i := 0; i < 3; i++ {
		if cycles := step(t, c); cycles != 0 {
			t.Errorf("expected halted step to take 0 cycles, got %d", cycles)
		}
	}
	if c.PC != 0x0001 || len(video.updates) != updates {
		t.Error("expected halted steps to do nothing")
	}

	c.Resume()
	step(t, c)
	if c.Halted() || c.PC != 0x0002 {
		t.Errorf("expected CPU to resume at 0x0002, got halted=%t PC=0x%04X", c.Halted(), c.PC)
	}
}

func TestCPU_Stop(t *testing.T) {
	c, _, _ := newTestCPU(0x10, 0x00)
	step(t, c)
	if !c.Halted() {
		t.Error("expected STOP to halt the CPU")
	}
	if c.PC != 0x0002 {
		t.Errorf("expected STOP to be 2 bytes long, PC 0x%04X", c.PC)
	}
}

func TestCPU_InterruptMasterEnable(t *testing.T) {
	c, bus, _ := newTestCPU(0xFB, 0xF3, 0xD9)
	step(t, c)
	if !c.IME {
		t.Error("expected EI to set IME")
	}
	step(t, c)
	if c.IME {
		t.Error("expected DI to clear IME")
	}

	// RETI to 0x1234
	c.SP = 0xFFFC
	bus.mem[0xFFFC], bus.mem[0xFFFD] = 0x34, 0x12
	step(t, c)
	if !c.IME || c.PC != 0x1234 || c.SP != 0xFFFE {
		t.Errorf("expected RETI to return to 0x1234 with IME set, got PC=0x%04X SP=0x%04X IME=%t", c.PC, c.SP, c.IME)
	}
}

func TestCPU_UndefinedOpcode(t *testing.T) {
	for _, opcode := range undefinedOpcodes {
		c, _, video := newTestCPU(0x00, opcode)
		step(t, c)

		_, err := c.Step()
		if !errors.Is(err, ErrUndefinedOpcode) {
			t.Fatalf("0x%02X: expected ErrUndefinedOpcode, got %v", opcode, err)
		}
		var opErr *OpcodeError
		if !errors.As(err, &opErr) || opErr.Opcode != opcode || opErr.Address != 0x0001 {
			t.Errorf("0x%02X: unexpected error %v", opcode, err)
		}
		if c.PC != 0x0001 {
			t.Errorf("0x%02X: expected PC to stay at 0x0001, got 0x%04X", opcode, c.PC)
		}
		if len(video.updates) != 2 {
			t.Errorf("0x%02X: expected no video updates for the undefined opcode, got %v", opcode, video.updates)
		}
	}
}

func TestCPU_BusFault(t *testing.T) {
	// LD A, (a16) from an unmapped address
	c, bus, video := newTestCPU(0xFA, 0x00, 0xC0)
	bus.unmapped = map[uint16]bool{0xC000: true}

	_, err := c.Step()
	if !errors.Is(err, types.ErrUnmappedAddress) {
		t.Fatalf("expected ErrUnmappedAddress, got %v", err)
	}
	var addrErr *types.AddressError
	if !errors.As(err, &addrErr) || addrErr.Address != 0xC000 {
		t.Errorf("unexpected error %v", err)
	}
	if c.PC != 0 {
		t.Errorf("expected PC to be rewound to 0x0000, got 0x%04X", c.PC)
	}
	if len(video.updates) != 0 {
		t.Errorf("expected no video updates, got %v", video.updates)
	}

	// the next step succeeds once the address is mapped
	delete(bus.unmapped, 0xC000)
	bus.mem[0xC000] = 0x42
	step(t, c)
	if c.A != 0x42 {
		t.Errorf("expected A to be 0x42, got 0x%02X", c.A)
	}
}

func TestCPU_BusFaultRestoresRegisters(t *testing.T) {
	t.Run("PUSH BC", func(t *testing.T) {
		c, bus, _ := newTestCPU(0xC5)
		bus.unmapped = map[uint16]bool{0xC000: true}
		c.SP = 0xC002
		c.BC.SetUint16(0x1234)

		if _, err := c.Step(); !errors.Is(err, types.ErrUnmappedAddress) {
			t.Fatalf("expected ErrUnmappedAddress, got %v", err)
		}
		if c.PC != 0x0000 || c.SP != 0xC002 {
			t.Errorf("expected PC=0x0000 SP=0xC002, got PC=0x%04X SP=0x%04X", c.PC, c.SP)
		}

		delete(bus.unmapped, 0xC000)
		step(t, c)
		if c.SP != 0xC000 {
			t.Errorf("expected SP to be 0xC000 after the retry, got 0x%04X", c.SP)
		}
		if bus.mem[0xC001] != 0x12 || bus.mem[0xC000] != 0x34 {
			t.Errorf("expected 0x12 0x34 on the stack, got 0x%02X 0x%02X", bus.mem[0xC001], bus.mem[0xC000])
		}
	})
	t.Run("PUSH BC stops writing after the fault", func(t *testing.T) {
		c, bus, _ := newTestCPU(0xC5)
		bus.unmapped = map[uint16]bool{0xC001: true}
		c.SP = 0xC002
		c.BC.SetUint16(0x1234)

		if _, err := c.Step(); err == nil {
			t.Fatal("expected an error")
		}
		if bus.mem[0xC000] != 0x00 {
			t.Errorf("expected no write below the faulting address, got 0x%02X", bus.mem[0xC000])
		}
	})
	t.Run("LD (HL+), A", func(t *testing.T) {
		c, bus, _ := newTestCPU(0x22)
		bus.unmapped = map[uint16]bool{0xC000: true}
		c.A = 0x77
		c.HL.SetUint16(0xC000)

		if _, err := c.Step(); !errors.Is(err, types.ErrUnmappedAddress) {
			t.Fatalf("expected ErrUnmappedAddress, got %v", err)
		}
		if c.HL.Uint16() != 0xC000 {
			t.Errorf("expected HL to stay at 0xC000, got 0x%04X", c.HL.Uint16())
		}

		delete(bus.unmapped, 0xC000)
		step(t, c)
		if c.HL.Uint16() != 0xC001 || bus.mem[0xC000] != 0x77 {
			t.Errorf("expected HL=0xC001 and 0x77 at 0xC000, got HL=0x%04X 0x%02X", c.HL.Uint16(), bus.mem[0xC000])
		}
	})
	t.Run("RET", func(t *testing.T) {
		c, bus, _ := newTestCPU(0xC9)
		bus.unmapped = map[uint16]bool{0xC001: true}
		c.SP = 0xC000

		if _, err := c.Step(); err == nil {
			t.Fatal("expected an error")
		}
		if c.SP != 0xC000 || c.PC != 0x0000 {
			t.Errorf("expected SP=0xC000 PC=0x0000, got SP=0x%04X PC=0x%04X", c.SP, c.PC)
		}
	})
	t.Run("INC (HL)", func(t *testing.T) {
		c, bus, _ := newTestCPU(0x34)
		bus.unmapped = map[uint16]bool{0xC000: true}
		c.HL.SetUint16(0xC000)
		c.F = 0x10

		if _, err := c.Step(); err == nil {
			t.Fatal("expected an error")
		}
		if c.F != 0x10 {
			t.Errorf("expected flags to be restored to 0x10, got 0x%02X", c.F)
		}
	})
}

func TestCPU_Trace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	bus := &testBus{}
	bus.mem[0x0100] = 0x3C // INC A
	c := NewCPU(bus, &videoRecorder{}, logger)
	c.SetTrace(true)
	step(t, c)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a trace entry")
	}
	if !strings.Contains(entry.Message, "INC A") {
		t.Errorf("expected trace to contain the mnemonic, got %q", entry.Message)
	}
}

func TestCPU_State(t *testing.T) {
	c, _, _ := newTestCPU(0x76)
	c.BC.SetUint16(0x1234)
	c.SP = 0xC000
	c.IME = true
	step(t, c)

	s := types.NewState()
	c.Save(s)

	other, _, _ := newTestCPU()
	s.ResetPosition()
	other.Load(s)

	if other.BC.Uint16() != 0x1234 || other.SP != 0xC000 || other.PC != c.PC || !other.IME || !other.Halted() {
		t.Errorf("expected %s, got %s", c, other)
	}
}

func TestCPU_Determinism(t *testing.T) {
	program := []uint8{
		0x3E, 0x15,       // LD A, 0x15
		0x06, 0x27,       // LD B, 0x27
		0x80,             // ADD A, B
		0x27,             // DAA
		0x21, 0x00, 0xC0, // LD HL, 0xC000
		0x22,             // LD (HL+), A
		0xCB, 0x37,       // SWAP A
		0x18, 0xF2,       // JR -14
	}
	run := func() []byte {
		c, _, _ := newTestCPU(program...)
		for i := 0; i < 50; i++ {
			step(t, c)
		}
		s := types.NewState()
		c.Save(s)
		return s.Bytes()
	}
	if !bytes.Equal(run(), run()) {
		t.Error("expected identical runs to produce identical state")
	}
}
