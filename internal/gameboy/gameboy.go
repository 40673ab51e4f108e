// Package gameboy wires a cartridge, the video controller, the memory
// bus and the SM83 together into a steppable machine.
package gameboy

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/ppu"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// ErrInvalidState is returned when a snapshot does not match the
// machine it is loaded into.
var ErrInvalidState = errors.New("gameboy: invalid state")

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
type GameBoy struct {
	CPU       *cpu.CPU
	MMU       *mmu.MMU
	PPU       *ppu.PPU
	Cartridge cartridge.Cartridge

	log.Logger

	mmuOpts      []mmu.Opt
	stepOverhead *uint16
	trace        bool

	// cycles elapsed since power on, overhead excluded
	cycles uint64
}

// New returns a new GameBoy running rom from 0x0100.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}
	h := cart.Header()
	g.Infof("cartridge: %s", h.String())
	g.Infof("cartridge: xxhash %016x", cart.Hash())

	video := ppu.New()
	bus := mmu.NewMMU(cart, video, append([]mmu.Opt{mmu.WithLogger(g.Logger)}, g.mmuOpts...)...)

	g.Cartridge = cart
	g.PPU = video
	g.MMU = bus
	g.CPU = cpu.NewCPU(bus, video, g.Logger)
	g.CPU.SetTrace(g.trace)
	if g.stepOverhead != nil {
		g.CPU.StepOverhead = *g.stepOverhead
	}

	return g, nil
}

// Step executes a single instruction and returns its cost in cycles.
// Undefined opcodes and unmapped accesses are logged and returned; the
// CPU is left at the faulting instruction.
func (g *GameBoy) Step() (uint16, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		g.trap(err)
		return 0, err
	}
	g.cycles += uint64(cycles)
	return cycles, nil
}

// trap logs an error returned by the CPU.
func (g *GameBoy) trap(err error) {
	var opErr *cpu.OpcodeError
	var addrErr *mmu.AddressError
	switch {
	case errors.As(err, &opErr):
		g.Errorf("trap: undefined opcode 0x%02X at 0x%04X (%s)", opErr.Opcode, opErr.Address, g.CPU)
	case errors.As(err, &addrErr):
		g.Errorf("trap: %s access to unmapped address 0x%04X (%s)", addrErr.Access, addrErr.Address, g.CPU)
	default:
		g.Errorf("trap: %v", err)
	}
}

// Run executes up to n instructions, stopping early at the first error
// or when the CPU halts. It returns the number of instructions executed.
func (g *GameBoy) Run(n int) (int, error) {
	for i := 0; i < n; i++ {
		if g.CPU.Halted() {
			return i, nil
		}
		if _, err := g.Step(); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Cycles returns the number of cycles executed since power on, the
// per step overhead excluded.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Save returns a snapshot of the CPU, the mapper, the video controller
// and general RAM.
func (g *GameBoy) Save() []byte {
	s := types.NewState()
	g.CPU.Save(s)
	g.MMU.Save(s)
	return s.Bytes()
}

// Load restores a snapshot taken by Save on a GameBoy with the same
// configuration.
func (g *GameBoy) Load(b []byte) error {
	if want := len(g.Save()); len(b) != want {
		return fmt.Errorf("%w: %d bytes, expected %d", ErrInvalidState, len(b), want)
	}
	s := types.StateFromBytes(b)
	g.CPU.Load(s)
	g.MMU.Load(s)
	return nil
}
