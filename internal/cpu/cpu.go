// Package cpu implements the Sharp SM83, the CPU of the Game Boy. The
// CPU decodes and executes one instruction per Step against a Bus, and
// reports the elapsed cycles to the video controller.
package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// Bus is the 64kB address space the CPU executes against.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// Video receives the cycles elapsed by each step.
type Video interface {
	Update(cycles uint16)
}

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// IME is the interrupt master enable flag. It is toggled by DI, EI
	// and RETI, no interrupts are dispatched.
	IME bool

	// StepOverhead is forwarded to the video controller after the cost
	// of every executed instruction.
	StepOverhead uint16

	bus   Bus
	video Video
	log   log.Logger
	trace bool

	halted         bool
	branchNotTaken bool

	// operand holds the immediate bytes of the current instruction
	operand uint16
	// fault holds the first bus error of the current instruction
	fault error
	// saved is restored when the current instruction faults
	saved checkpoint
}

// NewCPU creates a new CPU executing against bus and reporting to video,
// in the state left by the DMG boot ROM.
func NewCPU(bus Bus, video Video, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		bus:          bus,
		video:        video,
		log:          logger,
		StepOverhead: DefaultStepOverhead,
	}
	// create register pairs
	c.initPairs()
	c.Reset()

	return c
}

// Reset sets the registers to the values the DMG boot ROM leaves them
// in, and resumes a halted CPU.
func (c *CPU) Reset() {
	c.AF.SetUint16(0x01B0)
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100
	c.IME = false
	c.halted = false
}

// SetTrace enables a debug log line for every executed instruction.
func (c *CPU) SetTrace(enabled bool) {
	c.trace = enabled
}

// Halted returns true if the CPU is halted by HALT or STOP.
func (c *CPU) Halted() bool {
	return c.halted
}

// Resume wakes a halted CPU, as a pending interrupt would.
func (c *CPU) Resume() {
	c.halted = false
}

// Step executes the instruction at PC and returns its cost in cycles.
// The cost, followed by StepOverhead, is forwarded to the video
// controller. A halted CPU does nothing and returns 0.
//
// When the opcode is undefined, or a bus access of the instruction
// fails, the error is returned with PC left at the start of the
// instruction and nothing is forwarded to the video controller. A
// faulted instruction leaves the registers, SP and IME as they were
// before it, and performs no bus write after the failing access, so
// the step can be retried once the address is mapped.
func (c *CPU) Step() (uint16, error) {
	if c.halted {
		return 0, nil
	}

	start := c.PC
	c.saved = checkpoint{registers: c.Registers, sp: c.SP, ime: c.IME, halted: c.halted}
	c.fault = nil
	c.branchNotTaken = false

	opcode := c.readOperand()
	extended := opcode == PrefixCB
	if extended {
		opcode = c.readOperand()
	}
	if c.fault != nil {
		return c.abort(start)
	}

	instr, err := Decode(opcode, extended)
	if err != nil {
		c.PC = start
		c.log.Debugf("cpu: undefined opcode 0x%02X at 0x%04X", opcode, start)
		return 0, &OpcodeError{Opcode: opcode, Extended: extended, Address: start}
	}

	c.fetchImmediate(instr, extended)
	if c.fault != nil {
		return c.abort(start)
	}

	if c.trace {
		c.log.Debugf("%04X  %-16s %s", start, instr, c)
	}

	c.execute(instr)
	if c.fault != nil {
		return c.abort(start)
	}

	cycles := c.cycles(opcode, extended)
	c.video.Update(cycles)
	if c.StepOverhead > 0 {
		c.video.Update(c.StepOverhead)
	}
	return cycles, nil
}

// checkpoint holds the registers at the start of a step.
type checkpoint struct {
	registers Registers
	sp        uint16
	ime       bool
	halted    bool
}

// abort rewinds the CPU to the start of the faulting instruction.
func (c *CPU) abort(start uint16) (uint16, error) {
	// the pairs of the copy still point at c's registers
	c.Registers = c.saved.registers
	c.SP = c.saved.sp
	c.IME = c.saved.ime
	c.halted = c.saved.halted
	c.PC = start
	c.log.Debugf("cpu: bus fault in instruction at 0x%04X: %v", start, c.fault)
	return 0, c.fault
}

// fetchImmediate reads the immediate bytes that follow the opcode, so
// that PC points to the next instruction during execution.
func (c *CPU) fetchImmediate(instr Instruction, extended bool) {
	c.operand = 0
	if extended {
		return
	}
	switch instr.Length {
	case 2:
		c.operand = uint16(c.readOperand())
	case 3:
		c.operand = uint16(c.readOperand()) | uint16(c.readOperand())<<8
	}
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readByte reads a byte from the bus, recording the first failure.
func (c *CPU) readByte(addr uint16) uint8 {
	value, err := c.bus.Read(addr)
	if err != nil && c.fault == nil {
		c.fault = err
	}
	return value
}

// writeByte writes the given value to the given address, recording
// the first failure. Nothing is written once the instruction faulted.
func (c *CPU) writeByte(addr uint16, val uint8) {
	if c.fault != nil {
		return
	}
	if err := c.bus.Write(addr, val); err != nil && c.fault == nil {
		c.fault = err
	}
}

// String returns the register file in the trace format.
func (c *CPU) String() string {
	return fmt.Sprintf("A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC)
}

var _ types.Stater = (*CPU)(nil)

// Load restores the CPU from the state.
func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
	c.IME = s.ReadBool()
	c.halted = s.ReadBool()
}

// Save stores the CPU in the state.
func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.IME)
	s.WriteBool(c.halted)
}
