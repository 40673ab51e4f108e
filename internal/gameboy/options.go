package gameboy

import (
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before its components are built.
type Opt func(gb *GameBoy)

// WithLogger sets the logger shared by every component.
func WithLogger(l log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = l
	}
}

// WithStepOverhead sets the cycles forwarded to the video controller
// after every instruction. 0 disables the overhead.
func WithStepOverhead(cycles uint16) Opt {
	return func(gb *GameBoy) {
		gb.stepOverhead = &cycles
	}
}

// Trace logs every executed instruction at debug level.
func Trace() Opt {
	return func(gb *GameBoy) {
		gb.trace = true
	}
}

// WithoutGeneralRAM leaves the general RAM region of the bus unmapped.
func WithoutGeneralRAM() Opt {
	return func(gb *GameBoy) {
		gb.mmuOpts = append(gb.mmuOpts, mmu.WithoutGeneralRAM())
	}
}
