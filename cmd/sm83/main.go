// Command sm83 runs a Game Boy ROM headless, optionally tracing every
// executed instruction, and dumps the video RAM tiles on exit.
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .gz, .zip or .7z)")
	steps := flag.Int("steps", 1_000_000, "The maximum number of instructions to execute")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	verbosity := flag.Int("v", 0, "Log verbosity, 0 for info up to 2 for trace")
	overhead := flag.Int("overhead", -1, "Cycles forwarded to the video controller after every instruction, -1 for the default")
	tiles := flag.String("tiles", "", "Write the tile sheet to this PNG file on exit")
	scale := flag.Int("scale", 4, "The scale of the tile sheet")
	stateIn := flag.String("state", "", "The state file to load before running")
	stateOut := flag.String("save", "", "Write the state to this file on exit")
	flag.Parse()

	level := logrus.Level(utils.Clamp(int(logrus.PanicLevel), int(logrus.InfoLevel)+*verbosity, int(logrus.TraceLevel)))
	if *trace && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logger := log.NewWithLevel(os.Stderr, level)

	if *romFile == "" {
		logger.Errorf("no rom file given, use -rom")
		os.Exit(2)
	}
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading %s: %v", *romFile, err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *trace {
		opts = append(opts, gameboy.Trace())
	}
	if *overhead >= 0 {
		opts = append(opts, gameboy.WithStepOverhead(uint16(utils.Clamp(0, *overhead, 0xFFFF))))
	}

	gb, err := gameboy.New(rom, opts...)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	if *stateIn != "" {
		b, err := os.ReadFile(*stateIn)
		if err == nil {
			err = gb.Load(b)
		}
		if err != nil {
			logger.Errorf("loading state %s: %v", *stateIn, err)
			os.Exit(1)
		}
	}

	n, runErr := gb.Run(*steps)
	logger.Infof("executed %d instructions in %d cycles", n, gb.Cycles())
	if gb.CPU.Halted() {
		logger.Infof("halted at 0x%04X", gb.CPU.PC)
	}

	if *tiles != "" {
		if err := utils.SaveImage(gb.PPU.TileSheet(), *tiles, *scale); err != nil {
			logger.Errorf("saving tiles: %v", err)
		}
	}
	if *stateOut != "" {
		if err := os.WriteFile(*stateOut, gb.Save(), 0o644); err != nil {
			logger.Errorf("saving state: %v", err)
		}
	}

	// the trap itself has been logged by the gameboy
	if runErr != nil {
		os.Exit(1)
	}
}
