package lcd

// Mode represents a mode of the LCD, as reported in STAT bits 1-0.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode. The CPU can access both the display RAM and OAM.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode. The CPU can access both the display RAM and OAM.
	VBlank
	// OAM is the OAM mode. The CPU can access OAM but not the display RAM.
	OAM
	// VRAM is the VRAM mode. The CPU can access the display RAM but not OAM.
	VRAM
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM"
	case VRAM:
		return "VRAM"
	}
	return "unknown"
}
