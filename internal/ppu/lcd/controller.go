// Package lcd holds the structured forms of the LCD control and status
// registers.
package lcd

import "github.com/thelolagemann/sm83/internal/types"

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit.
	Enabled bool
	// WindowTileMap selects the 0x9C00 window tile map when set.
	WindowTileMap bool
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// TileData selects the unsigned 0x8000 tile data area when set.
	TileData bool
	// BackgroundTileMap selects the 0x9C00 background tile map when set.
	BackgroundTileMap bool
	// SpriteSize selects 8x16 sprites when set.
	SpriteSize bool
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit.
	BackgroundEnabled bool
}

// NewController returns a new LCD controller, with every bit clear.
func NewController() *Controller {
	return &Controller{}
}

// Unpack sets every field of the controller from the register value.
func (c *Controller) Unpack(value uint8) {
	c.Enabled = types.Test(value, types.Bit7)
	c.WindowTileMap = types.Test(value, types.Bit6)
	c.WindowEnabled = types.Test(value, types.Bit5)
	c.TileData = types.Test(value, types.Bit4)
	c.BackgroundTileMap = types.Test(value, types.Bit3)
	c.SpriteSize = types.Test(value, types.Bit2)
	c.SpriteEnabled = types.Test(value, types.Bit1)
	c.BackgroundEnabled = types.Test(value, types.Bit0)
}

// Pack returns the register value of the controller.
func (c *Controller) Pack() uint8 {
	return types.BoolBit(c.Enabled, types.Bit7) |
		types.BoolBit(c.WindowTileMap, types.Bit6) |
		types.BoolBit(c.WindowEnabled, types.Bit5) |
		types.BoolBit(c.TileData, types.Bit4) |
		types.BoolBit(c.BackgroundTileMap, types.Bit3) |
		types.BoolBit(c.SpriteSize, types.Bit2) |
		types.BoolBit(c.SpriteEnabled, types.Bit1) |
		types.BoolBit(c.BackgroundEnabled, types.Bit0)
}

// WindowTileMapAddress returns the start address of the window tile map.
func (c *Controller) WindowTileMapAddress() uint16 {
	if c.WindowTileMap {
		return 0x9C00
	}
	return 0x9800
}

// BackgroundTileMapAddress returns the start address of the background
// tile map.
func (c *Controller) BackgroundTileMapAddress() uint16 {
	if c.BackgroundTileMap {
		return 0x9C00
	}
	return 0x9800
}

// UsingSignedTileData returns true if the LCD controller is using signed tile
// data.
func (c *Controller) UsingSignedTileData() bool {
	return !c.TileData
}
