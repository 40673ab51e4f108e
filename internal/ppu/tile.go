package ppu

// TileCount is the number of tiles addressable in the tile data area
// 0x8000-0x97FF.
const TileCount = 384

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades, stored as [row][column].
type Tile [8][8]uint8

// NewTile decodes a tile from its 16 bytes of 2bpp data.
func NewTile(b [16]uint8) Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		t.decodeRow(tileY, b[tileY*2], b[tileY*2+1])
	}
	return t
}

// decodeRow decodes one row of the tile from its low and high bit planes.
func (t *Tile) decodeRow(row int, lo, hi uint8) {
	for tileX := 0; tileX < 8; tileX++ {
		mask := uint8(1) << (7 - tileX)
		var value uint8
		if lo&mask != 0 {
			value |= 1
		}
		if hi&mask != 0 {
			value |= 2
		}
		t[row][tileX] = value
	}
}
