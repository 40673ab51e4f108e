package ppu

import (
	"image"
	"image/color"
)

const (
	// TileSheetColumns is the number of tiles per row of the tile sheet.
	TileSheetColumns = 16
	// TileSheetRows is the number of tile rows of the tile sheet.
	TileSheetRows = TileCount / TileSheetColumns
)

// Greyscale is the palette the tile sheet is drawn with, indexed by the
// 2 bit pixel value.
var Greyscale = color.Palette{
	color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
	color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xFF},
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// TileSheet draws the decoded tile cache as a 16x24 grid of tiles, in
// tile index order. It is a debugging view of video RAM and does not
// take the tile maps or scroll registers into account.
func (p *PPU) TileSheet() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, TileSheetColumns*8, TileSheetRows*8), Greyscale)
	for i, tile := range p.tiles {
		x0, y0 := (i%TileSheetColumns)*8, (i/TileSheetColumns)*8
		for tileY := 0; tileY < 8; tileY++ {
			for tileX := 0; tileX < 8; tileX++ {
				img.SetColorIndex(x0+tileX, y0+tileY, tile[tileY][tileX])
			}
		}
	}
	return img
}
