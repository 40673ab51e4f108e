package utils

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// SaveImage scales img by the given integer factor using nearest
// neighbour sampling, and writes it to filename as a PNG.
func SaveImage(img image.Image, filename string, scale int) error {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := png.Encode(file, dst); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
