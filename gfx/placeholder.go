package gfx

import (
	"image"
	"image/color"
)

const (
	placeholderSize = 64
	placeholderCell = 8
)

// Placeholder returns the magenta and black checkerboard that stands
// in for a texture whose image could not be decoded. Sampling it makes
// the failure obvious on screen instead of reading whatever the driver
// left in an empty texture object.
func Placeholder() *image.RGBA {
	magenta := color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	black := color.RGBA{A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	for y := 0; y < placeholderSize; y++ {
		for x := 0; x < placeholderSize; x++ {
			if (x/placeholderCell+y/placeholderCell)%2 == 0 {
				img.SetRGBA(x, y, magenta)
			} else {
				img.SetRGBA(x, y, black)
			}
		}
	}
	return img
}
