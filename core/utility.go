package core

import (
	"image"
	"image/draw"
)

// GetPixels transforms a given image into the right arrangement of
// pixels for texture upload by drawing the decoded image onto a
// controlled RGBA canvas. Returns the tightly packed pixel rows
// together with the image dimensions.
func GetPixels(img image.Image) ([]uint8, int32, int32) {
	bounds := img.Bounds()
	newImg := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(newImg, newImg.Bounds(), img, bounds.Min, draw.Src)
	return newImg.Pix, int32(bounds.Dx()), int32(bounds.Dy())
}
