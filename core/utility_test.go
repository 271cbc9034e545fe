package core_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/devblok/texel/core"
)

func testImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x7f, A: 0xff})
		}
	}
	return img
}

func TestGetPixels(t *testing.T) {
	pixels, width, height := core.GetPixels(testImage(16, 8))
	if width != 16 || height != 8 {
		t.Errorf("dimensions got %dx%d, expected 16x8", width, height)
	}
	if len(pixels) != 16*8*4 {
		t.Fatalf("expected %d bytes of pixels, got %d", 16*8*4, len(pixels))
	}

	// Pixel (3, 2) sits at row*stride plus column*4.
	off := 2*16*4 + 3*4
	if pixels[off] != 3 || pixels[off+1] != 2 || pixels[off+2] != 0x7f || pixels[off+3] != 0xff {
		t.Errorf("pixel (3,2) arrived as %v", pixels[off:off+4])
	}
}

func TestGetPixelsOffsetBounds(t *testing.T) {
	// Subimages carry non-zero bounds, the canvas must normalise them.
	src := testImage(16, 16).(*image.NRGBA).SubImage(image.Rect(4, 4, 12, 12))
	pixels, width, height := core.GetPixels(src)
	if width != 8 || height != 8 {
		t.Errorf("dimensions got %dx%d, expected 8x8", width, height)
	}
	if pixels[0] != 4 || pixels[1] != 4 {
		t.Errorf("expected the canvas to start at the subimage origin, got %v", pixels[:4])
	}
}

func BenchmarkGetPixelsSmall(b *testing.B) {
	img := testImage(64, 64)
	b.ResetTimer()
	for idx := 0; idx < b.N; idx++ {
		core.GetPixels(img)
	}
}

func BenchmarkGetPixelsMedium(b *testing.B) {
	img := testImage(512, 512)
	b.ResetTimer()
	for idx := 0; idx < b.N; idx++ {
		core.GetPixels(img)
	}
}

func BenchmarkGetPixelsBig(b *testing.B) {
	img := testImage(2048, 2048)
	b.ResetTimer()
	for idx := 0; idx < b.N; idx++ {
		core.GetPixels(img)
	}
}
