package host

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// SyntheticFrame renders the test pattern returned by the synthetic camera: a
// two-axis gradient with a centre crosshair.
func SyntheticFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 0x80,
				A: 0xff,
			})
		}
	}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for x := 0; x < w; x++ {
		img.SetRGBA(x, h/2, white)
	}
	for y := 0; y < h; y++ {
		img.SetRGBA(w/2, y, white)
	}
	return img
}

// CenterSquare is the default crop of the picker's editor.
func CenterSquare(img image.Image) image.Image {
	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(dst, dst.Bounds(), img, crop.Min, draw.Src)
	return dst
}
