package camera

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// maxPixels bounds destination rasters; larger requests fail as an
// allocation error instead of exhausting memory.
const maxPixels = 100_000_000

// TargetSize resolves the requested box against src. Zero means
// unconstrained; one zero keeps the aspect ratio; two non-zero values are used
// as-is even if that distorts the image.
func TargetSize(src image.Rectangle, width, height int) (int, int) {
	sw, sh := src.Dx(), src.Dy()
	switch {
	case width <= 0 && height <= 0:
		return sw, sh
	case width > 0 && height > 0:
		return width, height
	case sw <= 0 || sh <= 0:
		return 0, 0
	}

	aspect := float64(sw) / float64(sh)
	if width > 0 {
		return width, atLeastOne(math.Round(float64(width) * (1 / aspect)))
	}
	return atLeastOne(math.Round(float64(height) * aspect)), height
}

// atLeastOne rounds a derived dimension into 1..maxPixels+1; anything past
// the budget fails in newRaster.
func atLeastOne(v float64) int {
	switch {
	case v < 1:
		return 1
	case v > maxPixels:
		return maxPixels + 1
	}
	return int(v)
}

// Resize scales img into a new RGBA raster. With no target it returns img.
func Resize(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 && height <= 0 {
		return img, nil
	}
	src := img.Bounds()
	if src.Empty() {
		return nil, fmt.Errorf("%w: empty source", ErrResize)
	}

	tw, th := TargetSize(src, width, height)
	dst, err := newRaster(tw, th)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResize, err)
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst, nil
}

func newRaster(w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}
	if w > maxPixels/h {
		return nil, fmt.Errorf("raster %dx%d exceeds %d pixels", w, h, maxPixels)
	}
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}
