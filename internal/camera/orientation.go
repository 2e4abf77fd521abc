package camera

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// Orientation is the EXIF Orientation tag value (1..8).
type Orientation int

const (
	OrientationUp            Orientation = 1
	OrientationUpMirrored    Orientation = 2
	OrientationDown          Orientation = 3
	OrientationDownMirrored  Orientation = 4
	OrientationLeftMirrored  Orientation = 5
	OrientationRight         Orientation = 6
	OrientationRightMirrored Orientation = 7
	OrientationLeft          Orientation = 8
)

func (o Orientation) Valid() bool {
	return o >= OrientationUp && o <= OrientationLeft
}

// normalize treats the zero value and junk as upright.
func (o Orientation) normalize() Orientation {
	if !o.Valid() {
		return OrientationUp
	}
	return o
}

// SwapsAxes reports whether displaying the image exchanges width and height.
func (o Orientation) SwapsAxes() bool {
	return o >= OrientationLeftMirrored && o <= OrientationLeft
}

// CorrectOrientation re-renders img so its pixels are stored upright and the
// orientation no longer matters.
func CorrectOrientation(img image.Image, o Orientation) (image.Image, error) {
	if img == nil {
		return nil, ErrOrientation
	}
	o = o.normalize()
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if o.SwapsAxes() {
		w, h = h, w
	}
	dst, err := newRaster(w, h)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrientation, err)
	}

	if o == OrientationUp {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
		return dst, nil
	}

	stored, ok := img.(*image.RGBA)
	if !ok || stored.Rect.Min != (image.Point{}) {
		stored, err = newRaster(src.Dx(), src.Dy())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOrientation, err)
		}
		draw.Draw(stored, stored.Bounds(), img, src.Min, draw.Src)
	}
	remap(dst, stored, o)
	return dst, nil
}

// remap copies whole RGBA pixels from src into the upright dst.
func remap(dst, src *image.RGBA, o Orientation) {
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	for dy := 0; dy < h; dy++ {
		row := dst.Pix[dy*dst.Stride : dy*dst.Stride+w*4]
		for dx := 0; dx < w; dx++ {
			sx, sy := sourcePixel(o, dx, dy, sw, sh)
			si := sy*src.Stride + sx*4
			copy(row[dx*4:dx*4+4], src.Pix[si:si+4])
		}
	}
}

// sourcePixel maps a pixel of the upright output back to the stored image.
func sourcePixel(o Orientation, dx, dy, sw, sh int) (int, int) {
	switch o {
	case OrientationUpMirrored:
		return sw - 1 - dx, dy
	case OrientationDown:
		return sw - 1 - dx, sh - 1 - dy
	case OrientationDownMirrored:
		return dx, sh - 1 - dy
	case OrientationLeftMirrored:
		return dy, dx
	case OrientationRight:
		return dy, sh - 1 - dx
	case OrientationRightMirrored:
		return sw - 1 - dy, sh - 1 - dx
	case OrientationLeft:
		return sw - 1 - dy, dx
	default:
		return dx, dy
	}
}

const rootIfdPath = "IFD"

// ReadOrientation extracts the Orientation tag from an encoded image.
// Images without EXIF, or without the tag, are upright.
func ReadOrientation(data []byte) (Orientation, error) {
	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(bytes.NewReader(data), nil, true)
	if err != nil {
		if isNoExif(err) {
			return OrientationUp, nil
		}
		return OrientationUp, err
	}

	for _, tag := range tags {
		if tag.TagName != "Orientation" || tag.IfdPath != rootIfdPath {
			continue
		}
		if values, ok := tag.Value.([]uint16); ok && len(values) > 0 {
			return Orientation(values[0]).normalize(), nil
		}
	}
	return OrientationUp, nil
}

func isNoExif(err error) bool {
	if errors.Is(err, exif.ErrNoExif) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no exif")
}

// exifOrientationPayload builds an APP1 payload carrying only the Orientation
// tag.
func exifOrientationPayload(o Orientation) ([]byte, error) {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, err
	}
	ti := exif.NewTagIndex()
	ib := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, binary.BigEndian)
	if err := ib.AddStandardWithName("Orientation", []uint16{uint16(o)}); err != nil {
		return nil, err
	}

	encoded, err := exif.NewIfdByteEncoder().EncodeToExif(ib)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, jpegExifHeader...), encoded...), nil
}
