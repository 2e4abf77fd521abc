package camera

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"
)

const FormatJPEG = "jpeg"

// jpegQuality maps the 0..100 request quality to the codec's 0..1 scale and
// then onto image/jpeg's 1..100 range.
func jpegQuality(quality int) int {
	scaled := float64(quality) / 100
	q := int(math.Round(scaled * 100))
	if q < 1 {
		return 1
	}
	if q > 100 {
		return 100
	}
	return q
}

// EncodeJPEG compresses img. A non-upright orientation is recorded as an EXIF
// tag so the stored pixels still display correctly.
func EncodeJPEG(img image.Image, quality int, o Orientation) (Artifact, error) {
	if img == nil {
		return Artifact{}, fmt.Errorf("%w: no image", ErrEncode)
	}
	b := img.Bounds()
	if b.Empty() {
		return Artifact{}, fmt.Errorf("%w: empty image", ErrEncode)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality(quality)}); err != nil {
		return Artifact{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	data := buf.Bytes()

	if o = o.normalize(); o != OrientationUp {
		payload, err := exifOrientationPayload(o)
		if err != nil {
			return Artifact{}, fmt.Errorf("%w: orientation tag: %v", ErrEncode, err)
		}
		if data, err = insertSegment(data, markerAPP1, payload); err != nil {
			return Artifact{}, fmt.Errorf("%w: %v", ErrEncode, err)
		}
	}

	return Artifact{
		Data:   data,
		Format: FormatJPEG,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
