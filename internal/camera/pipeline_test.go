package camera

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processInline(t *testing.T, req CaptureRequest, raw RawImage) (image.Image, []byte) {
	t.Helper()
	res, err := Process(req, raw, NewMaterializer(t.TempDir()))
	require.NoError(t, err)
	data, err := DecodeInline(res.Data)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, res.Width, img.Bounds().Dx())
	assert.Equal(t, res.Height, img.Bounds().Dy())
	return img, data
}

func TestProcessScenarioWidthOnly(t *testing.T) {
	req := DefaultRequest()
	req.TargetWidth = 100
	img, _ := processInline(t, req, RawImage{Original: gradient(400, 200)})
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())
}

func TestProcessCorrectOrientationRotatesAndDropsTag(t *testing.T) {
	req := DefaultRequest()
	req.CorrectOrientation = true
	img, data := processInline(t, req, RawImage{Original: gradient(40, 20), Orientation: OrientationRight})
	assert.Equal(t, image.Rect(0, 0, 20, 40), img.Bounds())

	o, err := ReadOrientation(data)
	require.NoError(t, err)
	assert.Equal(t, OrientationUp, o)
}

func TestProcessWithoutCorrectionKeepsTag(t *testing.T) {
	img, data := processInline(t, DefaultRequest(), RawImage{Original: gradient(40, 20), Orientation: OrientationLeft})
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())

	o, err := ReadOrientation(data)
	require.NoError(t, err)
	assert.Equal(t, OrientationLeft, o)
}

func TestProcessResizeUsesDisplayedDimensions(t *testing.T) {
	req := DefaultRequest()
	req.TargetWidth = 10
	// Stored 40x20 but displayed 20x40 once rotated.
	img, data := processInline(t, req, RawImage{Original: gradient(40, 20), Orientation: OrientationRight})
	assert.Equal(t, image.Rect(0, 0, 10, 20), img.Bounds())

	o, err := ReadOrientation(data)
	require.NoError(t, err)
	assert.Equal(t, OrientationUp, o)
}

func TestProcessFileResult(t *testing.T) {
	req := DefaultRequest()
	req.ResultKind = ResultFile
	req.TargetWidth = 30
	req.TargetHeight = 30
	m := NewMaterializer(t.TempDir())

	res, err := Process(req, RawImage{Original: gradient(90, 10)}, m)
	require.NoError(t, err)
	assert.Equal(t, ResultFile, res.Kind)
	assert.Equal(t, 30, res.Width)
	assert.Equal(t, 30, res.Height)
	assert.Equal(t, 1, m.Counter())
}

func TestProcessHugeTargetFails(t *testing.T) {
	req := ParseRequest(map[string]any{
		"width":  float64(1 << 32),
		"height": float64(1 << 32),
	})
	_, err := Process(req, RawImage{Original: gradient(10, 10)}, NewMaterializer(t.TempDir()))
	assert.ErrorIs(t, err, ErrResize)
}
