package camera

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeNoTargetKeepsDimensions(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {400, 300}, {37, 91}} {
		src := gradient(size[0], size[1])
		out, err := Resize(src, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, src.Bounds(), out.Bounds())
	}
}

func TestResizeSingleDimensionKeepsAspect(t *testing.T) {
	sources := [][2]int{{400, 200}, {300, 400}, {1024, 768}, {97, 13}, {13, 97}}
	targets := [][2]int{{100, 0}, {0, 100}, {33, 0}, {0, 7}, {640, 0}}

	for _, s := range sources {
		src := gradient(s[0], s[1])
		srcAspect := float64(s[0]) / float64(s[1])
		for _, tgt := range targets {
			out, err := Resize(src, tgt[0], tgt[1])
			require.NoError(t, err)
			w, h := out.Bounds().Dx(), out.Bounds().Dy()

			if tgt[0] > 0 {
				assert.Equal(t, tgt[0], w)
				assert.LessOrEqual(t, math.Abs(float64(w)/srcAspect-float64(h)), 1.0, "src %v target %v got %dx%d", s, tgt, w, h)
			} else {
				assert.Equal(t, tgt[1], h)
				assert.LessOrEqual(t, math.Abs(float64(h)*srcAspect-float64(w)), 1.0, "src %v target %v got %dx%d", s, tgt, w, h)
			}
		}
	}
}

func TestResizeBothDimensionsIsExact(t *testing.T) {
	src := gradient(400, 200)
	out, err := Resize(src, 50, 300)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 300), out.Bounds())
}

func TestTargetSize(t *testing.T) {
	w, h := TargetSize(image.Rect(0, 0, 400, 200), 100, 0)
	assert.Equal(t, [2]int{100, 50}, [2]int{w, h})

	w, h = TargetSize(image.Rect(0, 0, 400, 200), 0, 100)
	assert.Equal(t, [2]int{200, 100}, [2]int{w, h})

	w, h = TargetSize(image.Rect(0, 0, 1000, 10), 10, 0)
	assert.Equal(t, [2]int{10, 1}, [2]int{w, h})

	w, h = TargetSize(image.Rect(0, 0, 3, 2), 0, 0)
	assert.Equal(t, [2]int{3, 2}, [2]int{w, h})
}

func TestResizeFailures(t *testing.T) {
	_, err := Resize(image.NewRGBA(image.Rect(0, 0, 0, 0)), 10, 0)
	assert.ErrorIs(t, err, ErrResize)

	_, err = Resize(gradient(4, 4), 50000, 50000)
	assert.ErrorIs(t, err, ErrResize)

	// Products past int64 must not wrap into an accepted size.
	for _, size := range [][2]int{{1 << 32, 1 << 32}, {1 << 40, 0}, {0, 1 << 40}, {math.MaxInt, math.MaxInt}} {
		_, err = Resize(gradient(4, 4), size[0], size[1])
		assert.ErrorIs(t, err, ErrResize, "target %v", size)
	}
	_, err = Resize(gradient(1, 1000), 1<<40, 0)
	assert.ErrorIs(t, err, ErrResize)
}

func TestNewRasterBudget(t *testing.T) {
	_, err := newRaster(10_000, 10_001)
	assert.Error(t, err)
	_, err = newRaster(1<<32, 1<<32)
	assert.Error(t, err)
}

func TestCorrectOrientation(t *testing.T) {
	src := gradient(4, 2)
	cases := map[Orientation]struct {
		w, h int
		// display pixel (0,0) comes from this stored pixel
		origin image.Point
	}{
		OrientationUp:            {4, 2, image.Pt(0, 0)},
		OrientationUpMirrored:    {4, 2, image.Pt(3, 0)},
		OrientationDown:          {4, 2, image.Pt(3, 1)},
		OrientationDownMirrored:  {4, 2, image.Pt(0, 1)},
		OrientationLeftMirrored:  {2, 4, image.Pt(0, 0)},
		OrientationRight:         {2, 4, image.Pt(0, 1)},
		OrientationRightMirrored: {2, 4, image.Pt(3, 1)},
		OrientationLeft:          {2, 4, image.Pt(3, 0)},
	}
	for o, tc := range cases {
		out, err := CorrectOrientation(src, o)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, tc.w, tc.h), out.Bounds(), "orientation %d", o)
		assert.Equal(t, src.At(tc.origin.X, tc.origin.Y), out.At(0, 0), "orientation %d", o)
	}
}

func TestCorrectOrientationRightRotatesClockwise(t *testing.T) {
	src := gradient(3, 2)
	out, err := CorrectOrientation(src, OrientationRight)
	require.NoError(t, err)
	// The stored top row becomes the displayed right column.
	for x := 0; x < 3; x++ {
		assert.Equal(t, src.At(x, 0), out.At(1, x))
	}
}

func TestCorrectOrientationHonoursBoundsOffset(t *testing.T) {
	full := gradient(6, 6)
	sub := full.SubImage(image.Rect(2, 2, 5, 4))
	out, err := CorrectOrientation(sub, OrientationUp)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), out.Bounds())
	assert.Equal(t, full.At(2, 2), out.At(0, 0))
}

func TestCorrectOrientationMatchesPixelMapping(t *testing.T) {
	rgba := gradient(7, 5)
	ycc := image.NewYCbCr(image.Rect(0, 0, 7, 5), image.YCbCrSubsampleRatio444)
	for i := range ycc.Y {
		ycc.Y[i], ycc.Cb[i], ycc.Cr[i] = uint8(i*7), uint8(255-i*3), uint8(i*11)
	}
	sources := map[string]image.Image{
		"rgba":     rgba,
		"ycbcr":    ycc,
		"subimage": gradient(12, 9).SubImage(image.Rect(3, 2, 10, 7)),
	}
	for name, src := range sources {
		b := src.Bounds()
		for o := OrientationUp; o <= OrientationLeft; o++ {
			out, err := CorrectOrientation(src, o)
			require.NoError(t, err)
			ob := out.Bounds()
			for y := 0; y < ob.Dy(); y++ {
				for x := 0; x < ob.Dx(); x++ {
					sx, sy := sourcePixel(o, x, y, b.Dx(), b.Dy())
					want := color.RGBAModel.Convert(src.At(b.Min.X+sx, b.Min.Y+sy))
					require.Equal(t, want, out.At(x, y), "%s orientation %d at %d,%d", name, o, x, y)
				}
			}
		}
	}
}

func TestCorrectOrientationNil(t *testing.T) {
	_, err := CorrectOrientation(nil, OrientationUp)
	assert.ErrorIs(t, err, ErrResize)
	assert.ErrorIs(t, err, ErrOrientation)
}
