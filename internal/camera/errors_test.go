package camera

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{nil, KindNone},
		{&PrerequisiteError{Key: DisclosureCamera}, KindConfiguration},
		{ErrCancelled, KindCancellation},
		{ErrSuperseded, KindCancellation},
		{ErrLibraryDenied, KindAuthorization},
		{ErrCameraUnavailable, KindCapability},
		{fmt.Errorf("%w: boom", ErrEncode), KindProcessing},
		{errors.New("disk on fire"), KindProcessing},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Kind(tc.err), "%v", tc.err)
	}
}

func TestMessageStripsDetail(t *testing.T) {
	assert.Equal(t, "Error resizing image", message(ErrOrientation))
	assert.Equal(t, "Error resizing image", message(fmt.Errorf("%w: raster too big", ErrResize)))
	assert.Equal(t, "User cancelled photos app", message(ErrSuperseded))
	assert.Equal(t, "something else", message(errors.New("something else")))
}

func TestResultChannelResolvesOnce(t *testing.T) {
	var got []Outcome
	c := newResultChannel("s1", func(o Outcome) { got = append(got, o) })

	assert.True(t, c.Success(Result{Format: "jpeg"}))
	assert.False(t, c.Error(ErrEncode))
	assert.False(t, c.Success(Result{}))
	assert.True(t, c.Resolved())
	assert.Len(t, got, 1)
	assert.True(t, got[0].Succeeded())
	assert.Equal(t, "s1", got[0].SessionID)
}
