package camera

import (
	"errors"
	"fmt"
)

// Caller-facing failures. The Error() text is what the result channel reports.
var (
	ErrCancelled         = errors.New("User cancelled photos app")
	ErrSuperseded        = fmt.Errorf("%w: superseded by a newer request", ErrCancelled)
	ErrLibraryDenied     = errors.New("User denied access to photos")
	ErrCameraUnavailable = errors.New("Camera not available while running in Simulator")
	ErrResize            = errors.New("Error resizing image")
	ErrEncode            = errors.New("Unable to convert image to jpeg")
	ErrWrite             = errors.New("Unable to save image to a temporary file")
	ErrNoImage           = errors.New("No image returned from the picker")
	ErrPluginClosed      = errors.New("Camera plugin closed")
)

// ErrOrientation wraps ErrResize; callers still see "Error resizing image".
var ErrOrientation = fmt.Errorf("%w: orientation correction failed", ErrResize)

// PrerequisiteError names the first usage disclosure missing from the host
// application's manifest.
type PrerequisiteError struct {
	Key    string
	DocURL string
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("You are missing %s in your Info.plist file."+
		" Camera will not function without it. Learn more: %s", e.Key, e.DocURL)
}

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindConfiguration
	KindAuthorization
	KindCapability
	KindProcessing
	KindCancellation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAuthorization:
		return "authorization"
	case KindCapability:
		return "capability"
	case KindProcessing:
		return "processing"
	case KindCancellation:
		return "cancellation"
	default:
		return "none"
	}
}

// Kind classifies err. Unrecognised errors count as processing failures.
func Kind(err error) ErrorKind {
	var prereq *PrerequisiteError
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &prereq):
		return KindConfiguration
	case errors.Is(err, ErrCancelled):
		return KindCancellation
	case errors.Is(err, ErrLibraryDenied):
		return KindAuthorization
	case errors.Is(err, ErrCameraUnavailable):
		return KindCapability
	default:
		return KindProcessing
	}
}

// message is the caller-facing text for err: the outermost sentinel, without
// developer detail added by wrapping.
func message(err error) string {
	var prereq *PrerequisiteError
	if errors.As(err, &prereq) {
		return prereq.Error()
	}
	for _, sentinel := range []error{
		ErrCancelled,
		ErrLibraryDenied,
		ErrCameraUnavailable,
		ErrResize,
		ErrEncode,
		ErrWrite,
		ErrNoImage,
		ErrPluginClosed,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}
