package camera

import (
	"image"
)

// RawImage is what the host UI hands back. Edited wins over Original when
// the user cropped in the picker.
type RawImage struct {
	Original    image.Image
	Edited      image.Image
	Orientation Orientation
}

func (r RawImage) image() image.Image {
	if r.Edited != nil {
		return r.Edited
	}
	return r.Original
}

// Host is the platform surface the plugin drives. Present*, Dismiss and
// Alert are only called from the main queue and must not block it.
type Host interface {
	Disclosures() Disclosures
	LibraryAuthorization() AuthorizationStatus
	LiveCaptureAvailable() bool
	PresentSourceSheet(choices []Choice, choose func(Source))
	PresentPicker(src Source, allowEditing bool, cont Continuation)
	Dismiss()
	Alert(title, message string)
	TempDir() string
}

// Artifact is one encoded image, consumed once by the Materializer.
type Artifact struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Result is a materialized capture.
type Result struct {
	Kind   ResultKind
	Data   string
	Path   string
	Format string
	Width  int
	Height int
}

// Payload is the wire form handed to the calling application.
func (r Result) Payload() map[string]any {
	if r.Kind == ResultFile {
		return map[string]any{"path": r.Path, "format": r.Format}
	}
	return map[string]any{"base64_data": r.Data, "format": r.Format}
}

// Outcome is the single terminal value of a request.
type Outcome struct {
	SessionID string
	Result    *Result
	Err       error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil && o.Result != nil
}

// Cancelled reports whether the user declined (or the request was replaced)
// rather than something failing.
func (o Outcome) Cancelled() bool {
	return Kind(o.Err) == KindCancellation
}

// Message is the caller-facing error text, empty on success.
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return message(o.Err)
}

// Callback receives the Outcome on the main queue, or synchronously from
// GetPhoto when the plugin is already closed.
type Callback func(Outcome)
