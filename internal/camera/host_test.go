package camera

import (
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"shutter/internal/log"
)

type pickerCall struct {
	src          Source
	allowEditing bool
	cont         Continuation
}

type fakeHost struct {
	disclosures Disclosures
	auth        AuthorizationStatus
	live        bool
	tempDir     string

	sheets  chan func(Source)
	pickers chan pickerCall

	mu        sync.Mutex
	dismissed int
	alerts    []string
}

func newFakeHost(t *testing.T) *fakeHost {
	return &fakeHost{
		disclosures: allDisclosures(),
		auth:        AuthorizationAuthorized,
		live:        true,
		tempDir:     t.TempDir(),
		sheets:      make(chan func(Source), 16),
		pickers:     make(chan pickerCall, 16),
	}
}

func allDisclosures() DisclosureMap {
	return DisclosureMap{
		DisclosureLibraryAdd: "save photos",
		DisclosureLibrary:    "pick photos",
		DisclosureCamera:     "take photos",
	}
}

func (h *fakeHost) Disclosures() Disclosures                  { return h.disclosures }
func (h *fakeHost) LibraryAuthorization() AuthorizationStatus { return h.auth }
func (h *fakeHost) LiveCaptureAvailable() bool                { return h.live }
func (h *fakeHost) TempDir() string                           { return h.tempDir }

func (h *fakeHost) PresentSourceSheet(_ []Choice, choose func(Source)) {
	h.sheets <- choose
}

func (h *fakeHost) PresentPicker(src Source, allowEditing bool, cont Continuation) {
	h.pickers <- pickerCall{src: src, allowEditing: allowEditing, cont: cont}
}

func (h *fakeHost) Dismiss() {
	h.mu.Lock()
	h.dismissed++
	h.mu.Unlock()
}

func (h *fakeHost) Alert(title, message string) {
	h.mu.Lock()
	h.alerts = append(h.alerts, title+": "+message)
	h.mu.Unlock()
}

func (h *fakeHost) alertCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.alerts)
}

func (h *fakeHost) nextSheet(t *testing.T) func(Source) {
	t.Helper()
	select {
	case choose := <-h.sheets:
		return choose
	case <-time.After(5 * time.Second):
		t.Fatalf("source sheet was never presented")
		return nil
	}
}

func (h *fakeHost) nextPicker(t *testing.T) pickerCall {
	t.Helper()
	select {
	case call := <-h.pickers:
		return call
	case <-time.After(5 * time.Second):
		t.Fatalf("picker was never presented")
		return pickerCall{}
	}
}

type recorder struct {
	ch chan Outcome
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan Outcome, 64)}
}

func (r *recorder) callback(o Outcome) { r.ch <- o }

func (r *recorder) wait(t *testing.T) Outcome {
	t.Helper()
	select {
	case o := <-r.ch:
		return o
	case <-time.After(5 * time.Second):
		t.Fatalf("no outcome delivered")
		return Outcome{}
	}
}

func newTestPlugin(t *testing.T, host Host) *Plugin {
	t.Helper()
	p := NewPlugin(host, WithLogger(log.Nop))
	t.Cleanup(p.Close)
	return p
}

// gradient builds a w x h image whose pixels differ along both axes so
// orientation mistakes are visible.
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 0x40,
				A: 0xff,
			})
		}
	}
	return img
}
