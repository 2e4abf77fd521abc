package camera

import (
	"errors"

	"shutter/internal/log"
)

const (
	alertTitle           = "Camera Error"
	alertMissingUsage    = "Missing required usage description. See console for more information"
	alertCameraSimulator = "Camera not available in Simulator"
)

// Plugin owns the active session slot and the file counter. Both are only
// touched from the main queue.
type Plugin struct {
	host      Host
	queue     *MainQueue
	ownsQueue bool
	logger    log.Logger
	mat       *Materializer

	active *Session
}

type Option func(*Plugin)

func WithLogger(l log.Logger) Option {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithQueue shares an existing main queue instead of starting one.
func WithQueue(q *MainQueue) Option {
	return func(p *Plugin) {
		if q != nil {
			p.queue = q
		}
	}
}

func NewPlugin(host Host, opts ...Option) *Plugin {
	p := &Plugin{host: host, logger: log.Default}
	for _, opt := range opts {
		opt(p)
	}
	if p.queue == nil {
		p.queue = NewMainQueue()
		p.ownsQueue = true
	}
	p.mat = NewMaterializer(host.TempDir())
	return p
}

// Close stops the main queue if the plugin started it.
func (p *Plugin) Close() {
	if p.ownsQueue {
		p.queue.Close()
	}
}

func (p *Plugin) Queue() *MainQueue { return p.queue }

// GetPhoto starts a new acquisition and supersedes any pending one. The
// returned session is already armed; cb fires exactly once on the main queue.
// After Close there is no main queue: cb receives ErrPluginClosed on the
// calling goroutine before GetPhoto returns.
func (p *Plugin) GetPhoto(req CaptureRequest, cb Callback) *Session {
	s := newSession(req.normalize(), cb)
	if !p.queue.Async(func() { p.begin(s) }) {
		s.fail(ErrPluginClosed)
	}
	return s
}

// GetPhotoOptions is GetPhoto for an untyped invocation map.
func (p *Plugin) GetPhotoOptions(opts map[string]any, cb Callback) *Session {
	return p.GetPhoto(ParseRequest(opts), cb)
}

func (p *Plugin) begin(s *Session) {
	if prev := p.active; prev != nil && !prev.completed() {
		p.logger.Warnf("camera: session %s superseded by %s", prev.id, s.id)
		if prev.State() >= StateSourceSelecting {
			p.host.Dismiss()
		}
		prev.fail(ErrSuperseded)
	}
	p.active = s

	if err := CheckPrerequisites(p.host.Disclosures()); err != nil {
		p.logger.Errorf("camera: %s", err)
		p.host.Alert(alertTitle, alertMissingUsage)
		s.fail(err)
		return
	}
	s.advance(StatePrerequisiteChecked)

	s.advance(StateSourceSelecting)
	p.host.PresentSourceSheet(SourceChoices, func(src Source) {
		p.queue.Async(func() { p.choose(s, src) })
	})
}

func (p *Plugin) choose(s *Session, src Source) {
	if !p.current(s, StateSourceSelecting) {
		return
	}
	s.source = src
	if src == SourceCancel {
		s.fail(ErrCancelled)
		return
	}

	if err := validateSource(src, p.host); err != nil {
		if errors.Is(err, ErrCameraUnavailable) {
			p.logger.Warnf("camera: %s", alertCameraSimulator)
			p.host.Alert(alertTitle, alertCameraSimulator)
		}
		s.fail(err)
		return
	}

	s.advance(StateCapturing)
	p.host.PresentPicker(src, s.request.AllowEditing, Continuation{plugin: p, session: s})
}

func (p *Plugin) picked(s *Session, raw RawImage) {
	if !p.current(s, StateCapturing) {
		return
	}
	s.advance(StateProcessing)

	res, err := Process(s.request, raw, p.mat)
	p.host.Dismiss()
	if err != nil {
		p.logger.Errorf("camera: session %s: %v", s.id, err)
		s.fail(err)
		return
	}
	p.logger.Debugf("camera: session %s produced %dx%d %s", s.id, res.Width, res.Height, res.Kind)
	s.succeed(res)
}

func (p *Plugin) cancelled(s *Session) {
	if !p.current(s, StateSourceSelecting, StateCapturing) {
		return
	}
	p.host.Dismiss()
	s.fail(ErrCancelled)
}

func (p *Plugin) failed(s *Session, err error) {
	if !p.current(s, StateCapturing) {
		return
	}
	p.logger.Errorf("camera: session %s: host capture failed: %v", s.id, err)
	p.host.Dismiss()
	s.fail(err)
}

// current reports whether s is still the active session and in one of the
// given states; anything else is a stale or duplicate host callback.
func (p *Plugin) current(s *Session, states ...State) bool {
	if s != p.active {
		p.logger.Debugf("camera: ignoring callback for superseded session %s", s.id)
		return false
	}
	st := s.State()
	for _, want := range states {
		if st == want {
			return true
		}
	}
	p.logger.Debugf("camera: ignoring callback for session %s in state %s", s.id, st)
	return false
}

// Continuation is handed to the host with the picker. The host calls Picked,
// Cancelled or Failed from any goroutine; extra calls are ignored.
type Continuation struct {
	plugin  *Plugin
	session *Session
}

func (c Continuation) SessionID() string {
	if c.session == nil {
		return ""
	}
	return c.session.id
}

func (c Continuation) Picked(img RawImage) {
	if c.plugin == nil {
		return
	}
	c.plugin.queue.Async(func() { c.plugin.picked(c.session, img) })
}

func (c Continuation) Cancelled() {
	if c.plugin == nil {
		return
	}
	c.plugin.queue.Async(func() { c.plugin.cancelled(c.session) })
}

// Failed reports that the host could not produce an image, for example an
// unreadable library file.
func (c Continuation) Failed(err error) {
	if c.plugin == nil {
		return
	}
	if err == nil {
		err = ErrNoImage
	}
	c.plugin.queue.Async(func() { c.plugin.failed(c.session, err) })
}
