package camera

import (
	"sync/atomic"

	"github.com/google/uuid"
)

type State int32

const (
	StateIdle State = iota
	StatePrerequisiteChecked
	StateSourceSelecting
	StateCapturing
	StateProcessing
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StatePrerequisiteChecked:
		return "prerequisite-checked"
	case StateSourceSelecting:
		return "source-selecting"
	case StateCapturing:
		return "capturing"
	case StateProcessing:
		return "processing"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Session is one in-flight acquisition. Transitions happen on the main
// queue; State may be read from anywhere.
type Session struct {
	id      string
	request CaptureRequest
	state   atomic.Int32
	channel *ResultChannel
	source  Source
}

func newSession(req CaptureRequest, cb Callback) *Session {
	id := uuid.NewString()
	return &Session{
		id:      id,
		request: req,
		channel: newResultChannel(id, cb),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Request() CaptureRequest { return s.request }

func (s *Session) State() State { return State(s.state.Load()) }

// Source is the source the user picked, SourceCancel until then.
func (s *Session) Source() Source { return s.source }

func (s *Session) advance(to State) {
	s.state.Store(int32(to))
}

func (s *Session) completed() bool {
	return s.State() == StateCompleted
}

func (s *Session) succeed(r Result) {
	s.advance(StateCompleted)
	s.channel.Success(r)
}

func (s *Session) fail(err error) {
	s.advance(StateCompleted)
	s.channel.Error(err)
}
