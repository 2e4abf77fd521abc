package camera

import (
	"sync/atomic"
)

// ResultChannel delivers at most one Outcome. Later calls are dropped so
// duplicate host callbacks cannot produce a second terminal value.
type ResultChannel struct {
	sessionID string
	callback  Callback
	resolved  atomic.Bool
}

func newResultChannel(sessionID string, cb Callback) *ResultChannel {
	return &ResultChannel{sessionID: sessionID, callback: cb}
}

func (c *ResultChannel) Success(r Result) bool {
	return c.resolve(Outcome{SessionID: c.sessionID, Result: &r})
}

func (c *ResultChannel) Error(err error) bool {
	if err == nil {
		err = ErrNoImage
	}
	return c.resolve(Outcome{SessionID: c.sessionID, Err: err})
}

func (c *ResultChannel) Resolved() bool {
	return c.resolved.Load()
}

func (c *ResultChannel) resolve(o Outcome) bool {
	if !c.resolved.CompareAndSwap(false, true) {
		return false
	}
	if c.callback != nil {
		c.callback(o)
	}
	return true
}
