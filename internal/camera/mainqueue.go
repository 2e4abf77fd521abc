package camera

import (
	"sync"
)

// MainQueue runs closures one at a time, in submission order, on a single
// goroutine. It stands in for the platform's UI thread: every read or write of
// plugin session state happens inside a closure run here.
type MainQueue struct {
	mu      sync.Mutex
	pending []func()
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

func NewMainQueue() *MainQueue {
	q := &MainQueue{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go q.loop()
	return q
}

// Async schedules fn and returns immediately. It is safe to call from inside
// a running closure. It reports false once the queue is closed.
func (q *MainQueue) Async(fn func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, fn)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return true
}

// Sync runs fn on the queue and waits for it. Calling Sync from a closure
// already running on the queue deadlocks.
func (q *MainQueue) Sync(fn func()) bool {
	ran := make(chan struct{})
	if !q.Async(func() {
		defer close(ran)
		fn()
	}) {
		return false
	}
	<-ran
	return true
}

// Close runs whatever is already pending, then stops the goroutine.
func (q *MainQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		<-q.done
		return
	}
	q.closed = true
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	<-q.done
}

func (q *MainQueue) loop() {
	defer close(q.done)
	for {
		q.mu.Lock()
		for len(q.pending) == 0 {
			if q.closed {
				q.mu.Unlock()
				return
			}
			q.mu.Unlock()
			<-q.wake
			q.mu.Lock()
		}
		fn := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		fn()
	}
}
