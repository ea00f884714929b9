// Package frame provides the "request next frame" contract animation chains
// reschedule themselves through.
package frame

// Callback runs once per requested frame with the frame timestamp in milliseconds.
type Callback func(now float64)

// Handle identifies a pending frame request. The zero Handle is never issued.
type Handle uint64

// Scheduler runs requested callbacks on the next frame.
type Scheduler interface {
	RequestFrame(cb Callback) Handle
	CancelFrame(h Handle)
}

// Loop is a Scheduler driven by explicit Tick calls. Callbacks run in request
// order on the single goroutine calling Tick; a callback requested while a tick
// is running is deferred to the following tick.
type Loop struct {
	next    Handle
	order   []Handle
	pending map[Handle]Callback
	frames  int
}

// NewLoop returns an empty Loop.
func NewLoop() *Loop {
	return &Loop{pending: map[Handle]Callback{}}
}

// RequestFrame implements Scheduler.
func (l *Loop) RequestFrame(cb Callback) Handle {
	if cb == nil {
		return 0
	}
	if l.pending == nil {
		l.pending = map[Handle]Callback{}
	}
	l.next++
	h := l.next
	l.pending[h] = cb
	l.order = append(l.order, h)
	return h
}

// CancelFrame implements Scheduler. Cancelling an unknown or already-run handle
// does nothing.
func (l *Loop) CancelFrame(h Handle) {
	delete(l.pending, h)
}

// Pending returns the number of callbacks waiting for the next tick.
func (l *Loop) Pending() int { return len(l.pending) }

// Frames returns how many ticks have run.
func (l *Loop) Frames() int { return l.frames }

// Tick runs every callback requested before the call, in request order, and
// returns how many ran.
func (l *Loop) Tick(now float64) int {
	l.frames++
	batch := l.order
	l.order = nil
	ran := 0
	for _, h := range batch {
		cb, ok := l.pending[h]
		if !ok {
			continue
		}
		delete(l.pending, h)
		cb(now)
		ran++
	}
	return ran
}
