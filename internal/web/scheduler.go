//go:build js && wasm

package web

import (
	"syscall/js"

	"ocean-fx/internal/frame"
)

type rafRequest struct {
	id int
	fn js.Func
}

// RAF schedules frames with window.requestAnimationFrame. All calls happen on
// the browser's event loop.
type RAF struct {
	window  js.Value
	next    frame.Handle
	pending map[frame.Handle]rafRequest
}

// NewRAF returns a scheduler bound to the global window.
func NewRAF() *RAF {
	return &RAF{window: js.Global(), pending: map[frame.Handle]rafRequest{}}
}

// RequestFrame implements frame.Scheduler.
func (r *RAF) RequestFrame(cb frame.Callback) frame.Handle {
	if cb == nil {
		return 0
	}
	r.next++
	h := r.next
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		delete(r.pending, h)
		fn.Release()
		now := 0.0
		if len(args) > 0 {
			now = args[0].Float()
		}
		cb(now)
		return nil
	})
	id := r.window.Call("requestAnimationFrame", fn).Int()
	r.pending[h] = rafRequest{id: id, fn: fn}
	return h
}

// CancelFrame implements frame.Scheduler.
func (r *RAF) CancelFrame(h frame.Handle) {
	req, ok := r.pending[h]
	if !ok {
		return
	}
	delete(r.pending, h)
	r.window.Call("cancelAnimationFrame", req.id)
	req.fn.Release()
}
