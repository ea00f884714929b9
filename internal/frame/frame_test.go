package frame

import "testing"

func TestTickRunsInRequestOrder(t *testing.T) {
	l := NewLoop()
	var got []string
	l.RequestFrame(func(float64) { got = append(got, "a") })
	l.RequestFrame(func(float64) { got = append(got, "b") })
	if ran := l.Tick(16); ran != 2 {
		t.Fatalf("Tick ran %d callbacks, expected 2", ran)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("order = %v, expected [a b]", got)
	}
	if l.Pending() != 0 {
		t.Fatalf("pending = %d after tick", l.Pending())
	}
}

func TestRescheduleDefersToNextTick(t *testing.T) {
	l := NewLoop()
	var stamps []float64
	var cb Callback
	cb = func(now float64) {
		stamps = append(stamps, now)
		l.RequestFrame(cb)
	}
	l.RequestFrame(cb)
	l.Tick(10)
	l.Tick(20)
	l.Tick(30)
	if len(stamps) != 3 || stamps[2] != 30 {
		t.Fatalf("self-rescheduling chain ran %v, expected one run per tick", stamps)
	}
	if l.Pending() != 1 {
		t.Fatalf("pending = %d, expected chain to stay scheduled", l.Pending())
	}
	if l.Frames() != 3 {
		t.Fatalf("frames = %d, expected 3 ticks", l.Frames())
	}
}

func TestCancelPreventsRun(t *testing.T) {
	l := NewLoop()
	ran := false
	h := l.RequestFrame(func(float64) { ran = true })
	l.CancelFrame(h)
	l.Tick(1)
	if ran {
		t.Fatal("cancelled callback ran")
	}
	l.CancelFrame(h)
	l.CancelFrame(999)
}

func TestCancelDuringTick(t *testing.T) {
	l := NewLoop()
	var second Handle
	secondRan := false
	l.RequestFrame(func(float64) { l.CancelFrame(second) })
	second = l.RequestFrame(func(float64) { secondRan = true })
	l.Tick(1)
	if secondRan {
		t.Fatal("callback cancelled earlier in the same tick still ran")
	}
}

func TestNilCallbackIgnored(t *testing.T) {
	l := NewLoop()
	if h := l.RequestFrame(nil); h != 0 {
		t.Fatalf("nil callback returned handle %d", h)
	}
	if l.Pending() != 0 {
		t.Fatal("nil callback was queued")
	}
}
