package core

import (
	"math"
	"testing"
)

func TestFrameClockAdvancesByFixedStep(t *testing.T) {
	c := NewFrameClock(50)
	if c.Step() != 20 {
		t.Fatalf("step = %v, expected 20ms", c.Step())
	}
	for i := 1; i <= 5; i++ {
		now := c.Advance()
		if now != float64(i)*20 {
			t.Fatalf("tick %d now = %v, expected %v", i, now, float64(i)*20)
		}
	}
	if c.Ticks() != 5 {
		t.Fatalf("ticks = %d, expected 5", c.Ticks())
	}
}

func TestFrameClockDefaultsInvalidFPS(t *testing.T) {
	c := NewFrameClock(0)
	if math.Abs(c.Step()-1000.0/60) > 1e-9 {
		t.Fatalf("step = %v, expected 60fps default", c.Step())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 16; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGUnitInterval(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 produced %v", v)
		}
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 10, H: 5}
	cases := map[Point]bool{
		{X: 0, Y: 0}:      true,
		{X: 9.99, Y: 4.9}: true,
		{X: 10, Y: 0}:     false,
		{X: 0, Y: 5}:      false,
		{X: -0.1, Y: 1}:   false,
	}
	for p, want := range cases {
		if got := s.Contains(p); got != want {
			t.Fatalf("Contains(%v) = %v, expected %v", p, got, want)
		}
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "a", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "b", Value: "2"}, {Key: "c", Value: "3"}}},
	}}
	if snap.Len() != 3 {
		t.Fatalf("Len = %d, expected 3", snap.Len())
	}
	p, ok := snap.Lookup("c")
	if !ok || p.Value != "3" {
		t.Fatalf("Lookup(c) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a key that does not exist")
	}
}
