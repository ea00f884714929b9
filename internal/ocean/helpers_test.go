package ocean

import (
	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// constRand yields the same value forever.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

// fakeSurface hands out a recorder, or nothing when missing is set.
type fakeSurface struct {
	rec     *canvas.Recorder
	origin  core.Point
	missing bool
	resizes int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{rec: canvas.NewRecorder(float64(w), float64(h))}
}

func (f *fakeSurface) Context() canvas.Context {
	if f.missing {
		return nil
	}
	return f.rec
}

func (f *fakeSurface) Resize(w, h int) {
	f.resizes++
	f.rec.Resize(w, h)
}

func (f *fakeSurface) Origin() core.Point { return f.origin }

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }
