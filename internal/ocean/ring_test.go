package ocean

import (
	"testing"

	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

func TestSurfaceRingRadiusMonotonicAndBounded(t *testing.T) {
	p := DefaultParams().Ring
	rng := core.NewRNG(21)
	for n := 0; n < 50; n++ {
		ring := NewSurfaceRing(rng, core.Size{W: 800, H: 600}, 0, p)
		if ring.InitialRadius < p.MinRadius || ring.InitialRadius > p.MinRadius+(p.MaxRadius-p.MinRadius)*p.StartSpread {
			t.Fatalf("initial radius %v outside lower spread of [%v,%v]", ring.InitialRadius, p.MinRadius, p.MaxRadius)
		}
		prev := -1.0
		for now := 0.0; now <= p.Lifetime; now += 37 {
			tt, alive := ring.Progress(now, p)
			if !alive {
				t.Fatalf("ring expired early at %v", now)
			}
			r := ring.Radius(tt, p)
			if r < prev {
				t.Fatalf("radius decreased from %v to %v at %v", prev, r, now)
			}
			if r < ring.InitialRadius || r > p.MaxRadius {
				t.Fatalf("radius %v outside [%v,%v]", r, ring.InitialRadius, p.MaxRadius)
			}
			prev = r
		}
	}
}

func TestSurfaceRingRender(t *testing.T) {
	p := DefaultParams().Ring
	ring := SurfaceRing{Origin: core.Point{X: 10, Y: 20}, Start: 100, InitialRadius: 15}
	rec := canvas.NewRecorder(100, 100)
	if !ring.Render(rec, 100+p.Lifetime/2, p) {
		t.Fatal("ring expired at half life")
	}
	op := rec.Ops()[0]
	if op.Kind != canvas.OpArc || op.Args[0] != 10 || op.Args[1] != 20 {
		t.Fatalf("unexpected op %+v", op)
	}
	if op.Args[2] != 22.5 {
		t.Fatalf("half-life radius = %v, expected 22.5", op.Args[2])
	}
	if op.State.GlobalAlpha != 0.5*p.Opacity {
		t.Fatalf("half-life alpha = %v, expected %v", op.State.GlobalAlpha, 0.5*p.Opacity)
	}
	if !ring.Render(rec, 100+p.Lifetime, p) {
		t.Fatal("ring should still render exactly at its lifetime")
	}
	if ring.Render(rec, 100+p.Lifetime+1, p) {
		t.Fatal("ring survived past its lifetime")
	}
}

func TestNewSurfaceRingUsesRandomPosition(t *testing.T) {
	p := DefaultParams().Ring
	ring := NewSurfaceRing(&seqRand{vals: []float64{0.25, 0.5, 1.0 / 3}}, core.Size{W: 800, H: 600}, 42, p)
	if ring.Origin.X != 200 || ring.Origin.Y != 300 {
		t.Fatalf("origin = %+v, expected (200,300)", ring.Origin)
	}
	if ring.Start != 42 {
		t.Fatalf("start = %v, expected 42", ring.Start)
	}
	want := p.MinRadius + (1.0/3)*(p.MaxRadius-p.MinRadius)*p.StartSpread
	if ring.InitialRadius != want {
		t.Fatalf("initial radius = %v, expected %v", ring.InitialRadius, want)
	}
}
