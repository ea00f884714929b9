package canvas

import (
	"image/color"
	"testing"
)

func TestStateStackSaveRestore(t *testing.T) {
	var s StateStack
	if s.Current().GlobalAlpha != 1 || s.Current().LineWidth != 1 {
		t.Fatalf("zero StateStack should start at canvas defaults, got %+v", s.Current())
	}
	s.Save()
	s.SetGlobalAlpha(0.25)
	s.SetLineWidth(3)
	s.SetStrokeStyle(color.White)
	if s.Current().GlobalAlpha != 0.25 || s.Current().LineWidth != 3 {
		t.Fatalf("setters not applied: %+v", s.Current())
	}
	s.Restore()
	if s.Current().GlobalAlpha != 1 || s.Current().LineWidth != 1 || s.Current().StrokeStyle != color.Black {
		t.Fatalf("Restore did not pop state: %+v", s.Current())
	}
	s.Restore()
	if s.Depth() != 0 {
		t.Fatalf("unbalanced Restore changed depth to %d", s.Depth())
	}
}

func TestStateStackClampsAndIgnoresInvalid(t *testing.T) {
	var s StateStack
	s.SetGlobalAlpha(2)
	if s.Current().GlobalAlpha != 1 {
		t.Fatalf("alpha not clamped high: %v", s.Current().GlobalAlpha)
	}
	s.SetGlobalAlpha(-1)
	if s.Current().GlobalAlpha != 0 {
		t.Fatalf("alpha not clamped low: %v", s.Current().GlobalAlpha)
	}
	s.SetLineWidth(4)
	s.SetLineWidth(0)
	if s.Current().LineWidth != 4 {
		t.Fatalf("non-positive width should be ignored, got %v", s.Current().LineWidth)
	}
}

func TestStrokeColorFoldsGlobalAlpha(t *testing.T) {
	st := State{GlobalAlpha: 0.5, StrokeStyle: color.NRGBA{R: 255, G: 255, B: 255, A: 200}, LineWidth: 1}
	c := st.StrokeColor()
	if c.A != 100 || c.R != 255 {
		t.Fatalf("StrokeColor = %+v, expected white with alpha 100", c)
	}
}

func TestGradientInterpolation(t *testing.T) {
	g := VerticalGradient(color.NRGBA{R: 0, G: 0, B: 0, A: 255}, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	if got := g.At(0); got != (color.NRGBA{A: 255}) {
		t.Fatalf("At(0) = %+v", got)
	}
	if got := g.At(1); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
		t.Fatalf("At(1) = %+v", got)
	}
	mid := g.At(0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Fatalf("At(0.5) = %+v, expected per-channel midpoint", mid)
	}
	if got := g.At(-3); got != g.At(0) {
		t.Fatalf("offsets below first stop should clamp, got %+v", got)
	}
}

func TestGradientSortsStops(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	g := NewGradient(Stop{Offset: 1, Color: blue}, Stop{Offset: 0, Color: red})
	if g.At(0) != red || g.At(1) != blue {
		t.Fatalf("stops not sorted: %+v", g.Stops)
	}
}

func TestRecorderFullClearDiscardsOps(t *testing.T) {
	r := NewRecorder(100, 50)
	r.StrokeLine(0, 0, 1, 1)
	r.StrokeArc(5, 5, 2)
	r.ClearRect(10, 10, 5, 5)
	if len(r.Ops()) != 3 {
		t.Fatalf("partial clear should keep ops, have %d", len(r.Ops()))
	}
	r.ClearRect(0, 0, 100, 50)
	if len(r.Ops()) != 1 || r.Ops()[0].Kind != OpClear {
		t.Fatalf("full clear should leave only itself, have %+v", r.Ops())
	}
	if r.Total() != 4 {
		t.Fatalf("Total = %d, expected 4", r.Total())
	}
}

func TestRecorderCapturesState(t *testing.T) {
	r := NewRecorder(10, 10)
	r.Save()
	r.SetGlobalAlpha(0.3)
	r.SetLineWidth(2.5)
	r.StrokeArc(1, 2, 3)
	r.Restore()
	r.StrokeLine(0, 0, 1, 0)
	ops := r.Ops()
	if ops[0].State.GlobalAlpha != 0.3 || ops[0].State.LineWidth != 2.5 {
		t.Fatalf("arc state = %+v", ops[0].State)
	}
	if ops[1].State.GlobalAlpha != 1 {
		t.Fatalf("line after Restore should use default alpha, got %v", ops[1].State.GlobalAlpha)
	}
	if r.Count(OpArc) != 1 || r.Count(OpLine) != 1 {
		t.Fatalf("Count mismatch: arcs=%d lines=%d", r.Count(OpArc), r.Count(OpLine))
	}
}
