// Package canvas defines the immediate-mode 2D drawing contract the effects
// render through, with the state handling shared by its implementations.
package canvas

import "image/color"

// Context is a minimal 2D drawing context modelled on an HTML canvas: stroke
// operations use the current global alpha, stroke style and line width, and
// Save/Restore push and pop that state.
type Context interface {
	Save()
	Restore()
	SetGlobalAlpha(a float64)
	SetStrokeStyle(c color.Color)
	SetLineWidth(w float64)

	// ClearRect resets the rectangle to transparent.
	ClearRect(x, y, w, h float64)
	// FillLinearGradient fills the rectangle with a top-to-bottom gradient.
	FillLinearGradient(x, y, w, h float64, g Gradient)
	StrokeLine(x0, y0, x1, y1 float64)
	// StrokeArc strokes a full circle.
	StrokeArc(cx, cy, r float64)
}

// Backing is a Context that owns its pixel store. Resizing clears it.
type Backing interface {
	Context
	Resize(w, h int)
}

// State is the drawing state affected by Save and Restore.
type State struct {
	GlobalAlpha float64
	StrokeStyle color.Color
	LineWidth   float64
}

// DefaultState mirrors a freshly created canvas context.
func DefaultState() State {
	return State{GlobalAlpha: 1, StrokeStyle: color.Black, LineWidth: 1}
}

// StrokeColor returns the stroke style with the global alpha folded into its
// alpha channel.
func (s State) StrokeColor() color.NRGBA {
	c := color.NRGBAModel.Convert(s.StrokeStyle).(color.NRGBA)
	c.A = uint8(float64(c.A)*s.GlobalAlpha + 0.5)
	return c
}

// StateStack implements Save/Restore bookkeeping. Embed it to satisfy the state
// half of Context.
type StateStack struct {
	cur   State
	saved []State
	init  bool
}

func (s *StateStack) ensure() {
	if !s.init {
		s.cur = DefaultState()
		s.init = true
	}
}

// Current returns the active state.
func (s *StateStack) Current() State {
	s.ensure()
	return s.cur
}

// Depth returns the number of saved states.
func (s *StateStack) Depth() int { return len(s.saved) }

// Save pushes the current state.
func (s *StateStack) Save() {
	s.ensure()
	s.saved = append(s.saved, s.cur)
}

// Restore pops the most recently saved state. Without a matching Save it does nothing.
func (s *StateStack) Restore() {
	s.ensure()
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// SetGlobalAlpha sets the alpha applied to every stroke. Values outside [0,1]
// are clamped.
func (s *StateStack) SetGlobalAlpha(a float64) {
	s.ensure()
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	s.cur.GlobalAlpha = a
}

// SetStrokeStyle sets the stroke color. A nil color is ignored.
func (s *StateStack) SetStrokeStyle(c color.Color) {
	s.ensure()
	if c == nil {
		return
	}
	s.cur.StrokeStyle = c
}

// SetLineWidth sets the stroke width. Non-positive widths are ignored.
func (s *StateStack) SetLineWidth(w float64) {
	s.ensure()
	if w <= 0 {
		return
	}
	s.cur.LineWidth = w
}

// Reset discards saved states and restores defaults.
func (s *StateStack) Reset() {
	s.cur = DefaultState()
	s.saved = s.saved[:0]
	s.init = true
}
