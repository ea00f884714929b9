// Package cursor animates the glow box and bubble that trail the pointer.
package cursor

import (
	"github.com/charmbracelet/harmonica"

	"ocean-fx/internal/config"
	"ocean-fx/internal/core"
)

// Params configures a Follower.
type Params struct {
	Size       float64 // glow box edge
	BubbleSize float64
	Frequency  float64 // spring angular frequency
	Damping    float64 // spring damping ratio
	FPS        int
}

// ParamsFromConfig extracts follower settings from a loaded configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Size:       cfg.Cursor.Size,
		BubbleSize: cfg.Cursor.BubbleSize,
		Frequency:  cfg.Cursor.Frequency,
		Damping:    cfg.Cursor.Damping,
		FPS:        cfg.Screen.TargetFPS,
	}
}

// spring2 drives a 2D position toward a target with one harmonica spring per
// axis.
type spring2 struct {
	spring harmonica.Spring
	pos    core.Point
	vel    core.Point
}

func (s *spring2) step(target core.Point) core.Point {
	s.pos.X, s.vel.X = s.spring.Update(s.pos.X, s.vel.X, target.X)
	s.pos.Y, s.vel.Y = s.spring.Update(s.pos.Y, s.vel.Y, target.Y)
	return s.pos
}

// Follower chains two springs: the box chases the pointer, the bubble chases
// the box.
type Follower struct {
	params Params
	box    spring2
	bubble spring2
	placed bool
}

// NewFollower builds a follower stepping at p.FPS.
func NewFollower(p Params) *Follower {
	if p.FPS <= 0 {
		p.FPS = 60
	}
	spring := harmonica.NewSpring(harmonica.FPS(p.FPS), p.Frequency, p.Damping)
	return &Follower{
		params: p,
		box:    spring2{spring: spring},
		bubble: spring2{spring: spring},
	}
}

// Params returns the follower configuration.
func (f *Follower) Params() Params { return f.params }

// Place snaps both springs onto the pointer at rest.
func (f *Follower) Place(pointer core.Point) {
	at := f.boxTarget(pointer)
	f.box.pos, f.box.vel = at, core.Point{}
	f.bubble.pos, f.bubble.vel = at, core.Point{}
	f.placed = true
}

// Update advances both springs one frame toward pointer. The first update
// places the follower instead of animating it in from the corner.
func (f *Follower) Update(pointer core.Point) {
	if !f.placed {
		f.Place(pointer)
		return
	}
	box := f.box.step(f.boxTarget(pointer))
	f.bubble.step(box)
}

func (f *Follower) boxTarget(pointer core.Point) core.Point {
	return core.Point{X: pointer.X - f.params.Size/2, Y: pointer.Y - f.params.Size/2}
}

// Box returns the top-left corner of the glow box.
func (f *Follower) Box() core.Point { return f.box.pos }

// Bubble returns the top-left anchor of the bubble.
func (f *Follower) Bubble() core.Point { return f.bubble.pos }

// BoxCenter returns the glow box center.
func (f *Follower) BoxCenter() core.Point {
	return f.box.pos.Add(core.Point{X: f.params.Size / 2, Y: f.params.Size / 2})
}

// BubbleCenter returns the bubble center. The bubble shares the box anchor, so
// it is centered on the box's center.
func (f *Follower) BubbleCenter() core.Point {
	return f.bubble.pos.Add(core.Point{X: f.params.Size / 2, Y: f.params.Size / 2})
}

// Speed returns the magnitude of the box velocity in pixels per second.
func (f *Follower) Speed() float64 { return f.box.vel.Len() }
