package core

import "math"

// Point is a position or offset in canvas pixel space.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale multiplies both components by s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Len returns the distance of p from the origin.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Angle returns the polar angle of p in radians.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Size describes the dimensions of the drawing surface.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies inside [0,W) x [0,H).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(s.W) && p.Y < float64(s.H)
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 { return a + t*(b-a) }
