package sim

import (
	"fmt"
	"math"
	"sort"

	"ocean-fx/internal/core"
)

// PathFunc returns the synthetic pointer position at timeMS inside vp. A false
// result means the pointer is not moving.
type PathFunc func(timeMS float64, vp core.Size) (core.Point, bool)

var paths = map[string]PathFunc{
	"circle":    circlePath,
	"lissajous": lissajousPath,
	"idle":      idlePath,
}

// PathNames lists the registered pointer paths.
func PathNames() []string {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPath returns the pointer path registered under name.
func LookupPath(name string) (PathFunc, error) {
	p, ok := paths[name]
	if !ok {
		return nil, fmt.Errorf("unknown pointer path %q (want one of %v)", name, PathNames())
	}
	return p, nil
}

// circlePath orbits the viewport center once every four seconds.
func circlePath(timeMS float64, vp core.Size) (core.Point, bool) {
	cx, cy := float64(vp.W)/2, float64(vp.H)/2
	r := 0.35 * math.Min(cx, cy) * 2
	theta := timeMS / 4000 * 2 * math.Pi
	return core.Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)}, true
}

// lissajousPath traces a 3:2 figure spanning most of the viewport.
func lissajousPath(timeMS float64, vp core.Size) (core.Point, bool) {
	cx, cy := float64(vp.W)/2, float64(vp.H)/2
	w := timeMS / 6000 * 2 * math.Pi
	return core.Point{
		X: cx + 0.8*cx*math.Sin(3*w+math.Pi/2),
		Y: cy + 0.8*cy*math.Sin(2*w),
	}, true
}

func idlePath(float64, core.Size) (core.Point, bool) {
	return core.Point{}, false
}
