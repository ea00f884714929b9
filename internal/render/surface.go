//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

// Surface is an offscreen ebiten image the backdrop renders into. The game
// composites it onto the screen each frame.
type Surface struct {
	img *ebiten.Image
	ctx *ImageContext
}

// NewSurface returns a surface with no backing image until the first Resize.
func NewSurface() *Surface {
	return &Surface{ctx: NewImageContext(nil)}
}

// Context returns the drawing context, or nil before the first Resize.
func (s *Surface) Context() canvas.Context {
	if s.img == nil {
		return nil
	}
	return s.ctx
}

// Resize replaces the backing image. The new image starts transparent.
func (s *Surface) Resize(w, h int) {
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			s.img.Clear()
			return
		}
		s.img.Deallocate()
		s.img = nil
	}
	if w > 0 && h > 0 {
		s.img = ebiten.NewImage(w, h)
	}
	s.ctx.SetTarget(s.img)
	s.ctx.Reset()
}

// Origin implements ocean.Surface. The surface covers the whole window.
func (s *Surface) Origin() core.Point { return core.Point{} }

// Image returns the backing image, or nil.
func (s *Surface) Image() *ebiten.Image { return s.img }
