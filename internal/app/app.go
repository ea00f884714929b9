//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ocean-fx/internal/config"
	"ocean-fx/internal/core"
	"ocean-fx/internal/cursor"
	"ocean-fx/internal/frame"
	"ocean-fx/internal/ocean"
	"ocean-fx/internal/render"
	"ocean-fx/internal/ui"
)

// Game adapts the ocean backdrop to the ebiten.Game interface.
type Game struct {
	cfg      *config.Config
	ctl      *ocean.Controller
	loop     *frame.Loop
	surface  *render.Surface
	follower *cursor.Follower
	hud      *ui.HUD
	overlay  *ui.Overlay

	start    time.Time
	w, h     int
	lastX    int
	lastY    int
	seenPtr  bool
	disposed bool
}

// New constructs a Game from a loaded configuration.
func New(cfg *config.Config, seed int64) *Game {
	g := &Game{
		cfg:     cfg,
		loop:    frame.NewLoop(),
		surface: render.NewSurface(),
		start:   time.Now(),
	}
	g.ctl = ocean.NewController(ocean.ParamsFromConfig(cfg), g.surface, g.loop, g.now, core.NewRNG(seed))
	if cfg.Cursor.Enabled {
		g.follower = cursor.NewFollower(cursor.ParamsFromConfig(cfg))
	}
	g.hud = ui.NewHUD(g.ctl, cfg.Parameters(), hudWidth)
	g.overlay = ui.NewOverlay(g.ctl.Registry())
	g.ctl.Resize(cfg.Screen.Width, cfg.Screen.Height)
	g.w, g.h = cfg.Screen.Width, cfg.Screen.Height
	g.ctl.Mount()
	return g
}

func (g *Game) now() float64 {
	return float64(time.Since(g.start).Microseconds()) / 1000
}

// Close stops both animation chains.
func (g *Game) Close() {
	if g.disposed {
		return
	}
	g.disposed = true
	g.ctl.Dispose()
}

// Update handles input and runs the frames requested since the last update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Registry().Clear()
	}

	x, y := ebiten.CursorPosition()
	if !g.seenPtr || x != g.lastX || y != g.lastY {
		if g.seenPtr {
			g.ctl.PointerMove(float64(x), float64(y))
		}
		g.lastX, g.lastY, g.seenPtr = x, y, true
	}
	if g.follower != nil {
		g.follower.Update(core.Point{X: float64(x), Y: float64(y)})
	}

	g.hud.Update()
	g.overlay.Update()

	g.loop.Tick(g.now())
	return nil
}

// Draw composites the backdrop, the cursor follower and the overlays.
func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.follower != nil {
		g.drawFollower(screen)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

func (g *Game) drawFollower(screen *ebiten.Image) {
	p := g.follower.Params()
	col := g.cfg.Derived.CursorColor
	bubble := g.follower.BubbleCenter()
	faint := col
	faint.A /= 3
	render.DrawGlow(screen, bubble.X, bubble.Y, p.BubbleSize/2, faint)
	box := g.follower.BoxCenter()
	render.DrawGlow(screen, box.X, box.Y, p.Size/2, col)
}

// Layout tracks the window size so the backdrop always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.ctl.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, seed int64) error {
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Screen.TargetFPS)

	g := New(cfg, seed)
	defer g.Close()
	slog.Info("window open", "width", cfg.Screen.Width, "height", cfg.Screen.Height, "seed", seed)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running game: %w", err)
	}
	c := g.ctl.Registry().Counters()
	slog.Info("window closed", "ripples_spawned", c.RipplesSpawned, "rings_spawned", c.RingsSpawned)
	return nil
}

const hudWidth = 240
