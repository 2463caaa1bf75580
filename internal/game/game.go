// Package game hosts the backdrop engine in an ebiten window. The window
// plays the role of the host page: its layout size drives resize events,
// the cursor drives pointer-move events, and closing it tears the engine
// down.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
	"github.com/iburimskiy/ambient-charts/internal/config"
	"github.com/iburimskiy/ambient-charts/internal/engine"
	"github.com/iburimskiy/ambient-charts/internal/scene"
)

// surface is the window-sized drawing surface. Its context only exists
// once ebiten has handed over a screen image.
type surface struct {
	width, height int
	canvas        *screenCanvas
}

func (s *surface) Size() (int, int) { return s.width, s.height }

func (s *surface) Resize(w, h int) { s.width, s.height = w, h }

func (s *surface) Context() (canvas.Canvas, bool) {
	if s.canvas.dst == nil {
		return nil, false
	}
	return s.canvas, true
}

type game struct {
	log    *zap.Logger
	rng    scene.Rand
	events *engine.Dispatcher

	surface     *surface
	engine      *engine.Engine
	mountFailed bool

	// last values reported to the dispatcher
	layoutW, layoutH int
	cursorX, cursorY int
	cursorSeen       bool

	debug bool
	start time.Time
}

// New returns an ebiten.Game rendering the backdrop. The scene is generated
// from rng on the first Draw, at the window size current at that moment.
func New(cfg config.Config, log *zap.Logger, rng scene.Rand) ebiten.Game {
	return &game{
		log:     log,
		rng:     rng,
		events:  engine.NewDispatcher(),
		surface: &surface{width: cfg.Width, height: cfg.Height, canvas: &screenCanvas{}},
		debug:   cfg.Debug,
		start:   time.Now(),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		ebiten.IsWindowBeingClosed() {
		g.teardown()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorSeen || x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY, g.cursorSeen = x, y, true
		g.events.Emit(engine.EventPointerMove{X: float64(x), Y: float64(y)})
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.canvas.bind(screen)
	if g.engine == nil && !g.mountFailed {
		g.mount()
	}
	if g.engine != nil {
		g.engine.Tick()
	}
	if g.debug {
		g.drawOverlay(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.layoutW || outsideHeight != g.layoutH {
		g.layoutW, g.layoutH = outsideWidth, outsideHeight
		if g.engine == nil {
			// Not mounted yet: size the surface to its container directly.
			g.surface.Resize(outsideWidth, outsideHeight)
		} else {
			g.events.Emit(engine.EventResize{W: outsideWidth, H: outsideHeight})
		}
	}
	w, h := g.surface.Size()
	return max(w, 1), max(h, 1)
}

func (g *game) mount() {
	eng, err := engine.Mount(g.surface, g.events, engine.Options{
		Rand:   g.rng,
		Logger: g.log,
	})
	if err != nil {
		g.mountFailed = true
		g.log.Warn("backdrop not started", zap.Error(err))
		return
	}
	g.engine = eng
}

func (g *game) teardown() {
	if g.engine != nil {
		g.engine.Teardown()
	}
}

func (g *game) drawOverlay(screen *ebiten.Image) {
	status := fmt.Sprintf("FPS %.1f  TPS %.1f  up %s", ebiten.ActualFPS(), ebiten.ActualTPS(), formatDuration(time.Since(g.start)))
	if g.engine != nil {
		s := g.engine.Scheduler()
		avg := s.Tap().Average()
		status += fmt.Sprintf("\nframes %d  avg frame %.2f ms", s.Frames(), float64(avg)/float64(time.Millisecond))
	} else if g.mountFailed {
		status += "\nbackdrop not started"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
