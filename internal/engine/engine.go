// Package engine runs the ambient chart backdrop: it mounts onto a host
// surface, follows resize and pointer events, and renders one frame per
// scheduler tick until torn down.
package engine

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
	"github.com/iburimskiy/ambient-charts/internal/config"
	"github.com/iburimskiy/ambient-charts/internal/scene"
)

// ErrNoContext is returned by Mount when the surface has no drawing context.
var ErrNoContext = errors.New("engine: drawing context unavailable")

// Surface is the host-owned drawing surface.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	Context() (canvas.Canvas, bool)
}

type Options struct {
	// Rand drives scene generation and target re-randomisation. A
	// clock-seeded source is used when nil.
	Rand         scene.Rand
	Logger       *zap.Logger
	FrameTapSize int
}

// Engine is one mounted backdrop instance. It owns its scene, pointer cell,
// scheduler and listener registrations; nothing is shared between engines.
type Engine struct {
	surface   Surface
	canvas    canvas.Canvas
	scene     *scene.Scene
	pointer   *Pointer
	scheduler *Scheduler
	renderer  *Renderer
	detach    []func()
	log       *zap.Logger
}

// Mount generates the scene for the surface's current size, subscribes to
// resize and pointer-move events on events, and requests the first frame.
// Frames run as the host calls Tick.
func Mount(surface Surface, events *Dispatcher, opts Options) (*Engine, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c, ok := surface.Context()
	if !ok || c == nil {
		return nil, ErrNoContext
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.FrameTapSize == 0 {
		opts.FrameTapSize = config.FrameTapSize
	}

	w, h := surface.Size()
	e := &Engine{
		surface:   surface,
		canvas:    c,
		scene:     scene.Generate(float64(w), float64(h), opts.Rand),
		pointer:   &Pointer{},
		scheduler: NewScheduler(opts.FrameTapSize),
		log:       log,
	}
	e.renderer = NewRenderer(e.scene, e.pointer, opts.Rand)

	e.detach = append(e.detach,
		events.OnResize(e.resize),
		events.OnPointerMove(e.pointer.Move),
	)
	e.scheduler.RequestFrame(e.frame)

	log.Info("backdrop mounted",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("bar_charts", len(e.scene.BarCharts)),
		zap.Int("pie_charts", len(e.scene.PieCharts)),
	)
	return e, nil
}

func (e *Engine) frame() {
	e.renderer.Frame(e.canvas)
	e.scheduler.RequestFrame(e.frame)
}

// resize follows the viewport size. Chart anchors stay at the pixel
// positions computed at mount.
func (e *Engine) resize(w, h int) {
	e.surface.Resize(w, h)
	e.log.Debug("surface resized", zap.Int("width", w), zap.Int("height", h))
}

// Tick runs the next frame if one is due. Hosts call it once per refresh.
func (e *Engine) Tick() bool { return e.scheduler.Tick() }

// Teardown stops frame renewal and detaches every listener. Calling it
// again is a no-op.
func (e *Engine) Teardown() {
	if e.scheduler.Stopped() {
		return
	}
	e.scheduler.Stop()
	for _, remove := range e.detach {
		remove()
	}
	e.detach = nil
	e.log.Info("backdrop torn down",
		zap.Uint64("frames", e.scheduler.Frames()),
		zap.Duration("avg_frame", e.scheduler.Tap().Average()),
	)
}

func (e *Engine) Running() bool { return !e.scheduler.Stopped() }

func (e *Engine) Scene() *scene.Scene { return e.scene }

func (e *Engine) Pointer() *Pointer { return e.pointer }

func (e *Engine) Scheduler() *Scheduler { return e.scheduler }
