// Package snapshot renders the backdrop headless onto a software canvas and
// writes the result as a PNG.
package snapshot

import (
	"image"
	"image/png"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
	"github.com/iburimskiy/ambient-charts/internal/engine"
)

type Options struct {
	Width, Height int
	Frames        int
	Seed          int64
	// Pointer, when set, is reported as a pointer move before the first frame.
	Pointer *[2]float64
	Logger  *zap.Logger
}

// Render mounts an engine on a raster of the requested size, runs
// opts.Frames frames and tears the engine down.
func Render(opts Options) (*image.RGBA, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	raster := canvas.NewRaster(opts.Width, opts.Height)
	events := engine.NewDispatcher()

	eng, err := engine.Mount(raster, events, engine.Options{
		Rand:   rand.New(rand.NewSource(opts.Seed)),
		Logger: log,
	})
	if err != nil {
		return nil, errors.Wrap(err, "mount backdrop")
	}
	defer eng.Teardown()

	if opts.Pointer != nil {
		events.Emit(engine.EventPointerMove{X: opts.Pointer[0], Y: opts.Pointer[1]})
	}
	for i := 0; i < opts.Frames; i++ {
		eng.Tick()
	}
	return raster.Image(), nil
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	return nil
}
