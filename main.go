package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iburimskiy/ambient-charts/internal/config"
	"github.com/iburimskiy/ambient-charts/internal/game"
	"github.com/iburimskiy/ambient-charts/internal/logger"
	"github.com/iburimskiy/ambient-charts/internal/snapshot"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		EnableJSON:  cfg.LogJSON,
		EnableColor: !cfg.LogJSON,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Debug("configuration loaded", zap.Int64("seed", cfg.Seed), zap.Bool("snapshot", cfg.Snapshot != ""))

	if cfg.Snapshot != "" {
		err = runSnapshot(cfg, log)
	} else {
		err = runWindow(cfg, log)
	}
	if err != nil {
		log.Error("exiting", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func runSnapshot(cfg config.Config, log *zap.Logger) error {
	opts := snapshot.Options{
		Width:  cfg.Width,
		Height: cfg.Height,
		Frames: cfg.Frames,
		Seed:   cfg.Seed,
		Logger: log,
	}
	if cfg.HasPointer {
		opts.Pointer = &cfg.Pointer
	}
	img, err := snapshot.Render(opts)
	if err != nil {
		return err
	}
	if err := snapshot.WritePNG(cfg.Snapshot, img); err != nil {
		return err
	}
	log.Info("snapshot written", zap.String("path", cfg.Snapshot), zap.Int("frames", cfg.Frames))
	return nil
}

func runWindow(cfg config.Config, log *zap.Logger) error {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width, cfg.Height = config.WindowWidth, config.WindowHeight
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowMousePassthrough(cfg.Passthrough)
	ebiten.SetFullscreen(cfg.Fullscreen)

	g := game.New(cfg, log, rand.New(rand.NewSource(cfg.Seed)))
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{ScreenTransparent: true})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
