package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Ambient Charts"

	FrameTapSize   = 240
	SnapshotFrames = 120

	// Scene layout
	BarChartCount = 5
	PieChartCount = 5
	ChartSpan     = 120
	BarWidthRatio = 0.7

	// Bar parameters
	MinBars             = 4
	BarCountRange       = 5
	InitialHeightMin    = 15
	InitialHeightRange  = 50
	RetargetHeightMin   = 15
	RetargetHeightRange = 60
	RetargetProbability = 0.001
	MinAnimationSpeed   = 0.015
	AnimationSpeedRange = 0.02

	// Pie parameters
	MinSegments        = 3
	SegmentCountRange  = 3
	MinSegmentValue    = 10
	SegmentValueRange  = 30
	MinPieRadius       = 20
	PieRadiusRange     = 25
	MinRotationSpeed   = 0.001
	RotationSpeedRange = 0.003

	MinOpacity   = 0.05
	OpacityRange = 0.06

	// Hover styling
	BarHoverDistance     = 100
	PieHoverMargin       = 20
	PieHoverScale        = 1.1
	HoverOpacityFactor   = 6
	BarStrokeAlphaFactor = 0.4
	PieStrokeAlphaFactor = 0.3
	StrokeWidth          = 1

	// Backdrop
	GradientRadiusFactor = 0.6
)

// Config is the runtime configuration assembled from a .env file, the
// environment and command-line flags, in increasing precedence.
type Config struct {
	Width       int
	Height      int
	Seed        int64
	Fullscreen  bool
	Debug       bool
	Passthrough bool
	LogLevel    string
	LogJSON     bool

	// Headless snapshot mode is enabled when Snapshot is non-empty.
	Snapshot   string
	Frames     int
	Pointer    [2]float64
	HasPointer bool
}

// Load builds a Config. The .env file named by AMBIENT_ENV_FILE (default
// ".env") is read if it exists; real environment variables win over it.
func Load(args []string) (Config, error) {
	env, err := readEnvFile(envOr("AMBIENT_ENV_FILE", ".env"))
	if err != nil {
		return Config{}, err
	}
	lookup := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v, ok := env[key]; ok && v != "" {
			return v
		}
		return def
	}

	var cfg Config
	defaults := struct {
		width, height, frames   int
		seed                    int64
		fullscreen, debug, pass bool
		logJSON                 bool
	}{}
	if defaults.width, err = atoi("AMBIENT_WIDTH", lookup("AMBIENT_WIDTH", strconv.Itoa(WindowWidth))); err != nil {
		return Config{}, err
	}
	if defaults.height, err = atoi("AMBIENT_HEIGHT", lookup("AMBIENT_HEIGHT", strconv.Itoa(WindowHeight))); err != nil {
		return Config{}, err
	}
	if defaults.frames, err = atoi("AMBIENT_FRAMES", lookup("AMBIENT_FRAMES", strconv.Itoa(SnapshotFrames))); err != nil {
		return Config{}, err
	}
	if defaults.seed, err = strconv.ParseInt(lookup("AMBIENT_SEED", "0"), 10, 64); err != nil {
		return Config{}, errors.Wrap(err, "AMBIENT_SEED")
	}
	if defaults.fullscreen, err = parseBool("AMBIENT_FULLSCREEN", lookup("AMBIENT_FULLSCREEN", "false")); err != nil {
		return Config{}, err
	}
	if defaults.debug, err = parseBool("AMBIENT_DEBUG", lookup("AMBIENT_DEBUG", "false")); err != nil {
		return Config{}, err
	}
	if defaults.pass, err = parseBool("AMBIENT_PASSTHROUGH", lookup("AMBIENT_PASSTHROUGH", "false")); err != nil {
		return Config{}, err
	}
	if defaults.logJSON, err = parseBool("LOG_JSON", lookup("LOG_JSON", "false")); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("ambient-charts", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", defaults.width, "initial surface width in pixels")
	fs.IntVar(&cfg.Height, "height", defaults.height, "initial surface height in pixels")
	fs.Int64Var(&cfg.Seed, "seed", defaults.seed, "random seed for the scene (0 picks one from the clock)")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", defaults.fullscreen, "start fullscreen")
	fs.BoolVar(&cfg.Debug, "debug", defaults.debug, "show the frame statistics overlay")
	fs.BoolVar(&cfg.Passthrough, "passthrough", defaults.pass, "let mouse clicks pass through the window")
	fs.StringVar(&cfg.LogLevel, "log-level", lookup("LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.BoolVar(&cfg.LogJSON, "log-json", defaults.logJSON, "emit JSON logs")
	fs.StringVar(&cfg.Snapshot, "snapshot", lookup("AMBIENT_SNAPSHOT", ""), "render headless and write a PNG to this path")
	fs.IntVar(&cfg.Frames, "frames", defaults.frames, "frames to render in snapshot mode")
	pointer := fs.String("pointer", lookup("AMBIENT_POINTER", ""), "pointer position x,y for snapshot mode")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	if *pointer != "" {
		x, y, err := parsePoint(*pointer)
		if err != nil {
			return Config{}, err
		}
		cfg.Pointer = [2]float64{x, y}
		cfg.HasPointer = true
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Config{}, errors.Errorf("invalid surface size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames < 0 {
		return Config{}, errors.Errorf("invalid frame count %d", cfg.Frames)
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return env, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(err, key)
	}
	return n, nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrap(err, key)
	}
	return b, nil
}

func parsePoint(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "pointer %q", s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "pointer %q", s)
	}
	return x, y, nil
}
