package scene

import (
	"math"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
	"github.com/iburimskiy/ambient-charts/internal/config"
)

// Anchor is a layout position as a fraction of the surface size.
type Anchor struct {
	X, Y float64
}

// Anchors are spread over distinct regions of the viewport; bar and pie
// anchors are independent of each other.
var (
	BarAnchors = [config.BarChartCount]Anchor{
		{X: 0.15, Y: 0.2},
		{X: 0.7, Y: 0.15},
		{X: 0.25, Y: 0.65},
		{X: 0.8, Y: 0.7},
		{X: 0.05, Y: 0.85},
	}
	PieAnchors = [config.PieChartCount]Anchor{
		{X: 0.85, Y: 0.25},
		{X: 0.1, Y: 0.4},
		{X: 0.6, Y: 0.8},
		{X: 0.9, Y: 0.55},
		{X: 0.4, Y: 0.3},
	}

	barColors     = [2]canvas.RGB{canvas.Blue, canvas.Indigo}
	segmentColors = [3]canvas.RGB{canvas.Blue, canvas.Indigo, canvas.Purple}
)

// Generate lays out the bar and pie charts for a surface of the given size.
// Anchors are converted to absolute pixels once, here; everything else is
// drawn from rng.
func Generate(width, height float64, rng Rand) *Scene {
	s := &Scene{
		BarCharts: make([]BarChart, 0, len(BarAnchors)),
		PieCharts: make([]PieChart, 0, len(PieAnchors)),
	}
	for _, a := range BarAnchors {
		s.BarCharts = append(s.BarCharts, newBarChart(a.X*width, a.Y*height, rng))
	}
	for _, a := range PieAnchors {
		s.PieCharts = append(s.PieCharts, newPieChart(a.X*width, a.Y*height, rng))
	}
	return s
}

func newBarChart(x, baseY float64, rng Rand) BarChart {
	n := config.MinBars + int(rng.Float64()*config.BarCountRange)
	step := config.ChartSpan / float64(n)

	bars := make([]Bar, 0, n)
	for j := 0; j < n; j++ {
		bars = append(bars, Bar{
			X:              x + float64(j)*step,
			BaseHeight:     initialHeight(rng),
			CurrentHeight:  initialHeight(rng),
			TargetHeight:   initialHeight(rng),
			Width:          step * config.BarWidthRatio,
			AnimationSpeed: config.MinAnimationSpeed + rng.Float64()*config.AnimationSpeedRange,
		})
	}

	chart := BarChart{
		Bars:    bars,
		BaseY:   baseY,
		Opacity: opacity(rng),
		Color:   barColors[1],
	}
	if rng.Float64() > 0.5 {
		chart.Color = barColors[0]
	}
	return chart
}

func newPieChart(x, y float64, rng Rand) PieChart {
	n := config.MinSegments + int(rng.Float64()*config.SegmentCountRange)

	values := make([]float64, n)
	var total float64
	for j := range values {
		values[j] = config.MinSegmentValue + rng.Float64()*config.SegmentValueRange
		total += values[j]
	}

	segments := make([]Segment, 0, n)
	var angle float64
	for j, v := range values {
		span := v / total * 2 * math.Pi
		segments = append(segments, Segment{
			StartAngle: angle,
			EndAngle:   angle + span,
			Color:      segmentColors[j%len(segmentColors)],
			Opacity:    opacity(rng),
		})
		angle += span
	}

	return PieChart{
		X:             x,
		Y:             y,
		Radius:        config.MinPieRadius + rng.Float64()*config.PieRadiusRange,
		Segments:      segments,
		RotationSpeed: config.MinRotationSpeed + rng.Float64()*config.RotationSpeedRange,
	}
}

func initialHeight(rng Rand) float64 {
	return config.InitialHeightMin + rng.Float64()*config.InitialHeightRange
}

func opacity(rng Rand) float64 {
	return config.MinOpacity + rng.Float64()*config.OpacityRange
}
