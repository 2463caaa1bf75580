// Package scene holds the chart descriptors of the ambient backdrop and the
// generator that lays them out.
package scene

import (
	"github.com/iburimskiy/ambient-charts/internal/canvas"
	"github.com/iburimskiy/ambient-charts/internal/config"
)

// Rand is the randomness the generator and the animation draw from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Bar is one column of a BarChart. X and Width are fixed at creation;
// only CurrentHeight and TargetHeight change afterwards.
type Bar struct {
	X              float64
	Width          float64
	BaseHeight     float64
	CurrentHeight  float64
	TargetHeight   float64
	AnimationSpeed float64
}

// Center returns the visual centre of the bar as currently drawn above baseY.
func (b *Bar) Center(baseY float64) (float64, float64) {
	return b.X + b.Width/2, baseY - b.CurrentHeight/2
}

// Advance moves CurrentHeight a fixed fraction of the way to TargetHeight.
func (b *Bar) Advance() {
	b.CurrentHeight += (b.TargetHeight - b.CurrentHeight) * b.AnimationSpeed
}

// MaybeRetarget picks a new target height with a small fixed probability.
// It reports whether the target changed.
func (b *Bar) MaybeRetarget(rng Rand) bool {
	if rng.Float64() >= config.RetargetProbability {
		return false
	}
	b.TargetHeight = config.RetargetHeightMin + rng.Float64()*config.RetargetHeightRange
	return true
}

// BarChart is a row of bars growing upward from BaseY.
type BarChart struct {
	Bars    []Bar
	BaseY   float64
	Opacity float64
	Color   canvas.RGB
}

// Segment is one slice of a PieChart. Angles are relative to the chart's
// rotation.
type Segment struct {
	StartAngle float64
	EndAngle   float64
	Color      canvas.RGB
	Opacity    float64
}

// Span returns the angular extent of the segment.
func (s Segment) Span() float64 { return s.EndAngle - s.StartAngle }

// PieChart is a slowly rotating pie centred on (X, Y).
type PieChart struct {
	X             float64
	Y             float64
	Radius        float64
	Segments      []Segment
	Rotation      float64
	RotationSpeed float64
}

// Advance rotates the pie by its rotation speed. Rotation grows without
// bound; it is only ever fed to trigonometric drawing.
func (p *PieChart) Advance() {
	p.Rotation += p.RotationSpeed
}

// Scene is the full set of charts of one backdrop instance.
type Scene struct {
	BarCharts []BarChart
	PieCharts []PieChart
}
