package engine

import (
	"math"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
	"github.com/iburimskiy/ambient-charts/internal/config"
	"github.com/iburimskiy/ambient-charts/internal/scene"
)

var backdropStops = []canvas.GradientStop{
	{Offset: 0, Paint: canvas.Blue.WithAlpha(0.02)},
	{Offset: 0.5, Paint: canvas.Blue.WithAlpha(0.01)},
	{Offset: 1, Paint: canvas.Blue.WithAlpha(0)},
}

// Renderer advances the chart animation and paints one frame.
type Renderer struct {
	scene   *scene.Scene
	pointer *Pointer
	rng     scene.Rand
}

func NewRenderer(sc *scene.Scene, pointer *Pointer, rng scene.Rand) *Renderer {
	return &Renderer{scene: sc, pointer: pointer, rng: rng}
}

// Frame clears c and paints the backdrop, the bar charts and the pie
// charts, in that order, stepping each chart's animation once.
func (r *Renderer) Frame(c canvas.Canvas) {
	c.Clear()
	r.paintBackdrop(c)
	r.paintBars(c)
	r.paintPies(c)
}

func (r *Renderer) paintBackdrop(c canvas.Canvas) {
	w, h := c.Size()
	radius := math.Min(float64(w), float64(h)) * config.GradientRadiusFactor
	c.FillRadialGradient(float64(w)/2, float64(h)/2, radius, backdropStops)
}

func (r *Renderer) paintBars(c canvas.Canvas) {
	for i := range r.scene.BarCharts {
		chart := &r.scene.BarCharts[i]
		for j := range chart.Bars {
			bar := &chart.Bars[j]
			bar.Advance()
			bar.MaybeRetarget(r.rng)

			px, py := r.pointer.Position()
			hovered := BarHovered(px, py, bar, chart.BaseY)

			alpha := HoverOpacity(chart.Opacity, hovered)
			color := chart.Color
			if hovered {
				color = canvas.Blue
			}

			y := chart.BaseY - bar.CurrentHeight
			c.FillRect(bar.X, y, bar.Width, bar.CurrentHeight, color.WithAlpha(alpha))
			if hovered {
				c.StrokeRect(bar.X, y, bar.Width, bar.CurrentHeight, config.StrokeWidth,
					canvas.Blue.WithAlpha(alpha*config.BarStrokeAlphaFactor))
			}
		}
	}
}

func (r *Renderer) paintPies(c canvas.Canvas) {
	for i := range r.scene.PieCharts {
		pie := &r.scene.PieCharts[i]
		pie.Advance()

		px, py := r.pointer.Position()
		hovered := PieHovered(px, py, pie)

		radius := pie.Radius
		if hovered {
			radius *= config.PieHoverScale
		}

		for _, seg := range pie.Segments {
			alpha := HoverOpacity(seg.Opacity, hovered)
			start, end := seg.StartAngle+pie.Rotation, seg.EndAngle+pie.Rotation
			c.FillWedge(pie.X, pie.Y, radius, start, end, seg.Color.WithAlpha(alpha))
			if hovered {
				c.StrokeWedge(pie.X, pie.Y, radius, start, end, config.StrokeWidth,
					seg.Color.WithAlpha(alpha*config.PieStrokeAlphaFactor))
			}
		}
	}
}

// BarHovered reports whether the pointer is strictly within hover range of
// the bar's visual centre.
func BarHovered(px, py float64, bar *scene.Bar, baseY float64) bool {
	cx, cy := bar.Center(baseY)
	return math.Hypot(px-cx, py-cy) < config.BarHoverDistance
}

// PieHovered reports whether the pointer is strictly within the pie's
// radius plus the hover margin.
func PieHovered(px, py float64, pie *scene.PieChart) bool {
	return math.Hypot(px-pie.X, py-pie.Y) < pie.Radius+config.PieHoverMargin
}

// HoverOpacity scales a base opacity for hovered shapes.
func HoverOpacity(base float64, hovered bool) float64 {
	if hovered {
		return base * config.HoverOpacityFactor
	}
	return base
}
