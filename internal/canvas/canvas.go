// Package canvas defines the 2D drawing context the chart renderer paints
// into, the colour model it paints with, and a software implementation
// backed by golang.org/x/image/vector.
package canvas

import "image/color"

// RGB is an opaque colour triple. Alpha travels separately in Paint so
// hover styling can scale it without touching the hue.
type RGB struct {
	R, G, B uint8
}

// Palette entries shared by every chart.
var (
	Blue   = RGB{R: 59, G: 130, B: 246}
	Indigo = RGB{R: 99, G: 102, B: 241}
	Purple = RGB{R: 147, G: 51, B: 234}
)

// WithAlpha pairs the colour with a straight alpha in [0,1].
func (c RGB) WithAlpha(a float64) Paint {
	return Paint{RGB: c, Alpha: a}
}

// Paint is a colour with straight (non-premultiplied) alpha.
type Paint struct {
	RGB
	Alpha float64
}

// NRGBA converts the paint to an 8-bit colour, clamping alpha to [0,1].
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: uint8(clamp01(p.Alpha)*255 + 0.5)}
}

// GradientStop is one colour stop of a gradient. Offset is in [0,1].
type GradientStop struct {
	Offset float64
	Paint  Paint
}

// Canvas is the drawing context handed to the renderer each frame.
// Angles are in radians, measured clockwise from the positive x axis in
// y-down screen space. Strokes are centred on the outline.
type Canvas interface {
	Size() (width, height int)
	Clear()
	// FillRadialGradient fills the disc of the given radius, colouring
	// each point by its distance from the centre.
	FillRadialGradient(cx, cy, radius float64, stops []GradientStop)
	FillRect(x, y, w, h float64, p Paint)
	StrokeRect(x, y, w, h, lineWidth float64, p Paint)
	// FillWedge fills the pie slice from the centre sweeping start→end.
	FillWedge(cx, cy, radius, start, end float64, p Paint)
	StrokeWedge(cx, cy, radius, start, end, lineWidth float64, p Paint)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
