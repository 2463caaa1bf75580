package canvas

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientAt returns the paint at offset t along stops, which must be
// sorted by Offset. Colour is blended in RGB space, alpha linearly.
func GradientAt(stops []GradientStop, t float64) Paint {
	if len(stops) == 0 {
		return Paint{}
	}
	if t <= stops[0].Offset {
		return stops[0].Paint
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Paint
		}
		f := (t - a.Offset) / span
		c := toColorful(a.Paint.RGB).BlendRgb(toColorful(b.Paint.RGB), f)
		r, g, bl := c.Clamped().RGB255()
		return Paint{
			RGB:   RGB{R: r, G: g, B: bl},
			Alpha: a.Paint.Alpha + (b.Paint.Alpha-a.Paint.Alpha)*f,
		}
	}
	return stops[len(stops)-1].Paint
}

// RadialGradientImage rasterises a radial gradient into a square image of
// side ceil(2*radius). The gradient centre sits at (radius, radius) in the
// image; pixels outside the disc are left transparent.
func RadialGradientImage(radius float64, stops []GradientStop) *image.NRGBA {
	if radius <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	side := int(math.Ceil(radius * 2))
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		dy := float64(y) + 0.5 - radius
		for x := 0; x < side; x++ {
			dx := float64(x) + 0.5 - radius
			d := math.Hypot(dx, dy)
			if d >= radius {
				continue
			}
			img.SetNRGBA(x, y, GradientAt(stops, d/radius).NRGBA())
		}
	}
	return img
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
