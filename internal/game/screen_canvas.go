package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenCanvas paints onto the ebiten screen image handed to Draw. Until a
// screen is bound every operation is a no-op.
type screenCanvas struct {
	dst *ebiten.Image

	// The backdrop gradient only depends on its radius, so the rasterised
	// image is kept until the radius changes.
	gradient       *ebiten.Image
	gradientRadius float64

	vs []ebiten.Vertex
	is []uint16
}

func (c *screenCanvas) bind(screen *ebiten.Image) { c.dst = screen }

func (c *screenCanvas) Size() (int, int) {
	if c.dst == nil {
		return 0, 0
	}
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *screenCanvas) Clear() {
	if c.dst != nil {
		c.dst.Clear()
	}
}

func (c *screenCanvas) FillRadialGradient(cx, cy, radius float64, stops []canvas.GradientStop) {
	if c.dst == nil || radius <= 0 {
		return
	}
	if c.gradient == nil || c.gradientRadius != radius {
		if c.gradient != nil {
			c.gradient.Deallocate()
		}
		c.gradient = ebiten.NewImageFromImage(canvas.RadialGradientImage(radius, stops))
		c.gradientRadius = radius
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(cx-radius), math.Round(cy-radius))
	c.dst.DrawImage(c.gradient, op)
}

func (c *screenCanvas) FillRect(x, y, w, h float64, p canvas.Paint) {
	if c.dst == nil {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), p.NRGBA(), true)
}

func (c *screenCanvas) StrokeRect(x, y, w, h, lineWidth float64, p canvas.Paint) {
	if c.dst == nil {
		return
	}
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(lineWidth), p.NRGBA(), true)
}

func (c *screenCanvas) FillWedge(cx, cy, radius, start, end float64, p canvas.Paint) {
	if c.dst == nil {
		return
	}
	path := wedgePath(cx, cy, radius, start, end)
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawTriangles(p)
}

func (c *screenCanvas) StrokeWedge(cx, cy, radius, start, end, lineWidth float64, p canvas.Paint) {
	if c.dst == nil {
		return
	}
	path := wedgePath(cx, cy, radius, start, end)
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(lineWidth),
		LineJoin: vector.LineJoinMiter,
	})
	c.drawTriangles(p)
}

func (c *screenCanvas) drawTriangles(p canvas.Paint) {
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = toUnit(p.R)
		c.vs[i].ColorG = toUnit(p.G)
		c.vs[i].ColorB = toUnit(p.B)
		c.vs[i].ColorA = float32(p.Alpha)
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// wedgePath builds a pie slice: centre, arc from start to end, back to the
// centre. The slice is star-shaped around its first vertex, so the fan
// triangulation used for filling covers it exactly.
func wedgePath(cx, cy, radius, start, end float64) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(radius), float32(start), float32(end), vector.Clockwise)
	path.Close()
	return &path
}
