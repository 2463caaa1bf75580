package canvas

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// arcStep is the largest angular step used when flattening arcs.
const arcStep = math.Pi / 64

// Raster is a software Canvas painting into an *image.RGBA. It also serves
// as its own host surface: Resize reallocates the backing image, which
// clears it the way resizing a browser canvas does.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster returns a transparent raster of the given size.
func NewRaster(width, height int) *Raster {
	r := &Raster{z: vector.NewRasterizer(0, 0)}
	r.Resize(width, height)
	return r
}

// Image returns the backing image. It is replaced on Resize.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Context reports the raster as its own drawing context. A raster always
// has one, even at zero size.
func (r *Raster) Context() (Canvas, bool) { return r, true }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) FillRadialGradient(cx, cy, radius float64, stops []GradientStop) {
	src := RadialGradientImage(radius, stops)
	if src.Bounds().Empty() {
		return
	}
	ox := int(math.Round(cx - radius))
	oy := int(math.Round(cy - radius))
	dst := src.Bounds().Add(image.Pt(ox, oy))
	draw.Draw(r.img, dst, src, image.Point{}, draw.Over)
}

func (r *Raster) FillRect(x, y, w, h float64, p Paint) {
	r.fill(p, rectPoints(x, y, w, h))
}

func (r *Raster) StrokeRect(x, y, w, h, lineWidth float64, p Paint) {
	r.stroke(p, lineWidth, rectPoints(x, y, w, h))
}

func (r *Raster) FillWedge(cx, cy, radius, start, end float64, p Paint) {
	r.fill(p, wedgePoints(cx, cy, radius, start, end))
}

func (r *Raster) StrokeWedge(cx, cy, radius, start, end, lineWidth float64, p Paint) {
	r.stroke(p, lineWidth, wedgePoints(cx, cy, radius, start, end))
}

func (r *Raster) fill(p Paint, pts []point) {
	if !r.begin(p) || len(pts) < 3 {
		return
	}
	r.z.MoveTo(pts[0].f32())
	for _, pt := range pts[1:] {
		r.z.LineTo(pt.f32())
	}
	r.z.ClosePath()
	r.draw(p)
}

// stroke outlines the closed polygon pts. Every edge becomes a quad of the
// given width wound the same way, so overlaps at the joins saturate rather
// than double the alpha.
func (r *Raster) stroke(p Paint, lineWidth float64, pts []point) {
	if !r.begin(p) || len(pts) < 2 || lineWidth <= 0 {
		return
	}
	half := lineWidth / 2
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dx, dy := b.x-a.x, b.y-a.y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		r.z.MoveTo(point{a.x + nx, a.y + ny}.f32())
		r.z.LineTo(point{b.x + nx, b.y + ny}.f32())
		r.z.LineTo(point{b.x - nx, b.y - ny}.f32())
		r.z.LineTo(point{a.x - nx, a.y - ny}.f32())
		r.z.ClosePath()
	}
	r.draw(p)
}

func (r *Raster) begin(p Paint) bool {
	w, h := r.Size()
	if w == 0 || h == 0 || p.Alpha <= 0 {
		return false
	}
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
	return true
}

func (r *Raster) draw(p Paint) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(p.NRGBA()), image.Point{})
}

type point struct{ x, y float64 }

func (p point) f32() (float32, float32) { return float32(p.x), float32(p.y) }

func rectPoints(x, y, w, h float64) []point {
	return []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// wedgePoints flattens a pie slice: the centre followed by the arc from
// start to end.
func wedgePoints(cx, cy, radius, start, end float64) []point {
	sweep := end - start
	n := int(math.Ceil(math.Abs(sweep) / arcStep))
	if n < 1 {
		n = 1
	}
	pts := make([]point, 0, n+2)
	pts = append(pts, point{cx, cy})
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)})
	}
	return pts
}
