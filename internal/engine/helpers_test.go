package engine

import "github.com/iburimskiy/ambient-charts/internal/canvas"

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

type drawOp struct {
	kind               string
	x, y, w, h         float64
	radius, start, end float64
	lineWidth          float64
	paint              canvas.Paint
}

// recorder is a Canvas that keeps every call instead of painting.
type recorder struct {
	width, height int
	ops           []drawOp
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) Clear() { r.ops = append(r.ops, drawOp{kind: "clear"}) }

func (r *recorder) FillRadialGradient(cx, cy, radius float64, stops []canvas.GradientStop) {
	r.ops = append(r.ops, drawOp{kind: "gradient", x: cx, y: cy, radius: radius})
}

func (r *recorder) FillRect(x, y, w, h float64, p canvas.Paint) {
	r.ops = append(r.ops, drawOp{kind: "fillRect", x: x, y: y, w: w, h: h, paint: p})
}

func (r *recorder) StrokeRect(x, y, w, h, lineWidth float64, p canvas.Paint) {
	r.ops = append(r.ops, drawOp{kind: "strokeRect", x: x, y: y, w: w, h: h, lineWidth: lineWidth, paint: p})
}

func (r *recorder) FillWedge(cx, cy, radius, start, end float64, p canvas.Paint) {
	r.ops = append(r.ops, drawOp{kind: "fillWedge", x: cx, y: cy, radius: radius, start: start, end: end, paint: p})
}

func (r *recorder) StrokeWedge(cx, cy, radius, start, end, lineWidth float64, p canvas.Paint) {
	r.ops = append(r.ops, drawOp{kind: "strokeWedge", x: cx, y: cy, radius: radius, start: start, end: end, lineWidth: lineWidth, paint: p})
}

func (r *recorder) reset() { r.ops = r.ops[:0] }

func (r *recorder) byKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// recordingSurface is a Surface whose context is a recorder.
type recordingSurface struct {
	rec     *recorder
	noCtx   bool
	resizes int
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{rec: &recorder{width: w, height: h}}
}

func (s *recordingSurface) Size() (int, int) { return s.rec.width, s.rec.height }

func (s *recordingSurface) Resize(w, h int) {
	s.rec.width, s.rec.height = w, h
	s.resizes++
}

func (s *recordingSurface) Context() (canvas.Canvas, bool) {
	if s.noCtx {
		return nil, false
	}
	return s.rec, true
}
