package engine

// Pointer is the last known pointer position of one engine instance.
// The pointer-move listener writes it; the renderer reads it. Writes simply
// overwrite, so only the latest event before a frame is ever seen.
type Pointer struct {
	x, y float64
}

func (p *Pointer) Move(x, y float64) { p.x, p.y = x, y }

func (p *Pointer) Position() (float64, float64) { return p.x, p.y }
