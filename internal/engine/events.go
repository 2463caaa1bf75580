package engine

// Event is something the host reports to a mounted engine.
type Event interface{ isEvent() }

// EventResize reports the new viewport size in pixels.
type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

// EventPointerMove reports an absolute pointer position in surface
// coordinates.
type EventPointerMove struct{ X, Y float64 }

func (EventPointerMove) isEvent() {}

type listener[F any] struct {
	id int
	fn F
}

// Dispatcher fans host events out to registered listeners. Registration
// returns a function that detaches the listener again. It is not safe for
// concurrent use; hosts emit from the same goroutine that renders.
type Dispatcher struct {
	nextID int
	resize []listener[func(w, h int)]
	move   []listener[func(x, y float64)]
}

func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// OnResize registers fn for resize events.
func (d *Dispatcher) OnResize(fn func(w, h int)) (remove func()) {
	d.nextID++
	id := d.nextID
	d.resize = append(d.resize, listener[func(w, h int)]{id: id, fn: fn})
	return func() { d.resize = without(d.resize, id) }
}

// OnPointerMove registers fn for pointer-move events.
func (d *Dispatcher) OnPointerMove(fn func(x, y float64)) (remove func()) {
	d.nextID++
	id := d.nextID
	d.move = append(d.move, listener[func(x, y float64)]{id: id, fn: fn})
	return func() { d.move = without(d.move, id) }
}

// Emit delivers ev to every listener of its kind, in registration order.
// Listeners removed during delivery still see the event in flight.
func (d *Dispatcher) Emit(ev Event) {
	switch e := ev.(type) {
	case EventResize:
		for _, l := range append([]listener[func(w, h int)](nil), d.resize...) {
			l.fn(e.W, e.H)
		}
	case EventPointerMove:
		for _, l := range append([]listener[func(x, y float64)](nil), d.move...) {
			l.fn(e.X, e.Y)
		}
	}
}

// Listeners returns the number of attached listeners of all kinds.
func (d *Dispatcher) Listeners() int { return len(d.resize) + len(d.move) }

func without[F any](ls []listener[F], id int) []listener[F] {
	out := ls[:0:0]
	for _, l := range ls {
		if l.id != id {
			out = append(out, l)
		}
	}
	return out
}
