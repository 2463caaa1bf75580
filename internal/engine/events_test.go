package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversInOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.OnResize(func(w, h int) { got = append(got, "a") })
	d.OnResize(func(w, h int) { got = append(got, "b") })
	d.OnPointerMove(func(x, y float64) { got = append(got, "move") })

	d.Emit(EventResize{W: 1, H: 2})
	assert.Equal(t, []string{"a", "b"}, got)

	d.Emit(EventPointerMove{X: 1, Y: 2})
	assert.Equal(t, []string{"a", "b", "move"}, got)
}

func TestDispatcherRemove(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	removeA := d.OnResize(func(w, h int) { calls++ })
	d.OnResize(func(w, h int) { calls += 10 })
	assert.Equal(t, 2, d.Listeners())

	removeA()
	removeA()
	assert.Equal(t, 1, d.Listeners())

	d.Emit(EventResize{})
	assert.Equal(t, 10, calls)
}

func TestDispatcherRemoveDuringEmit(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var remove func()
	remove = d.OnPointerMove(func(x, y float64) {
		calls++
		remove()
	})
	d.OnPointerMove(func(x, y float64) { calls++ })

	d.Emit(EventPointerMove{})
	assert.Equal(t, 2, calls)
	d.Emit(EventPointerMove{})
	assert.Equal(t, 3, calls)
}
