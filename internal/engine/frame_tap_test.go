package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTapEmpty(t *testing.T) {
	tap := NewFrameTap(4)
	assert.Nil(t, tap.Snapshot(4))
	assert.Zero(t, tap.Average())
}

func TestFrameTapWrapsAround(t *testing.T) {
	tap := NewFrameTap(3)
	for i := 1; i <= 5; i++ {
		tap.Record(time.Duration(i))
	}
	assert.Equal(t, []time.Duration{3, 4, 5}, tap.Snapshot(10))
	assert.Equal(t, []time.Duration{4, 5}, tap.Snapshot(2))
	assert.Equal(t, time.Duration(4), tap.Average())
}

func TestFrameTapPartiallyFilled(t *testing.T) {
	tap := NewFrameTap(8)
	tap.Record(10)
	tap.Record(20)
	assert.Equal(t, []time.Duration{10, 20}, tap.Snapshot(8))
	assert.Equal(t, time.Duration(15), tap.Average())
}
