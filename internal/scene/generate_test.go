package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/ambient-charts/internal/canvas"
)

// seqRand replays vals in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func TestGenerateSeededScene(t *testing.T) {
	s := Generate(1000, 800, rand.New(rand.NewSource(42)))

	require.Len(t, s.BarCharts, 5)
	require.Len(t, s.PieCharts, 5)

	for i, chart := range s.BarCharts {
		assert.GreaterOrEqual(t, len(chart.Bars), 4, "bar chart %d", i)
		assert.LessOrEqual(t, len(chart.Bars), 8, "bar chart %d", i)
		assert.GreaterOrEqual(t, chart.Opacity, 0.05)
		assert.Less(t, chart.Opacity, 0.11)
		assert.Contains(t, []canvas.RGB{canvas.Blue, canvas.Indigo}, chart.Color)
		assert.InDelta(t, BarAnchors[i].Y*800, chart.BaseY, 1e-9)

		step := 120 / float64(len(chart.Bars))
		for j, bar := range chart.Bars {
			assert.InDelta(t, BarAnchors[i].X*1000+float64(j)*step, bar.X, 1e-9)
			assert.InDelta(t, step*0.7, bar.Width, 1e-9)
			for _, h := range []float64{bar.BaseHeight, bar.CurrentHeight, bar.TargetHeight} {
				assert.GreaterOrEqual(t, h, 15.0)
				assert.Less(t, h, 65.0)
			}
			assert.GreaterOrEqual(t, bar.AnimationSpeed, 0.015)
			assert.Less(t, bar.AnimationSpeed, 0.035)
		}
	}

	for i, pie := range s.PieCharts {
		assert.GreaterOrEqual(t, len(pie.Segments), 3, "pie %d", i)
		assert.LessOrEqual(t, len(pie.Segments), 5, "pie %d", i)
		assert.InDelta(t, PieAnchors[i].X*1000, pie.X, 1e-9)
		assert.InDelta(t, PieAnchors[i].Y*800, pie.Y, 1e-9)
		assert.GreaterOrEqual(t, pie.Radius, 20.0)
		assert.Less(t, pie.Radius, 45.0)
		assert.GreaterOrEqual(t, pie.RotationSpeed, 0.001)
		assert.Less(t, pie.RotationSpeed, 0.004)
		assert.Zero(t, pie.Rotation)
	}
}

func TestPieSegmentsPartitionCircle(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		s := Generate(1000, 800, rand.New(rand.NewSource(seed)))
		for _, pie := range s.PieCharts {
			var total float64
			for j, seg := range pie.Segments {
				if j == 0 {
					assert.Zero(t, seg.StartAngle)
				} else {
					assert.Equal(t, pie.Segments[j-1].EndAngle, seg.StartAngle, "segments must be contiguous")
				}
				assert.Greater(t, seg.Span(), 0.0)
				total += seg.Span()
			}
			assert.InDelta(t, 2*math.Pi, total, 1e-9, "seed %d", seed)
		}
	}
}

func TestSegmentColorsRoundRobin(t *testing.T) {
	s := Generate(1000, 800, rand.New(rand.NewSource(7)))
	want := []canvas.RGB{canvas.Blue, canvas.Indigo, canvas.Purple}
	for _, pie := range s.PieCharts {
		for j, seg := range pie.Segments {
			assert.Equal(t, want[j%3], seg.Color)
			assert.GreaterOrEqual(t, seg.Opacity, 0.05)
			assert.Less(t, seg.Opacity, 0.11)
		}
	}
}

func TestGenerateDrawExtremes(t *testing.T) {
	low := Generate(1000, 800, &seqRand{vals: []float64{0}})
	for _, chart := range low.BarCharts {
		assert.Len(t, chart.Bars, 4)
		assert.Equal(t, canvas.Indigo, chart.Color)
	}
	for _, pie := range low.PieCharts {
		assert.Len(t, pie.Segments, 3)
		// equal values split the circle evenly
		for _, seg := range pie.Segments {
			assert.InDelta(t, 2*math.Pi/3, seg.Span(), 1e-12)
		}
	}

	high := Generate(1000, 800, &seqRand{vals: []float64{0.999999}})
	for _, chart := range high.BarCharts {
		assert.Len(t, chart.Bars, 8)
		assert.Equal(t, canvas.Blue, chart.Color)
	}
	for _, pie := range high.PieCharts {
		assert.Len(t, pie.Segments, 5)
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate(1280, 720, rand.New(rand.NewSource(99)))
	b := Generate(1280, 720, rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestGenerateZeroSizeCollapsesAnchors(t *testing.T) {
	s := Generate(0, 0, rand.New(rand.NewSource(3)))
	require.Len(t, s.BarCharts, 5)
	require.Len(t, s.PieCharts, 5)
	for _, chart := range s.BarCharts {
		assert.Zero(t, chart.BaseY)
		assert.Zero(t, chart.Bars[0].X)
	}
	for _, pie := range s.PieCharts {
		assert.Zero(t, pie.X)
		assert.Zero(t, pie.Y)
	}
}
