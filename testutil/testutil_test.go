package testutil

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscending(t *testing.T) {
	rng := NewRNG(1)

	x := rng.Ascending(1000, 100, 0.5, 0.4)
	require.Len(t, x, 1000)
	assert.Equal(t, 100.0, x[0])
	assert.True(t, sort.Float64sAreSorted(x))

	for i := 1; i < len(x); i++ {
		assert.Greater(t, x[i], x[i-1])
	}
}

func TestAscendingLargeJitterStaysSorted(t *testing.T) {
	rng := NewRNG(7)

	// Jitter larger than the step would produce negative gaps without the
	// fallback.
	x := rng.Ascending(1000, 0, 0.1, 5)
	assert.True(t, sort.Float64sAreSorted(x))
}

func TestDeterminism(t *testing.T) {
	a := NewRNG(42).Ascending(100, 0, 1, 0.2)
	b := NewRNG(42).Ascending(100, 0, 1, 0.2)
	assert.Equal(t, a, b)

	rng := NewRNG(42)
	first := rng.Ascending(100, 0, 1, 0.2)
	rng.Reset()
	second := rng.Ascending(100, 0, 1, 0.2)
	assert.Equal(t, first, second)
}

func TestJittered(t *testing.T) {
	rng := NewRNG(3)
	x := []float64{100, 200, 300}

	got := rng.Jittered(x, 0.5)
	require.Len(t, got, 3)
	for i := range x {
		assert.InDelta(t, x[i], got[i], 0.5)
	}
}

func TestThin(t *testing.T) {
	rng := NewRNG(5)
	x := rng.Ascending(100, 0, 1, 0)

	assert.Equal(t, x, rng.Thin(x, 0))
	assert.Empty(t, rng.Thin(x, 1))

	thinned := rng.Thin(x, 0.5)
	assert.Less(t, len(thinned), len(x))
	assert.True(t, sort.Float64sAreSorted(thinned))
}

func TestIntensities(t *testing.T) {
	rng := NewRNG(9)

	full := rng.Intensities(100, 0)
	for _, v := range full {
		assert.False(t, math.IsNaN(v))
	}

	holes := rng.Intensities(100, 1)
	for _, v := range holes {
		assert.True(t, math.IsNaN(v))
	}
}
