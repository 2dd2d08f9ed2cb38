package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeft(t *testing.T) {
	tests := []struct {
		name  string
		x, y  []float64
		tol   Tolerance
		left  []Index
		right []Index
	}{
		{
			name:  "Exact",
			x:     []float64{1, 2, 3},
			y:     []float64{1, 2, 3},
			tol:   Abs(0),
			left:  []Index{1, 2, 3},
			right: []Index{1, 2, 3},
		},
		{
			name:  "NoMatch",
			x:     []float64{1, 5},
			y:     []float64{3},
			tol:   Abs(0),
			left:  []Index{1, 2},
			right: []Index{None, None},
		},
		{
			name:  "EmptyLeft",
			x:     []float64{},
			y:     []float64{1, 2},
			tol:   Abs(1),
			left:  []Index{},
			right: []Index{},
		},
		{
			name:  "EmptyRight",
			x:     []float64{1, 2},
			y:     []float64{},
			tol:   Abs(1),
			left:  []Index{1, 2},
			right: []Index{None, None},
		},
		{
			// x[1] is the better claimant of y[0]: the row emitted for x[0]
			// must lose its match again.
			name:  "Retraction",
			x:     []float64{1.0, 1.1},
			y:     []float64{1.09},
			tol:   Abs(0.5),
			left:  []Index{1, 2},
			right: []Index{None, 1},
		},
		{
			// x[0] cannot accept within its own bound, x[1] can.
			name:  "PerElement",
			x:     []float64{1.0, 1.5},
			y:     []float64{1.4},
			tol:   PerElement([]float64{0.05, 0.5}),
			left:  []Index{1, 2},
			right: []Index{None, 1},
		},
		{
			// Both claims are exactly equally good (0.25 is representable):
			// the earlier row keeps the match.
			name:  "ClaimTie",
			x:     []float64{1.0, 1.5},
			y:     []float64{1.25},
			tol:   Abs(0.5),
			left:  []Index{1, 2},
			right: []Index{1, None},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Left(tt.x, tt.y, tt.tol)
			require.NoError(t, err)
			assert.Equal(t, tt.left, got.Left)
			assert.Equal(t, tt.right, got.Right)
			assert.NoError(t, Verify(got, tt.x, tt.y, tt.tol, KindLeft))

			// The resolver-based strategy must agree.
			got2, err := LeftResolve(tt.x, tt.y, tt.tol)
			require.NoError(t, err)
			assert.Equal(t, got.Left, got2.Left)
			assert.Equal(t, got.Right, got2.Right)
		})
	}
}

func TestLeftCrossValidation(t *testing.T) {
	// Both left join strategies must produce identical tables; unambiguous
	// random inputs keep equidistance ties out of the comparison.
	for seed := int64(1); seed <= 20; seed++ {
		x, y := makeUnambiguous(seed, 50)
		tol := Abs(0.05)

		direct, err := Left(x, y, tol)
		require.NoError(t, err)
		resolved, err := LeftResolve(x, y, tol)
		require.NoError(t, err)

		assert.Equal(t, resolved.Left, direct.Left, "seed %d", seed)
		assert.Equal(t, resolved.Right, direct.Right, "seed %d", seed)
		assert.NoError(t, Verify(direct, x, y, tol, KindLeft))
	}
}

func TestLeftToleranceLength(t *testing.T) {
	_, err := Left([]float64{1, 2}, []float64{1}, PerElement([]float64{0.1}))
	var tl *ErrToleranceLength
	assert.ErrorAs(t, err, &tl)

	_, err = LeftResolve([]float64{1, 2}, []float64{1}, PerElement([]float64{0.1, 0.2, 0.3}))
	assert.ErrorAs(t, err, &tl)
}
