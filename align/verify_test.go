package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 2, 3}
	tol := Abs(0.1)

	valid := func() *Table {
		return &Table{
			Left:  []Index{1, 2, 3},
			Right: []Index{1, 2, 3},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		for _, k := range []Kind{KindLeft, KindInner, KindOuter, KindOuterForward} {
			assert.NoError(t, Verify(valid(), x, y, tol, k))
		}
	})

	t.Run("ColumnMismatch", func(t *testing.T) {
		tab := valid()
		tab.Right = tab.Right[:2]
		assert.ErrorContains(t, Verify(tab, x, y, tol, KindLeft), "column length mismatch")
	})

	t.Run("BothSentinel", func(t *testing.T) {
		tab := &Table{Left: []Index{1, None}, Right: []Index{1, None}}
		assert.ErrorContains(t, Verify(tab, x, y, tol, KindOuter), "both columns are sentinel")
	})

	t.Run("OutOfRange", func(t *testing.T) {
		tab := valid()
		tab.Right[2] = 4
		assert.ErrorContains(t, Verify(tab, x, y, tol, KindInner), "out of range")
	})

	t.Run("LeftNotIncreasing", func(t *testing.T) {
		tab := valid()
		tab.Left = []Index{1, 3, 2}
		// Loose bound so the reordered rows fail on ordering, not tolerance.
		assert.ErrorContains(t, Verify(tab, x, y, Abs(10), KindInner), "not increasing")
	})

	t.Run("RightClaimedTwice", func(t *testing.T) {
		tab := valid()
		tab.Right = []Index{1, 2, 2}
		// x[2]=3 vs y[1]=2 is also outside tolerance, so check the claim
		// first with a loose bound.
		err := Verify(tab, x, y, Abs(10), KindInner)
		assert.ErrorContains(t, err, "claimed twice")
	})

	t.Run("OutsideTolerance", func(t *testing.T) {
		tab := &Table{Left: []Index{1}, Right: []Index{2}}
		assert.ErrorContains(t, Verify(tab, x, y, tol, KindInner), "outside tolerance")
	})

	t.Run("LeftCoverage", func(t *testing.T) {
		tab := &Table{Left: []Index{1, 2}, Right: []Index{1, 2}}
		assert.ErrorContains(t, Verify(tab, x, y, tol, KindLeft), "covers 2 of 3")
	})

	t.Run("InnerSentinelRow", func(t *testing.T) {
		tab := &Table{Left: []Index{1, 2}, Right: []Index{1, None}}
		assert.ErrorContains(t, Verify(tab, x, y, tol, KindInner), "inner join row with sentinel")
	})

	t.Run("OuterCoverage", func(t *testing.T) {
		tab := &Table{Left: []Index{1, 2, 3}, Right: []Index{1, 2, None}}
		err := Verify(tab, x, y, tol, KindOuter)
		assert.ErrorContains(t, err, "covers 2 of 3 right elements")
	})

	t.Run("UnknownKind", func(t *testing.T) {
		assert.ErrorIs(t, Verify(valid(), x, y, tol, Kind(99)), ErrUnknownKind)
	})

	t.Run("ToleranceError", func(t *testing.T) {
		var tl *ErrToleranceLength
		err := Verify(valid(), x, y, PerElement([]float64{0.1}), KindLeft)
		require.ErrorAs(t, err, &tl)
	})
}

func TestVerifyLeftEquidistantClaims(t *testing.T) {
	// The direct left scan may leave the same y index on two rows when the
	// claims are exactly equidistant and the scan has moved past both. That
	// is legal for a left table (only monotonicity is required), but never
	// for inner or outer tables.
	x := []float64{-2, 1}
	y := []float64{0, 2}

	got, err := Left(x, y, Abs(10))
	require.NoError(t, err)
	assert.Equal(t, []Index{1, 1}, got.Right)
	assert.NoError(t, Verify(got, x, y, Abs(10), KindLeft))
}
