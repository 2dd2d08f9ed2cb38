package align

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Verify checks the structural invariants of a join table computed from x, y
// and tol under the given kind, returning the first violation found.
//
// Checked for every kind: index columns are in range, non-sentinel left
// indices strictly increase, non-sentinel right indices never decrease, and
// every fully matched row is within tolerance. Left and outer tables must
// cover every x index exactly once; outer tables additionally cover every y
// index exactly once, and inner and outer tables may not claim a y index
// twice. A left table may claim the same y index from two rows only in exact
// equidistance ties, so only monotonicity is enforced there.
//
// Verify exists so callers (and this repository's own tests) can assert
// pipeline integrity without re-deriving the join by hand.
func Verify(t *Table, x, y []float64, tol Tolerance, kind Kind) error {
	if len(t.Left) != len(t.Right) {
		return fmt.Errorf("column length mismatch: left %d, right %d", len(t.Left), len(t.Right))
	}

	bounds, err := tol.expand(x)
	if err != nil {
		return err
	}

	uniqueY := kind == KindInner || kind == KindOuter || kind == KindOuterForward

	seenX := roaring.New()
	seenY := roaring.New()
	lastX, lastY := None, None

	for i := range t.Left {
		lx, ry := t.Left[i], t.Right[i]
		if lx == None && ry == None {
			return fmt.Errorf("row %d: both columns are sentinel", i)
		}
		if lx != None {
			if lx < 1 || int(lx) > len(x) {
				return fmt.Errorf("row %d: left index %d out of range [1,%d]", i, lx, len(x))
			}
			if lx <= lastX {
				return fmt.Errorf("row %d: left index %d not increasing (previous %d)", i, lx, lastX)
			}
			seenX.Add(uint32(lx))
			lastX = lx
		}
		if ry != None {
			if ry < 1 || int(ry) > len(y) {
				return fmt.Errorf("row %d: right index %d out of range [1,%d]", i, ry, len(y))
			}
			if ry < lastY {
				return fmt.Errorf("row %d: right index %d decreasing (previous %d)", i, ry, lastY)
			}
			if uniqueY && seenY.Contains(uint32(ry)) {
				return fmt.Errorf("row %d: right index %d claimed twice", i, ry)
			}
			seenY.Add(uint32(ry))
			lastY = ry
		}
		if lx != None && ry != None {
			diff := math.Abs(x[lx.Pos()] - y[ry.Pos()])
			if diff > bounds[lx.Pos()] {
				return fmt.Errorf("row %d: pair (%d,%d) outside tolerance: |%g-%g| > %g",
					i, lx, ry, x[lx.Pos()], y[ry.Pos()], bounds[lx.Pos()])
			}
		}
	}

	switch kind {
	case KindLeft:
		for i, lx := range t.Left {
			if lx == None {
				return fmt.Errorf("row %d: left join row without left index", i)
			}
		}
		if int(seenX.GetCardinality()) != len(x) {
			return fmt.Errorf("left join covers %d of %d left elements", seenX.GetCardinality(), len(x))
		}
	case KindInner:
		for i := range t.Left {
			if t.Left[i] == None || t.Right[i] == None {
				return fmt.Errorf("row %d: inner join row with sentinel", i)
			}
		}
	case KindOuter, KindOuterForward:
		if int(seenX.GetCardinality()) != len(x) {
			return fmt.Errorf("outer join covers %d of %d left elements", seenX.GetCardinality(), len(x))
		}
		if int(seenY.GetCardinality()) != len(y) {
			return fmt.Errorf("outer join covers %d of %d right elements", seenY.GetCardinality(), len(y))
		}
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}

	return nil
}
