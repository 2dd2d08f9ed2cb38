package align

import "math"

// Left joins x against y with one output row per element of x, in input
// order. Row i pairs index i+1 with the best acceptable y index, or None.
//
// This is the direct two-pointer scan: both cursors advance by comparing the
// current pair distance against the distances reachable one step ahead on
// either side. A previously emitted row is retracted to None when a later x
// element turns out to be the better claimant of the same y element.
func Left(x, y []float64, tol Tolerance) (*Table, error) {
	bounds, err := tol.expand(x)
	if err != nil {
		return nil, err
	}

	n, m := len(x), len(y)
	lft := make([]Index, n)
	rgt := make([]Index, n)

	xi, yi := 0, 0
	xiLast, yiLast := -1, -1

	for xi < n {
		lft[xi] = Index(xi + 1)
		if yi >= m {
			rgt[xi] = None
			xi++
			continue
		}

		idiff := math.Abs(x[xi] - y[yi])
		xdiff := math.Inf(1)
		if xi+1 < n {
			xdiff = math.Abs(x[xi+1] - y[yi])
		}
		ydiff := math.Inf(1)
		if yi+1 < m {
			ydiff = math.Abs(x[xi] - y[yi+1])
		}

		if idiff <= bounds[xi] {
			rgt[xi] = Index(yi + 1)
			// The same y element was accepted for an earlier x row and the
			// current claim is the one that survives: retract the old row
			// unless the scan is about to move past this y anyway.
			if yi == yiLast && xi > xiLast {
				if ydiff > idiff || ydiff > xdiff {
					rgt[xiLast] = None
				}
			}
			xiLast, yiLast = xi, yi
		} else {
			rgt[xi] = None
		}

		if xdiff < idiff || ydiff < idiff {
			if xdiff < ydiff {
				xi++
			} else {
				yi++
			}
		} else {
			xi++
			yi++
		}
	}

	return &Table{Left: lft, Right: rgt}, nil
}

// LeftResolve is the resolver-based left join: the right column is the
// result of Closest under the closest duplicate policy, the left column is
// 1..len(x). It must agree with Left on well-formed input.
func LeftResolve(x, y []float64, tol Tolerance) (*Table, error) {
	rgt, err := Closest(x, y, tol, DuplicatesClosest)
	if err != nil {
		return nil, err
	}

	lft := make([]Index, len(rgt))
	for i := range lft {
		lft[i] = Index(i + 1)
	}
	return &Table{Left: lft, Right: rgt}, nil
}
