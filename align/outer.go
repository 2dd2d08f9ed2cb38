package align

import "math"

// Outer joins x against y with one row per element of either sequence.
// Elements pair up when within tolerance and not beaten by a better
// one-step-ahead pairing; everything else appears unmatched-alone in input
// order. Output rows number at most len(x)+len(y).
//
// When a chain of improving matches is resolved one step at a time, the scan
// can discover that the element it just emitted as unmatched belongs with
// the element it is now passing over. The previous output row is then
// stepped back and overwritten with that pairing instead of emitting a fresh
// unmatched row. The direction flag tracks which cursor the previous step
// advanced so the correction only fires when the improvement direction
// flips.
func Outer(x, y []float64, tol Tolerance) (*Table, error) {
	bounds, err := tol.expand(x)
	if err != nil {
		return nil, err
	}

	n, m := len(x), len(y)
	lft := make([]Index, n+m)
	rgt := make([]Index, n+m)

	idx := -1
	xi, yi := 0, 0
	// 1 when the previous step advanced only the y cursor, -1 for only the
	// x cursor, 0 otherwise.
	dir := 0

	for xi < n || yi < m {
		idx++
		if xi >= n {
			lft[idx] = None
			rgt[idx] = Index(yi + 1)
			yi++
			continue
		}
		if yi >= m {
			lft[idx] = Index(xi + 1)
			rgt[idx] = None
			xi++
			continue
		}

		idiff := math.Abs(x[xi] - y[yi])
		if idiff <= bounds[xi] {
			// Candidate pairing. Look one step ahead on each side to make
			// sure the best match wins, not the first acceptable one.
			lft[idx] = Index(xi + 1)
			rgt[idx] = Index(yi + 1)
			xdiff := math.Inf(1)
			if xi+1 < n {
				xdiff = math.Abs(x[xi+1] - y[yi])
			}
			ydiff := math.Inf(1)
			if yi+1 < m {
				ydiff = math.Abs(x[xi] - y[yi+1])
			}
			if xdiff < idiff || ydiff < idiff {
				if xdiff < ydiff {
					if dir > 0 {
						idx--
						lft[idx] = Index(xi + 1)
					} else {
						rgt[idx] = None
					}
					xi++
					dir = -1
				} else {
					if dir < 0 {
						idx--
						rgt[idx] = Index(yi + 1)
					} else {
						lft[idx] = None
					}
					yi++
					dir = 1
				}
			} else {
				dir = 0
				xi++
				yi++
			}
		} else {
			dir = 0
			// Outside tolerance the smaller value is emitted alone so rows
			// stay ordered by value.
			if x[xi] < y[yi] {
				lft[idx] = Index(xi + 1)
				rgt[idx] = None
				xi++
			} else {
				lft[idx] = None
				rgt[idx] = Index(yi + 1)
				yi++
			}
		}
	}

	rows := idx + 1
	return &Table{Left: lft[:rows], Right: rgt[:rows]}, nil
}

// OuterForward is the forward-only outer join: no emitted row is ever
// revised. A one-step-ahead pairing only wins against the current candidate
// when it also beats the pairing reachable by advancing both cursors, which
// keeps improving chains from splitting valid pairs into unmatched rows.
// Coverage matches Outer; where several pairings are equally acceptable the
// chosen rows may differ.
func OuterForward(x, y []float64, tol Tolerance) (*Table, error) {
	bounds, err := tol.expand(x)
	if err != nil {
		return nil, err
	}

	n, m := len(x), len(y)
	lft := make([]Index, n+m)
	rgt := make([]Index, n+m)

	i := 0
	xi, yi := 0, 0

	for xi < n || yi < m {
		switch {
		case xi >= n:
			lft[i] = None
			rgt[i] = Index(yi + 1)
			yi++
		case yi >= m:
			lft[i] = Index(xi + 1)
			rgt[i] = None
			xi++
		default:
			diff := math.Abs(x[xi] - y[yi])
			if diff <= bounds[xi] {
				nextX := math.Inf(1)
				if xi+1 < n {
					nextX = math.Abs(x[xi+1] - y[yi])
				}
				nextY := math.Inf(1)
				if yi+1 < m {
					nextY = math.Abs(x[xi] - y[yi+1])
				}
				nextXY := math.Inf(1)
				if xi+1 < n && yi+1 < m {
					nextXY = math.Abs(x[xi+1] - y[yi+1])
				}
				if (nextX < diff && nextX < nextXY) || (nextY < diff && nextY < nextXY) {
					if nextX < nextY {
						lft[i] = Index(xi + 1)
						rgt[i] = None
						xi++
					} else {
						lft[i] = None
						rgt[i] = Index(yi + 1)
						yi++
					}
				} else {
					lft[i] = Index(xi + 1)
					rgt[i] = Index(yi + 1)
					xi++
					yi++
				}
			} else if x[xi] < y[yi] {
				lft[i] = Index(xi + 1)
				rgt[i] = None
				xi++
			} else {
				lft[i] = None
				rgt[i] = Index(yi + 1)
				yi++
			}
		}
		i++
	}

	return &Table{Left: lft[:i], Right: rgt[:i]}, nil
}
