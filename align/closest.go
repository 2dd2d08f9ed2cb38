package align

import (
	"fmt"
	"math"
)

// Duplicates selects how conflicts are resolved when several left elements
// claim the same right element as their best match.
type Duplicates int

const (
	// DuplicatesKeep retains the match for the earliest claimant and demotes
	// all later claimants to None, regardless of distance.
	DuplicatesKeep Duplicates = iota
	// DuplicatesClosest retains the match for the claimant with the smallest
	// absolute difference; distance ties go to the lowest left index.
	DuplicatesClosest
	// DuplicatesRemove demotes every claimant of a multiply-claimed right
	// element to None.
	DuplicatesRemove
)

func (d Duplicates) String() string {
	switch d {
	case DuplicatesKeep:
		return "keep"
	case DuplicatesClosest:
		return "closest"
	case DuplicatesRemove:
		return "remove"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// ParseDuplicates converts a duplicate policy name into a Duplicates value.
func ParseDuplicates(s string) (Duplicates, error) {
	switch s {
	case "keep":
		return DuplicatesKeep, nil
	case "closest":
		return DuplicatesClosest, nil
	case "remove":
		return DuplicatesRemove, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDuplicates, s)
	}
}

// Closest finds, for every element of x, the index of the nearest element of
// y within tolerance, or None. Conflicts where several x elements name the
// same y element are then resolved according to dup.
//
// Both x and y must be sorted ascending. Because of that, the nearest y index
// is non-decreasing across x, and a single advancing cursor covers all of x
// in near-linear time. Distance ties between two y neighbours go to the
// lower y index.
func Closest(x, y []float64, tol Tolerance, dup Duplicates) ([]Index, error) {
	bounds, err := tol.expand(x)
	if err != nil {
		return nil, err
	}

	out := make([]Index, len(x))
	if len(x) == 0 || len(y) == 0 {
		return out, nil
	}

	j := 0
	for i, v := range x {
		for j+1 < len(y) && math.Abs(y[j+1]-v) < math.Abs(y[j]-v) {
			j++
		}
		if math.Abs(y[j]-v) <= bounds[i] {
			out[i] = Index(j + 1)
		}
	}

	resolveDuplicates(out, x, y, dup)
	return out, nil
}

// resolveDuplicates demotes conflicting claims in out according to dup.
// Non-None entries of out are non-decreasing, so all claimants of one right
// index form a run, possibly interleaved with None entries.
func resolveDuplicates(out []Index, x, y []float64, dup Duplicates) {
	switch dup {
	case DuplicatesKeep:
		last := None
		for i, r := range out {
			if r == None {
				continue
			}
			if r == last {
				out[i] = None
			} else {
				last = r
			}
		}
	case DuplicatesClosest:
		for i := 0; i < len(out); {
			if out[i] == None {
				i++
				continue
			}
			r := out[i]
			yv := y[r.Pos()]
			best := i
			end := i + 1
			for end < len(out) && (out[end] == None || out[end] == r) {
				if out[end] == r && math.Abs(x[end]-yv) < math.Abs(x[best]-yv) {
					best = end
				}
				end++
			}
			for t := i; t < end; t++ {
				if out[t] == r && t != best {
					out[t] = None
				}
			}
			i = end
		}
	case DuplicatesRemove:
		for i := 0; i < len(out); {
			if out[i] == None {
				i++
				continue
			}
			r := out[i]
			claims := 0
			end := i
			for end < len(out) && (out[end] == None || out[end] == r) {
				if out[end] == r {
					claims++
				}
				end++
			}
			if claims > 1 {
				for t := i; t < end; t++ {
					if out[t] == r {
						out[t] = None
					}
				}
			}
			i = end
		}
	}
}
