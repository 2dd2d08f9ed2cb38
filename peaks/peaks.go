// Package peaks provides local maxima detection over measurement sequences.
// It is the typical producer of the sorted peak position lists the align
// package consumes.
package peaks

import "errors"

// ErrHalfWindow is returned when the half window size is not positive.
var ErrHalfWindow = errors.New("half window must be positive")

// LocalMaxima reports for every position of x whether it is a local maximum
// within halfWindow positions on each side (clamped at the ends). On a
// plateau of equal values only the leading edge is reported, so consecutive
// positions are never both maxima.
func LocalMaxima(x []float64, halfWindow int) ([]bool, error) {
	if halfWindow < 1 {
		return nil, ErrHalfWindow
	}

	out := make([]bool, len(x))
	for i := range x {
		if i > 0 && x[i] <= x[i-1] {
			continue
		}
		lo := max(0, i-halfWindow)
		hi := min(len(x)-1, i+halfWindow)
		isMax := true
		for j := lo; j <= hi; j++ {
			if x[j] > x[i] {
				isMax = false
				break
			}
		}
		out[i] = isMax
	}
	return out, nil
}

// Find returns the 0-based positions of the local maxima of x.
func Find(x []float64, halfWindow int) ([]int, error) {
	flags, err := LocalMaxima(x, halfWindow)
	if err != nil {
		return nil, err
	}

	var pos []int
	for i, ok := range flags {
		if ok {
			pos = append(pos, i)
		}
	}
	return pos, nil
}
