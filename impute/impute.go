// Package impute fills missing values in measurement sequences, typically
// intensity vectors patched up before peak detection.
package impute

import "math"

// NeighbourAverage returns a copy of x with every NaN replaced by the mean
// of its immediate neighbours. Neighbour values are taken from the original
// input, never from already imputed positions. If only one neighbour is
// usable its value is taken alone; at the first and last position, or when
// both neighbours are NaN themselves, the fallback k is used.
func NeighbourAverage(x []float64, k float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	for i, v := range x {
		if !math.IsNaN(v) {
			continue
		}
		if i == 0 || i == len(x)-1 {
			out[i] = k
			continue
		}

		left, right := x[i-1], x[i+1]
		switch {
		case !math.IsNaN(left) && !math.IsNaN(right):
			out[i] = (left + right) / 2
		case !math.IsNaN(left):
			out[i] = left
		case !math.IsNaN(right):
			out[i] = right
		default:
			out[i] = k
		}
	}
	return out
}
