package align

import "math"

// Tolerance bounds the admissible absolute difference for a pairing, per
// element of the left sequence. The zero value admits exact matches only.
//
// A bound is composed of an absolute part and an optional relative
// parts-per-million part: for left element v the admissible difference is
// abs + |v|*ppm*1e-6. The absolute part is either a scalar or one value per
// left element.
type Tolerance struct {
	abs  float64
	ppm  float64
	elem []float64
}

// Abs returns a scalar absolute tolerance.
func Abs(t float64) Tolerance { return Tolerance{abs: t} }

// PPM returns a purely relative tolerance of p parts per million.
func PPM(p float64) Tolerance { return Tolerance{ppm: p} }

// PerElement returns a tolerance with one absolute bound per left element.
// The slice length must equal the left sequence length at call time.
func PerElement(t []float64) Tolerance { return Tolerance{elem: t} }

// WithPPM returns a copy of t with an additional relative component of p
// parts per million.
func (t Tolerance) WithPPM(p float64) Tolerance {
	t.ppm = p
	return t
}

// expand materializes the per-element bounds for the left sequence x and
// validates them. Validation happens once, before any output is produced.
func (t Tolerance) expand(x []float64) ([]float64, error) {
	if t.elem != nil && len(t.elem) != len(x) {
		return nil, &ErrToleranceLength{Expected: len(x), Actual: len(t.elem)}
	}
	if t.abs < 0 || t.ppm < 0 {
		return nil, ErrNegativeTolerance
	}

	bounds := make([]float64, len(x))
	for i := range x {
		b := t.abs
		if t.elem != nil {
			b = t.elem[i]
		}
		if b < 0 {
			return nil, ErrNegativeTolerance
		}
		bounds[i] = b + math.Abs(x[i])*t.ppm*1e-6
	}
	return bounds, nil
}
