package align

// Inner joins x against y keeping only matched rows. The left column holds
// the 1-based x index of each surviving row, the right column its matched y
// index; rows stay ordered by x index.
//
// Inner is the left join minus its unmatched rows, so every inner row
// appears with the same index pairing in the left join of the same inputs.
func Inner(x, y []float64, tol Tolerance) (*Table, error) {
	rgt, err := Closest(x, y, tol, DuplicatesClosest)
	if err != nil {
		return nil, err
	}

	lft := make([]Index, len(rgt))
	k := 0
	for i, r := range rgt {
		if r != None {
			lft[k] = Index(i + 1)
			rgt[k] = r
			k++
		}
	}
	return &Table{Left: lft[:k], Right: rgt[:k]}, nil
}
