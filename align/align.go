package align

import (
	"fmt"
	"strconv"
)

// Index is a 1-based position into one of the joined sequences. The zero
// value None marks the absence of a match, so a valid Index is always > 0.
type Index int

// None is the "no match" marker in a join result column.
const None Index = 0

// Valid reports whether i refers to an actual sequence element.
func (i Index) Valid() bool { return i > 0 }

// Pos returns the 0-based offset of a valid Index.
// The result is undefined for None.
func (i Index) Pos() int { return int(i) - 1 }

func (i Index) String() string {
	if i == None {
		return "-"
	}
	return strconv.Itoa(int(i))
}

// Pair is a single row of a join table.
type Pair struct {
	Left  Index `json:"left"`
	Right Index `json:"right"`
}

// Table is the result of a join: two equal-length index columns, read
// row-wise. Left[i] points into the left input sequence, Right[i] into the
// right one; either may be None depending on the join kind.
type Table struct {
	Left  []Index `json:"left"`
	Right []Index `json:"right"`
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Left) }

// Row returns row i.
func (t *Table) Row(i int) Pair { return Pair{Left: t.Left[i], Right: t.Right[i]} }

// Pairs returns all rows as a slice of pairs.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, len(t.Left))
	for i := range t.Left {
		pairs[i] = Pair{Left: t.Left[i], Right: t.Right[i]}
	}
	return pairs
}

// Matched returns the number of rows where both columns are valid.
func (t *Table) Matched() int {
	var n int
	for i := range t.Left {
		if t.Left[i].Valid() && t.Right[i].Valid() {
			n++
		}
	}
	return n
}

// Kind selects the row-coverage semantics of a join.
type Kind int

const (
	// KindLeft emits one row per left element, matched or not.
	KindLeft Kind = iota
	// KindInner emits only fully matched rows.
	KindInner
	// KindOuter emits one row per left or right element, merging matches.
	KindOuter
	// KindOuterForward is the forward-only outer join variant that never
	// revises an emitted row.
	KindOuterForward
)

func (k Kind) String() string {
	switch k {
	case KindLeft:
		return "left"
	case KindInner:
		return "inner"
	case KindOuter:
		return "outer"
	case KindOuterForward:
		return "outer-forward"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ParseKind converts a join kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "left":
		return KindLeft, nil
	case "inner":
		return KindInner, nil
	case "outer":
		return KindOuter, nil
	case "outer-forward":
		return KindOuterForward, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Join runs the join of the given kind. See Left, Inner, Outer and
// OuterForward for the per-kind contracts.
func Join(x, y []float64, tol Tolerance, kind Kind) (*Table, error) {
	switch kind {
	case KindLeft:
		return Left(x, y, tol)
	case KindInner:
		return Inner(x, y, tol)
	case KindOuter:
		return Outer(x, y, tol)
	case KindOuterForward:
		return OuterForward(x, y, tol)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
