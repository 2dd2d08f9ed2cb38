// Package ops exposes the alignment primitives under stable operation
// names. The command line tool and batch runners dispatch through this
// table instead of linking the underlying packages one by one.
package ops

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hupe1980/peakjoin/align"
	"github.com/hupe1980/peakjoin/impute"
	"github.com/hupe1980/peakjoin/peaks"
)

// ErrUnknownOp is returned by Lookup for a name the table does not carry.
var ErrUnknownOp = errors.New("unknown operation")

// Request carries the inputs of an operation. Which fields an operation
// consults depends on the operation; the rest are ignored.
type Request struct {
	// X is the left (query) sequence. The join and closest operations
	// require it sorted ascending.
	X []float64 `json:"x"`

	// Y is the right (reference) sequence, sorted ascending.
	Y []float64 `json:"y,omitempty"`

	// Tolerance is the absolute match tolerance: a single value applied to
	// every element, or len(X) per-element values. Empty means exact
	// matching unless PPM widens it.
	Tolerance []float64 `json:"tolerance,omitempty"`

	// PPM adds a relative parts-per-million term to the tolerance.
	PPM float64 `json:"ppm,omitempty"`

	// Duplicates names the duplicate policy for closest_duplicate: "keep",
	// "closest" or "remove".
	Duplicates string `json:"duplicates,omitempty"`

	// HalfWindow is the half window size for local_maxima.
	HalfWindow int `json:"half_window,omitempty"`

	// K is the fallback value for imp_neighbour_avg, used at the sequence
	// edges and where both neighbours are missing.
	K float64 `json:"k,omitempty"`
}

// Response carries an operation's outputs. Join operations fill Left and
// Right, closest_duplicate fills Indices, imp_neighbour_avg fills Values,
// local_maxima fills Flags. All indices are 1-based with 0 marking a
// missing element.
type Response struct {
	Left    []int     `json:"left,omitempty"`
	Right   []int     `json:"right,omitempty"`
	Indices []int     `json:"indices,omitempty"`
	Values  []float64 `json:"values,omitempty"`
	Flags   []bool    `json:"flags,omitempty"`
}

// Func is a named operation over the shared request/response surface.
type Func func(ctx context.Context, req *Request) (*Response, error)

// Table maps stable operation names to their implementations.
var Table = map[string]Func{
	"closest_duplicate":  closestDuplicate,
	"join_left":          joinOp(align.KindLeft),
	"join_left_resolve":  joinLeftResolve,
	"join_inner":         joinOp(align.KindInner),
	"join_outer":         joinOp(align.KindOuter),
	"join_outer_forward": joinOp(align.KindOuterForward),
	"imp_neighbour_avg":  impNeighbourAvg,
	"local_maxima":       localMaxima,
}

// Lookup returns the operation registered under name.
func Lookup(name string) (Func, error) {
	fn, ok := Table[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return fn, nil
}

// Names returns all operation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Table))
	for name := range Table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// tolerance assembles the align tolerance from the request fields.
func (r *Request) tolerance() align.Tolerance {
	var tol align.Tolerance
	switch len(r.Tolerance) {
	case 0:
		// Exact matching unless PPM applies.
	case 1:
		tol = align.Abs(r.Tolerance[0])
	default:
		tol = align.PerElement(r.Tolerance)
	}
	if r.PPM > 0 {
		tol = tol.WithPPM(r.PPM)
	}
	return tol
}

// indexInts converts align indices to plain 1-based ints.
func indexInts(idx []align.Index) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = int(v)
	}
	return out
}

func joinOp(kind align.Kind) Func {
	return func(ctx context.Context, req *Request) (*Response, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t, err := align.Join(req.X, req.Y, req.tolerance(), kind)
		if err != nil {
			return nil, err
		}
		return &Response{Left: indexInts(t.Left), Right: indexInts(t.Right)}, nil
	}
}

func joinLeftResolve(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := align.LeftResolve(req.X, req.Y, req.tolerance())
	if err != nil {
		return nil, err
	}
	return &Response{Left: indexInts(t.Left), Right: indexInts(t.Right)}, nil
}

func closestDuplicate(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dup := align.DuplicatesClosest
	if req.Duplicates != "" {
		var err error
		dup, err = align.ParseDuplicates(req.Duplicates)
		if err != nil {
			return nil, err
		}
	}

	idx, err := align.Closest(req.X, req.Y, req.tolerance(), dup)
	if err != nil {
		return nil, err
	}
	return &Response{Indices: indexInts(idx)}, nil
}

func impNeighbourAvg(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Response{Values: impute.NeighbourAverage(req.X, req.K)}, nil
}

func localMaxima(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flags, err := peaks.LocalMaxima(req.X, req.HalfWindow)
	if err != nil {
		return nil, err
	}

	var indices []int
	for i, ok := range flags {
		if ok {
			indices = append(indices, i+1)
		}
	}

	return &Response{Flags: flags, Indices: indices}, nil
}
