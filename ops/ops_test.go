package ops

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	fn, err := Lookup("join_left")
	require.NoError(t, err)
	assert.NotNil(t, fn)

	_, err = Lookup("join_sideways")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"closest_duplicate",
		"imp_neighbour_avg",
		"join_inner",
		"join_left",
		"join_left_resolve",
		"join_outer",
		"join_outer_forward",
		"local_maxima",
	}, Names())
}

func TestJoinOps(t *testing.T) {
	tests := []struct {
		name      string
		op        string
		req       *Request
		wantLeft  []int
		wantRight []int
	}{
		{
			name: "left keeps unmatched queries",
			op:   "join_left",
			req: &Request{
				X:         []float64{1, 5, 9},
				Y:         []float64{1.01, 4.99},
				Tolerance: []float64{0.05},
			},
			wantLeft:  []int{1, 2, 3},
			wantRight: []int{1, 2, 0},
		},
		{
			name: "left resolve agrees with left",
			op:   "join_left_resolve",
			req: &Request{
				X:         []float64{1, 5, 9},
				Y:         []float64{1.01, 4.99},
				Tolerance: []float64{0.05},
			},
			wantLeft:  []int{1, 2, 3},
			wantRight: []int{1, 2, 0},
		},
		{
			name: "inner keeps only matches",
			op:   "join_inner",
			req: &Request{
				X:         []float64{1, 5, 9},
				Y:         []float64{1.01, 4.99},
				Tolerance: []float64{0.05},
			},
			wantLeft:  []int{1, 2},
			wantRight: []int{1, 2},
		},
		{
			name: "outer covers both sides",
			op:   "join_outer",
			req: &Request{
				X:         []float64{1, 5, 9},
				Y:         []float64{1.01, 4.99, 12},
				Tolerance: []float64{0.05},
			},
			wantLeft:  []int{1, 2, 3, 0},
			wantRight: []int{1, 2, 0, 3},
		},
		{
			name: "outer forward covers both sides",
			op:   "join_outer_forward",
			req: &Request{
				X:         []float64{1, 5, 9},
				Y:         []float64{1.01, 4.99, 12},
				Tolerance: []float64{0.05},
			},
			wantLeft:  []int{1, 2, 3, 0},
			wantRight: []int{1, 2, 0, 3},
		},
		{
			name: "per element tolerance",
			op:   "join_left",
			req: &Request{
				X:         []float64{1, 10},
				Y:         []float64{1.5, 10.5},
				Tolerance: []float64{0.6, 0.4},
			},
			wantLeft:  []int{1, 2},
			wantRight: []int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Lookup(tt.op)
			require.NoError(t, err)

			resp, err := fn(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLeft, resp.Left)
			assert.Equal(t, tt.wantRight, resp.Right)
		})
	}
}

func TestClosestDuplicate(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
		want []int
	}{
		{
			name: "default policy is closest",
			req: &Request{
				X:         []float64{1.0, 1.04},
				Y:         []float64{1.03},
				Tolerance: []float64{0.05},
			},
			want: []int{0, 1},
		},
		{
			name: "keep retains first claimant",
			req: &Request{
				X:          []float64{1.0, 1.04},
				Y:          []float64{1.03},
				Tolerance:  []float64{0.05},
				Duplicates: "keep",
			},
			want: []int{1, 0},
		},
		{
			name: "remove drops all claimants",
			req: &Request{
				X:          []float64{1.0, 1.04},
				Y:          []float64{1.03},
				Tolerance:  []float64{0.05},
				Duplicates: "remove",
			},
			want: []int{0, 0},
		},
		{
			name: "ppm widens with magnitude",
			req: &Request{
				X:   []float64{1e6},
				Y:   []float64{1e6 + 5},
				PPM: 10,
			},
			want: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := Lookup("closest_duplicate")
			require.NoError(t, err)

			resp, err := fn(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.want, resp.Indices)
		})
	}
}

func TestClosestDuplicateBadPolicy(t *testing.T) {
	fn, err := Lookup("closest_duplicate")
	require.NoError(t, err)

	_, err = fn(context.Background(), &Request{
		X:          []float64{1},
		Y:          []float64{1},
		Duplicates: "first",
	})
	assert.Error(t, err)
}

func TestImpNeighbourAvg(t *testing.T) {
	fn, err := Lookup("imp_neighbour_avg")
	require.NoError(t, err)

	resp, err := fn(context.Background(), &Request{
		X: []float64{math.NaN(), 2, math.NaN(), 4, math.NaN()},
		K: 0,
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 2, 3, 4, 0}, resp.Values)
}

func TestLocalMaxima(t *testing.T) {
	fn, err := Lookup("local_maxima")
	require.NoError(t, err)

	resp, err := fn(context.Background(), &Request{
		X:          []float64{1, 3, 2, 5, 4},
		HalfWindow: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, false, true, false}, resp.Flags)
	assert.Equal(t, []int{2, 4}, resp.Indices)

	_, err = fn(context.Background(), &Request{X: []float64{1}, HalfWindow: 0})
	assert.Error(t, err)
}

func TestToleranceLengthMismatch(t *testing.T) {
	fn, err := Lookup("join_left")
	require.NoError(t, err)

	_, err = fn(context.Background(), &Request{
		X:         []float64{1, 2},
		Y:         []float64{1},
		Tolerance: []float64{0.1, 0.1, 0.1},
	})
	assert.Error(t, err)
}

func TestOpsHonorContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, name := range Names() {
		fn, err := Lookup(name)
		require.NoError(t, err)

		_, err = fn(ctx, &Request{X: []float64{1}, HalfWindow: 1})
		assert.ErrorIs(t, err, context.Canceled, name)
	}
}
