package peakjoin

import (
	"time"

	"github.com/hupe1980/peakjoin/align"
	"github.com/hupe1980/peakjoin/peaklist"
)

// PeakListPair is one left/right input of a batch alignment.
type PeakListPair struct {
	Left  *peaklist.PeakList
	Right *peaklist.PeakList
}

// Result is one peak list alignment together with its provenance. Results
// round-trip through the configured codec, so they can be saved to and
// loaded from a blob store.
type Result struct {
	// LeftID and RightID name the aligned peak lists.
	LeftID  string `json:"left_id,omitempty"`
	RightID string `json:"right_id,omitempty"`

	// Kind is the join kind that produced the table.
	Kind string `json:"kind"`

	// Table holds the aligned index pairs.
	Table *align.Table `json:"table"`

	// LeftLen and RightLen are the input sizes.
	LeftLen  int `json:"left_len"`
	RightLen int `json:"right_len"`

	// Matched counts the fully matched rows of the table.
	Matched int `json:"matched"`

	// Elapsed is the alignment wall time.
	Elapsed time.Duration `json:"elapsed"`
}

// Unmatched counts the rows with a missing side.
func (r *Result) Unmatched() int {
	if r.Table == nil {
		return 0
	}
	return r.Table.Len() - r.Matched
}
