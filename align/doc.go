// Package align implements approximate joins over ascending-sorted numeric
// sequences. Elements of two sequences are paired by numeric proximity within
// per-element tolerance windows, producing join tables analogous to
// relational outer, left and inner joins.
//
// All operations are pure functions: inputs are read-only, results are
// freshly allocated, and no state is shared between calls. Inputs must be
// sorted in ascending order; this is assumed, not validated, and unsorted
// inputs yield an unspecified (but non-crashing) result.
package align
