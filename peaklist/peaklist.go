// Package peaklist provides the peak list model consumed by the aligner and
// readers/writers for the common interchange formats (CSV, Parquet, JSON),
// with transparent compression for stored files.
package peaklist

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrIntensityLength is returned when the intensity column length does
	// not match the m/z column.
	ErrIntensityLength = errors.New("intensity length does not match mz length")

	// ErrNotAscending is returned when peak positions are not sorted in
	// ascending order.
	ErrNotAscending = errors.New("peak positions not in ascending order")

	// ErrBadPosition is returned when a peak position is NaN or infinite.
	ErrBadPosition = errors.New("peak position is not a finite number")
)

// PeakList is one measurement's centroided peaks: positions (m/z or any
// other ascending coordinate) and optional intensities, column-wise.
type PeakList struct {
	ID        string    `json:"id,omitempty"`
	MZ        []float64 `json:"mz"`
	Intensity []float64 `json:"intensity,omitempty"`
}

// New creates a peak list without intensities.
func New(id string, mz []float64) *PeakList {
	return &PeakList{ID: id, MZ: mz}
}

// Len returns the number of peaks.
func (p *PeakList) Len() int { return len(p.MZ) }

// HasIntensity reports whether the list carries an intensity column.
func (p *PeakList) HasIntensity() bool { return p.Intensity != nil }

// Positions returns the peak position column. The slice is shared with the
// list, not copied; the aligner treats it as read-only.
func (p *PeakList) Positions() []float64 { return p.MZ }

// Ascending reports whether the positions are sorted in ascending order,
// which is what the align package requires of its inputs.
func (p *PeakList) Ascending() bool {
	for i := 1; i < len(p.MZ); i++ {
		if p.MZ[i] < p.MZ[i-1] {
			return false
		}
	}
	return true
}

// Sort orders the peaks by position, keeping intensities attached to their
// peaks. The sort is stable so equal positions keep their input order.
func (p *PeakList) Sort() {
	if p.HasIntensity() {
		sort.Stable(byPosition{p})
		return
	}
	sort.Stable(sort.Float64Slice(p.MZ))
}

// byPosition sorts both columns by the position column.
type byPosition struct{ p *PeakList }

func (b byPosition) Len() int           { return len(b.p.MZ) }
func (b byPosition) Less(i, j int) bool { return b.p.MZ[i] < b.p.MZ[j] }
func (b byPosition) Swap(i, j int) {
	b.p.MZ[i], b.p.MZ[j] = b.p.MZ[j], b.p.MZ[i]
	b.p.Intensity[i], b.p.Intensity[j] = b.p.Intensity[j], b.p.Intensity[i]
}

// Validate checks the structural invariants the aligner relies on: matching
// column lengths, finite positions and ascending position order. Intensities
// may contain NaN (missing values are legal there, see the impute package).
func (p *PeakList) Validate() error {
	if p.Intensity != nil && len(p.Intensity) != len(p.MZ) {
		return fmt.Errorf("%w: mz %d, intensity %d", ErrIntensityLength, len(p.MZ), len(p.Intensity))
	}
	for i, v := range p.MZ {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d", ErrBadPosition, i)
		}
	}
	if !p.Ascending() {
		return ErrNotAscending
	}
	return nil
}
