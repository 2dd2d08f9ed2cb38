package peaklist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadHeader is returned when a CSV header has no mz column.
var ErrBadHeader = errors.New("csv header must name an mz column")

// CSVOptions configures CSV reading and writing.
type CSVOptions struct {
	// Comma is the field delimiter.
	Comma rune

	// Header controls whether a header row is expected (read) or
	// written (write).
	Header bool
}

// DefaultCSVOptions is the starting configuration for ReadCSV and WriteCSV.
var DefaultCSVOptions = CSVOptions{
	Comma:  ',',
	Header: true,
}

// ReadCSV reads a peak list in CSV form: an mz column and an optional
// intensity column. With a header row the columns are located by name,
// otherwise the first column is mz and a second column, if present, is
// intensity.
func ReadCSV(r io.Reader, optFns ...func(o *CSVOptions)) (*PeakList, error) {
	opts := DefaultCSVOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Comma
	cr.TrimLeadingSpace = true

	mzCol, intCol := 0, 1
	if opts.Header {
		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return &PeakList{MZ: []float64{}}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv header: %w", err)
		}
		mzCol, intCol = -1, -1
		for i, name := range header {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "mz", "m/z":
				mzCol = i
			case "intensity", "into":
				intCol = i
			}
		}
		if mzCol < 0 {
			return nil, fmt.Errorf("%w: got %v", ErrBadHeader, header)
		}
	}

	p := &PeakList{MZ: []float64{}}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		if mzCol >= len(record) {
			return nil, fmt.Errorf("read csv: line %d has no mz field", line)
		}
		mz, err := strconv.ParseFloat(strings.TrimSpace(record[mzCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("read csv: line %d: %w", line, err)
		}
		p.MZ = append(p.MZ, mz)

		if intCol >= 0 && intCol < len(record) {
			in, err := strconv.ParseFloat(strings.TrimSpace(record[intCol]), 64)
			if err != nil {
				return nil, fmt.Errorf("read csv: line %d: %w", line, err)
			}
			p.Intensity = append(p.Intensity, in)
		}
	}

	if p.Intensity != nil && len(p.Intensity) != len(p.MZ) {
		return nil, fmt.Errorf("%w: mz %d, intensity %d", ErrIntensityLength, len(p.MZ), len(p.Intensity))
	}
	return p, nil
}

// WriteCSV writes the peak list in the form ReadCSV accepts.
func WriteCSV(w io.Writer, p *PeakList, optFns ...func(o *CSVOptions)) error {
	opts := DefaultCSVOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if p.HasIntensity() && len(p.Intensity) != len(p.MZ) {
		return fmt.Errorf("%w: mz %d, intensity %d", ErrIntensityLength, len(p.MZ), len(p.Intensity))
	}

	cw := csv.NewWriter(w)
	cw.Comma = opts.Comma

	if opts.Header {
		header := []string{"mz"}
		if p.HasIntensity() {
			header = append(header, "intensity")
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}

	record := make([]string, 1, 2)
	for i, mz := range p.MZ {
		record = record[:1]
		record[0] = strconv.FormatFloat(mz, 'g', -1, 64)
		if p.HasIntensity() {
			record = append(record, strconv.FormatFloat(p.Intensity[i], 'g', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
