package peaklist

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
)

// ErrNoMZColumn is returned when a Parquet file carries no mz column.
var ErrNoMZColumn = errors.New("parquet file has no mz column")

// parquetBatchSize bounds the row buffer used when writing and reading.
const parquetBatchSize = 1000

// WriteParquet writes the peak list as a Parquet file with an mz column of
// doubles and, when intensities are present, an intensity column.
func WriteParquet(w io.Writer, p *PeakList) error {
	if p.HasIntensity() && len(p.Intensity) != len(p.MZ) {
		return fmt.Errorf("%w: mz %d, intensity %d", ErrIntensityLength, len(p.MZ), len(p.Intensity))
	}

	group := parquet.Group{
		"mz": parquet.Leaf(parquet.DoubleType),
	}
	if p.HasIntensity() {
		group["intensity"] = parquet.Leaf(parquet.DoubleType)
	}
	schema := parquet.NewSchema("peaklist", group)

	// Group fields are ordered by name, so resolve the leaf positions
	// instead of assuming mz comes first.
	mzCol, intCol := -1, -1
	for i, path := range schema.Columns() {
		switch path[0] {
		case "mz":
			mzCol = i
		case "intensity":
			intCol = i
		}
	}

	pw := parquet.NewWriter(w, schema, parquet.Compression(&parquet.Snappy))

	width := 1
	if intCol >= 0 {
		width = 2
	}

	rows := make([]parquet.Row, 0, parquetBatchSize)
	for i, mz := range p.MZ {
		row := make(parquet.Row, width)
		row[mzCol] = parquet.DoubleValue(mz).Level(0, 0, mzCol)
		if intCol >= 0 {
			row[intCol] = parquet.DoubleValue(p.Intensity[i]).Level(0, 0, intCol)
		}
		rows = append(rows, row)

		if len(rows) == parquetBatchSize {
			if _, err := pw.WriteRows(rows); err != nil {
				return fmt.Errorf("write parquet rows: %w", err)
			}
			rows = rows[:0]
		}
	}
	if len(rows) > 0 {
		if _, err := pw.WriteRows(rows); err != nil {
			return fmt.Errorf("write parquet rows: %w", err)
		}
	}

	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// ReadParquet reads a peak list from Parquet data. The file must carry an
// mz column of doubles; an intensity column is picked up when present and
// other columns are ignored.
func ReadParquet(r io.ReaderAt, size int64) (*PeakList, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}

	mzCol, intCol := -1, -1
	for i, path := range pf.Schema().Columns() {
		if len(path) != 1 {
			continue
		}
		switch path[0] {
		case "mz", "m/z":
			mzCol = i
		case "intensity", "into":
			intCol = i
		}
	}
	if mzCol < 0 {
		return nil, ErrNoMZColumn
	}

	p := &PeakList{MZ: make([]float64, 0, pf.NumRows())}
	if intCol >= 0 {
		p.Intensity = make([]float64, 0, pf.NumRows())
	}

	rowBuf := make([]parquet.Row, parquetBatchSize)
	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(rowBuf)
			if err != nil && !errors.Is(err, io.EOF) {
				rows.Close()
				return nil, fmt.Errorf("read parquet rows: %w", err)
			}
			if n == 0 {
				break
			}

			for _, row := range rowBuf[:n] {
				if mzCol >= len(row) {
					rows.Close()
					return nil, ErrNoMZColumn
				}
				p.MZ = append(p.MZ, row[mzCol].Double())
				if intCol >= 0 && intCol < len(row) {
					p.Intensity = append(p.Intensity, row[intCol].Double())
				}
			}
		}
		if err := rows.Close(); err != nil {
			return nil, fmt.Errorf("close parquet rows: %w", err)
		}
	}

	if p.Intensity != nil && len(p.Intensity) != len(p.MZ) {
		return nil, fmt.Errorf("%w: mz %d, intensity %d", ErrIntensityLength, len(p.MZ), len(p.Intensity))
	}
	return p, nil
}
