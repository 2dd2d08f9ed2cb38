package peaklist

import (
	"bytes"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParquetRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list *PeakList
	}{
		{
			name: "with intensity",
			list: &PeakList{
				MZ:        []float64{100.5, 100.51, 200.25, 1005.75},
				Intensity: []float64{1200, 3400, 10, 0.5},
			},
		},
		{
			name: "without intensity",
			list: New("s1", []float64{1.5, 2.5, 3.5}),
		},
		{
			name: "empty",
			list: New("empty", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteParquet(&buf, tt.list))

			got, err := ReadParquet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
			require.NoError(t, err)

			if tt.list.Len() == 0 {
				assert.Empty(t, got.MZ)
			} else {
				assert.Equal(t, tt.list.MZ, got.MZ)
			}
			if tt.list.HasIntensity() {
				assert.Equal(t, tt.list.Intensity, got.Intensity)
			} else {
				assert.Nil(t, got.Intensity)
			}
		})
	}
}

func TestParquetManyRows(t *testing.T) {
	// More rows than one write batch, so batching is exercised.
	n := 2*parquetBatchSize + 37

	p := &PeakList{
		MZ:        make([]float64, n),
		Intensity: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		p.MZ[i] = 100 + float64(i)*0.25
		p.Intensity[i] = float64(i % 997)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteParquet(&buf, p))

	got, err := ReadParquet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	assert.Equal(t, p.MZ, got.MZ)
	assert.Equal(t, p.Intensity, got.Intensity)
}

func TestWriteParquetLengthMismatch(t *testing.T) {
	p := &PeakList{MZ: []float64{1, 2}, Intensity: []float64{10}}

	var buf bytes.Buffer
	err := WriteParquet(&buf, p)
	assert.ErrorIs(t, err, ErrIntensityLength)
}

// writeTestParquet writes a flat parquet file with the given double columns,
// column-major, for exercising the reader against files other writers made.
func writeTestParquet(t *testing.T, columns map[string][]float64) []byte {
	t.Helper()

	group := parquet.Group{}
	rows := 0
	for name, values := range columns {
		group[name] = parquet.Leaf(parquet.DoubleType)
		rows = len(values)
	}
	schema := parquet.NewSchema("spectrum", group)

	colIdx := make(map[string]int, len(columns))
	for i, path := range schema.Columns() {
		colIdx[path[0]] = i
	}

	var buf bytes.Buffer
	pw := parquet.NewWriter(&buf, schema)
	for r := 0; r < rows; r++ {
		row := make(parquet.Row, len(columns))
		for name, values := range columns {
			i := colIdx[name]
			row[i] = parquet.DoubleValue(values[r]).Level(0, 0, i)
		}
		_, err := pw.WriteRows([]parquet.Row{row})
		require.NoError(t, err)
	}
	require.NoError(t, pw.Close())

	return buf.Bytes()
}

func TestReadParquetColumnAliases(t *testing.T) {
	data := writeTestParquet(t, map[string][]float64{
		"m/z":  {100.5, 200.25},
		"into": {1200, 10},
	})

	got, err := ReadParquet(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, []float64{100.5, 200.25}, got.MZ)
	assert.Equal(t, []float64{1200, 10}, got.Intensity)
}

func TestReadParquetExtraColumnsIgnored(t *testing.T) {
	data := writeTestParquet(t, map[string][]float64{
		"mz":        {100.5, 200.25},
		"retention": {12.1, 14.9},
	})

	got, err := ReadParquet(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	assert.Equal(t, []float64{100.5, 200.25}, got.MZ)
	assert.Nil(t, got.Intensity)
}

func TestReadParquetNoMZColumn(t *testing.T) {
	data := writeTestParquet(t, map[string][]float64{
		"retention": {12.1},
	})

	_, err := ReadParquet(bytes.NewReader(data), int64(len(data)))
	assert.ErrorIs(t, err, ErrNoMZColumn)
}
