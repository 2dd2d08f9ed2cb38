package peaklist

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/peakjoin/codec"
	"github.com/hupe1980/peakjoin/internal/compression"
)

// ErrUnknownFormat is returned for a file extension no reader/writer claims.
var ErrUnknownFormat = errors.New("unknown peak list format")

// Format identifies a peak list serialization format.
type Format int

const (
	// FormatCSV is comma-separated values with a header row.
	FormatCSV Format = iota
	// FormatParquet is the Apache Parquet columnar format.
	FormatParquet
	// FormatJSON is the JSON encoding of the PeakList struct.
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}

// ParseFormat maps a format name to its Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "csv":
		return FormatCSV, nil
	case "parquet", "pq":
		return FormatParquet, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatForPath reports the format implied by a file path, after stripping a
// trailing compression extension: "peaks.csv.zst" is CSV compressed with
// zstd.
func FormatForPath(path string) (Format, error) {
	_, stripped := compression.ForPath(path)
	ext := strings.ToLower(filepath.Ext(stripped))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".parquet", ".pq":
		return FormatParquet, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
	}
}

// Marshal serializes the peak list in the given format.
func Marshal(p *PeakList, f Format) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case FormatCSV:
		if err := WriteCSV(&buf, p); err != nil {
			return nil, err
		}
	case FormatParquet:
		if err := WriteParquet(&buf, p); err != nil {
			return nil, err
		}
	case FormatJSON:
		return codec.Default.Marshal(p)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes a peak list in the given format.
func Unmarshal(data []byte, f Format) (*PeakList, error) {
	switch f {
	case FormatCSV:
		return ReadCSV(bytes.NewReader(data))
	case FormatParquet:
		return ReadParquet(bytes.NewReader(data), int64(len(data)))
	case FormatJSON:
		var p PeakList
		if err := codec.Default.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &p, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// ReadFile reads a peak list from a file, picking the format from the
// extension and transparently decompressing ".zst" and ".lz4" suffixes.
// A missing ID is filled with the file name (compression and format
// extensions stripped).
func ReadFile(path string) (*PeakList, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	algo, stripped := compression.ForPath(path)
	data, err = compression.Decompress(data, algo)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}

	p, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if p.ID == "" {
		base := filepath.Base(stripped)
		p.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// WriteFile writes a peak list to a file, picking format and compression
// from the extension the way ReadFile does.
func WriteFile(path string, p *PeakList) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(p, format)
	if err != nil {
		return err
	}

	algo, _ := compression.ForPath(path)
	data, err = compression.Compress(data, algo)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
