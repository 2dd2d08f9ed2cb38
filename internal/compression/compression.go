// Package compression provides framed block compression for stored peak
// list and alignment result files.
//
// Frames produced by Compress start with an 8 byte header holding the raw
// and compressed payload sizes. Payloads that compression cannot shrink are
// stored raw inside the frame, so Decompress never inflates data.
package compression

import (
	"encoding/binary"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm selects the compression codec for stored files.
type Algorithm uint8

const (
	// None stores the payload unframed and untouched.
	None Algorithm = 0
	// LZ4 is block compression tuned for speed.
	LZ4 Algorithm = 1
	// Zstd trades some speed for a better ratio.
	Zstd Algorithm = 2
)

// String implements the fmt.Stringer interface.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a name such as "zstd" to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zst", "zstd":
		return Zstd, nil
	default:
		return None, fmt.Errorf("unknown compression algorithm %q", s)
	}
}

// ForPath reports the algorithm implied by the file extension and the path
// with the compression extension stripped, so "peaks.csv.zst" yields Zstd
// and "peaks.csv". Paths without a known extension come back unchanged.
func ForPath(path string) (Algorithm, string) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".zst", ".zstd":
		return Zstd, strings.TrimSuffix(path, ext)
	case ".lz4":
		return LZ4, strings.TrimSuffix(path, ext)
	default:
		return None, path
	}
}

// Frame header layout: raw size then compressed size, both little endian
// uint32. A compressed size of zero marks a raw payload.
const headerSize = 8

var (
	errFrameShort     = errors.New("frame shorter than header")
	errFrameTruncated = errors.New("frame truncated")
	errSizeMismatch   = errors.New("decompressed size mismatch")
)

// Pools for reusing zstd encoder and decoder instances across calls.
var (
	zstdEncoders sync.Pool
	zstdDecoders sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoders.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	// SpeedDefault is zstd level 3.
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoders.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoders.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoders.Put(dec)
}

// Compress frames and compresses data with the given algorithm. None
// returns the input unchanged. If compression does not shrink the payload
// below 90% of its raw size, the frame stores the raw bytes instead.
func Compress(data []byte, algo Algorithm) ([]byte, error) {
	if algo == None {
		return data, nil
	}

	var compressed []byte
	switch algo {
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		// n == 0 means incompressible
		compressed = buf[:n]
	case Zstd:
		enc := getZstdEncoder()
		defer putZstdEncoder(enc)
		compressed = enc.EncodeAll(data, nil)
	default:
		return nil, fmt.Errorf("unknown compression algorithm %q", algo)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		frame := make([]byte, headerSize+len(data))
		binary.LittleEndian.PutUint32(frame[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(frame[4:], 0)
		copy(frame[headerSize:], data)
		return frame, nil
	}

	frame := make([]byte, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(frame[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(frame[4:], uint32(len(compressed)))
	copy(frame[headerSize:], compressed)
	return frame, nil
}

// Decompress reverses Compress. The algorithm must match the one that
// produced the frame.
func Decompress(data []byte, algo Algorithm) ([]byte, error) {
	if algo == None {
		return data, nil
	}
	if len(data) < headerSize {
		return nil, errFrameShort
	}

	rawSize := int(binary.LittleEndian.Uint32(data[0:]))
	compSize := int(binary.LittleEndian.Uint32(data[4:]))

	if compSize == 0 {
		if len(data)-headerSize < rawSize {
			return nil, errFrameTruncated
		}
		return data[headerSize : headerSize+rawSize], nil
	}

	if len(data)-headerSize < compSize {
		return nil, errFrameTruncated
	}
	payload := data[headerSize : headerSize+compSize]

	switch algo {
	case LZ4:
		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, err
		}
		if n != rawSize {
			return nil, errSizeMismatch
		}
		return out, nil
	case Zstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)
		out, err := dec.DecodeAll(payload, make([]byte, 0, rawSize))
		if err != nil {
			return nil, err
		}
		if len(out) != rawSize {
			return nil, errSizeMismatch
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown compression algorithm %q", algo)
	}
}
