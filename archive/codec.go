// Package archive provides optional compression codecs for archiving a
// finished DLIS file.
//
// RP66 V1 itself has no compression step and this module's writer never
// produces anything but a byte-exact file; archive.Compress instead
// produces a compressed *sidecar* copy of that file for cold storage or
// transport, selectable among four codecs, without ever touching the
// primary artifact.
package archive

import "fmt"

// CompressionType names one of the codecs this package offers.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

// String returns the codec's canonical name.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("CompressionType(%d)", uint8(c))
	}
}

// Compressor compresses a byte slice.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte slice previously produced by the
// matching Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of one sidecar compression.
type CompressionStats struct {
	Algorithm      CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize/OriginalSize (0 if OriginalSize is zero).
func (s CompressionStats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for compressionType.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}
	return nil, fmt.Errorf("archive: unsupported compression type: %s", compressionType)
}
