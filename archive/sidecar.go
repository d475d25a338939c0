package archive

import (
	"fmt"
	"os"
)

// Extension returns the filename suffix Compress appends for
// compressionType.
func Extension(compressionType CompressionType) string {
	switch compressionType {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ".raw"
	}
}

// Compress reads the finished DLIS file at path and writes a compressed
// sidecar at path+Extension(compressionType). path itself is never
// opened for writing.
func Compress(path string, compressionType CompressionType) (string, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return "", CompressionStats{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", CompressionStats{}, fmt.Errorf("archive: reading %q: %w", path, err)
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return "", CompressionStats{}, fmt.Errorf("archive: compressing %q: %w", path, err)
	}

	sidecar := path + Extension(compressionType)
	if err := os.WriteFile(sidecar, compressed, 0o644); err != nil {
		return "", CompressionStats{}, fmt.Errorf("archive: writing %q: %w", sidecar, err)
	}

	stats := CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}

	return sidecar, stats, nil
}

// Decompress reads a sidecar previously produced by Compress and returns
// the original file contents.
func Decompress(sidecarPath string, compressionType CompressionType) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return nil, fmt.Errorf("archive: reading %q: %w", sidecarPath, err)
	}

	return codec.Decompress(data)
}
