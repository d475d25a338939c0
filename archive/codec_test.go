package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecs_RoundTrip(t *testing.T) {
	data := []byte("some moderately repetitive DLIS bytes DLIS bytes DLIS bytes")

	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, data, decompressed)
		})
	}
}

func TestGetCodec_RejectsUnknownType(t *testing.T) {
	_, err := GetCodec(CompressionType(0xFF))
	assert.Error(t, err)
}

func TestCompressionStats_Ratio(t *testing.T) {
	s := CompressionStats{OriginalSize: 100, CompressedSize: 40}
	assert.InDelta(t, 0.4, s.Ratio(), 0.0001)

	assert.Equal(t, float64(0), CompressionStats{}.Ratio())
}

func TestCompress_WritesSidecarWithoutTouchingOriginal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "well.dlis")
	original := []byte("DLIS bytes DLIS bytes DLIS bytes DLIS bytes")
	require.NoError(t, os.WriteFile(path, original, 0o644))

	sidecar, stats, err := Compress(path, CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, path+".zst", sidecar)
	assert.Equal(t, int64(len(original)), stats.OriginalSize)

	gotOriginal, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, gotOriginal)

	roundTripped, err := Decompress(sidecar, CompressionZstd)
	require.NoError(t, err)
	assert.Equal(t, original, roundTripped)
}
