package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultVisibleRecordLength, cfg.VisibleRecordLength)
	assert.Equal(t, int64(DefaultOutputChunkSize), cfg.OutputChunkSize)
	assert.False(t, cfg.HighCompatibilityMode)
}

func TestNewConfig_WithVisibleRecordLength_RejectsInvalid(t *testing.T) {
	_, err := NewConfig(WithVisibleRecordLength(21))
	assert.Error(t, err)

	cfg, err := NewConfig(WithVisibleRecordLength(4096))
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.VisibleRecordLength)
}

func TestNewConfig_WithHighCompatibilityMode(t *testing.T) {
	cfg, err := NewConfig(WithHighCompatibilityMode())
	require.NoError(t, err)
	assert.True(t, cfg.HighCompatibilityMode)
}

func TestFileSetNumberAllocator_StartsAtOneAndIncrements(t *testing.T) {
	a := NewFileSetNumberAllocator()
	assert.Equal(t, uint32(1), a.Next())
	assert.Equal(t, uint32(2), a.Next())
}
