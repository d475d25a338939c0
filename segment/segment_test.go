package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCut_MinimalRecordYieldsOneSegment(t *testing.T) {
	body := make([]byte, 12)
	segs, err := Cut(body, 8184, 0, true)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	s := segs[0]
	assert.Equal(t, 16, s.Size)
	assert.Equal(t, 16, len(s.Bytes))
	assert.Equal(t, byte(attrEFLR), s.Bytes[2]) // first-and-only: no predecessor, no successor
}

func TestCut_ScenarioS5(t *testing.T) {
	body := make([]byte, 40)
	segs, err := Cut(body, 20, 5, true)
	require.NoError(t, err)
	require.Len(t, segs, 2)

	assert.Equal(t, 24, segs[0].Size)
	assert.Equal(t, 24, segs[1].Size)

	first := segs[0].Bytes[2]
	assert.NotZero(t, first&attrEFLR)
	assert.Zero(t, first&attrHasPredecessor)
	assert.NotZero(t, first&attrHasSuccessor)

	last := segs[1].Bytes[2]
	assert.NotZero(t, last&attrHasPredecessor)
	assert.Zero(t, last&attrHasSuccessor)
}

func TestCut_ScenarioS6_OddBodyPads(t *testing.T) {
	body := make([]byte, 13)
	segs, err := Cut(body, 8184, 0, true)
	require.NoError(t, err)
	require.Len(t, segs, 1)

	s := segs[0]
	assert.Equal(t, 18, s.Size)
	assert.Equal(t, 18, len(s.Bytes))
	assert.NotZero(t, s.Bytes[2]&attrHasPadding)
	assert.Equal(t, byte(paddingByte), s.Bytes[len(s.Bytes)-1])
}

func TestCut_BodiesConcatenateBackToOriginal(t *testing.T) {
	body := make([]byte, 97)
	for i := range body {
		body[i] = byte(i)
	}

	segs, err := Cut(body, 20, 3, false)
	require.NoError(t, err)
	require.True(t, len(segs) > 1)

	var rebuilt []byte
	for _, s := range segs {
		n := int(s.Bytes[0])<<8 | int(s.Bytes[1])
		require.Equal(t, s.Size, n)

		segBody := s.Bytes[headerSize:]
		if s.Bytes[2]&attrHasPadding != 0 {
			segBody = segBody[:len(segBody)-1]
		}
		rebuilt = append(rebuilt, segBody...)

		assert.GreaterOrEqual(t, len(segBody), MinBodySize)
		assert.LessOrEqual(t, len(segBody), 20)
	}

	assert.Equal(t, body, rebuilt)
}

func TestCut_ShortTailBorrowsFromPredecessor(t *testing.T) {
	// 25 bytes at max body 20: naive split is 20+5, tail too short; the
	// preceding segment donates 7 bytes so the last lands on exactly 12.
	body := make([]byte, 25)
	segs, err := Cut(body, 20, 0, true)
	require.NoError(t, err)
	require.Len(t, segs, 2)

	// The 13-byte first body is odd, so its segment carries one pad byte.
	firstPad := int(segs[0].Bytes[2] & attrHasPadding)
	firstBody := len(segs[0].Bytes) - headerSize - firstPad
	lastBody := len(segs[1].Bytes) - headerSize
	assert.Equal(t, MinBodySize, lastBody)
	assert.Equal(t, 25-MinBodySize, firstBody)
}

func TestCut_RejectsRecordShorterThan12Bytes(t *testing.T) {
	_, err := Cut(make([]byte, 5), 20, 0, true)
	assert.Error(t, err)
}

func TestCut_RejectsMaxBodyBelowMinimum(t *testing.T) {
	_, err := Cut(make([]byte, 20), 8, 0, true)
	assert.Error(t, err)
}

func TestCut_UnsegmentableWhenMaxBodyForcesSubMinimumChunk(t *testing.T) {
	// max body size exactly at the 12-byte floor: any non-multiple-of-12
	// total cannot be split without a sub-12-byte segment anywhere.
	_, err := Cut(make([]byte, 25), 12, 0, true)
	assert.Error(t, err)
}
