package visible

import (
	"strings"
	"testing"

	"github.com/dlis-toolkit/dliswriter/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLength_RejectsOutOfRangeAndOdd(t *testing.T) {
	assert.Error(t, ValidateLength(10))
	assert.Error(t, ValidateLength(16386))
	assert.Error(t, ValidateLength(21))
	assert.NoError(t, ValidateLength(20))
	assert.NoError(t, ValidateLength(16384))
}

func TestSegmentBudget_IsVRLMinus8(t *testing.T) {
	budget, err := SegmentBudget(8192)
	require.NoError(t, err)
	assert.Equal(t, 8184, budget)
}

func TestPacker_SingleSegmentFitsOneVR(t *testing.T) {
	p, err := NewPacker(8192)
	require.NoError(t, err)

	segs, err := segment.Cut(make([]byte, 12), 8184, 0, true)
	require.NoError(t, err)

	flushed := p.Add(segs[0])
	assert.Nil(t, flushed)

	vr := p.Flush()
	require.NotNil(t, vr)
	assert.Equal(t, 4+16, len(vr))
	assert.Equal(t, byte(0xFF), vr[2])
	assert.Equal(t, byte(0x01), vr[3])

	total := int(vr[0])<<8 | int(vr[1])
	assert.Equal(t, len(vr), total)
}

func TestPacker_FlushesWhenNextSegmentWouldNotFit(t *testing.T) {
	p, err := NewPacker(20) // budget = vrl-4 = 16 bytes of segments per VR
	require.NoError(t, err)

	segs, err := segment.Cut(make([]byte, 12), 12, 0, true) // one 16-byte segment
	require.NoError(t, err)

	first := p.Add(segs[0])
	assert.Nil(t, first)

	flushed := p.Add(segs[0])
	require.NotNil(t, flushed)
	assert.Equal(t, 20, len(flushed))

	last := p.Flush()
	require.NotNil(t, last)
	assert.Equal(t, 20, len(last))
}

func TestStorageUnitLabel_EncodesFixed80Bytes(t *testing.T) {
	sul, err := NewStorageUnitLabel("Default Storage Set", 1, 8192)
	require.NoError(t, err)

	buf, err := sul.Encode(nil)
	require.NoError(t, err)

	require.Equal(t, SULLength, len(buf))
	assert.Equal(t, "   1", string(buf[0:4]))
	assert.Equal(t, "V1.00", string(buf[4:9]))
	assert.Equal(t, "RECORD", string(buf[9:15]))
	assert.Equal(t, " 8192", string(buf[15:20]))
	assert.Equal(t, "Default Storage Set"+strings.Repeat(" ", 40), string(buf[20:80]))
}

func TestStorageUnitLabel_RejectsOversizedIdentifier(t *testing.T) {
	_, err := NewStorageUnitLabel(string(make([]byte, 61)), 1, 8192)
	assert.Error(t, err)
}

func TestStorageUnitLabel_RejectsInvalidMaxRecordLength(t *testing.T) {
	_, err := NewStorageUnitLabel("x", 1, 7)
	assert.Error(t, err)
}
