package eflr

import (
	"testing"
	"time"

	"github.com/dlis-toolkit/dliswriter/rcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileHeader_PadsFixedWidth(t *testing.T) {
	fh, err := NewFileHeader("EXAMPLE.DLIS", 1)
	require.NoError(t, err)

	seq, ok := fh.Attribute("SEQUENCE-NUMBER")
	require.True(t, ok)
	seqValue := seq.Value.(string)
	assert.Equal(t, fileHeaderSequenceWidth, len(seqValue))
	assert.Equal(t, "1", seqValue[:1])
	assert.Equal(t, " ", seqValue[1:2])

	id, ok := fh.Attribute("ID")
	require.True(t, ok)
	idValue := id.Value.(string)
	assert.Equal(t, fileHeaderIDWidth, len(idValue))
	assert.Equal(t, "EXAMPLE.DLIS", idValue[fileHeaderIDWidth-len("EXAMPLE.DLIS"):])
	assert.Equal(t, "0", fh.Name)
}

func TestNewFileHeader_RejectsOversizedID(t *testing.T) {
	long := make([]byte, fileHeaderIDWidth+1)
	for i := range long {
		long[i] = 'A'
	}
	_, err := NewFileHeader(string(long), 1)
	assert.Error(t, err)
}

func TestNewOrigin_SelfReferencesFileSetNumber(t *testing.T) {
	o, err := NewOrigin("DEFAULT", 0, 42, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), o.OriginReference)

	fsn, ok := o.Attribute("FILE-SET-NUMBER")
	require.True(t, ok)
	assert.Equal(t, uint32(42), fsn.Value)
}

func TestNewChannel_DefaultsToScalarDimension(t *testing.T) {
	c, err := NewChannel("DEPTH", "depth_col", 1, 0, rcode.FDOUBL, nil)
	require.NoError(t, err)

	dim, ok := c.Attribute("DIMENSION")
	require.True(t, ok)
	assert.Equal(t, []uint32{1}, dim.Value)
	assert.Equal(t, "depth_col", c.DatasetName)
}

func TestNewFrame_RequiresChannels(t *testing.T) {
	_, err := NewFrame("MAIN", 1, 0, IndexBoreholeDepth, nil)
	assert.Error(t, err)
}

func TestNewFrame_ReferencesChannelsByOBNAME(t *testing.T) {
	idx, err := NewChannel("DEPTH", "depth", 1, 0, rcode.FDOUBL, nil)
	require.NoError(t, err)
	gr, err := NewChannel("GR", "gr", 1, 0, rcode.FDOUBL, nil)
	require.NoError(t, err)

	f, err := NewFrame("MAIN", 1, 0, IndexBoreholeDepth, []*Channel{idx, gr})
	require.NoError(t, err)

	chAttr, ok := f.Attribute("CHANNELS")
	require.True(t, ok)
	refs := chAttr.Value.([]rcode.ObjectName)
	require.Len(t, refs, 2)
	assert.Equal(t, "DEPTH", refs[0].Name)
	assert.Equal(t, "GR", refs[1].Name)

	require.NoError(t, f.SetSpacing(0.5, "m"))
	require.NoError(t, f.SetIndexRange(0, 100))
}
