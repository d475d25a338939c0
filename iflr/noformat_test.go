package iflr

import (
	"testing"

	"github.com/dlis-toolkit/dliswriter/eflr"
	"github.com/dlis-toolkit/dliswriter/rcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeNoFormat_PadsShortBodyTo12Bytes(t *testing.T) {
	item := eflr.NewItem(eflr.KindNoFormat, "BLOB", 1, 0)

	buf, err := EncodeNoFormat(nil, item, []byte("hi"))
	require.NoError(t, err)

	obnameLen, err := objectNameLen(item)
	require.NoError(t, err)

	require.Less(t, obnameLen+len("hi"), minBodySize)
	assert.Equal(t, minBodySize, len(buf))
	assert.Equal(t, byte(0x01), buf[len(buf)-1])
}

func TestEncodeNoFormat_LeavesLongBodyUnpadded(t *testing.T) {
	item := eflr.NewItem(eflr.KindNoFormat, "BLOB", 1, 0)
	data := make([]byte, 40)

	buf, err := EncodeNoFormat(nil, item, data)
	require.NoError(t, err)

	obnameLen, err := objectNameLen(item)
	require.NoError(t, err)

	assert.Equal(t, obnameLen+40, len(buf))
}

func objectNameLen(item *eflr.Item) (int, error) {
	buf, err := rcode.AppendOBNAME(nil, item.ObjectName())
	return len(buf), err
}
