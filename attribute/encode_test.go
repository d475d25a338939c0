package attribute

import (
	"testing"
	"time"

	"github.com/dlis-toolkit/dliswriter/rcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectName() rcode.ObjectName {
	return rcode.ObjectName{OriginReference: 1, CopyNumber: 0, Name: "C"}
}

func TestAppendTemplateRow_WithLabel(t *testing.T) {
	a, err := New("DEPTH", nil)
	require.NoError(t, err)

	buf, err := AppendTemplateRow(nil, a)
	require.NoError(t, err)
	assert.Equal(t, byte(0x30), buf[0])

	row, n, err := DecodeTemplateRow(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, "DEPTH", row.Label)
}

func TestAppendTemplateRow_NoLabel(t *testing.T) {
	a := &Attribute{}
	buf, err := AppendTemplateRow(nil, a)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20}, buf)
}

func TestAppendTemplateRow_WithLabelAndCode(t *testing.T) {
	a := &Attribute{Label: "SEQUENCE-NUMBER", Code: rcode.ASCII}
	buf, err := AppendTemplateRow(nil, a)
	require.NoError(t, err)
	assert.Equal(t, byte(0x34), buf[0])

	row, n, err := DecodeTemplateRow(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, "SEQUENCE-NUMBER", row.Label)
	assert.Equal(t, rcode.ASCII, row.Code)
}

func TestAppendItemRow_Absent(t *testing.T) {
	a := &Attribute{}
	buf, err := AppendItemRow(nil, a)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, buf)

	row, n, err := DecodeItemRow(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, row.Absent)
}

func TestAppendItemRow_ScalarRoundTrip(t *testing.T) {
	a, err := New("VALUE", float64(3.25))
	require.NoError(t, err)

	buf, err := AppendItemRow(nil, a)
	require.NoError(t, err)

	row, n, err := DecodeItemRow(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	require.Len(t, row.Values, 1)
	assert.Equal(t, float64(3.25), row.Values[0])
	assert.Equal(t, a.Code, row.Code)
}

func TestAppendItemRow_ListRoundTrip(t *testing.T) {
	a, err := New("SAMPLES", []float64{1, 2, 3}, WithUnits("m"))
	require.NoError(t, err)

	buf, err := AppendItemRow(nil, a)
	require.NoError(t, err)

	row, n, err := DecodeItemRow(buf)
	require.NoError(t, err)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, "m", row.Units)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, row.Values)
}

func TestAppendItemRow_NestedListFlattensRowMajor(t *testing.T) {
	a, err := New("MATRIX", [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	buf, err := AppendItemRow(nil, a)
	require.NoError(t, err)

	row, _, err := DecodeItemRow(buf)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, row.Values)
}

func TestAppendItemRow_DTIME(t *testing.T) {
	tm := time.Date(2024, time.March, 15, 13, 45, 30, 250*1e6, time.UTC)
	a, err := New("CREATION-TIME", tm)
	require.NoError(t, err)

	buf, err := AppendItemRow(nil, a)
	require.NoError(t, err)

	row, _, err := DecodeItemRow(buf)
	require.NoError(t, err)
	require.Len(t, row.Values, 1)
	assert.True(t, tm.Equal(row.Values[0].(time.Time)))
}

func TestAppendItemRow_OBNAME(t *testing.T) {
	a, err := New("REFERENCE", objectName())
	require.NoError(t, err)

	buf, err := AppendItemRow(nil, a)
	require.NoError(t, err)

	row, _, err := DecodeItemRow(buf)
	require.NoError(t, err)
	assert.Equal(t, objectName(), row.Values[0])
}
