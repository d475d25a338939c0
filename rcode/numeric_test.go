package rcode

import (
	"testing"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSHORT_RoundTrip(t *testing.T) {
	for _, v := range []int16{0, 1, -1, 32767, -32768} {
		buf := AppendFSHORT(nil, v)
		require.Len(t, buf, 2)
		got, err := DecodeFSHORT(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFSINGL_RoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1.5, -3.25, 3.14159} {
		buf := AppendFSINGL(nil, v)
		got, err := DecodeFSINGL(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFDOUBL_RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.5, -3.25, 2.718281828} {
		buf := AppendFDOUBL(nil, v)
		got, err := DecodeFDOUBL(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSSHORT_RoundTrip(t *testing.T) {
	for _, v := range []int8{0, 1, -1, 127, -128} {
		buf := AppendSSHORT(nil, v)
		got, err := DecodeSSHORT(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSNORM_RoundTrip(t *testing.T) {
	buf := AppendSNORM(nil, -1000)
	got, err := DecodeSNORM(buf)
	require.NoError(t, err)
	assert.Equal(t, int16(-1000), got)
}

func TestSLONG_RoundTrip(t *testing.T) {
	buf := AppendSLONG(nil, -123456)
	got, err := DecodeSLONG(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(-123456), got)
}

func TestUSHORT_RoundTrip(t *testing.T) {
	buf := AppendUSHORT(nil, 200)
	got, err := DecodeUSHORT(buf)
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got)
}

func TestUNORM_RoundTrip(t *testing.T) {
	buf := AppendUNORM(nil, 60000)
	got, err := DecodeUNORM(buf)
	require.NoError(t, err)
	assert.Equal(t, uint16(60000), got)
}

func TestULONG_RoundTrip(t *testing.T) {
	buf := AppendULONG(nil, 4000000000)
	got, err := DecodeULONG(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(4000000000), got)
}

func TestSTATUS_RoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		buf := AppendSTATUS(nil, v)
		got, err := DecodeSTATUS(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSTATUS_InvalidValue(t *testing.T) {
	_, err := DecodeSTATUS([]byte{2})
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
}

func TestDecode_TruncatedInput(t *testing.T) {
	_, err := DecodeFSHORT([]byte{1})
	assert.Error(t, err)
	_, err = DecodeULONG([]byte{1, 2})
	assert.Error(t, err)
}
