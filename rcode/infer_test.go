package rcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		value any
		want  Code
	}{
		{true, STATUS},
		{int8(1), SSHORT},
		{int16(1), SNORM},
		{int32(1), SLONG},
		{int(1), SLONG},
		{uint8(1), USHORT},
		{uint16(1), UNORM},
		{uint32(1), ULONG},
		{float32(1), FSINGL},
		{float64(1), FDOUBL},
		{"x", ASCII},
		{time.Now(), DTIME},
		{ObjectName{}, OBNAME},
		{ObjectReference{}, OBJREF},
	}
	for _, tt := range tests {
		got, err := Infer(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestInfer_Unknown(t *testing.T) {
	_, err := Infer(struct{}{})
	assert.Error(t, err)
}

func TestCompatibleWith(t *testing.T) {
	assert.True(t, CompatibleWith(STATUS, true))
	assert.False(t, CompatibleWith(STATUS, 1))
	assert.True(t, CompatibleWith(ASCII, "x"))
	assert.True(t, CompatibleWith(IDENT, "x"))
	assert.True(t, CompatibleWith(ULONG, uint32(1)))
	assert.False(t, CompatibleWith(ULONG, int32(1)))
	assert.True(t, CompatibleWith(OBNAME, ObjectName{}))
	assert.False(t, CompatibleWith(Code(200), "x"))
}
