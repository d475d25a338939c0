package rcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_String(t *testing.T) {
	assert.Equal(t, "FSHORT", FSHORT.String())
	assert.Equal(t, "STATUS", STATUS.String())
	assert.Equal(t, "UNKNOWN", Code(99).String())
}

func TestCode_Valid(t *testing.T) {
	assert.True(t, FDOUBL.Valid())
	assert.False(t, Code(0).Valid())
	assert.False(t, Code(27).Valid())
}

func TestWidth(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{FSHORT, 2}, {FSINGL, 4}, {FSING1, 8}, {FSING2, 12},
		{FDOUBL, 8}, {FDOUB1, 16}, {FDOUB2, 24},
		{SSHORT, 1}, {SNORM, 2}, {SLONG, 4},
		{USHORT, 1}, {UNORM, 2}, {ULONG, 4},
		{DTIME, 8}, {STATUS, 1},
		{UVARI, -1}, {IDENT, -1}, {ASCII, -1},
		{OBNAME, -1}, {OBJREF, -1},
		{ORIGIN, -1}, {ATTREF, -1},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.code))
		})
	}
}

func TestIsVariableLength(t *testing.T) {
	assert.True(t, IsVariableLength(UVARI))
	assert.True(t, IsVariableLength(IDENT))
	assert.True(t, IsVariableLength(ASCII))
	assert.True(t, IsVariableLength(OBNAME))
	assert.True(t, IsVariableLength(OBJREF))
	assert.False(t, IsVariableLength(ULONG))
	assert.False(t, IsVariableLength(DTIME))
}
