package eflr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_SetType(t *testing.T) {
	assert.Equal(t, "FILE-HEADER", KindFileHeader.SetType())
	assert.Equal(t, "CHANNEL", KindChannel.SetType())
	assert.Equal(t, "WELL-REFERENCE", KindWellReferencePoint.SetType())
}

func TestKind_LogicalRecordType(t *testing.T) {
	assert.Equal(t, uint8(0), KindFileHeader.LogicalRecordType())
	assert.Equal(t, uint8(1), KindOrigin.LogicalRecordType())
	assert.Equal(t, uint8(4), KindFrame.LogicalRecordType())
	assert.Equal(t, uint8(9), KindLongName.LogicalRecordType())
	assert.Equal(t, uint8(5), KindZone.LogicalRecordType())
}
