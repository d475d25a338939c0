package rcode

import (
	"testing"
	"time"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDTIME_RoundTrip(t *testing.T) {
	tm := time.Date(2024, time.March, 15, 13, 45, 30, 250*1e6, time.UTC)

	buf, err := AppendDTIME(nil, tm)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	got, err := DecodeDTIME(buf)
	require.NoError(t, err)
	assert.True(t, tm.Equal(got))
}

func TestDTIME_OutOfRange(t *testing.T) {
	_, err := AppendDTIME(nil, time.Date(1899, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, errs.ErrDateOutOfRange)

	_, err = AppendDTIME(nil, time.Date(2156, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, errs.ErrDateOutOfRange)
}

func TestDTIME_Truncated(t *testing.T) {
	_, err := DecodeDTIME([]byte{1, 2, 3})
	assert.ErrorIs(t, err, errs.ErrTruncatedInput)
}

// Scenario S3: 1987-04-19 21:20:15.620 local standard time.
func TestDTIME_ScenarioS3(t *testing.T) {
	tm := time.Date(1987, time.April, 19, 21, 20, 15, 620*1e6, time.UTC)

	buf, err := AppendDTIME(nil, tm)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x57, 0x14, 0x13, 0x15, 0x14, 0x0F, 0x02, 0x6C}, buf)

	got, tz, err := DecodeDTIMEWithZone(buf)
	require.NoError(t, err)
	assert.True(t, tm.Equal(got))
	assert.Equal(t, TZLocalStandard, tz)
}
