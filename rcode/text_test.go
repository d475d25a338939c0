package rcode

import (
	"strings"
	"testing"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDENT_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "DEPTH", "CHANNEL-1"} {
		buf, err := AppendIDENT(nil, s)
		require.NoError(t, err)

		got, n, err := DecodeIDENT(buf)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestIDENT_NonASCII(t *testing.T) {
	_, err := AppendIDENT(nil, "dépth")
	assert.ErrorIs(t, err, errs.ErrNonASCIIString)
}

func TestIDENT_TooLong(t *testing.T) {
	_, err := AppendIDENT(nil, strings.Repeat("x", 256))
	assert.ErrorIs(t, err, errs.ErrStringTooLong)
}

func TestASCII_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "a comment", strings.Repeat("x", 300)} {
		buf, err := AppendASCII(nil, s)
		require.NoError(t, err)

		got, n, err := DecodeASCII(buf)
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.Equal(t, len(buf), n)
	}
}

func TestASCII_NonASCII(t *testing.T) {
	_, err := AppendASCII(nil, "non-ascii: \xC3\x28")
	assert.ErrorIs(t, err, errs.ErrNonASCIIString)
}
