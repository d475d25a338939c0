package iflr

import (
	"testing"

	"github.com/dlis-toolkit/dliswriter/eflr"
	"github.com/dlis-toolkit/dliswriter/rcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFrame(t *testing.T) *eflr.Frame {
	t.Helper()

	c, err := eflr.NewChannel("C", "c", 1, 0, rcode.FDOUBL, nil)
	require.NoError(t, err)

	f, err := eflr.NewFrame("F", 1, 0, eflr.IndexTime, []*eflr.Channel{c})
	require.NoError(t, err)

	return f
}

func TestEncodeFrameData_MatchesScenarioS1Shape(t *testing.T) {
	f := buildFrame(t)
	counter := NewFrameCounter()

	var got []byte
	for _, sample := range []float64{1.0, 2.0, 3.0} {
		buf, err := EncodeFrameData(nil, f, counter.Next(), [][]any{{sample}})
		require.NoError(t, err)
		got = append(got, buf...)
	}

	var want []byte
	for i, sample := range []float64{1.0, 2.0, 3.0} {
		want, _ = rcode.AppendOBNAME(want, f.ObjectName())
		want, _ = rcode.AppendUVARI(want, uint32(i+1))
		want, _ = rcode.AppendValue(want, rcode.FDOUBL, sample)
	}

	assert.Equal(t, want, got)
}

func TestEncodeFrameData_RejectsWrongChannelCount(t *testing.T) {
	f := buildFrame(t)
	_, err := EncodeFrameData(nil, f, 1, [][]any{{1.0}, {2.0}})
	assert.Error(t, err)
}

func TestEncodeFrameData_RejectsWrongElementCount(t *testing.T) {
	f := buildFrame(t)
	_, err := EncodeFrameData(nil, f, 1, [][]any{{1.0, 2.0}})
	assert.Error(t, err)
}

func TestFrameCounter_StartsAtOneAndIncrements(t *testing.T) {
	c := NewFrameCounter()
	assert.Equal(t, uint32(1), c.Next())
	assert.Equal(t, uint32(2), c.Next())
	assert.Equal(t, uint32(3), c.Next())
}
