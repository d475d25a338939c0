package keyset

import (
	"testing"

	"github.com/dlis-toolkit/dliswriter/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.Empty(t, tracker.Keys())
}

func TestTracker_Add_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"})
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())

	err = tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "GR"})
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []Key{
		{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"},
		{OriginReference: 1, CopyNumber: 0, Name: "GR"},
	}, tracker.Keys())
}

func TestTracker_Add_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"}))

	err := tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"})
	require.ErrorIs(t, err, errs.ErrDuplicateItemKey)
	require.Equal(t, 1, tracker.Count(), "duplicate key must not be added")
}

func TestTracker_Add_SameNameDifferentCopy(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"}))
	require.NoError(t, tracker.Add(Key{OriginReference: 1, CopyNumber: 1, Name: "DEPTH"}))
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Add_SameNameDifferentOrigin(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"}))
	require.NoError(t, tracker.Add(Key{OriginReference: 2, CopyNumber: 0, Name: "DEPTH"}))
	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"}))

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.NoError(t, tracker.Add(Key{OriginReference: 1, CopyNumber: 0, Name: "DEPTH"}), "key should be addable again after reset")
}
