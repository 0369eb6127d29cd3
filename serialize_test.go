package wumanber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	original, err := New(pats("he", "she", "his", "hers"), &Options{NoCase: true, Name: "rt"})
	require.NoError(t, err)

	data, err := original.MarshalBinary()
	require.NoError(t, err)

	var restored Matcher
	require.NoError(t, restored.UnmarshalBinary(data))

	assert.Equal(t, original.NumPatterns(), restored.NumPatterns())
	assert.Equal(t, original.NoCase(), restored.NoCase())
	assert.Equal(t, original.ShortestPatternLen(), restored.ShortestPatternLen())

	want := collect(original, []byte("USHERS"))
	got := collect(&restored, []byte("USHERS"))
	assert.ElementsMatch(t, want, got)
}

func TestUnmarshalBinaryRejectsBadMagic(t *testing.T) {
	var m Matcher
	err := m.UnmarshalBinary([]byte("not a matcher"))
	assert.Error(t, err)
}

func TestUnmarshalBinaryRejectsTruncatedInput(t *testing.T) {
	original, err := New(pats("he", "she"), nil)
	require.NoError(t, err)

	data, err := original.MarshalBinary()
	require.NoError(t, err)

	var m Matcher
	err = m.UnmarshalBinary(data[:len(data)-2])
	assert.ErrorIs(t, err, ErrTruncated)
}
