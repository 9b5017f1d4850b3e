package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/makeiteasy/sequence"
)

// TestFrom yields the elements in order.
func TestFrom(t *testing.T) {
	t.Parallel()

	letters := sequence.From(sequence.Runes("abc")...)
	assert.Equal(t, []any{"a", "b", "c"}, drain(t, letters, 3))
}

// TestFrom_ExhaustedIsAHardFailure checks the one-shot sequence keeps
// failing once consumed.
func TestFrom_ExhaustedIsAHardFailure(t *testing.T) {
	t.Parallel()

	letters := sequence.From(sequence.Runes("ab")...)
	assert.Equal(t, []any{"a", "b"}, drain(t, letters, 2))
	assert.Equal(t, 0, letters.Remaining())

	_, err := letters.Value()
	require.ErrorIs(t, err, sequence.ErrExhausted)
	_, err = letters.Value()
	require.ErrorIs(t, err, sequence.ErrExhausted)
}

// TestFromRepeating cycles through the source indefinitely.
func TestFromRepeating(t *testing.T) {
	t.Parallel()

	letters := sequence.FromRepeating(sequence.Runes("ab")...)
	assert.Equal(t, []any{"a", "b", "a", "b", "a", "b"}, drain(t, letters, 6))
	assert.Equal(t, 0, letters.Remaining())
}

// TestElements_EdgeCases covers empty sources and source copying.
func TestElements_EdgeCases(t *testing.T) {
	t.Parallel()

	_, err := sequence.From[int]().Value()
	require.ErrorIs(t, err, sequence.ErrExhausted)

	_, err = sequence.FromRepeating[int]().Value()
	require.ErrorIs(t, err, sequence.ErrExhausted)

	src := []int{1, 2}
	seq := sequence.From(src...)
	src[0] = 99
	v, err := seq.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, seq.Remaining())
}

// TestRunes splits multi-byte strings per character.
func TestRunes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"h", "é", "!"}, sequence.Runes("hé!"))
	assert.Empty(t, sequence.Runes(""))
}
