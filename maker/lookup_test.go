package maker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/makeiteasy/donor"
	"github.com/katalvlaran/makeiteasy/maker"
)

// TestLookup_OrderAndOverride verifies declaration order survives overrides.
func TestLookup_OrderAndOverride(t *testing.T) {
	t.Parallel()

	l := maker.NewLookup(
		maker.With(1, "b"),
		maker.With(2, "a"),
		maker.With(3, "b"),
	)
	assert.Equal(t, []string{"b", "a"}, l.Names())
	assert.Equal(t, 2, l.Len())

	v, err := l.Value("b")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

// TestLookup_GetAndValue covers defaults and unknown names.
func TestLookup_GetAndValue(t *testing.T) {
	t.Parallel()

	l := maker.NewLookup(maker.With("x", "present"))

	v, err := l.Get("present", "def")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = l.Get("absent", "def")
	require.NoError(t, err)
	assert.Equal(t, "def", v)

	_, err = l.Value("absent")
	assert.ErrorIs(t, err, maker.ErrUnknownProperty)

	d, ok := l.Donor("present")
	require.True(t, ok)
	assert.IsType(t, &donor.SameValue{}, d)
	assert.True(t, l.Has("present"))
	assert.False(t, l.Has("absent"))
}

// TestLookup_ZeroValue verifies an unconstructed Lookup accepts writes and a
// nil donor reads back as nil.
func TestLookup_ZeroValue(t *testing.T) {
	t.Parallel()

	var l maker.Lookup
	l.Set("n", nil)

	args, err := l.Resolve()
	require.NoError(t, err)
	assert.True(t, args.Has("n"))
	assert.Nil(t, args["n"])
}

// TestLookup_UpdateAndClone verifies layering and copy independence.
func TestLookup_UpdateAndClone(t *testing.T) {
	t.Parallel()

	base := maker.NewLookup(maker.With(1, "a"), maker.With(2, "b"))
	clone := base.Clone()
	clone.Update(maker.NewLookup(maker.With(20, "b"), maker.With(30, "c")))
	clone.Update(nil)

	assert.Equal(t, []string{"a", "b"}, base.Names())
	assert.Equal(t, []string{"a", "b", "c"}, clone.Names())

	baseArgs, err := base.Resolve()
	require.NoError(t, err)
	assert.Equal(t, maker.Args{"a": 1, "b": 2}, baseArgs)

	cloneArgs, err := clone.Resolve()
	require.NoError(t, err)
	assert.Equal(t, maker.Args{"a": 1, "b": 20, "c": 30}, cloneArgs)

	names := base.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, base.Names(), "Names must return a copy")
}
