package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/makeiteasy/sequence"
)

// TestFormulas verifies each index formula on representative indices.
func TestFormulas(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    func(int) string
		input int
		want  string
	}{
		{"Decimal_zero", sequence.Decimal, 0, "0"},
		{"Decimal_multi", sequence.Decimal, 123, "123"},

		{"Base36_zero", sequence.Base36, 0, "0"},
		{"Base36_low", sequence.Base36, 10, "a"},
		{"Base36_high", sequence.Base36, 35, "z"},
		{"Base36_wrap", sequence.Base36, 36, "10"},

		{"ExcelColumn_zero", sequence.ExcelColumn, 0, "A"},
		{"ExcelColumn_endSingle", sequence.ExcelColumn, 25, "Z"},
		{"ExcelColumn_startDouble", sequence.ExcelColumn, 26, "AA"},
		{"ExcelColumn_AB", sequence.ExcelColumn, 27, "AB"},
		{"ExcelColumn_ZZ", sequence.ExcelColumn, 701, "ZZ"},
		{"ExcelColumn_AAA", sequence.ExcelColumn, 702, "AAA"},

		{"Hex_zero", sequence.Hex, 0, "0"},
		{"Hex_ten", sequence.Hex, 10, "a"},
		{"Hex_ff", sequence.Hex, 255, "ff"},

		{"Prefixed_user0", sequence.Prefixed("user"), 0, "user0"},
		{"Prefixed_v12", sequence.Prefixed("v"), 12, "v12"},

		{"Primed_zero", sequence.Primed("f"), 0, "f"},
		{"Primed_two", sequence.Primed("f"), 2, "f''"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestLetter covers the bounded alphabet formula.
func TestLetter(t *testing.T) {
	t.Parallel()

	got, err := sequence.Letter(0)
	require.NoError(t, err)
	assert.Equal(t, "A", got)

	got, err = sequence.Letter(25)
	require.NoError(t, err)
	assert.Equal(t, "Z", got)

	for _, bad := range []int{-1, 26} {
		_, err = sequence.Letter(bad)
		assert.ErrorIs(t, err, sequence.ErrIndexOutOfRange, "index %d", bad)
	}
}

// TestLetters walks the whole alphabet and then fails.
func TestLetters(t *testing.T) {
	t.Parallel()

	seq := sequence.Letters()
	all := drain(t, seq, 26)
	assert.Equal(t, "A", all[0])
	assert.Equal(t, "Z", all[25])

	_, err := seq.Value()
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	assert.Equal(t, 26, seq.Index())
}
