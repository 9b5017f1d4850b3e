// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"strconv"
	"strings"
)

// letterCount is the size of the uppercase Latin alphabet used by Letter and
// ExcelColumn.
const letterCount = 26

// Decimal returns the decimal string of index, e.g. 0→"0", 42→"42".
func Decimal(index int) string {
	return strconv.Itoa(index)
}

// Base36 returns index in base 36, e.g. 10→"a", 35→"z", 36→"10".
func Base36(index int) string {
	return strconv.FormatInt(int64(index), 36)
}

// Hex returns index in lowercase hexadecimal, e.g. 10→"a", 255→"ff".
func Hex(index int) string {
	return strconv.FormatInt(int64(index), 16)
}

// ExcelColumn returns the spreadsheet column name for index:
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
// Complexity: O(log₂₆ index).
func ExcelColumn(index int) string {
	var runes []rune
	for i := index; i >= 0; i = i/letterCount - 1 {
		runes = append(runes, rune('A'+(i%letterCount)))
	}
	// built least significant first
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// Letter returns the uppercase letter for index in [0,25].
// Any other index reports ErrIndexOutOfRange.
func Letter(index int) (string, error) {
	if index < 0 || index >= letterCount {
		return "", fmt.Errorf("Letter: index must be in [0,%d], got %d: %w", letterCount-1, index, ErrIndexOutOfRange)
	}

	return string(rune('A' + index)), nil
}

// Letters returns a sequence "A", "B", …, "Z", failing with
// ErrIndexOutOfRange afterwards.
func Letters() *IndexedSequence {
	return NewIndexed(IndexFunc(func(index int) (any, error) {
		l, err := Letter(index)
		if err != nil {
			return nil, err
		}
		return l, nil
	}))
}

// Prefixed returns a formula producing prefix + decimal index,
// e.g. Prefixed("user") → "user0", "user1", ….
func Prefixed(prefix string) func(index int) string {
	return func(index int) string {
		return prefix + strconv.Itoa(index)
	}
}

// Primed returns a formula producing base followed by index prime marks,
// e.g. Primed("f") → "f", "f'", "f''", ….
func Primed(base string) func(index int) string {
	return func(index int) string {
		return base + strings.Repeat("'", index)
	}
}
