// SPDX-License-Identifier: MIT

package sequence

// ElementsSequence pulls elements from a finite slice, one per Value call.
// When the current pass is consumed it restarts from the replenishment slice;
// with no replenishment it fails with ErrExhausted.
type ElementsSequence struct {
	current   []any
	pos       int
	replenish []any
}

// From returns a one-shot sequence over items. Once every item has been
// handed out, each further Value call returns ErrExhausted.
// The items are copied; later changes to the caller's slice are not seen.
func From[T any](items ...T) *ElementsSequence {
	return &ElementsSequence{current: toAny(items)}
}

// FromRepeating returns a sequence cycling through items forever.
// An empty items list behaves like an exhausted From.
func FromRepeating[T any](items ...T) *ElementsSequence {
	src := toAny(items)

	return &ElementsSequence{current: src, replenish: src}
}

// Value returns the next element.
// Complexity: O(1).
func (s *ElementsSequence) Value() (any, error) {
	if s.pos >= len(s.current) {
		if len(s.replenish) == 0 {
			return nil, ErrExhausted
		}
		s.current, s.pos = s.replenish, 0
	}
	v := s.current[s.pos]
	s.pos++

	return v, nil
}

// Remaining reports how many elements are left in the current pass.
func (s *ElementsSequence) Remaining() int {
	return len(s.current) - s.pos
}

// Runes splits s into one string per character, so that
// From(Runes("ab")...) yields "a", then "b".
func Runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}

	return out
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, v := range items {
		out[i] = v
	}

	return out
}
