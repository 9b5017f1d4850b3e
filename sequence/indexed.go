// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/makeiteasy/donor"

// IndexRule computes the value at a zero-based index.
type IndexRule interface {
	ValueAt(index int) (any, error)
}

// IndexFunc adapts a function to IndexRule. A nil IndexFunc yields
// donor.ErrNotImplemented.
type IndexFunc func(index int) (any, error)

// ValueAt calls f.
func (f IndexFunc) ValueAt(index int) (any, error) {
	if f == nil {
		return nil, donor.ErrNotImplemented
	}

	return f(index)
}

// IndexedSequence yields rule.ValueAt(0), rule.ValueAt(1), … on successive
// calls to Value. The counter only advances on success, so a failing index
// is retried by the next call.
type IndexedSequence struct {
	rule  IndexRule
	index int
}

// NewIndexed returns a sequence driven by rule, starting at index 0.
func NewIndexed(rule IndexRule) *IndexedSequence {
	return &IndexedSequence{rule: rule}
}

// Index returns a sequence over an infallible formula.
//
//	Index(func(i int) string { return "f" + strings.Repeat("'", i) })
//	→ "f", "f'", "f''", …
func Index[T any](fn func(index int) T) *IndexedSequence {
	if fn == nil {
		return NewIndexed(nil)
	}

	return NewIndexed(IndexFunc(func(index int) (any, error) {
		return fn(index), nil
	}))
}

// Value returns the value at the current index and advances.
// Complexity: O(1) plus the cost of the rule.
func (s *IndexedSequence) Value() (any, error) {
	if s.rule == nil {
		return nil, donor.ErrNotImplemented
	}
	v, err := s.rule.ValueAt(s.index)
	if err != nil {
		return nil, err
	}
	s.index++

	return v, nil
}

// Index reports the index the next Value call will use.
func (s *IndexedSequence) Index() int {
	return s.index
}
