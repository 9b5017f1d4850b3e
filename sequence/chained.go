// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/makeiteasy/donor"

// ChainRule defines a recurrence: a seed value and a successor function.
type ChainRule interface {
	// First returns the value of the first access.
	First() (any, error)
	// After returns the value following prev.
	After(prev any) (any, error)
}

// ChainFuncs adapts a pair of functions to ChainRule. A missing function
// yields donor.ErrNotImplemented when it is needed.
type ChainFuncs struct {
	FirstFn func() (any, error)
	AfterFn func(prev any) (any, error)
}

// First calls FirstFn.
func (c ChainFuncs) First() (any, error) {
	if c.FirstFn == nil {
		return nil, donor.ErrNotImplemented
	}

	return c.FirstFn()
}

// After calls AfterFn.
func (c ChainFuncs) After(prev any) (any, error) {
	if c.AfterFn == nil {
		return nil, donor.ErrNotImplemented
	}

	return c.AfterFn(prev)
}

// ChainedSequence yields First(), After(first), After(After(first)), … on
// successive calls to Value. State is committed only when the rule succeeds.
type ChainedSequence struct {
	rule    ChainRule
	started bool
	prev    any
}

// NewChained returns a sequence driven by rule.
func NewChained(rule ChainRule) *ChainedSequence {
	return &ChainedSequence{rule: rule}
}

// Chain returns a sequence seeded with first and advanced by next.
//
//	Chain("f", func(prev string) string { return prev + "'" })
//	→ "f", "f'", "f''", …
func Chain[T any](first T, next func(prev T) T) *ChainedSequence {
	rule := ChainFuncs{
		FirstFn: func() (any, error) { return first, nil },
	}
	if next != nil {
		rule.AfterFn = func(prev any) (any, error) {
			p, _ := prev.(T)
			return next(p), nil
		}
	}

	return NewChained(rule)
}

// Value returns the next value of the recurrence.
func (s *ChainedSequence) Value() (any, error) {
	if s.rule == nil {
		return nil, donor.ErrNotImplemented
	}

	var (
		v   any
		err error
	)
	if !s.started {
		v, err = s.rule.First()
	} else {
		v, err = s.rule.After(s.prev)
	}
	if err != nil {
		return nil, err
	}
	s.started, s.prev = true, v

	return v, nil
}
