// SPDX-License-Identifier: MIT

package donor

// SameValue is a donor frozen to a single result. Every call to Value returns
// the identical value (and error) captured at construction; nothing is ever
// re-resolved. It is the mechanism behind intentional instance sharing.
type SameValue struct {
	v   any
	err error
}

// Just wraps an already computed value.
func Just(v any) *SameValue {
	return &SameValue{v: v}
}

// Freeze resolves d immediately, exactly once, and returns a SameValue holding
// the outcome. A resolution error is frozen as well: it is reported by every
// later Value call, so the failure surfaces wherever the shared donor is used.
// A nil d freezes ErrNotImplemented.
func Freeze(d Donor) *SameValue {
	if d == nil {
		return &SameValue{err: ErrNotImplemented}
	}
	v, err := d.Value()

	return &SameValue{v: v, err: err}
}

// Value returns the frozen value and error.
func (s *SameValue) Value() (any, error) {
	return s.v, s.err
}

// Err reports the frozen resolution error, if any.
func (s *SameValue) Err() error {
	return s.err
}
