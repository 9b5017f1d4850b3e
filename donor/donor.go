// SPDX-License-Identifier: MIT

package donor

// Donor produces a value on demand. Implementations are re-evaluated on every
// call to Value; whether the result is fresh, shared, or drawn from a sequence
// is the implementation's contract.
type Donor interface {
	Value() (any, error)
}

// Func adapts an ordinary function to the Donor interface.
// A nil Func yields ErrNotImplemented instead of panicking.
type Func func() (any, error)

// Value calls f.
func (f Func) Value() (any, error) {
	if f == nil {
		return nil, ErrNotImplemented
	}

	return f()
}

// Of coerces v into a Donor: a value that already implements Donor is
// returned unchanged, anything else (including nil) is wrapped with Just.
// Complexity: O(1).
func Of(v any) Donor {
	if d, ok := v.(Donor); ok && d != nil {
		return d
	}

	return Just(v)
}

// All coerces every value with Of, preserving order.
func All(values ...any) []Donor {
	donors := make([]Donor, len(values))
	for i, v := range values {
		donors[i] = Of(v)
	}

	return donors
}
