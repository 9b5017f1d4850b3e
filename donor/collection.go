// SPDX-License-Identifier: MIT
// Package: makeiteasy/donor
//
// collection.go - ListOf / SetOf / TupleOf collection donors.
//
// Contract:
//   - Elements are coerced with Of once, at construction.
//   - Every Value call resolves every element afresh, in declaration order,
//     and packs the results into a newly allocated container.
//   - The first element error aborts the resolution and is returned as-is.

package donor

import (
	"fmt"
	"reflect"
)

// Kind selects the container produced by a Collection.
type Kind int

const (
	// KindList produces []any: ordered, duplicates kept.
	KindList Kind = iota
	// KindSet produces a Set: duplicates collapse by Go equality.
	KindSet
	// KindTuple produces a Tuple: ordered, fixed size, read-only.
	KindTuple
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Collection resolves an ordered group of element donors into a fresh
// container on every access.
type Collection struct {
	donors []Donor
	kind   Kind
}

// ListOf returns a donor producing a new []any of the resolved elements.
func ListOf(values ...any) *Collection {
	return &Collection{donors: All(values...), kind: KindList}
}

// SetOf returns a donor producing a new Set of the resolved elements.
func SetOf(values ...any) *Collection {
	return &Collection{donors: All(values...), kind: KindSet}
}

// TupleOf returns a donor producing a new Tuple of the resolved elements.
func TupleOf(values ...any) *Collection {
	return &Collection{donors: All(values...), kind: KindTuple}
}

// Kind reports the container kind.
func (c *Collection) Kind() Kind { return c.kind }

// Len reports the number of element donors.
func (c *Collection) Len() int { return len(c.donors) }

// Value resolves every element and returns the container.
// Complexity: O(n) resolutions plus O(n) container work.
func (c *Collection) Value() (any, error) {
	items := make([]any, len(c.donors))
	for i, d := range c.donors {
		v, err := d.Value()
		if err != nil {
			return nil, err
		}
		items[i] = v
	}

	switch c.kind {
	case KindSet:
		return newSet(items)
	case KindTuple:
		return Tuple{items: items}, nil
	default:
		return items, nil
	}
}

// Set is an unordered collection of distinct comparable values.
type Set map[any]struct{}

func newSet(items []any) (Set, error) {
	s := make(Set, len(items))
	for i, v := range items {
		if !s.add(v) {
			return nil, fmt.Errorf("element %d (%T): %w", i, v, ErrUnhashable)
		}
	}

	return s, nil
}

// add inserts v and reports false when v cannot be a map key. Types that are
// statically comparable may still hold a slice behind an interface field,
// which only fails at hashing time, hence the recover.
func (s Set) add(v any) (ok bool) {
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	s[v] = struct{}{}

	return true
}

// Has reports whether v is a member.
func (s Set) Has(v any) (found bool) {
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			found = false
		}
	}()
	_, found = s[v]

	return found
}

// Len reports the number of distinct members.
func (s Set) Len() int { return len(s) }

// Tuple is a fixed-size, read-only sequence of values.
type Tuple struct {
	items []any
}

// Len reports the tuple size.
func (t Tuple) Len() int { return len(t.items) }

// At returns the i-th element; it panics when i is out of range, like indexing.
func (t Tuple) At(i int) any { return t.items[i] }

// Slice returns a copy of the elements.
func (t Tuple) Slice() []any {
	return append([]any(nil), t.items...)
}
