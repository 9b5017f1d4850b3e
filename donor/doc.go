// SPDX-License-Identifier: MIT

// Package donor defines the lazy-value capability at the heart of makeiteasy:
// a Donor produces a value on demand and is asked again on every resolution.
//
// Variants provided here:
//
//   - Func:       adapts a plain func() (any, error).
//   - SameValue:  a frozen value. Just(v) wraps a raw value, Freeze(d) resolves
//     d exactly once and keeps the result (value or error) forever.
//   - Collection: ListOf / SetOf / TupleOf. Every resolution resolves each
//     element donor afresh and returns a brand-new container.
//
// Raw values are turned into donors with Of: anything already implementing
// Donor is kept as-is (so a *maker.Maker or a sequence is a donor), anything
// else is wrapped with Just.
//
// Identity rules:
//
//	ListOf(a, b)            → new []any and new elements per resolution
//	ListOf(Freeze(a), b)    → new []any, first element shared
//	Freeze(ListOf(a, b))    → the same []any for every resolution
//
// Concurrency: donors are not safe for concurrent use. A SameValue is
// immutable after construction and may be read from any goroutine.
package donor
