// SPDX-License-Identifier: MIT

// Package sequence provides stateful donors that yield a new, rule-defined
// value on every resolution.
//
// Strategies:
//
//   - IndexedSequence: the n-th value is computed directly from n (0, 1, 2, …).
//     Implement IndexRule, or use IndexFunc / Index for plain functions.
//   - ChainedSequence: the n-th value is derived from the (n-1)-th, with a
//     distinct seed rule for the first one. Implement ChainRule, or use
//     ChainFuncs / Chain.
//   - ElementsSequence: pulls elements of a finite slice in order. From stops
//     with ErrExhausted once the slice is consumed; FromRepeating cycles
//     through it forever.
//
// Ready-made rules:
//
//   - Index formulas: Decimal, Base36, Hex, ExcelColumn, Prefixed, Primed,
//     Letter / Letters.
//   - Seeded random draws: Uniform, Normal, Exponential, Intn, OneOf, UUIDs.
//     Randomness is deterministic by default (DefaultSeed); use WithSeed,
//     WithRand or WithEnvSeed (MAKEITEASY_SEED) to choose the stream.
//
// Every sequence implements donor.Donor, so it can be used anywhere a
// property value is expected:
//
//	maker.A(user, maker.With(sequence.Index(sequence.Prefixed("user")), "Name"))
//
// Concurrency: sequences mutate internal state on every Value call and are
// not safe for concurrent use. Keep one builder graph per goroutine.
package sequence
