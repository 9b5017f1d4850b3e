// SPDX-License-Identifier: MIT
// Package: makeiteasy/donor
//
// errors.go - sentinel errors for the donor package.
//
// Callers branch with errors.Is; context is attached with %w.

package donor

import "errors"

// ErrNotImplemented indicates a donor (or a sequence rule) without the
// required value-producing function, e.g. a nil Func or a nil rule.
// Classification: programming error, expected to surface in development.
var ErrNotImplemented = errors.New("donor: value function not implemented")

// ErrUnhashable indicates that a SetOf element resolved to a value that Go
// cannot use as a map key (slice, map, func, or a struct holding one).
var ErrUnhashable = errors.New("donor: set element is not comparable")
