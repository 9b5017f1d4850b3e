// SPDX-License-Identifier: MIT
// Package: makeiteasy/sequence
//
// errors.go - sentinel errors for the sequence package.
//
// Missing rules report donor.ErrNotImplemented, shared with the donor package.

package sequence

import "errors"

// ErrExhausted indicates a one-shot element sequence was asked for more values
// than it holds. It is a deliberate hard failure: the caller requested more
// fixtures than the sequence was declared with.
var ErrExhausted = errors.New("sequence: elements exhausted")

// ErrIndexOutOfRange indicates an index formula has no value for the current
// index (e.g. Letters past "Z").
var ErrIndexOutOfRange = errors.New("sequence: index out of range")
