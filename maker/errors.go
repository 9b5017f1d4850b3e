// SPDX-License-Identifier: MIT
// Package: makeiteasy/maker
//
// errors.go - sentinel errors for the maker package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Context is attached with %w at the failure site.
//   - Donor failures carry the property name in a PropertyError.
//   - Instantiator errors are never wrapped by Make.

package maker

import (
	"errors"
	"fmt"
)

// ErrNilInstantiator indicates a Maker or Construct without a function to call.
var ErrNilInstantiator = errors.New("maker: nil instantiator")

// ErrTypeMismatch indicates a made object or an argument is not of the
// requested Go type.
var ErrTypeMismatch = errors.New("maker: type mismatch")

// ErrMissingArgument indicates a required named argument was not supplied.
var ErrMissingArgument = errors.New("maker: missing argument")

// ErrUnknownProperty indicates a lookup has no donor under the given name.
var ErrUnknownProperty = errors.New("maker: unknown property")

// ErrInvalidArgs indicates arguments could not be decoded onto, or failed
// validation of, a struct instantiator's defaults.
var ErrInvalidArgs = errors.New("maker: invalid arguments")

// ErrInvalidFixture indicates a fixture document is not a YAML mapping or
// could not be decoded.
var ErrInvalidFixture = errors.New("maker: invalid fixture")

// PropertyError reports the property whose donor failed during resolution.
type PropertyError struct {
	Name string
	Err  error
}

func (e PropertyError) Error() string {
	return fmt.Sprintf("maker: property %q: %v", e.Name, e.Err)
}

func (e PropertyError) Unwrap() error { return e.Err }
