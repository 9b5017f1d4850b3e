// SPDX-License-Identifier: MIT

package maker

import (
	"fmt"
	"reflect"
)

// Args holds the resolved property values handed to an Instantiator.
type Args map[string]any

// Has reports whether name was supplied, even with a nil value.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Arg returns the argument name as a T, or def when it is absent or nil.
// A value of another type reports ErrTypeMismatch.
func Arg[T any](args Args, name string, def T) (T, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	t, ok := v.(T)
	if !ok {
		return def, fmt.Errorf("argument %q is %T, want %s: %w", name, v, reflect.TypeOf((*T)(nil)).Elem(), ErrTypeMismatch)
	}

	return t, nil
}

// RequireArg returns the argument name as a T and reports
// ErrMissingArgument when it was not supplied. An explicit nil yields the
// zero T.
func RequireArg[T any](args Args, name string) (T, error) {
	var zero T
	v, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("argument %q: %w", name, ErrMissingArgument)
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("argument %q is %T, want %s: %w", name, v, reflect.TypeOf((*T)(nil)).Elem(), ErrTypeMismatch)
	}

	return t, nil
}
