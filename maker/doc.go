// SPDX-License-Identifier: MIT

// Package maker builds test data: a Maker binds an Instantiator (any function
// turning named arguments into an object) to a lookup of named donors, and
// constructs a fresh object every time it is made.
//
// A typical fixture module declares one instantiator per domain type, with
// the defaults living inside the instantiator:
//
//	func apple(args maker.Args) (any, error) {
//		leaves, err := maker.Arg(args, "leaves", 2)
//		if err != nil {
//			return nil, err
//		}
//		return NewApple(leaves), nil
//	}
//
// Tests then state only what matters to them:
//
//	ripe := maker.An(apple, maker.With(0.95, "ripeness"))
//	a := maker.MustMake[*Apple](t, ripe)
//
// Building blocks:
//
//   - A / An:      bind an instantiator to properties (An is an alias).
//   - With / As:   declare a named property; raw values are frozen, donors
//     (makers, sequences, collections) are resolved at make time.
//   - Maker.With:  mutate a maker in place (returns the same maker).
//   - Maker.But:   derive a new maker; the original is left untouched.
//   - TheSame:     resolve once now and share the result between every
//     object that uses it.
//   - Make / MakeAs / MustMake: construct.
//   - Construct / Fields: instantiators that overlay arguments onto a struct
//     of defaults (mapstructure) and validate `validate` tags (validator).
//   - PropertiesFromYAML: load properties from a fixture file.
//
// Resolution order is the order in which property names were first declared,
// so stateful donors such as sequences advance deterministically.
//
// Errors:
//
//	ErrNilInstantiator - maker bound to a nil instantiator.
//	ErrTypeMismatch    - MakeAs / Arg got a value of another type.
//	ErrMissingArgument - RequireArg on an absent argument.
//	ErrUnknownProperty - Lookup.Value on an absent name.
//	ErrInvalidArgs     - Construct could not decode or validate arguments.
//	ErrInvalidFixture  - malformed YAML fixture.
//
// Errors returned by the outermost instantiator pass through Make unchanged;
// errors of property donors are wrapped in a PropertyError naming the
// property. That includes nested makers: an inner instantiator's error
// reaches the outer Make inside a PropertyError, and errors.Is still finds
// it.
//
// Concurrency: a Maker and the donors it references are not safe for
// concurrent use. Derive one builder graph per goroutine.
package maker
