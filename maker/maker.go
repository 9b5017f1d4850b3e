// SPDX-License-Identifier: MIT
// Package: makeiteasy/maker
//
// maker.go - the Maker builder and its make/derive operations.
//
// Contract:
//   - Make resolves every property in declaration order, then calls the
//     instantiator once with the resolved Args.
//   - With mutates the receiver; But returns a new Maker and never touches
//     the receiver.
//   - A *Maker is itself a donor, so makers nest: each resolution of an
//     outer maker builds a fresh inner object.

package maker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/katalvlaran/makeiteasy/donor"
)

// Instantiator turns resolved arguments into an object. Defaults for absent
// arguments belong to the instantiator (see Arg).
type Instantiator func(args Args) (any, error)

// Maker binds an Instantiator to a lookup of named donors. The zero value
// accepts properties; making it reports ErrNilInstantiator.
type Maker struct {
	instantiator Instantiator
	lookup       *Lookup
	logger       *slog.Logger
}

// discard drops every record; Debug is disabled so nothing is formatted.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// A returns a Maker for instantiator populated with props.
func A(instantiator Instantiator, props ...Property) *Maker {
	return &Maker{
		instantiator: instantiator,
		lookup:       NewLookup(props...),
		logger:       discard,
	}
}

// An is A, for instantiators whose name starts with a vowel.
func An(instantiator Instantiator, props ...Property) *Maker {
	return A(instantiator, props...)
}

// Make resolves the properties and calls the instantiator.
// Property errors come back as a PropertyError; the error of m's own
// instantiator is returned unchanged. A nested maker's instantiator error is
// a property error of the outer maker, so it arrives wrapped (errors.Is
// still matches).
func (m *Maker) Make() (any, error) {
	if m.instantiator == nil {
		return nil, ErrNilInstantiator
	}
	args, err := m.properties().Resolve()
	if err != nil {
		var perr PropertyError
		if errors.As(err, &perr) {
			m.log().Debug("maker: property failed", slog.String("property", perr.Name), slog.Any("error", perr.Err))
		}
		return nil, err
	}
	m.log().Debug("maker: resolved", slog.Int("properties", len(args)))

	return m.instantiator(args)
}

// Value makes a fresh object; it lets a Maker serve as a donor.
func (m *Maker) Value() (any, error) {
	return m.Make()
}

// With sets or replaces the property name on m itself and returns m.
func (m *Maker) With(value any, name string) *Maker {
	m.properties().Set(name, donor.Of(value))
	return m
}

// But returns a new Maker with props layered over m's properties. m is left
// unchanged; donor instances are shared between the two.
func (m *Maker) But(props ...Property) *Maker {
	lookup := m.properties().Clone()
	lookup.Update(NewLookup(props...))

	return &Maker{instantiator: m.instantiator, lookup: lookup, logger: m.log()}
}

// Properties returns a copy of m's lookup.
func (m *Maker) Properties() *Lookup {
	return m.properties().Clone()
}

// WithLogger routes m's debug records to logger and returns m. A nil logger
// silences m again. Makers derived with But inherit the logger.
func (m *Maker) WithLogger(logger *slog.Logger) *Maker {
	if logger == nil {
		logger = discard
	}
	m.logger = logger

	return m
}

func (m *Maker) properties() *Lookup {
	if m.lookup == nil {
		m.lookup = &Lookup{}
	}
	return m.lookup
}

func (m *Maker) log() *slog.Logger {
	if m.logger == nil {
		return discard
	}
	return m.logger
}

// Make is a function form of m.Make.
func Make(m *Maker) (any, error) {
	return m.Make()
}

// MakeAs makes an object and asserts it to T.
func MakeAs[T any](m *Maker) (T, error) {
	var zero T
	v, err := m.Make()
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("made %T, want %s: %w", v, reflect.TypeOf((*T)(nil)).Elem(), ErrTypeMismatch)
	}

	return t, nil
}

// MustMake makes a T or fails tb immediately.
func MustMake[T any](tb testing.TB, m *Maker) T {
	tb.Helper()
	v, err := MakeAs[T](m)
	if err != nil {
		tb.Fatalf("make %s: %v", reflect.TypeOf((*T)(nil)).Elem(), err)
	}

	return v
}

// TheSame resolves x once and returns a donor handing out that single
// result, so several objects can share one instance:
//
//   - *Maker: made once; with props, made from m.But(props...).
//   - Instantiator (or a bare func(Args) (any, error)): wrapped with A(x, props...).
//   - any other donor: resolved once; props are ignored.
//   - a raw value: frozen as-is.
//
// A resolution error is frozen too and returned by every Value call.
func TheSame(x any, props ...Property) *donor.SameValue {
	switch v := x.(type) {
	case *Maker:
		if v == nil {
			return donor.Freeze(nil)
		}
		if len(props) > 0 {
			v = v.But(props...)
		}
		return donor.Freeze(v)
	case Instantiator:
		return donor.Freeze(A(v, props...))
	case func(Args) (any, error):
		return donor.Freeze(A(v, props...))
	case donor.Donor:
		return donor.Freeze(v)
	default:
		return donor.Just(x)
	}
}
