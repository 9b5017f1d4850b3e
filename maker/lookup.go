// SPDX-License-Identifier: MIT

package maker

import (
	"fmt"

	"github.com/katalvlaran/makeiteasy/donor"
)

// Lookup maps property names to donors and remembers the order in which
// names were first declared. Re-setting a name replaces its donor but keeps
// its position. The zero value is an empty lookup ready to use.
type Lookup struct {
	names  []string
	donors map[string]donor.Donor
}

// NewLookup builds a lookup from props; later duplicates win.
func NewLookup(props ...Property) *Lookup {
	l := &Lookup{donors: make(map[string]donor.Donor, len(props))}
	for _, p := range props {
		l.Set(p.Name(), p.Donor())
	}

	return l
}

// Set inserts or replaces the donor for name. A nil donor stands for a nil
// value.
func (l *Lookup) Set(name string, d donor.Donor) {
	if d == nil {
		d = donor.Just(nil)
	}
	if l.donors == nil {
		l.donors = make(map[string]donor.Donor)
	}
	if _, ok := l.donors[name]; !ok {
		l.names = append(l.names, name)
	}
	l.donors[name] = d
}

// Donor returns the donor registered under name.
func (l *Lookup) Donor(name string) (donor.Donor, bool) {
	d, ok := l.donors[name]
	return d, ok
}

// Has reports whether name is registered.
func (l *Lookup) Has(name string) bool {
	_, ok := l.donors[name]
	return ok
}

// Value resolves the donor registered under name.
func (l *Lookup) Value(name string) (any, error) {
	d, ok := l.donors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}

	return d.Value()
}

// Get resolves name, or returns def without error when name is not
// registered.
func (l *Lookup) Get(name string, def any) (any, error) {
	if !l.Has(name) {
		return def, nil
	}

	return l.Value(name)
}

// Names returns the registered names in declaration order.
func (l *Lookup) Names() []string {
	return append([]string(nil), l.names...)
}

// Len reports the number of registered names.
func (l *Lookup) Len() int {
	return len(l.names)
}

// Update layers other on top of l: names in other overwrite those in l,
// new names are appended in other's order.
func (l *Lookup) Update(other *Lookup) {
	if other == nil {
		return
	}
	for _, name := range other.names {
		l.Set(name, other.donors[name])
	}
}

// Clone returns an independent lookup sharing the same donor instances.
func (l *Lookup) Clone() *Lookup {
	c := &Lookup{
		names:  append([]string(nil), l.names...),
		donors: make(map[string]donor.Donor, len(l.donors)),
	}
	for name, d := range l.donors {
		c.donors[name] = d
	}

	return c
}

// Resolve asks every donor for its current value, in declaration order.
// The first failure stops resolution and is returned as a PropertyError.
// Complexity: O(n) resolutions.
func (l *Lookup) Resolve() (Args, error) {
	args := make(Args, len(l.names))
	for _, name := range l.names {
		v, err := l.donors[name].Value()
		if err != nil {
			return nil, PropertyError{Name: name, Err: err}
		}
		args[name] = v
	}

	return args, nil
}
