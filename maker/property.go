// SPDX-License-Identifier: MIT

package maker

import "github.com/katalvlaran/makeiteasy/donor"

// Property is an immutable (name, donor) pair used to populate a Maker.
type Property struct {
	name  string
	donor donor.Donor
}

// With declares the property name with the given value. Raw values are
// frozen with donor.Just; donors (a *Maker, a sequence, a collection) are
// kept as-is and resolved only when the owning Maker is made.
func With(value any, name string) Property {
	return Property{name: name, donor: donor.Of(value)}
}

// As returns name unchanged. It only exists to make property declarations
// read naturally: With(alice, As("customer")).
func As(name string) string {
	return name
}

// Name returns the property name.
func (p Property) Name() string { return p.name }

// Donor returns the property donor.
func (p Property) Donor() donor.Donor { return p.donor }
