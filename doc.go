// Package makeiteasy is a toolkit for building test data with as little
// noise as possible: tests declare only the properties that matter to them
// and let instantiators fill in the rest.
//
// What is inside?
//
//	donor/    - the Donor contract, frozen values (Just, Freeze) and the
//	            List / Set / Tuple collection donors
//	sequence/ - stateful donors: indexed, chained and element sequences,
//	            name formulas, seeded random draws and UUIDs
//	maker/    - Maker (A / An / With / But / Make), TheSame for shared
//	            instances, struct instantiators and YAML fixtures
//
// Quick example:
//
//	customers := maker.A(customer, maker.With(sequence.Index(sequence.Prefixed("guest-")), "name"))
//	orders := maker.An(order, maker.With(customers, maker.As("customer_")))
//	o := maker.MustMake[*Order](t, orders) // o.Customer.Name == "guest-0"
//
// Every Make call builds fresh objects, nested makers included. Wrap a donor
// in maker.TheSame when several objects must share one instance.
//
// Random donors default to a fixed seed; set MAKEITEASY_SEED and pass
// sequence.WithEnvSeed() to vary it between runs.
package makeiteasy
