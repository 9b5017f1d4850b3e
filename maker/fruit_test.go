package maker_test

import (
	"github.com/katalvlaran/makeiteasy/maker"
)

// The fruit, order and customer types below form the domain the tests
// build. Defaults live in the instantiators, never in the makers.

const ripeThreshold = 0.9

type fruit struct{ ripeness float64 }

func (f *fruit) Ripen(r float64) { f.ripeness = r }

func (f *fruit) IsRipe() bool { return f.ripeness >= ripeThreshold }

type Apple struct {
	fruit
	Leaves int
}

type Banana struct {
	fruit
	Curve float64
}

type Customer struct{ Name string }

type Order struct{ Customer *Customer }

type FruitBowl struct{ Fruits []any }

func apple(args maker.Args) (any, error) {
	leaves, err := maker.Arg(args, "leaves", 2)
	if err != nil {
		return nil, err
	}
	ripeness, err := maker.Arg(args, "ripeness", 0.0)
	if err != nil {
		return nil, err
	}
	a := &Apple{Leaves: leaves}
	a.Ripen(ripeness)

	return a, nil
}

func banana(args maker.Args) (any, error) {
	curve, err := maker.Arg(args, "curve", 0.1)
	if err != nil {
		return nil, err
	}
	ripeness, err := maker.Arg(args, "ripeness", 0.0)
	if err != nil {
		return nil, err
	}
	b := &Banana{Curve: curve}
	b.Ripen(ripeness)

	return b, nil
}

func customer(args maker.Args) (any, error) {
	name, err := maker.Arg(args, "name", "Unknown")
	if err != nil {
		return nil, err
	}

	return &Customer{Name: name}, nil
}

func order(args maker.Args) (any, error) {
	c, err := maker.Arg[*Customer](args, "customer_", nil)
	if err != nil {
		return nil, err
	}
	if c == nil {
		if c, err = maker.MakeAs[*Customer](maker.A(customer)); err != nil {
			return nil, err
		}
	}

	return &Order{Customer: c}, nil
}

func fruitBowl(args maker.Args) (any, error) {
	fruits, err := maker.Arg(args, "fruits", []any{})
	if err != nil {
		return nil, err
	}

	return &FruitBowl{Fruits: fruits}, nil
}
