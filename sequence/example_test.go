package sequence_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/makeiteasy/sequence"
)

// ExampleIndex derives each value directly from its index.
func ExampleIndex() {
	names := sequence.Index(sequence.Prefixed("user"))
	for i := 0; i < 3; i++ {
		v, _ := names.Value()
		fmt.Println(v)
	}

	// Output:
	// user0
	// user1
	// user2
}

// ExampleChain derives each value from the previous one.
func ExampleChain() {
	tags := sequence.Chain("f", func(prev string) string { return prev + "'" })
	for i := 0; i < 3; i++ {
		v, _ := tags.Value()
		fmt.Println(v)
	}

	// Output:
	// f
	// f'
	// f''
}

// ExampleFrom shows the one-shot sequence failing once consumed.
func ExampleFrom() {
	letters := sequence.From("a", "b")
	for i := 0; i < 3; i++ {
		v, err := letters.Value()
		if errors.Is(err, sequence.ErrExhausted) {
			fmt.Println("exhausted")
			continue
		}
		fmt.Println(v)
	}

	// Output:
	// a
	// b
	// exhausted
}

// ExampleFromRepeating cycles through the source.
func ExampleFromRepeating() {
	sizes := sequence.FromRepeating("S", "M")
	for i := 0; i < 5; i++ {
		v, _ := sizes.Value()
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// S M S M S
}
