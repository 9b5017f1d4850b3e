// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// DrawFn produces one value from the donor's random stream.
type DrawFn func(rng *rand.Rand) (any, error)

// Random is a donor drawing a new value from a seeded stream on every call.
type Random struct {
	rng  *rand.Rand
	draw DrawFn
}

// NewRandom returns a donor calling draw with the configured stream.
// Panics on a nil draw.
func NewRandom(draw DrawFn, opts ...Option) *Random {
	if draw == nil {
		panic("sequence: NewRandom(nil)")
	}
	cfg := newConfig(opts...)

	return &Random{rng: cfg.rng, draw: draw}
}

// Value draws the next value.
func (r *Random) Value() (any, error) {
	return r.draw(r.rng)
}

// Uniform draws float64 values uniformly from [min, max).
// A degenerate interval (min == max) always yields min.
// Panics if max < min.
func Uniform(min, max float64, opts ...Option) *Random {
	if max < min {
		panic(fmt.Sprintf("sequence: Uniform: require min ≤ max, got min=%g, max=%g", min, max))
	}
	return NewRandom(func(rng *rand.Rand) (any, error) {
		if max == min {
			return min, nil
		}
		return min + rng.Float64()*(max-min), nil
	}, opts...)
}

// Normal draws from N(mean, stddev), rounded to the nearest integer and
// clipped at 0, which suits counts, ages and quantities.
// Panics if stddev < 0.
func Normal(mean, stddev float64, opts ...Option) *Random {
	if stddev < 0 {
		panic(fmt.Sprintf("sequence: Normal: stddev must be ≥ 0, got %g", stddev))
	}
	return NewRandom(func(rng *rand.Rand) (any, error) {
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0.0, nil
		}
		return math.Round(sample), nil
	}, opts...)
}

// Exponential draws from Exp(rate), i.e. mean 1/rate, rounded to the
// nearest integer. Panics if rate ≤ 0.
func Exponential(rate float64, opts ...Option) *Random {
	if rate <= 0 {
		panic(fmt.Sprintf("sequence: Exponential: rate must be > 0, got %g", rate))
	}
	return NewRandom(func(rng *rand.Rand) (any, error) {
		return math.Round(rng.ExpFloat64() / rate), nil
	}, opts...)
}

// Intn draws ints uniformly from [0, n). Panics if n ≤ 0.
func Intn(n int, opts ...Option) *Random {
	if n <= 0 {
		panic(fmt.Sprintf("sequence: Intn: n must be > 0, got %d", n))
	}
	return NewRandom(func(rng *rand.Rand) (any, error) {
		return rng.Intn(n), nil
	}, opts...)
}

// OneOf picks a random element of values on every call.
// values is copied. Panics if it is empty.
func OneOf[T any](values []T, opts ...Option) *Random {
	if len(values) == 0 {
		panic("sequence: OneOf: no values")
	}
	choices := append([]T(nil), values...)

	return NewRandom(func(rng *rand.Rand) (any, error) {
		return choices[rng.Intn(len(choices))], nil
	}, opts...)
}

// UUIDs draws version 4 UUIDs from the donor's stream, so a seeded donor
// reproduces the same identifiers on every run.
func UUIDs(opts ...Option) *Random {
	return NewRandom(func(rng *rand.Rand) (any, error) {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, err
		}
		return id, nil
	}, opts...)
}
