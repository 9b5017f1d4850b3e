// SPDX-License-Identifier: MIT

package sequence

import "math/rand"

// DefaultSeed seeds random donors created without WithSeed, WithRand or an
// effective WithEnvSeed.
const DefaultSeed int64 = 1

// config aggregates the knobs of a random donor.
type config struct {
	// rng is never nil after newConfig.
	rng *rand.Rand
}

// newConfig applies opts in order and fills in the deterministic default.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}
