package builder

import (
	"math/rand"

	"github.com/arboris-go/treewidth/rng"
)

// BuilderOption customizes a stochastic constructor by mutating a
// builderConfig before it runs. Later options override earlier ones.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand injects an explicit RNG source. A nil r is a no-op, leaving
// any RNG already set by an earlier option untouched.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed seeds a fresh *rand.Rand deterministically. Prefer this over
// WithRand in tests, where the only requirement is reproducibility, not
// a shared stream.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rng.FromSeed(seed)
	}
}
