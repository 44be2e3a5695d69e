package mapgen

import (
	"math/rand"

	"github.com/katalvlaran/bitpath/bitgrid"
)

// config holds RandomObstacles' resolved settings.
type config struct {
	rng *rand.Rand
}

// Option configures RandomObstacles.
type Option func(*config)

// WithRand overrides the random source. Without it, RandomObstacles uses a
// fixed-seed generator, so repeated calls with the same arguments produce
// the same map.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// RandomObstacles returns a width x height grid with each cell blocked
// independently at probability density. Returns ErrInvalidDensity if
// density is outside [0, 1].
func RandomObstacles(width, height int, density float64, opts ...Option) (*bitgrid.Grid, error) {
	if density < 0 || density > 1 {
		return nil, ErrInvalidDensity
	}

	c := config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(&c)
	}

	g, err := bitgrid.New(width, height)
	if err != nil {
		return nil, err
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if c.rng.Float64() < density {
				g.Set(x, y, true)
			}
		}
	}
	return g, nil
}

// RandomRoom returns a width x height grid with obstacles placed at density
// exactly as RandomObstacles does, but with source and clear guaranteed
// clear so a search always has somewhere to start and end even at high
// densities.
func RandomRoom(width, height int, density float64, source, clear bitgrid.Cell, opts ...Option) (*bitgrid.Grid, error) {
	g, err := RandomObstacles(width, height, density, opts...)
	if err != nil {
		return nil, err
	}
	g.Set(source.X, source.Y, false)
	g.Set(clear.X, clear.Y, false)
	return g, nil
}
