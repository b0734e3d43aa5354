package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// All randomness in the simulation flows through one of these so a single seed
// controls a whole run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Unit returns a uniform sample in [0, 1).
func (r *RNG) Unit() float64 {
	return r.r.Float64()
}

// Range returns a uniform sample in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + (max-min)*r.r.Float64()
}

// IntN returns a uniform integer in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Normal returns a sample from the normal distribution with the given mean
// and standard deviation.
func (r *RNG) Normal(mean, stddev float64) float64 {
	return mean + stddev*r.r.NormFloat64()
}

// Coin returns true or false with equal probability.
func (r *RNG) Coin() bool {
	return r.r.IntN(2) == 1
}

// InDisc returns a point sampled from the disc of the given radius centred on
// the origin.
func (r *RNG) InDisc(radius float64) (float64, float64) {
	d := r.Range(0, radius)
	theta := r.Range(0, 2*math.Pi)
	return d * math.Cos(theta), d * math.Sin(theta)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
