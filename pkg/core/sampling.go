package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Can be swapped out for deterministic testing.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}

// RandomVec3 returns a vector with each component drawn from [0, 1)
func RandomVec3(sampler Sampler) Vec3 {
	x, y := sampler.Get2D()
	return NewVec3(x, y, sampler.Get1D())
}

// RandomVec3Range returns a vector with each component drawn from [min, max)
func RandomVec3Range(sampler Sampler, min, max float64) Vec3 {
	v := RandomVec3(sampler)
	return NewVec3(
		min+(max-min)*v.X,
		min+(max-min)*v.Y,
		min+(max-min)*v.Z,
	)
}

// RandomUnitVector generates a uniform random direction on the unit sphere
// by rejection sampling the unit ball.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := RandomVec3Range(sampler, -1, 1)
		if lenSq := p.LengthSquared(); lenSq < 1.0 && lenSq > 0 {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in the z=0 unit disk
// (for defocus blur)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		x, y := sampler.Get2D()
		p := NewVec3(2*x-1, 2*y-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
