package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		if v := sampler.Get1D(); v < 0 || v >= 1 {
			t.Fatalf("Get1D returned %v outside [0,1)", v)
		}
		x, y := sampler.Get2D()
		if x < 0 || x >= 1 || y < 0 || y >= 1 {
			t.Fatalf("Get2D returned (%v, %v) outside [0,1)", x, y)
		}
	}
}

func TestRandomUnitVector_UnitLength(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	const tolerance = 1e-12
	for i := 0; i < 100; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > tolerance {
			t.Fatalf("RandomUnitVector length %v, expected 1", v.Length())
		}
	}
}

func TestRandomInUnitDisk_InsideDisk(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should have z=0, got %v", p.Z)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Disk sample %v outside unit disk", p)
		}
	}
}

func TestRandomVec3Range_Bounds(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 100; i++ {
		v := RandomVec3Range(sampler, -1, 1)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -1 || c >= 1 {
				t.Fatalf("Component %v outside [-1,1)", c)
			}
		}
	}
}
