package material

// fixedSampler returns the same values on every draw. Useful for steering
// randomized scatter paths down a known branch.
type fixedSampler struct {
	v1  float64
	v2a float64
	v2b float64
}

func (f *fixedSampler) Get1D() float64 {
	return f.v1
}

func (f *fixedSampler) Get2D() (float64, float64) {
	return f.v2a, f.v2b
}
