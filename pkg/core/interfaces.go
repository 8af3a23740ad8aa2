package core

// Logger interface for render progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection.
// Records are transient: built during a single intersection query and
// consumed by the integrator, never persisted.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object (shared, read-only)
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Fraction of light color preserved by the bounce
}

// Material decides how (or whether) an incoming ray continues after
// striking a surface. Returning false signals absorption: the ray
// terminates and contributes no further light.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Hittable is implemented by anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection whose parameter lies strictly
	// inside tRange, or false if there is none.
	Hit(ray Ray, tRange Interval) (*HitRecord, bool)
}
