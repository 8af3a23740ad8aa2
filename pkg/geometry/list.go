package geometry

import (
	"github.com/df07/go-path-tracer/pkg/core"
)

// HittableList aggregates scene objects behind a single Hit query.
// Built once at startup, read-only during rendering.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit returns the nearest intersection across all objects, regardless of
// insertion order. The upper bound shrinks to each accepted hit's t, so a
// later object can only win by being strictly closer.
func (l *HittableList) Hit(ray core.Ray, tRange core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tRange.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(tRange.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
