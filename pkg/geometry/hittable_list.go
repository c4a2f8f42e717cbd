package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// HittableList aggregates hittables and is itself hittable, so lists can be
// nested or handed to the renderer as a single scene. Members are held by
// reference; the same primitive may appear in several lists.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list containing the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list.
// Not safe to call while a Hit is in flight.
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit returns the nearest qualifying intersection among all members.
// Each member is tested against a shrinking interval whose far bound is the
// closest t found so far, so later members only need to beat the current best.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max
	hitAnything := false

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
