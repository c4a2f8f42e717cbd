package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. A negative radius is clamped to zero
// rather than rejected; a zero-radius sphere is a valid measure-zero surface.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(0, radius),
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere inside the open interval
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	// Optimized quadratic: with h = d·oc the usual -b/2, the discriminant
	// and roots lose a factor of two each
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer root first; it already gives closest-hit semantics
	// when it qualifies
	sqrtD := math.Sqrt(discriminant)
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the radius normalizes the outward normal. A zero-radius
	// sphere has no outward side; orient its normal against the ray instead.
	outwardNormal, err := hit.Point.Subtract(s.Center).Divide(s.Radius)
	if err != nil {
		opposing, err := ray.Direction.Negate().Normalize()
		if err != nil {
			return nil, false
		}
		outwardNormal = opposing
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
