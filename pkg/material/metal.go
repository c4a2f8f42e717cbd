package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with fuzz clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: core.NewInterval(0, 1).Clamp(fuzz)}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	incoming, err := rayIn.Direction.Normalize()
	if err != nil {
		// Degenerate incoming direction, absorb
		return core.ScatterResult{}, false
	}
	reflected := reflect(incoming, hit.Normal)

	// Fuzziness perturbs the reflection direction
	if m.Fuzz > 0 {
		perturbation := core.RandomInUnitSphere(sampler).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Absorb rays that end up below the surface
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}

// reflect mirrors v around the unit normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
