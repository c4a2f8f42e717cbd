package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object, nil for bare geometry
}

// SetFaceNormal orients the normal against the incoming ray and records
// which face was hit. Every primitive goes through this, so shading never
// has to special-case normal direction.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect within a parameter interval.
// A miss is (nil, false); "no intersection" is a normal outcome, not an error.
type Hittable interface {
	Hit(ray Ray, rayT Interval) (*HitRecord, bool)
}

// Material scatters incoming rays at a hit point
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied to the recursive color
}

// Logger is the progress side channel. It must never share a stream with
// the pixel output.
type Logger interface {
	Printf(format string, args ...interface{})
}
