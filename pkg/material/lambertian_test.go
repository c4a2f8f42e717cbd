package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func testHit(point, normal core.Vec3) core.HitRecord {
	return core.HitRecord{
		Point:     point,
		Normal:    normal,
		T:         1.0,
		FrontFace: true,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.1, 0.2, 0.5)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	hit := testHit(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		if scatter.Attenuation != albedo {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Errorf("Scattered ray should originate at the hit point, got %v", scatter.Scattered.Origin)
		}
		// Scattered direction stays in the hemisphere around the normal
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Errorf("Scattered direction %v below surface", scatter.Scattered.Direction)
		}
	}
}
