package renderer

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stderr, keeping
// progress out of the pixel stream on stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() core.Hittable
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene  Scene
	camera *Camera
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger silences progress.
func NewRaytracer(scene Scene, camera *Camera, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  scene,
		camera: camera,
		logger: logger,
	}
}

// backgroundGradient returns the vertical sky gradient for a ray that
// missed everything
func (rt *Raytracer) backgroundGradient(r core.Ray) (core.Vec3, error) {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	// Ray directions are not unit length in general; the gradient needs one
	unitDirection, err := r.Direction.Normalize()
	if err != nil {
		return core.Vec3{}, err
	}

	// Map the y-component from [-1, 1] to [0, 1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t)), nil
}

// normalColor visualizes a unit normal by remapping [-1,1] to [0,1]
// per channel
func normalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

// rayColor returns the color seen along a ray, recursing into scattered
// rays until the bounce budget runs out
func (rt *Raytracer) rayColor(r core.Ray, sampler core.Sampler, depth int) (core.Vec3, error) {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}, nil
	}

	// The 0.001 lower bound skips hits at t ≈ 0, which would otherwise
	// re-intersect the surface a bounce just left (shadow acne)
	hit, isHit := rt.scene.GetWorld().Hit(r, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	// Bare geometry renders its oriented normal
	if hit.Material == nil {
		return normalColor(hit.Normal), nil
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{}, nil
	}

	bounced, err := rt.rayColor(scatter.Scattered, sampler, depth-1)
	if err != nil {
		return core.Vec3{}, err
	}
	return scatter.Attenuation.MultiplyVec(bounced), nil
}

// renderRow renders one row of pixels into w and reports the samples taken.
// Each row gets its own sampler so rows are independent of render order.
func (rt *Raytracer) renderRow(j int, sampler core.Sampler, w io.Writer) (int, error) {
	config := rt.camera.Config()
	samples := config.SamplesPerPixel
	if samples < 1 {
		samples = 1
	}

	samplesTaken := 0
	for i := 0; i < rt.camera.ImageWidth(); i++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < samples; sample++ {
			// A single sample goes through the pixel center; multiple
			// samples jitter within the pixel footprint for antialiasing
			offset := core.Vec2{}
			if samples > 1 {
				jitter := sampler.Get2D()
				offset = core.NewVec2(jitter.X-0.5, jitter.Y-0.5)
			}

			ray := rt.camera.GetRay(i, j, offset)
			sampleColor, err := rt.rayColor(ray, sampler, config.MaxDepth)
			if err != nil {
				return samplesTaken, err
			}
			colorAccum = colorAccum.Add(sampleColor)
			samplesTaken++
		}

		pixelColor, err := colorAccum.Divide(float64(samples))
		if err != nil {
			return samplesTaken, err
		}
		if err := WriteColor(w, pixelColor); err != nil {
			return samplesTaken, err
		}
	}

	return samplesTaken, nil
}

// rowSampler creates the deterministic sampler for a row. Serial and
// parallel rendering share this, so their output is byte-identical.
func (rt *Raytracer) rowSampler(j int) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(rt.camera.Config().Seed + int64(j))))
}

// writeHeader emits the PPM header, exactly once per render, before any
// pixel data
func (rt *Raytracer) writeHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", rt.camera.ImageWidth(), rt.camera.ImageHeight())
	return err
}

// logf writes to the progress side channel, if there is one
func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// Render renders the scene as plain PPM into w, top-to-bottom,
// left-to-right. Any error during pixel generation surfaces before further
// output is attempted.
func (rt *Raytracer) Render(w io.Writer) (RenderStats, error) {
	stats := newRenderStats(rt.camera)

	if err := rt.writeHeader(w); err != nil {
		return stats, err
	}

	// Rows render into a scratch buffer first, so a row that fails mid-pixel
	// never emits a partial pixel line
	var row bytes.Buffer
	for j := 0; j < rt.camera.ImageHeight(); j++ {
		rt.logf("\rScanlines remaining: %d ", rt.camera.ImageHeight()-j)

		row.Reset()
		samples, err := rt.renderRow(j, rt.rowSampler(j), &row)
		if err != nil {
			return stats, err
		}
		if _, err := w.Write(row.Bytes()); err != nil {
			return stats, err
		}
		stats.addRow(samples)
	}

	rt.logf("\rDone.                 \n")
	stats.finalize()
	return stats, nil
}
