package renderer

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains camera and sampling configuration, set once before
// rendering and never mutated during it
type CameraConfig struct {
	AspectRatio     float64 // Ratio of image width over height
	ImageWidth      int     // Rendered image width in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Seed            int64   // Base seed for per-row sample generators
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42, // Deterministic for testing
	}
}

// MergeCameraConfig merges override values into a base config.
// Zero-valued override fields keep the base value.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.ImageWidth != 0 {
		merged.ImageWidth = override.ImageWidth
	}
	if override.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		merged.Seed = override.Seed
	}
	return merged
}

// Camera generates rays through the viewport for rendering
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3
	pixel00     core.Vec3 // Location of the center of pixel (0, 0)
	pixelDeltaU core.Vec3 // Offset to the pixel one column right
	pixelDeltaV core.Vec3 // Offset to the pixel one row down
}

// NewCamera creates a camera at the origin looking down -z, deriving the
// image height and viewport geometry from the config
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	focalLength := 1.0
	viewportHeight := 2.0
	// Use the actual pixel ratio, not the requested aspect ratio, so pixels
	// stay square after the height is floored
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(imageHeight)

	center := core.NewVec3(0, 0, 0)

	// Viewport edge vectors: u runs along the top edge, v down the left edge
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	// Half-pixel offset from the viewport's upper-left corner centers
	// samples on pixels rather than corners
	viewportUpperLeft := center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00:     pixel00,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
	}
}

// Config returns the camera configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay generates a ray from the camera through the point offset from the
// center of pixel (i, j). Offsets in [-0.5, 0.5] stay inside the pixel's
// footprint; a zero offset is the exact pixel center.
func (c *Camera) GetRay(i, j int, offset core.Vec2) core.Ray {
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}
