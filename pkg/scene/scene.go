package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene bundles the world aggregate with camera settings and background
// colors. It implements renderer.Scene.
type Scene struct {
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
	TopColor     core.Vec3 // Sky color at the top of the gradient
	BottomColor  core.Vec3 // Horizon color at the bottom of the gradient
}

// GetWorld returns the scene's aggregate
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// defaultBackground is the classic white-to-sky-blue gradient
func defaultBackground() (top, bottom core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)
}
