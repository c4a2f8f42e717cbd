package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates the default scene: a diffuse sphere flanked by
// two metal spheres, resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.3)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
	)

	top, bottom := defaultBackground()
	return &Scene{
		World:        world,
		CameraConfig: cameraConfig,
		TopColor:     top,
		BottomColor:  bottom,
	}
}

// NewNormalsScene creates a single material-less sphere in front of the
// camera; bare geometry renders its surface normals
func NewNormalsScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.SamplesPerPixel = 1 // Normal visualization needs no antialiasing
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, nil),
	)

	top, bottom := defaultBackground()
	return &Scene{
		World:        world,
		CameraConfig: cameraConfig,
		TopColor:     top,
		BottomColor:  bottom,
	}
}
