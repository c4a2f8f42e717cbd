package main

import (
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"normals scene", "normals", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene == nil {
				t.Fatal("Expected scene, got nil")
			}
			if scene.CameraConfig.ImageWidth <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.ImageWidth)
			}
			if scene.World == nil || len(scene.World.Objects) == 0 {
				t.Error("Scene world should contain objects")
			}
		})
	}
}

func TestCreateScene_CameraOverrides(t *testing.T) {
	scene, err := createScene("default", renderer.CameraConfig{ImageWidth: 64, SamplesPerPixel: 4})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if scene.CameraConfig.ImageWidth != 64 {
		t.Errorf("Expected overridden width 64, got %d", scene.CameraConfig.ImageWidth)
	}
	if scene.CameraConfig.SamplesPerPixel != 4 {
		t.Errorf("Expected overridden samples 4, got %d", scene.CameraConfig.SamplesPerPixel)
	}
	if scene.CameraConfig.MaxDepth != renderer.DefaultCameraConfig().MaxDepth {
		t.Errorf("Expected default max depth %d, got %d",
			renderer.DefaultCameraConfig().MaxDepth, scene.CameraConfig.MaxDepth)
	}
}
