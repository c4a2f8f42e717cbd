package renderer

import (
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestWriteColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected string
	}{
		{"black", core.NewVec3(0, 0, 0), "0 0 0\n"},
		// Full white gammas to 1, clamps to 0.999, quantizes to 254
		{"white clamps below 255", core.NewVec3(1, 1, 1), "254 254 254\n"},
		// Linear 0.25 gammas to 0.5
		{"mid gray", core.NewVec3(0.25, 0.25, 0.25), "127 127 127\n"},
		{"negative clamps to zero", core.NewVec3(-0.5, -1, -0.001), "0 0 0\n"},
		{"overbright clamps", core.NewVec3(4, 9, 100), "254 254 254\n"},
		{"mixed channels", core.NewVec3(0, 0.25, 1), "0 127 254\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			if err := WriteColor(&buf, tt.color); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected float64
	}{
		{"zero", 0, 0},
		{"negative maps to zero", -4, 0},
		{"quarter", 0.25, 0.5},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linearToGamma(tt.linear); got != tt.expected {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}
