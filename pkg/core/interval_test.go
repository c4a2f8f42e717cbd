package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	interval := NewInterval(1, 3)

	tests := []struct {
		name      string
		x         float64
		contains  bool
		surrounds bool
	}{
		{"below min", 0.5, false, false},
		{"at min", 1, true, false},
		{"inside", 2, true, true},
		{"at max", 3, true, false},
		{"above max", 3.5, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.x); got != tt.contains {
				t.Errorf("Contains(%f): expected %t, got %t", tt.x, tt.contains, got)
			}
			if got := interval.Surrounds(tt.x); got != tt.surrounds {
				t.Errorf("Surrounds(%f): expected %t, got %t", tt.x, tt.surrounds, got)
			}
		})
	}
}

func TestInterval_Clamp(t *testing.T) {
	interval := NewInterval(0, 0.999)

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"below min", -0.5, 0},
		{"inside", 0.5, 0.5},
		{"above max", 1.5, 0.999},
		{"at min", 0, 0},
		{"at max", 0.999, 0.999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Clamp(tt.x); got != tt.expected {
				t.Errorf("Clamp(%f): expected %f, got %f", tt.x, tt.expected, got)
			}
		})
	}
}

func TestInterval_Sentinels(t *testing.T) {
	if EmptyInterval.Contains(0) {
		t.Error("Empty interval should contain nothing")
	}
	if !UniverseInterval.Contains(math.MaxFloat64) || !UniverseInterval.Contains(-math.MaxFloat64) {
		t.Error("Universe interval should contain everything")
	}
	if !UniverseInterval.Surrounds(0) {
		t.Error("Universe interval should surround finite values")
	}
}
