package core

import "math"

// Interval represents a range of ray parameters [Min, Max]
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval contains no value at all
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// UniverseInterval contains every value
var UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// Contains reports whether x lies in the closed interval [Min, Max]
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval.
// Hit acceptance uses this open form, so a root exactly at either bound is
// rejected; the aggregate's narrowing relies on the same convention.
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp projects x into [Min, Max]
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
