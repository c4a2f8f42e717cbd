package renderer

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity bounds a channel before byte quantization; the 0.999 cap keeps
// the scaled value inside [0, 255]
var intensity = core.NewInterval(0.000, 0.999)

// linearToGamma applies gamma 2 correction to a linear channel value.
// Non-positive values map to zero so negative inputs never reach Sqrt.
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// WriteColor writes one linear RGB color as a gamma-corrected, clamped,
// byte-quantized pixel line: three space-separated integers in [0, 255].
func WriteColor(w io.Writer, pixelColor core.Vec3) error {
	r := linearToGamma(pixelColor.X)
	g := linearToGamma(pixelColor.Y)
	b := linearToGamma(pixelColor.Z)

	rByte := int(255 * intensity.Clamp(r))
	gByte := int(255 * intensity.Clamp(g))
	bByte := int(255 * intensity.Clamp(b))

	_, err := fmt.Fprintf(w, "%d %d %d\n", rByte, gByte, bByte)
	return err
}
