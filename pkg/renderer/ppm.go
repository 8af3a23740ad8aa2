package renderer

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// intensity clamps channel values before quantization. The 0.999 ceiling
// keeps 256*x below 256 so channels never round up to an invalid value.
var intensity = core.NewInterval(0.000, 0.999)

// WriteColor emits one pixel as three space-separated integers in [0, 255].
// Each linear channel is gamma corrected before quantization.
func WriteColor(w io.Writer, pixelColor core.Vec3) error {
	r := LinearToGamma(pixelColor.X)
	g := LinearToGamma(pixelColor.Y)
	b := LinearToGamma(pixelColor.Z)

	ir := int(256 * intensity.Clamp(r))
	ig := int(256 * intensity.Clamp(g))
	ib := int(256 * intensity.Clamp(b))

	_, err := fmt.Fprintf(w, "%d %d %d\n", ir, ig, ib)
	return err
}

// LinearToGamma applies gamma-2 correction (square root) to a linear
// color component. Non-positive values map to 0.
func LinearToGamma(linearComponent float64) float64 {
	if linearComponent > 0 {
		return math.Sqrt(linearComponent)
	}
	return 0
}
