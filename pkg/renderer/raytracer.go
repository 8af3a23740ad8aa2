package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// skyTop and skyBottom are the gradient endpoints for rays that escape
// the scene.
var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// SkyColor returns the background gradient for a ray that hits nothing:
// white at the bottom of the view blending to sky blue at the top.
func SkyColor(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}

// RayColor integrates the light carried back along a camera ray. The
// recursion of attenuation * RayColor(scattered) is unrolled into a loop
// with a running throughput product, so deep bounce chains cost no stack.
// A depth of 0 returns black without touching the scene.
func RayColor(r core.Ray, depth int, world core.Hittable, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(r, core.NewInterval(0.001, math.Inf(1)))
		if !isHit {
			return throughput.MultiplyVec(SkyColor(r))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
		if !didScatter {
			// Absorbed: the path carries nothing back
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	// Bounce budget exhausted
	return core.Vec3{}
}

// Render traces the scene and streams it to out as a plain-text PPM (P3)
// raster: header, then one "r g b" line per pixel in row-major order, top
// to bottom. Progress is reported per scanline on the camera's logger.
func (c *Camera) Render(world core.Hittable, out io.Writer, sampler core.Sampler) error {
	w := bufio.NewWriter(out)

	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.config.Width, c.imageHeight); err != nil {
		return fmt.Errorf("writing image header: %w", err)
	}

	for j := 0; j < c.imageHeight; j++ {
		c.logger.Printf("Scanlines remaining: %d", c.imageHeight-j)
		for i := 0; i < c.config.Width; i++ {
			pixelColor := core.Vec3{}
			for sample := 0; sample < c.config.SamplesPerPixel; sample++ {
				ray := c.GetRay(i, j, sampler)
				pixelColor = pixelColor.Add(RayColor(ray, c.config.MaxDepth, world, sampler))
			}

			if err := WriteColor(w, pixelColor.Multiply(c.pixelScale)); err != nil {
				return fmt.Errorf("writing pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing image stream: %w", err)
	}
	return nil
}
