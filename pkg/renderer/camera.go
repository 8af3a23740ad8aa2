package renderer

import (
	"log"
	"math"
	"os"

	"github.com/df07/go-path-tracer/pkg/core"
)

// CameraConfig holds camera configuration parameters
type CameraConfig struct {
	AspectRatio     float64   // Width / height
	Width           int       // Image width in pixels
	SamplesPerPixel int       // Rays cast per pixel
	MaxDepth        int       // Maximum ray bounce depth
	VFov            float64   // Vertical field of view in degrees
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	VUp             core.Vec3 // World up vector
	DefocusAngle    float64   // Lens cone angle in degrees; 0 disables depth of field
	FocusDistance   float64   // Distance to the plane of perfect focus
}

// Camera converts pixel coordinates into world-space rays and drives the
// render loop. All derived state is computed once in NewCamera and is
// read-only during rendering.
type Camera struct {
	config       CameraConfig
	imageHeight  int
	pixelScale   float64 // 1 / samples per pixel
	center       core.Vec3
	pixel00Loc   core.Vec3 // World position of pixel (0, 0)
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
	logger       core.Logger
}

// NewCamera derives the viewport geometry from the configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.Width) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := config.LookFrom

	// Viewport dimensions from the vertical FOV at the focus distance
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.Width) / float64(imageHeight)

	// Orthonormal basis for the camera frame
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	// Defocus disk basis from the lens cone angle
	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		pixelScale:   1.0 / float64(config.SamplesPerPixel),
		center:       center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		logger:       log.New(os.Stderr, "", 0),
	}
}

// SetLogger replaces the progress logger (stderr by default)
func (c *Camera) SetLogger(logger core.Logger) {
	c.logger = logger
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.Width
}

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// GetRay generates a ray for pixel (i, j), jittered within the pixel's
// unit square. When the defocus angle is positive the ray originates from
// a random point on the defocus disk instead of the camera center.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetX, offsetY := c.sampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	rayOrigin := c.center
	if c.config.DefocusAngle > 0 {
		rayOrigin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(rayOrigin, pixelSample.Subtract(rayOrigin))
}

// sampleSquare returns an offset in the [-0.5,0.5] x [-0.5,0.5] unit square
func (c *Camera) sampleSquare(sampler core.Sampler) (float64, float64) {
	x, y := sampler.Get2D()
	return x - 0.5, y - 0.5
}

// defocusDiskSample returns a random origin on the camera defocus disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.center.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}
