package scene

import (
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// Scene bundles the objects to render with the camera that views them.
// Built once at startup; read-only during rendering.
type Scene struct {
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig
}
