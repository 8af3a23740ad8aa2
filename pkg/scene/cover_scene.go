package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewCoverScene builds the classic final-render scene: a gray ground
// sphere, a 22x22 grid of small randomized spheres, and three large
// feature spheres (glass, diffuse, metal). Materials are shared by
// reference and never mutated, so aliasing them across spheres is safe.
func NewCoverScene(sampler core.Sampler) *Scene {
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			// Keep the grid clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			world.Add(geometry.NewSphere(center, 0.2, randomMaterial(sampler)))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		World: world,
		CameraConfig: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			Width:           600,
			SamplesPerPixel: 100,
			MaxDepth:        25,
			VFov:            20.0,
			LookFrom:        core.NewVec3(13, 2, 3),
			LookAt:          core.NewVec3(0, 0, 0),
			VUp:             core.NewVec3(0, 1, 0),
			DefocusAngle:    0.6,
			FocusDistance:   10.0,
		},
	}
}

// randomMaterial picks a material for a grid sphere:
// 80% diffuse, 15% metal, 5% glass.
func randomMaterial(sampler core.Sampler) core.Material {
	choice := sampler.Get1D()
	switch {
	case choice < 0.8:
		albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
		return material.NewLambertian(albedo)
	case choice < 0.95:
		albedo := core.NewVec3(0.5, 1.0, sampler.Get1D())
		fuzz := 0.5 * sampler.Get1D()
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}
