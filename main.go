package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/renderer"
	"github.com/df07/go-path-tracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	output := flag.String("o", "", "Output file (default stdout)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Path Tracer")
		fmt.Println("Renders the cover scene as a plain-text PPM (P3) image.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := log.New(os.Stderr, "", 0)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(*seed)))

	s := scene.NewCoverScene(sampler)
	config := overrideConfig(s.CameraConfig, *width, *samples, *depth)

	var out io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logger.Fatalf("Error creating output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	camera := renderer.NewCamera(config)

	startTime := time.Now()
	if err := camera.Render(s.World, out, sampler); err != nil {
		logger.Fatalf("Render failed: %v", err)
	}
	logger.Printf("Render completed in %v (%dx%d, %d spp)",
		time.Since(startTime), camera.ImageWidth(), camera.ImageHeight(), config.SamplesPerPixel)
}

// overrideConfig applies non-zero command line overrides to the scene's
// default camera configuration
func overrideConfig(config renderer.CameraConfig, width, samples, depth int) renderer.CameraConfig {
	if width > 0 {
		config.Width = width
	}
	if samples > 0 {
		config.SamplesPerPixel = samples
	}
	if depth > 0 {
		config.MaxDepth = depth
	}
	return config
}
