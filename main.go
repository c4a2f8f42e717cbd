package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// createScene builds a scene by name, applying any camera overrides
func createScene(sceneType string, cameraOverrides ...renderer.CameraConfig) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(cameraOverrides...), nil
	case "normals":
		return scene.NewNormalsScene(cameraOverrides...), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'normals'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	aspect := flag.Float64("aspect", 0, "Aspect ratio, width over height (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	seed := flag.Int64("seed", 0, "Base random seed (0 = scene default)")
	workers := flag.Int("workers", 0, "Parallel workers (0 = CPU count, 1 = serial)")
	output := flag.String("output", "", "Output PPM file (default: stdout)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Diffuse and metal spheres on a ground sphere")
		fmt.Println("  normals - Single sphere rendered as surface normals")
		fmt.Println()
		fmt.Println("The image is written as plain PPM (P3); progress goes to stderr.")
		return
	}

	overrides := renderer.CameraConfig{
		ImageWidth:      *width,
		AspectRatio:     *aspect,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Seed:            *seed,
	}

	selectedScene, err := createScene(*sceneType, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		buffered := bufio.NewWriter(file)
		defer buffered.Flush()
		out = buffered
	}

	camera := renderer.NewCamera(selectedScene.CameraConfig)
	raytracer := renderer.NewRaytracer(selectedScene, camera, renderer.NewDefaultLogger())

	startTime := time.Now()
	var stats renderer.RenderStats
	if *workers == 1 {
		stats, err = raytracer.Render(out)
	} else {
		stats, err = raytracer.RenderParallel(out, *workers)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Rendered %dx%d (%d pixels, %.0f samples/pixel) in %v\n",
		camera.ImageWidth(), camera.ImageHeight(),
		stats.TotalPixels, stats.AverageSamples, time.Since(startTime).Round(time.Millisecond))
}
