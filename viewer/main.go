package main

import (
	"flag"
	"log"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/embeddr/raytracer-go/input"
	"github.com/embeddr/raytracer-go/render"
	"github.com/embeddr/raytracer-go/screen"
	"github.com/embeddr/raytracer-go/state"
)

func main() {
	scenePath := flag.String("scene", "scenes/example.json", "path to the scene file")
	width := flag.Int("width", render.DefaultWidth, "canvas width in pixels")
	height := flag.Int("height", render.DefaultHeight, "canvas height in pixels")
	workers := flag.Int("workers", 0, "render workers (0 = one per CPU)")
	flag.Parse()

	// Read in the scene.
	scene, err := state.SceneFromFile(*scenePath)
	if err != nil {
		log.Fatalf("Could not read in scene \"%s\": %v.\n", *scenePath, err)
	}

	// Set up the screen.
	window, surface, err := screen.StartScreen("Raytracer View", *width, *height)
	if err != nil {
		log.Fatalf("Could not start screen: %v.\n", err)
	}
	defer screen.StopScreen(window)

	canvas := screen.NewCanvas(window, surface)
	renderer := render.NewRenderer(*width, *height)
	renderer.Workers = *workers

	// Perform the initial render pass.  A pass blocks until the whole grid
	// is filled; there is no cancellation once started.
	camera := 0
	renderer.Render(scene, scene.Cameras[camera], canvas)

	// Run the input loop, re-rendering wholesale whenever the camera changes.
	for running := true; running; {
		var cameraDelta int
		running, cameraDelta = input.HandleInputs()

		if cameraDelta != 0 {
			count := len(scene.Cameras)
			camera = ((camera+cameraDelta)%count + count) % count
			log.Printf("Rendering with camera %d of %d.\n", camera+1, count)
			renderer.Render(scene, scene.Cameras[camera], canvas)
		}

		sdl.Delay(33)
	}
}
