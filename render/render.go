// Package render drives the tracer across an output grid, partitioning the
// canvas columns between workers and writing pixels through an external sink.
package render

import (
	"math"
	"runtime"
	"sync"

	"github.com/embeddr/raytracer-go/colour"
	"github.com/embeddr/raytracer-go/geom"
	"github.com/embeddr/raytracer-go/state"
	"github.com/embeddr/raytracer-go/tracer"
)

// Canvas is the framebuffer sink the renderer writes through.  Coordinates
// are signed with the origin at the grid center, +x right and +y up; the
// sink performs any flip its own storage needs.  PutPixel calls for distinct
// pixels may arrive concurrently from different workers, but never for the
// same pixel.  Publish is called once, after every worker has finished.
type Canvas interface {
	PutPixel(x, y int, c colour.RGB)
	Publish()
}

// Default canvas and viewport dimensions.
const (
	DefaultWidth  = 800
	DefaultHeight = 600

	defaultViewportWidth  = 1.0
	defaultViewportHeight = 0.75
	defaultViewportDepth  = 0.75
)

// Renderer holds the fixed parameters of a render pass.
type Renderer struct {
	Width  int // Canvas width in pixels.
	Height int // Canvas height in pixels.

	// Workers is the number of column ranges the canvas is split into, one
	// worker per range.  Zero means one per CPU.
	Workers int

	// MaxDepth bounds the reflection/refraction recursion.
	MaxDepth int

	// Viewport dimensions: the size of the projection plane in world units
	// and its distance along the camera's forward axis.
	ViewportWidth  float64
	ViewportHeight float64
	ViewportDepth  float64
}

// NewRenderer returns a renderer with the default canvas and viewport shape.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:          width,
		Height:         height,
		MaxDepth:       tracer.DefaultDepth,
		ViewportWidth:  defaultViewportWidth,
		ViewportHeight: defaultViewportHeight,
		ViewportDepth:  defaultViewportDepth,
	}
}

// canvasToViewport maps signed canvas pixel coordinates to a point on the
// viewport plane, in camera space.
func (r *Renderer) canvasToViewport(x, y int) geom.Vector {
	return geom.Vector{
		X: float64(x) * r.ViewportWidth / float64(r.Width),
		Y: float64(y) * r.ViewportHeight / float64(r.Height),
		Z: r.ViewportDepth,
	}
}

// Render traces every pixel of the canvas for the given scene and camera and
// writes the results through the sink.  Workers are spawned fresh for the
// pass, each owning a contiguous, non-overlapping column range, and are all
// joined before the sink is asked to publish.  The scene is read-only for
// the duration, so output is identical for any worker count.
func (r *Renderer) Render(scene *state.Scene, cam state.Camera, canvas Canvas) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > r.Width {
		workers = r.Width
	}

	xMin := -r.Width / 2
	yMin := -r.Height / 2
	columnsPer := r.Width / workers

	var wg sync.WaitGroup
	for k := 0; k < workers; k++ {
		x0 := xMin + k*columnsPer
		x1 := x0 + columnsPer
		if k == workers-1 {
			// The last range absorbs the remainder.
			x1 = xMin + r.Width
		}

		wg.Add(1)
		go func(x0, x1 int) {
			defer wg.Done()
			for x := x0; x < x1; x++ {
				for y := yMin; y < yMin+r.Height; y++ {
					viewportPoint := r.canvasToViewport(x, y)
					ray := geom.Ray{
						Origin: cam.Pos(),
						Dir:    cam.Transform.ApplyVector(viewportPoint),
					}
					// The 1.0 lower bound excludes the viewport plane itself.
					canvas.PutPixel(x, y, tracer.TraceRay(scene, ray, 1.0, math.Inf(1), r.MaxDepth))
				}
			}
		}(x0, x1)
	}
	wg.Wait()

	canvas.Publish()
}
