// Package screen provides the SDL2 window and the framebuffer sink the
// renderer draws through.
package screen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/embeddr/raytracer-go/colour"
)

// StartScreen initializes SDL2 and a new window.
func StartScreen(name string, width, height int) (*sdl.Window, *sdl.Surface, error) {
	complete := false

	// Start SDL2.
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			sdl.Quit() // Only want to call Quit if this function doesn't complete.
		}
	}()

	// Create new window.
	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, err
	}

	// Get the screen from the new window.
	surface, err := window.GetSurface()
	if err != nil {
		window.Destroy()
		return nil, nil, err
	}

	complete = true
	return window, surface, nil
}

// StopScreen closes SDL2 and some window.
func StopScreen(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}

// Canvas adapts an SDL surface to the renderer's pixel sink.  The renderer
// addresses pixels with the origin at the grid center and +y up; the surface
// stores them top-left origin with +y down, so writes flip the y axis.
type Canvas struct {
	window  *sdl.Window
	surface *sdl.Surface
}

// NewCanvas wraps a window and its surface as a render sink.
func NewCanvas(window *sdl.Window, surface *sdl.Surface) *Canvas {
	return &Canvas{window: window, surface: surface}
}

// surfacePoint maps signed, center-origin coordinates to surface indices.
// The renderer hands out x in [-w/2, -w/2+w) and y in [-h/2, -h/2+h), which
// is asymmetric for odd dimensions, so the y flip anchors on the top row
// rather than the center.
func surfacePoint(w, h, x, y int) (int, int) {
	return w/2 + x, (h-1)/2 - y
}

// PutPixel places a colour at the signed, center-origin coordinates.
func (c *Canvas) PutPixel(x, y int, col colour.RGB) {
	sx, sy := surfacePoint(int(c.surface.W), int(c.surface.H), x, y)
	c.surface.Set(sx, sy, col)
}

// Publish makes prior PutPixel calls visible on the window.
func (c *Canvas) Publish() {
	c.window.UpdateSurface()
}
