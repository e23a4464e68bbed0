// Package input provides functionality for event parsing.
package input

import "github.com/veandco/go-sdl2/sdl"

// HandleInputs parses all input events waiting in the queue.
// This function returns whether the program should keep running, and how far
// the active camera selection should cycle (left/right arrow keys).
func HandleInputs() (bool, int) {
	running := true
	cameraDelta := 0

	// Pull every event out of the queue and evaluate/apply it.
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Mod == sdl.KMOD_NONE {
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_LEFT:
					cameraDelta--
				case sdl.K_RIGHT:
					cameraDelta++
				}
			}
		}
	}

	return running, cameraDelta
}
