package state

import "github.com/embeddr/raytracer-go/geom"

// LightType discriminates the light variants.
type LightType int

// The supported light variants.
const (
	Ambient LightType = iota
	Point
	Directional
)

// Light represents a light source in 3-dimensional space.
// Intensity is conventionally in [0, 1] but is not clamped; the sum of all
// lights' contributions may exceed 1 and is saturated downstream.
type Light struct {
	Type      LightType
	Intensity float64
	Pos       geom.Vector // Point lights only.
	Dir       geom.Vector // Directional lights only.
}

// NewAmbientLight returns a light which illuminates every point equally.
func NewAmbientLight(intensity float64) Light {
	return Light{Type: Ambient, Intensity: intensity}
}

// NewPointLight returns a light radiating from a position.
func NewPointLight(intensity float64, pos geom.Vector) Light {
	return Light{Type: Point, Intensity: intensity, Pos: pos}
}

// NewDirectionalLight returns a light shining from a fixed direction.
func NewDirectionalLight(intensity float64, dir geom.Vector) Light {
	return Light{Type: Directional, Intensity: intensity, Dir: dir}
}
