// Package state provides the immutable scene model consumed by the tracer.
package state

import (
	"fmt"
	"log"
	"math"

	"github.com/mwindels/gwob"

	"github.com/embeddr/raytracer-go/colour"
)

// Material represents the surface properties shared by one or more shapes.
type Material struct {
	Colour       colour.RGB
	Specularity  float64 // Specular exponent; 0 disables the specular term.
	Reflectivity float64 // Fraction of reflected colour, in [0, 1].
	Transparency float64 // Fraction of refracted colour, in [0, 1].
	Refractivity float64 // Refractive index; 0 disables bending.
}

// Validate checks the material's invariants.  The remaining weight after
// reflectivity and transparency is the local surface colour, so their sum
// must not exceed 1 or colour accumulation would go negative.
func (m Material) Validate() error {
	if m.Reflectivity < 0.0 || m.Reflectivity > 1.0 {
		return fmt.Errorf("reflectivity %v outside [0, 1]", m.Reflectivity)
	}
	if m.Transparency < 0.0 || m.Transparency > 1.0 {
		return fmt.Errorf("transparency %v outside [0, 1]", m.Transparency)
	}
	if m.Reflectivity+m.Transparency > 1.0 {
		return fmt.Errorf("reflectivity %v + transparency %v exceeds 1", m.Reflectivity, m.Transparency)
	}
	if m.Specularity < 0.0 {
		return fmt.Errorf("specularity %v is negative", m.Specularity)
	}
	if m.Refractivity < 0.0 {
		return fmt.Errorf("refractivity %v is negative", m.Refractivity)
	}
	return nil
}

// channel converts a [0, 1] material library component to an 8-bit channel.
func channel(c float32) uint8 {
	return uint8(math.Max(0.0, math.Min(float64(c), 1.0)) * 255.0)
}

// MaterialsFromMTL reads named materials from a Wavefront material library.
// The diffuse colour maps to the material colour, the specular exponent maps
// directly, and the mean specular coefficient maps to reflectivity.  MTL
// materials carry no transparency or refraction parameters we honour, so
// they come out opaque.
func MaterialsFromMTL(path string) (map[string]Material, error) {
	options := gwob.ObjParserOptions{Logger: func(s string) { log.Println(s) }}

	lib, err := gwob.ReadMaterialLibFromFile(path, &options)
	if err != nil {
		return nil, fmt.Errorf("material library %q: %w", path, err)
	}

	materials := make(map[string]Material, len(lib.Lib))
	for name, mat := range lib.Lib {
		ks := (float64(mat.Ks[0]) + float64(mat.Ks[1]) + float64(mat.Ks[2])) / 3.0
		materials[name] = Material{
			Colour:       colour.New(channel(mat.Kd[0]), channel(mat.Kd[1]), channel(mat.Kd[2])),
			Specularity:  float64(mat.Ns),
			Reflectivity: math.Max(0.0, math.Min(ks, 1.0)),
		}
	}

	return materials, nil
}
