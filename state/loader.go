package state

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/embeddr/raytracer-go/colour"
	"github.com/embeddr/raytracer-go/geom"
)

// The stored* types mirror the scene file's JSON layout.  Vectors are stored
// as 3-element arrays, rotations as XYZ Euler angles in degrees.

type storedMaterial struct {
	Colour       [3]uint8 `json:"colour"`
	Specularity  float64  `json:"specularity"`
	Reflectivity float64  `json:"reflectivity"`
	Transparency float64  `json:"transparency"`
	Refractivity float64  `json:"refractivity"`
}

type storedSphere struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

type storedPlane struct {
	Point    [3]float64 `json:"point"`
	Normal   [3]float64 `json:"normal"`
	Material string     `json:"material"`
}

type storedLight struct {
	Type      string     `json:"type"`
	Intensity float64    `json:"intensity"`
	Position  [3]float64 `json:"position"`
	Direction [3]float64 `json:"direction"`
}

type storedCamera struct {
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"`
}

type storedScene struct {
	MtlLib    string                    `json:"mtllib"`
	Materials map[string]storedMaterial `json:"materials"`
	Spheres   []storedSphere            `json:"spheres"`
	Planes    []storedPlane             `json:"planes"`
	Lights    []storedLight             `json:"lights"`
	Cameras   []storedCamera            `json:"cameras"`
}

func vector(v [3]float64) geom.Vector {
	return geom.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// orientation builds a rotation from XYZ Euler angles in degrees, applied in
// X, Y, Z order.
func orientation(rotation [3]float64) geom.Mat3 {
	const degree = math.Pi / 180.0
	x := geom.RotationX(rotation[0] * degree)
	y := geom.RotationY(rotation[1] * degree)
	z := geom.RotationZ(rotation[2] * degree)
	return x.Mul(y).Mul(z)
}

// SceneFromFile reads a scene description from a JSON file.  Materials are
// looked up by name from the file's material table, optionally extended by a
// Wavefront material library referenced through the "mtllib" key (the file's
// own table wins on name collisions).
func SceneFromFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %q: %w", path, err)
	}

	var stored storedScene
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("scene: parse %q: %w", path, err)
	}

	materials := make(map[string]Material)
	if stored.MtlLib != "" {
		mtlPath := stored.MtlLib
		if !filepath.IsAbs(mtlPath) {
			mtlPath = filepath.Join(filepath.Dir(path), mtlPath)
		}
		materials, err = MaterialsFromMTL(mtlPath)
		if err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}
	for name, m := range stored.Materials {
		materials[name] = Material{
			Colour:       colour.New(m.Colour[0], m.Colour[1], m.Colour[2]),
			Specularity:  m.Specularity,
			Reflectivity: m.Reflectivity,
			Transparency: m.Transparency,
			Refractivity: m.Refractivity,
		}
	}

	lookup := func(name string) (Material, error) {
		mat, exists := materials[name]
		if !exists {
			return Material{}, fmt.Errorf("unknown material %q", name)
		}
		return mat, nil
	}

	spheres := make([]Sphere, 0, len(stored.Spheres))
	for i, s := range stored.Spheres {
		mat, err := lookup(s.Material)
		if err != nil {
			return nil, fmt.Errorf("scene: sphere %d: %w", i, err)
		}
		spheres = append(spheres, Sphere{Center: vector(s.Center), Radius: s.Radius, Mat: mat})
	}

	planes := make([]Plane, 0, len(stored.Planes))
	for i, p := range stored.Planes {
		mat, err := lookup(p.Material)
		if err != nil {
			return nil, fmt.Errorf("scene: plane %d: %w", i, err)
		}
		planes = append(planes, Plane{Point: vector(p.Point), Norm: vector(p.Normal), Mat: mat})
	}

	lights := make([]Light, 0, len(stored.Lights))
	for i, l := range stored.Lights {
		switch l.Type {
		case "ambient":
			lights = append(lights, NewAmbientLight(l.Intensity))
		case "point":
			lights = append(lights, NewPointLight(l.Intensity, vector(l.Position)))
		case "directional":
			lights = append(lights, NewDirectionalLight(l.Intensity, vector(l.Direction)))
		default:
			return nil, fmt.Errorf("scene: light %d: unknown type %q", i, l.Type)
		}
	}

	if len(stored.Cameras) == 0 {
		return nil, fmt.Errorf("scene: %q defines no cameras", path)
	}
	cameras := make([]Camera, 0, len(stored.Cameras))
	for _, c := range stored.Cameras {
		cameras = append(cameras, NewCamera(vector(c.Position), orientation(c.Rotation)))
	}

	scene, err := NewScene(spheres, planes, lights, cameras)
	if err != nil {
		return nil, fmt.Errorf("scene: %q: %w", path, err)
	}
	return scene, nil
}
