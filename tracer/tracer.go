// Package tracer implements the recursive ray-tracing kernel: intersection
// queries against the scene, the lighting model, and colour composition.
package tracer

import (
	"math"

	"github.com/embeddr/raytracer-go/colour"
	"github.com/embeddr/raytracer-go/geom"
	"github.com/embeddr/raytracer-go/state"
)

// Epsilon biases ray ranges so a secondary ray does not immediately
// re-intersect the surface it was spawned from.
const Epsilon = 0.001

// DefaultDepth is the default recursion bound for reflection and refraction
// branches.  Higher values trade runtime for multi-bounce fidelity.
const DefaultDepth = 2

// Background is the colour returned for rays that escape the scene.
var Background = colour.White

// Mode selects how an intersection query terminates.
type Mode int

const (
	// Closest tracks the minimum valid distance across all shapes; used for
	// primary visibility.
	Closest Mode = iota
	// Any returns as soon as one valid candidate is found; used for shadow
	// occlusion tests, where existence is all that matters.
	Any
)

// Hit is an intersection query result.  Shape is a non-owning view into the
// scene's shape storage; its lifetime is bounded by the scene.
type Hit struct {
	T     float64
	Shape state.Shape
}

// FindIntersect queries the scene for a ray intersection.  A candidate
// distance t is valid iff tMin < t < tMax, strictly: hits exactly on either
// boundary do not count.
func FindIntersect(scene *state.Scene, ray geom.Ray, tMin, tMax float64, mode Mode) (Hit, bool) {
	closest := Hit{T: math.Inf(1)}
	found := false

	scene.Traverse(ray, func(shape state.Shape) bool {
		for _, t := range shape.Intersect(ray) {
			if t <= tMin || t >= tMax {
				continue
			}
			if mode == Any {
				closest = Hit{T: t, Shape: shape}
				found = true
				return false
			}
			if t < closest.T {
				closest = Hit{T: t, Shape: shape}
				found = true
			}
		}
		return true
	})

	return closest, found
}

// reflectAcrossNormal reflects v across the unit-length normal.
func reflectAcrossNormal(v, normal geom.Vector) geom.Vector {
	return v.Project(normal).Scale(2.0).Sub(v)
}

// refract bends dir through a surface with unit normal and the given
// refractive index, using Snell's law.  The sign of normal·dir decides
// whether the ray is entering or exiting.  A refractivity of zero disables
// bending, and total internal reflection falls back to reflecting across
// the normal.
func refract(dir, normal geom.Vector, refractivity float64) geom.Vector {
	if refractivity == 0.0 {
		return dir
	}

	d := dir.Norm()
	n := normal
	cos := -d.Dot(n)

	var ratio float64
	if cos < 0.0 {
		// Exiting: the normal faces away from the incoming side.
		n = n.Neg()
		cos = -cos
		ratio = refractivity
	} else {
		ratio = 1.0 / refractivity
	}

	radicand := 1.0 - ratio*ratio*(1.0-cos*cos)
	if radicand < 0.0 {
		// Total internal reflection: no transmitted ray exists.
		return reflectAcrossNormal(d.Neg(), n)
	}

	return d.Scale(ratio).Add(n.Scale(ratio*cos - math.Sqrt(radicand)))
}

// ComputeLighting accumulates the incident light intensity at a surface
// point over every light in the scene.  The view parameter is the direction
// of the ray being traced (pointing at the surface), and specularity of zero
// disables the specular term.  The result is unbounded above; the shading
// stage saturates colour channels.
func ComputeLighting(scene *state.Scene, point, normal, view geom.Vector, specularity float64) float64 {
	intensity := 0.0

	for _, light := range scene.Lights {
		if light.Type == state.Ambient {
			intensity += light.Intensity
			continue
		}

		var direction geom.Vector
		var maxOcclusion float64
		if light.Type == state.Directional {
			direction = light.Dir
			maxOcclusion = math.Inf(1)
		} else {
			direction = light.Pos.Sub(point)
			maxOcclusion = 1.0
		}

		// Hard shadows: any occluder strictly between the surface and the
		// light removes this light's contribution entirely.
		if _, occluded := FindIntersect(scene, geom.Ray{Origin: point, Dir: direction}, Epsilon, maxOcclusion, Any); occluded {
			continue
		}

		// Diffuse: cosine falloff, with explicit division so unnormalized
		// inputs are handled.
		if normalDotDir := normal.Dot(direction); normalDotDir > 0.0 {
			intensity += light.Intensity * normalDotDir / (normal.Len() * direction.Len())
		}

		// Specular: cos(alpha)^specularity, where alpha is the angle between
		// the light's reflection and the direction back toward the viewer.
		if specularity > 0.0 {
			reflection := reflectAcrossNormal(direction, normal)
			if reflectionDotView := reflection.Dot(view.Neg()); reflectionDotView > 0.0 {
				cos := reflectionDotView / (reflection.Len() * view.Len())
				intensity += light.Intensity * math.Pow(cos, specularity)
			}
		}
	}

	return intensity
}

// TraceRay returns the colour seen along the ray within (tMin, tMax).  The
// depth parameter bounds the reflection and refraction recursion; the local
// ambient/diffuse/specular term is computed regardless of depth.  Rays that
// escape the scene yield the background colour.
func TraceRay(scene *state.Scene, ray geom.Ray, tMin, tMax float64, depth int) colour.RGB {
	hit, found := FindIntersect(scene, ray, tMin, tMax, Closest)
	if !found {
		return Background
	}

	point := ray.At(hit.T)
	normal := hit.Shape.Normal(point).Norm()
	material := hit.Shape.Material()

	var reflected colour.RGB
	if depth > 0 && material.Reflectivity > 0.0 {
		reflectedRay := geom.Ray{Origin: point, Dir: reflectAcrossNormal(ray.Dir.Neg(), normal)}
		// Scaling the bias by the hit distance keeps it proportional at
		// varying scene scales.
		reflected = TraceRay(scene, reflectedRay, Epsilon*hit.T, math.Inf(1), depth-1).Scale(material.Reflectivity)
	}

	var refracted colour.RGB
	if depth > 0 && material.Transparency > 0.0 {
		refractedRay := geom.Ray{Origin: point, Dir: refract(ray.Dir, normal, material.Refractivity)}
		refracted = TraceRay(scene, refractedRay, Epsilon, math.Inf(1), depth-1).Scale(material.Transparency)
	}

	local := material.Colour.Scale(1.0 - material.Reflectivity - material.Transparency)
	blend := local.Add(reflected).Add(refracted)

	return blend.Scale(ComputeLighting(scene, point, normal, ray.Dir, material.Specularity))
}
