package state

import (
	"math"

	"github.com/mwindels/rtreego"

	"github.com/embeddr/raytracer-go/geom"
)

// This constant is the lowest possible size of a bounding box in any dimension.
const boundEpsilon float64 = 0.0001

// parallelEpsilon bounds how small a ray/plane denominator may get before
// the ray is treated as parallel to the plane.
const parallelEpsilon float64 = 0.001

// Shape is the capability set shared by all scene geometry.
type Shape interface {
	// Intersect returns the parametric distances at which the ray meets the
	// shape: zero, one, or two entries, in no particular order.  Callers
	// filter and sort against their own distance range.
	Intersect(ray geom.Ray) []float64

	// Normal returns the surface normal at a point on the shape.  The result
	// is not necessarily unit length; callers normalize when the lighting
	// model requires it.
	Normal(point geom.Vector) geom.Vector

	// Material returns the shape's surface material.
	Material() *Material
}

// Sphere represents a sphere in 3-dimensional space.
type Sphere struct {
	Center geom.Vector
	Radius float64
	Mat    Material
}

// Intersect solves the quadratic a*t^2 + b*t + c = 0 for the ray and the
// sphere, returning both roots when the discriminant is non-negative.
func (s *Sphere) Intersect(ray geom.Ray) []float64 {
	cp := ray.Origin.Sub(s.Center)

	a := ray.Dir.Dot(ray.Dir)
	b := 2.0 * cp.Dot(ray.Dir)
	c := cp.Dot(cp) - s.Radius*s.Radius

	// A degenerate (zero-length) direction has no intersection rather than
	// a division by zero.
	if a == 0.0 {
		return nil
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return nil
	}

	root := math.Sqrt(discriminant)
	return []float64{(-b + root) / (2.0 * a), (-b - root) / (2.0 * a)}
}

// Normal returns the outward normal at a surface point, scaled by the radius.
func (s *Sphere) Normal(point geom.Vector) geom.Vector {
	return point.Sub(s.Center)
}

// Material returns the sphere's surface material.
func (s *Sphere) Material() *Material {
	return &s.Mat
}

// Bounds gets the rectangular bounding box containing the sphere s, for use
// by the scene's spatial index.
func (s *Sphere) Bounds() *rtreego.Rect {
	length := math.Max(2.0*s.Radius, boundEpsilon)
	bbox, err := rtreego.NewRect(
		rtreego.Point{s.Center.X - s.Radius, s.Center.Y - s.Radius, s.Center.Z - s.Radius},
		[]float64{length, length, length},
	)
	if err != nil {
		panic(err)
	}
	return bbox
}

// Plane represents an infinite plane defined by a point and a normal.
type Plane struct {
	Point geom.Vector
	Norm  geom.Vector
	Mat   Material
}

// Intersect returns the single parametric distance at which the ray meets
// the plane.  Near-parallel rays and rays pointing away from the plane miss:
// planes are one-sided with respect to the ray's own direction.
func (p *Plane) Intersect(ray geom.Ray) []float64 {
	denominator := ray.Dir.Dot(p.Norm)
	if math.Abs(denominator) < parallelEpsilon {
		return nil
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Norm) / denominator
	if t < 0.0 {
		return nil
	}

	return []float64{t}
}

// Normal returns the plane's constant normal.
func (p *Plane) Normal(point geom.Vector) geom.Vector {
	return p.Norm
}

// Material returns the plane's surface material.
func (p *Plane) Material() *Material {
	return &p.Mat
}
