package geom

import (
	"math"

	"github.com/mwindels/rtreego"
)

// Box represents a rectangular 3-dimensional axis-aligned box.
type Box struct {
	MinCorner Vector // The position of the corner with the smallest coordinate values.
	MaxCorner Vector // The position of the corner with the largest coordinate values.
}

// NewBox creates a new box from an R-Tree's bounding box.
func NewBox(bbox *rtreego.Rect) Box {
	return Box{
		MinCorner: Vector{bbox.PointCoord(0), bbox.PointCoord(1), bbox.PointCoord(2)},
		MaxCorner: Vector{bbox.PointCoord(0) + bbox.LengthsCoord(0), bbox.PointCoord(1) + bbox.LengthsCoord(1), bbox.PointCoord(2) + bbox.LengthsCoord(2)},
	}
}

// Intersect determines whether a ray intersects the box b at a non-negative
// parameter.  This is the slab test; it is used to prune spatial index
// traversal, so it only needs to never report false for a real hit.
func (b Box) Intersect(r Ray) bool {
	tMin, tMax := math.Inf(-1), math.Inf(1)

	lows := [3]float64{b.MinCorner.X, b.MinCorner.Y, b.MinCorner.Z}
	highs := [3]float64{b.MaxCorner.X, b.MaxCorner.Y, b.MaxCorner.Z}
	origins := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dirs := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}

	for axis := 0; axis < 3; axis++ {
		// A ray parallel to this axis never crosses its slab; dividing by
		// the near-zero component would produce NaNs when the origin sits
		// exactly on a slab boundary.
		if math.Abs(dirs[axis]) < 1e-12 {
			if origins[axis] < lows[axis] || origins[axis] > highs[axis] {
				return false
			}
			continue
		}

		inv := 1.0 / dirs[axis]
		t0 := (lows[axis] - origins[axis]) * inv
		t1 := (highs[axis] - origins[axis]) * inv
		if inv < 0.0 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax < tMin {
			return false
		}
	}

	return tMax >= 0.0
}
