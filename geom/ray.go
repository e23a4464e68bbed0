package geom

// Ray represents a parametric ray with an origin and a direction.
// The direction need not be unit length; intersection math is scale-aware,
// so callers are responsible for consistent scaling.
type Ray struct {
	Origin Vector
	Dir    Vector
}

// At returns the point along the ray at parameter t.
func (r Ray) At(t float64) Vector {
	return r.Origin.Add(r.Dir.Scale(t))
}
