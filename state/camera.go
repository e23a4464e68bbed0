package state

import (
	"fmt"

	"github.com/embeddr/raytracer-go/geom"
)

// GlobalUp is the world up direction used to derive camera orientations.
// Because Go doesn't support constant structures, this has to be a variable.
var GlobalUp = geom.Vector{X: 0, Y: 1, Z: 0}

// Camera represents a camera in 3-dimensional space.  The transform's
// translation is the camera position and its linear part is the orientation,
// mapping viewport coordinates (+x right, +y up, +z forward) into the world.
type Camera struct {
	Transform geom.Transform
}

// NewCamera initializes a camera at a position with an explicit orientation.
func NewCamera(pos geom.Vector, orientation geom.Mat3) Camera {
	return Camera{Transform: geom.Transform{Linear: orientation, Translation: pos}}
}

// LookAtCamera initializes a camera at a position, oriented toward a target.
// The orientation basis is derived from the global up vector, so a view
// direction parallel to it has no well-defined basis and is rejected.
func LookAtCamera(pos, target geom.Vector) (Camera, error) {
	dir := target.Sub(pos)
	if dir.Cross(GlobalUp).Zero() {
		return Camera{}, fmt.Errorf("camera direction %v is parallel to global up %v", dir, GlobalUp)
	}

	forward := dir.Norm()
	right := GlobalUp.Cross(forward).Norm()
	up := forward.Cross(right) // This is already normalized.

	orientation := geom.Mat3{
		right.X, right.Y, right.Z,
		up.X, up.Y, up.Z,
		forward.X, forward.Y, forward.Z,
	}
	return NewCamera(pos, orientation), nil
}

// Pos returns the camera's position.
func (c Camera) Pos() geom.Vector {
	return c.Transform.Translation
}
