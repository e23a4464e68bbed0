package geom

import "math"

// Mat3 is a 3x3 linear transform stored in row-major order.
// Vectors are treated as row vectors, so application is v' = v*M.
type Mat3 [9]float64

// Identity returns the identity transform.
func Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotationX returns a rotation of theta radians about the x axis.
// A positive angle turns +z toward -y.
func RotationX(theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	return Mat3{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
	}
}

// RotationY returns a rotation of theta radians about the y axis.
// A positive angle turns +z toward +x.
func RotationY(theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	return Mat3{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
	}
}

// RotationZ returns a rotation of theta radians about the z axis.
// A positive angle turns +x toward +y.
func RotationZ(theta float64) Mat3 {
	sin, cos := math.Sincos(theta)
	return Mat3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// Mul returns the product a*b.  Under the row-vector convention, the
// combined transform applies a first, then b.
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*i+j] = a[3*i]*b[j] + a[3*i+1]*b[3+j] + a[3*i+2]*b[6+j]
		}
	}
	return m
}

// Apply returns the row vector v multiplied by the matrix m.
func (m Mat3) Apply(v Vector) Vector {
	return Vector{
		X: v.X*m[0] + v.Y*m[3] + v.Z*m[6],
		Y: v.X*m[1] + v.Y*m[4] + v.Z*m[7],
		Z: v.X*m[2] + v.Y*m[5] + v.Z*m[8],
	}
}

// Transform composes a linear transform with a translation.
// The linear part should be orthonormal (a rotation) for physically
// meaningful camera orientations.
type Transform struct {
	Linear      Mat3
	Translation Vector
}

// Apply returns v*Linear + Translation.
func (t Transform) Apply(v Vector) Vector {
	return t.Linear.Apply(v).Add(t.Translation)
}

// ApplyVector applies only the linear part of the transform, for quantities
// like directions which do not translate.
func (t Transform) ApplyVector(v Vector) Vector {
	return t.Linear.Apply(v)
}
