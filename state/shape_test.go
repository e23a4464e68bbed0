package state

import (
	"math"
	"sort"
	"testing"

	"github.com/embeddr/raytracer-go/geom"
)

const tolerance = 1e-9

func TestSphereIntersect(t *testing.T) {
	tests := []struct {
		name     string
		sphere   Sphere
		ray      geom.Ray
		expected []float64 // sorted ascending; nil for a miss
	}{
		{
			name:     "through center of unit sphere",
			sphere:   Sphere{Center: geom.Vector{}, Radius: 1},
			ray:      geom.Ray{Origin: geom.Vector{Z: -10}, Dir: geom.Vector{Z: 1}},
			expected: []float64{9, 11},
		},
		{
			name:     "through center, radius 2",
			sphere:   Sphere{Center: geom.Vector{}, Radius: 2},
			ray:      geom.Ray{Origin: geom.Vector{Z: -10}, Dir: geom.Vector{Z: 1}},
			expected: []float64{8, 12},
		},
		{
			name:     "lateral offset beyond radius misses",
			sphere:   Sphere{Center: geom.Vector{}, Radius: 1},
			ray:      geom.Ray{Origin: geom.Vector{X: 1.5, Z: -10}, Dir: geom.Vector{Z: 1}},
			expected: nil,
		},
		{
			name:     "tangent ray yields a double root",
			sphere:   Sphere{Center: geom.Vector{}, Radius: 1},
			ray:      geom.Ray{Origin: geom.Vector{X: 1, Z: -10}, Dir: geom.Vector{Z: 1}},
			expected: []float64{10, 10},
		},
		{
			name:     "degenerate zero direction has no hits",
			sphere:   Sphere{Center: geom.Vector{}, Radius: 1},
			ray:      geom.Ray{Origin: geom.Vector{Z: -10}, Dir: geom.Vector{}},
			expected: nil,
		},
		{
			name:     "behind the origin still reports both roots",
			sphere:   Sphere{Center: geom.Vector{Z: -5}, Radius: 1},
			ray:      geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{Z: 1}},
			expected: []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sphere.Intersect(tt.ray)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d roots (%v), want %d (%v)", len(got), got, len(tt.expected), tt.expected)
			}
			sort.Float64s(got)
			for i := range got {
				if math.Abs(got[i]-tt.expected[i]) > tolerance {
					t.Errorf("root %d = %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestSphereIntersectScalesWithDirection(t *testing.T) {
	// The intersection math is scale-aware: doubling the direction halves t.
	sphere := Sphere{Center: geom.Vector{}, Radius: 1}
	ray := geom.Ray{Origin: geom.Vector{Z: -10}, Dir: geom.Vector{Z: 2}}

	got := sphere.Intersect(ray)
	if len(got) != 2 {
		t.Fatalf("got %d roots, want 2", len(got))
	}
	sort.Float64s(got)
	if math.Abs(got[0]-4.5) > tolerance || math.Abs(got[1]-5.5) > tolerance {
		t.Errorf("roots = %v, want [4.5, 5.5]", got)
	}
}

func TestSphereNormal(t *testing.T) {
	sphere := Sphere{Center: geom.Vector{X: 1, Y: 2, Z: 3}, Radius: 2}
	got := sphere.Normal(geom.Vector{X: 3, Y: 2, Z: 3})
	if !vectorsEqual(got, geom.Vector{X: 2}, tolerance) {
		t.Errorf("Normal = %v, want (2, 0, 0)", got)
	}
}

func TestPlaneIntersect(t *testing.T) {
	floor := Plane{Point: geom.Vector{Y: -1}, Norm: geom.Vector{Y: 1}}

	tests := []struct {
		name      string
		ray       geom.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "oblique hit",
			ray:       geom.Ray{Origin: geom.Vector{Y: 1}, Dir: geom.Vector{Y: -1, Z: 1}},
			expectHit: true,
			expectedT: 2,
		},
		{
			name:      "parallel ray misses",
			ray:       geom.Ray{Origin: geom.Vector{Y: 1}, Dir: geom.Vector{X: 1, Z: 1}},
			expectHit: false,
		},
		{
			name:      "plane behind the ray direction misses",
			ray:       geom.Ray{Origin: geom.Vector{Y: 1}, Dir: geom.Vector{Y: 1}},
			expectHit: false,
		},
		{
			name:      "near-parallel below epsilon misses",
			ray:       geom.Ray{Origin: geom.Vector{Y: 1}, Dir: geom.Vector{X: 1, Y: -0.0005}},
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floor.Intersect(tt.ray)
			if tt.expectHit {
				if len(got) != 1 {
					t.Fatalf("got %d roots (%v), want 1", len(got), got)
				}
				if math.Abs(got[0]-tt.expectedT) > tolerance {
					t.Errorf("t = %v, want %v", got[0], tt.expectedT)
				}
			} else if len(got) != 0 {
				t.Errorf("got %v, want no hit", got)
			}
		})
	}
}

func TestPlaneNormalIsConstant(t *testing.T) {
	p := Plane{Point: geom.Vector{}, Norm: geom.Vector{X: 0, Y: 0, Z: -1}}
	for _, point := range []geom.Vector{{}, {X: 5, Y: -3}, {X: 100, Y: 100}} {
		if got := p.Normal(point); !vectorsEqual(got, p.Norm, tolerance) {
			t.Errorf("Normal(%v) = %v, want %v", point, got, p.Norm)
		}
	}
}

func vectorsEqual(a, b geom.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
