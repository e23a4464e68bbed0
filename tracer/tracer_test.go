package tracer

import (
	"math"
	"testing"

	"github.com/embeddr/raytracer-go/geom"
	"github.com/embeddr/raytracer-go/state"
)

const tolerance = 1e-9

func mustScene(t *testing.T, spheres []state.Sphere, planes []state.Plane, lights []state.Light) *state.Scene {
	t.Helper()
	scene, err := state.NewScene(spheres, planes, lights, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Authored shape order matters for the tie checks below.
	scene.SetTraverser(state.LinearTraversal(scene))
	return scene
}

func TestFindIntersectClosest(t *testing.T) {
	// Two overlapping spheres along the same ray: closest mode must return
	// the one whose valid t is smaller.
	near := state.Sphere{Center: geom.Vector{Z: 5}, Radius: 1}
	far := state.Sphere{Center: geom.Vector{Z: 6}, Radius: 1}
	scene := mustScene(t, []state.Sphere{far, near}, nil, nil)

	ray := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{Z: 1}}
	hit, found := FindIntersect(scene, ray, 0.001, math.Inf(1), Closest)
	if !found {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-4.0) > tolerance {
		t.Errorf("closest t = %v, want 4", hit.T)
	}
	if hit.Shape != &scene.Spheres[1] {
		t.Error("closest hit did not come from the nearer sphere")
	}
}

func TestFindIntersectAny(t *testing.T) {
	near := state.Sphere{Center: geom.Vector{Z: 5}, Radius: 1}
	far := state.Sphere{Center: geom.Vector{Z: 6}, Radius: 1}
	scene := mustScene(t, []state.Sphere{far, near}, nil, nil)

	ray := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{Z: 1}}

	// Any mode returns the first valid candidate in traversal order: the
	// "far" sphere is authored first, so its first root wins.
	hit, found := FindIntersect(scene, ray, 0.001, math.Inf(1), Any)
	if !found {
		t.Fatal("any-hit mode missed an existing intersection")
	}
	if hit.Shape != &scene.Spheres[0] {
		t.Error("any-hit did not stop at the first shape in traversal order")
	}

	// A tight range with no candidates inside reports no hit in either mode.
	if _, found := FindIntersect(scene, ray, 0.001, 1.0, Any); found {
		t.Error("any-hit reported an intersection outside the range")
	}
	if _, found := FindIntersect(scene, ray, 0.001, 1.0, Closest); found {
		t.Error("closest reported an intersection outside the range")
	}
}

func TestFindIntersectBoundsExclusive(t *testing.T) {
	// A shape exactly at the occlusion boundary must not count: candidates
	// are valid iff tMin < t < tMax, strictly.
	sphere := state.Sphere{Center: geom.Vector{Z: 2}, Radius: 1}
	scene := mustScene(t, []state.Sphere{sphere}, nil, nil)
	ray := geom.Ray{Origin: geom.Vector{}, Dir: geom.Vector{Z: 1}}

	// Roots are exactly t=1 and t=3.
	if _, found := FindIntersect(scene, ray, 1.0, 3.0, Any); found {
		t.Error("boundary hits should be excluded")
	}
	if hit, found := FindIntersect(scene, ray, 0.999, 3.0, Closest); !found || math.Abs(hit.T-1.0) > tolerance {
		t.Errorf("hit inside the range not found: %v %v", hit, found)
	}
}

func TestReflectAcrossNormal(t *testing.T) {
	tests := []struct {
		name     string
		v        geom.Vector
		normal   geom.Vector
		expected geom.Vector
	}{
		{
			name:     "head-on reflects back",
			v:        geom.Vector{Z: -1},
			normal:   geom.Vector{Z: -1},
			expected: geom.Vector{Z: -1},
		},
		{
			name:     "45 degrees",
			v:        geom.Vector{X: -1, Y: 1},
			normal:   geom.Vector{Y: 1},
			expected: geom.Vector{X: 1, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reflectAcrossNormal(tt.v, tt.normal); !vectorsEqual(got, tt.expected, tolerance) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRefract(t *testing.T) {
	up := geom.Vector{Y: 1}

	t.Run("zero refractivity passes through unbent", func(t *testing.T) {
		dir := geom.Vector{X: 1, Y: -2, Z: 0.5}
		if got := refract(dir, up, 0.0); !vectorsEqual(got, dir, tolerance) {
			t.Errorf("got %v, want %v", got, dir)
		}
	})

	t.Run("matched media pass through unbent", func(t *testing.T) {
		dir := geom.Vector{X: 1, Y: -1}.Norm()
		if got := refract(dir, up, 1.0); !vectorsEqual(got, dir, tolerance) {
			t.Errorf("got %v, want %v", got, dir)
		}
	})

	t.Run("along the normal passes through for any index", func(t *testing.T) {
		dir := geom.Vector{Y: -1}
		if got := refract(dir, up, 1.5); !vectorsEqual(got, dir, tolerance) {
			t.Errorf("got %v, want %v", got, dir)
		}
	})

	t.Run("entering a denser medium bends toward the normal", func(t *testing.T) {
		dir := geom.Vector{X: 1, Y: -1}.Norm()
		got := refract(dir, up, 1.5)
		// Snell: sin(theta_t) = sin(45 deg) / 1.5.
		sinT := math.Sin(math.Pi/4.0) / 1.5
		if math.Abs(got.X-sinT) > 1e-9 || got.Y >= 0 {
			t.Errorf("refracted %v, want x=%v, y<0", got, sinT)
		}
		if math.Abs(got.Len()-1.0) > 1e-9 {
			t.Errorf("refracted direction not unit length: %v", got.Len())
		}
	})

	t.Run("total internal reflection reflects instead", func(t *testing.T) {
		// Exiting a dense medium at a grazing angle: sin(theta) * 1.5 > 1.
		dir := geom.Vector{X: 1, Y: 0.2}.Norm()
		got := refract(dir, up, 1.5)
		if got.Y >= 0 {
			t.Errorf("TIR direction %v should stay below the surface", got)
		}
		if math.Abs(got.X-dir.X) > tolerance || math.Abs(got.Y- -dir.Y) > tolerance {
			t.Errorf("TIR direction %v is not the mirror of %v", got, dir)
		}
	})
}

func vectorsEqual(a, b geom.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
