package state

import (
	"fmt"

	"github.com/mwindels/rtreego"

	"github.com/embeddr/raytracer-go/geom"
)

// Traverser enumerates the shapes a ray might hit, in some order.  The visit
// callback returns false to stop early (any-hit queries use this).
type Traverser interface {
	Traverse(ray geom.Ray, visit func(Shape) bool)
}

// Scene represents an immutable 3-dimensional space full of shapes, lights,
// and cameras.  A scene is constructed once before the first render pass and
// never mutated during one, so concurrent read access needs no locking.
type Scene struct {
	Spheres []Sphere
	Planes  []Plane
	Lights  []Light
	Cameras []Camera

	traverser Traverser
}

// NewScene validates every material's energy invariant, builds the spatial
// index, and returns a scene ready to render.
func NewScene(spheres []Sphere, planes []Plane, lights []Light, cameras []Camera) (*Scene, error) {
	s := &Scene{
		Spheres: spheres,
		Planes:  planes,
		Lights:  lights,
		Cameras: cameras,
	}

	for i := range s.Spheres {
		if err := s.Spheres[i].Mat.Validate(); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	for i := range s.Planes {
		if err := s.Planes[i].Mat.Validate(); err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
	}

	s.traverser = IndexedTraversal(s)
	return s, nil
}

// SetTraverser overrides the order in which intersection queries visit
// shapes.  The default is IndexedTraversal.
func (s *Scene) SetTraverser(t Traverser) {
	s.traverser = t
}

// Traverse offers candidate shapes for the ray to the visit callback.
func (s *Scene) Traverse(ray geom.Ray, visit func(Shape) bool) {
	s.traverser.Traverse(ray, visit)
}

// linearTraversal walks every shape in authored order: spheres, then planes.
type linearTraversal struct {
	scene *Scene
}

// LinearTraversal returns a traverser which visits every shape in authored
// order.  Ties between shapes at the same distance resolve to whichever was
// authored first, spheres before planes.
func LinearTraversal(s *Scene) Traverser {
	return linearTraversal{scene: s}
}

func (l linearTraversal) Traverse(ray geom.Ray, visit func(Shape) bool) {
	for i := range l.scene.Spheres {
		if !visit(&l.scene.Spheres[i]) {
			return
		}
	}
	for i := range l.scene.Planes {
		if !visit(&l.scene.Planes[i]) {
			return
		}
	}
}

// indexedTraversal prunes sphere candidates through an R-Tree over their
// bounding boxes; planes are unbounded so they are always walked linearly.
type indexedTraversal struct {
	scene   *Scene
	spheres *rtreego.Rtree
}

// IndexedTraversal returns a traverser backed by a spatial index over the
// scene's spheres.
func IndexedTraversal(s *Scene) Traverser {
	index := rtreego.NewTree(3, 2, 5)
	for i := range s.Spheres {
		index.Insert(&s.Spheres[i])
	}
	return indexedTraversal{scene: s, spheres: index}
}

func (x indexedTraversal) Traverse(ray geom.Ray, visit func(Shape) bool) {
	for _, spatial := range x.spheres.SearchCondition(func(nbb *rtreego.Rect) bool { return geom.NewBox(nbb).Intersect(ray) }) {
		if !visit(spatial.(*Sphere)) {
			return
		}
	}
	for i := range x.scene.Planes {
		if !visit(&x.scene.Planes[i]) {
			return
		}
	}
}
