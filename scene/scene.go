package scene

import (
	"math"

	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/prng"
	"github.com/geometrian/spectraltracer/spectral"
)

// Scene is a whole self-contained scene: its camera, every material
// (owned by name, arena-style, rather than individually heap-allocated
// and reference-counted as in the original), every primitive, and the
// subset of primitives that are lights.
type Scene struct {
	Camera Camera

	Materials map[string]*Material
	Primitives []*Primitive
	Lights     []*Primitive
}

// New builds an empty scene with its material map initialized.
func New() *Scene {
	return &Scene{Materials: map[string]*Material{}}
}

// Finalize derives the light list from the primitives' IsLight flags and
// initializes the camera. Must run once after the scene's primitives and
// camera fields are fully populated.
func (s *Scene) Finalize() {
	s.Camera.Init()
	s.Lights = s.Lights[:0]
	for _, p := range s.Primitives {
		if p.IsLight {
			s.Lights = append(s.Lights, p)
		}
	}
	if len(s.Lights) == 0 {
		panic(spectral.InvariantViolation{Msg: "no emissive primitives; every scene needs at least one light"})
	}
}

// Intersect finds the closest primitive the ray hits, optionally
// ignoring a specific primitive (used to avoid immediate self-
// intersection when continuing a path from a surface).
func (s *Scene) Intersect(ray geom.Ray, ignore *Primitive) (*geom.HitRecord, bool) {
	hit := &geom.HitRecord{Dist: float32(math.Inf(1))}
	found := false
	for _, p := range s.Primitives {
		if p == ignore {
			continue
		}
		if p.Intersect(ray, hit) {
			found = true
		}
	}
	return hit, found
}

// RandTowardLight picks one of the scene's lights uniformly, then draws
// a direction from "from" toward a point on it; the returned pdf already
// includes the 1/len(Lights) light-selection probability.
func (s *Scene) RandTowardLight(rng *prng.RNG, from geom.Vec3) (dir geom.Vec3, light *Primitive, pdf float32) {
	idx := rng.Choice(len(s.Lights))
	light = s.Lights[idx]
	dir, pdf = light.RandToward(rng, from)
	pdf /= float32(len(s.Lights))
	return dir, light, pdf
}
