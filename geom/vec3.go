// Package geom implements the scene-independent geometric core of the path
// tracer: triangle and quad primitives with watertight intersection,
// bounding spheres, and the direction samplers (uniform sphere, cosine
// hemisphere, sphere-subtending cone, spherical-triangle) used to draw
// rays for shading and next-event estimation.
package geom

import "math"

// Vec3 is a 3-component vector used for both positions and directions.
type Vec3 struct {
	X, Y, Z float32
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) LengthSq() float32 { return a.Dot(a) }

func (a Vec3) Length() float32 { return float32(math.Sqrt(float64(a.LengthSq()))) }

// Normalize returns a unit vector in a's direction. Zero-length input
// returns the zero vector rather than NaNs.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Component returns the i'th component (0=X,1=Y,2=Z), used by the axis
// permutation in the watertight intersection test.
func (a Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// ST is a 2D surface (texture) coordinate.
type ST struct {
	S, T float32
}

func (a ST) Add(b ST) ST          { return ST{a.S + b.S, a.T + b.T} }
func (a ST) Scale(s float32) ST   { return ST{a.S * s, a.T * s} }

// Ray is a parametric ray, orig + t*dir.
type Ray struct {
	Orig, Dir Vec3
}

// HitRecord accumulates the closest intersection found so far. Callers
// must set Dist to +Inf (or a max search distance) before the first
// Intersect call; successful hits only ever decrease it.
type HitRecord struct {
	Prim   interface{}
	Normal Vec3
	ST     ST
	Dist   float32
}
