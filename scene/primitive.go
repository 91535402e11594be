package scene

import (
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/prng"
)

// PrimitiveKind discriminates the fixed set of shapes a Primitive can
// be, replacing the original's PrimBase/PrimTri/PrimQuad virtual
// dispatch with a tagged variant switched on in Intersect/Bound/etc.
type PrimitiveKind int

const (
	PrimTriangle PrimitiveKind = iota
	PrimQuad
)

// Primitive is a piece of scene geometry: a shape tagged by kind, a
// material, and whether it's one of the scene's lights (mirrors the
// original's PrimBase::is_light, set once at construction from the
// material's emissivity).
type Primitive struct {
	Kind     PrimitiveKind
	Tri      geom.Triangle
	Quad     geom.Quad
	Material *Material
	IsLight  bool
}

// NewTrianglePrimitive builds a triangle primitive, deriving IsLight
// from the material.
func NewTrianglePrimitive(tri geom.Triangle, mat *Material) *Primitive {
	return &Primitive{Kind: PrimTriangle, Tri: tri, Material: mat, IsLight: mat.IsEmissive()}
}

// NewQuadPrimitive builds a quad primitive, deriving IsLight from the
// material.
func NewQuadPrimitive(quad geom.Quad, mat *Material) *Primitive {
	return &Primitive{Kind: PrimQuad, Quad: quad, Material: mat, IsLight: mat.IsEmissive()}
}

// Intersect tests the ray against this primitive's shape, updating hit
// and tagging hit.Prim with this primitive on a closer hit.
func (p *Primitive) Intersect(ray geom.Ray, hit *geom.HitRecord) bool {
	var got bool
	switch p.Kind {
	case PrimTriangle:
		got = p.Tri.Intersect(ray, hit)
	case PrimQuad:
		got = p.Quad.Intersect(ray, hit)
	}
	if got {
		hit.Prim = p
	}
	return got
}

// Bound returns a bounding sphere around the primitive's shape.
func (p *Primitive) Bound() geom.SphereBound {
	switch p.Kind {
	case PrimTriangle:
		return p.Tri.Bound()
	default:
		return p.Quad.Bound()
	}
}

// SurfaceArea returns the primitive's area.
func (p *Primitive) SurfaceArea() float32 {
	switch p.Kind {
	case PrimTriangle:
		return p.Tri.SurfaceArea()
	default:
		return p.Quad.SurfaceArea()
	}
}

// RandToward draws a direction from "from" toward a uniformly-chosen
// point on the primitive, sampled uniformly by solid angle, and returns
// it with its pdf.
func (p *Primitive) RandToward(rng *prng.RNG, from geom.Vec3) (geom.Vec3, float32) {
	switch p.Kind {
	case PrimTriangle:
		return p.Tri.RandToward(from, rng.Float32(), rng.Float32())
	default:
		return p.Quad.RandToward(from, rng.Float32(), rng.Float32(), rng.Float32())
	}
}
