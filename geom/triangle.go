package geom

import (
	"math"

	"github.com/geometrian/spectraltracer/spectral"
)

// Vertex is a triangle/quad corner: its position and its surface
// (texture) coordinate.
type Vertex struct {
	Pos Vec3
	ST  ST
}

// Triangle is a single triangle primitive with a precomputed face normal.
type Triangle struct {
	Verts  [3]Vertex
	Normal Vec3
}

// NewTriangle builds a triangle from its three corners, deriving the face
// normal from the winding order (right-hand rule over v0->v1->v2).
func NewTriangle(v0, v1, v2 Vertex) Triangle {
	e1 := v1.Pos.Sub(v0.Pos)
	e2 := v2.Pos.Sub(v0.Pos)
	return Triangle{
		Verts:  [3]Vertex{v0, v1, v2},
		Normal: e1.Cross(e2).Normalize(),
	}
}

// Intersect implements the watertight ray-triangle test of Woop, Benthin,
// and Wald (JCGT 2013): an axis permutation plus shear puts the ray along
// +z, so the edge tests reduce to 2D signed-area computations that are
// exactly watertight across shared triangle edges (no gaps or
// double-hits at silhouettes). Returns false without touching hit when
// the triangle is missed or found farther than hit.Dist.
func (tri Triangle) Intersect(ray Ray, hit *HitRecord) bool {
	// 1. Axis permutation: kz is the largest-magnitude ray direction
	// component, so shearing along it never divides by something near 0.
	kz := 0
	maxComp := float32(math.Abs(float64(ray.Dir.Component(0))))
	for i := 1; i < 3; i++ {
		c := float32(math.Abs(float64(ray.Dir.Component(i))))
		if c > maxComp {
			maxComp = c
			kz = i
		}
	}
	kx := (kz + 1) % 3
	ky := (kz + 2) % 3
	if ray.Dir.Component(kz) < 0 {
		kx, ky = ky, kx
	}

	// 2. Shear constants.
	dz := ray.Dir.Component(kz)
	Sx := ray.Dir.Component(kx) / dz
	Sy := ray.Dir.Component(ky) / dz
	Sz := 1 / dz

	A := tri.Verts[0].Pos.Sub(ray.Orig)
	B := tri.Verts[1].Pos.Sub(ray.Orig)
	C := tri.Verts[2].Pos.Sub(ray.Orig)

	Ax := A.Component(kx) - Sx*A.Component(kz)
	Ay := A.Component(ky) - Sy*A.Component(kz)
	Bx := B.Component(kx) - Sx*B.Component(kz)
	By := B.Component(ky) - Sy*B.Component(kz)
	Cx := C.Component(kx) - Sx*C.Component(kz)
	Cy := C.Component(ky) - Sy*C.Component(kz)

	U := Cx*By - Cy*Bx
	V := Ax*Cy - Ay*Cx
	W := Bx*Ay - By*Ax

	if U == 0 || V == 0 || W == 0 {
		// Fall back to double precision right on the triangle's edges,
		// where the single-precision cross products above are the least
		// reliable about their sign.
		Ux := float64(Cx)*float64(By) - float64(Cy)*float64(Bx)
		Vx := float64(Ax)*float64(Cy) - float64(Ay)*float64(Cx)
		Wx := float64(Bx)*float64(Ay) - float64(By)*float64(Ax)
		U, V, W = float32(Ux), float32(Vx), float32(Wx)
	}

	if (U < 0 || V < 0 || W < 0) && (U > 0 || V > 0 || W > 0) {
		return false
	}
	det := U + V + W
	if float32(math.Abs(float64(det))) <= Epsilon {
		return false
	}

	Az := Sz * A.Component(kz)
	Bz := Sz * B.Component(kz)
	Cz := Sz * C.Component(kz)
	T := U*Az + V*Bz + W*Cz

	detRecip := 1 / det
	dist := T * detRecip
	if math.IsNaN(float64(dist)) {
		panic(spectral.InvariantViolation{Msg: "triangle intersection distance is NaN"})
	}
	if dist < Epsilon || dist >= hit.Dist {
		return false
	}

	bu := U * detRecip
	bv := V * detRecip
	bw := W * detRecip

	hit.Dist = dist
	hit.Normal = tri.Normal
	hit.ST = tri.Verts[0].ST.Scale(bu).Add(tri.Verts[1].ST.Scale(bv)).Add(tri.Verts[2].ST.Scale(bw))
	return true
}

// Bound returns a bounding sphere centered on the triangle's centroid,
// sized to the farthest vertex. Simple, not tight, but enough for the
// coarse culling the tracer needs.
func (tri Triangle) Bound() SphereBound {
	centroid := tri.Verts[0].Pos.Add(tri.Verts[1].Pos).Add(tri.Verts[2].Pos).Scale(1.0 / 3.0)
	radius := float32(0)
	for _, v := range tri.Verts {
		if d := v.Pos.Sub(centroid).Length(); d > radius {
			radius = d
		}
	}
	return SphereBound{Center: centroid, Radius: radius}
}

// SurfaceArea returns the triangle's area.
func (tri Triangle) SurfaceArea() float32 {
	e1 := tri.Verts[1].Pos.Sub(tri.Verts[0].Pos)
	e2 := tri.Verts[2].Pos.Sub(tri.Verts[0].Pos)
	return e1.Cross(e2).Length() * 0.5
}

// SphereBound is a bounding sphere.
type SphereBound struct {
	Center Vec3
	Radius float32
}

// RandToward draws a direction from "from" toward a uniformly-chosen
// point on the triangle, sampled uniformly over the solid angle the
// triangle subtends (Arvo 1995) rather than over its flat area: this
// gives lower variance for next-event estimation since it matches the
// measure the rendering integral is actually taken over. Returns the
// direction and its solid-angle pdf.
func (tri Triangle) RandToward(from Vec3, r0, r1 float32) (Vec3, float32) {
	a := tri.Verts[0].Pos.Sub(from).Normalize()
	b := tri.Verts[1].Pos.Sub(from).Normalize()
	c := tri.Verts[2].Pos.Sub(from).Normalize()
	st := NewSphericalTriangle(a, b, c)
	if st.degenerate || st.SurfaceArea <= 0 {
		return Vec3{}, 0
	}
	dir := st.RandTowardSphericalTriangle(r0, r1)
	return dir, 1 / st.SurfaceArea
}
