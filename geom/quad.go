package geom

// Quad is a planar quadrilateral, stored as two triangles sharing the
// v0-v2 diagonal. Vertices must be supplied in winding order (v0,v1,v2,v3
// around the perimeter).
type Quad struct {
	Tri0, Tri1 Triangle
}

// NewQuad builds a quad from its four corners.
func NewQuad(v0, v1, v2, v3 Vertex) Quad {
	return Quad{
		Tri0: NewTriangle(v0, v1, v2),
		Tri1: NewTriangle(v0, v2, v3),
	}
}

// Intersect tries both triangles and keeps the closer hit, if any.
func (q Quad) Intersect(ray Ray, hit *HitRecord) bool {
	hit0 := q.Tri0.Intersect(ray, hit)
	hit1 := q.Tri1.Intersect(ray, hit)
	return hit0 || hit1
}

// Bound returns a bounding sphere over all four corners.
func (q Quad) Bound() SphereBound {
	verts := [4]Vertex{q.Tri0.Verts[0], q.Tri0.Verts[1], q.Tri0.Verts[2], q.Tri1.Verts[2]}
	var centroid Vec3
	for _, v := range verts {
		centroid = centroid.Add(v.Pos)
	}
	centroid = centroid.Scale(0.25)
	radius := float32(0)
	for _, v := range verts {
		if d := v.Pos.Sub(centroid).Length(); d > radius {
			radius = d
		}
	}
	return SphereBound{Center: centroid, Radius: radius}
}

// SurfaceArea returns the sum of both triangles' areas.
func (q Quad) SurfaceArea() float32 {
	return q.Tri0.SurfaceArea() + q.Tri1.SurfaceArea()
}

// RandToward draws a direction from "from" toward a uniformly-chosen
// point on the quad, picking one of its two triangles with equal
// probability and then sampling that triangle by solid angle. The pdf is
// halved to account for the 50/50 triangle choice.
func (q Quad) RandToward(from Vec3, triChoice, r0, r1 float32) (Vec3, float32) {
	if triChoice <= 0.5 {
		dir, pdf := q.Tri0.RandToward(from, r0, r1)
		return dir, pdf * 0.5
	}
	dir, pdf := q.Tri1.RandToward(from, r0, r1)
	return dir, pdf * 0.5
}
