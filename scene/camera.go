package scene

import (
	"math"

	"github.com/geometrian/spectraltracer/geom"
)

// Camera is a pinhole perspective camera: position, orientation, field
// of view, and output resolution.
type Camera struct {
	Pos, Dir, Up geom.Vec3
	ResX, ResY   int
	FovYDeg      float32

	right, realUp, forward [3]float64 // precomputed orthonormal basis, double precision
	tanHalfFovY             float64
	aspect                  float64
}

// Init precomputes the camera's orthonormal basis and projection scale.
// Must be called once after Pos/Dir/Up/ResX/ResY/FovYDeg are set and
// before GenerateRay is used.
func (c *Camera) Init() {
	forward := normalize64(toF64(c.Dir))
	up := toF64(c.Up)
	right := normalize64(cross64(forward, up))
	realUp := cross64(right, forward)

	c.forward = forward
	c.right = right
	c.realUp = realUp

	c.tanHalfFovY = math.Tan(float64(c.FovYDeg) * math.Pi / 180 / 2)
	c.aspect = float64(c.ResX) / float64(c.ResY)
}

// GenerateRay builds a world-space ray through normalized device
// coordinates (ndcX,ndcY), each in [-1,1] with +Y up, computed in double
// precision to avoid banding artifacts in the corners of wide-FOV
// scenes (mirroring the original's double-precision unprojection through
// the inverse of the projection*view matrix).
func (c *Camera) GenerateRay(ndcX, ndcY float64) geom.Ray {
	lx := ndcX * c.tanHalfFovY * c.aspect
	ly := ndcY * c.tanHalfFovY

	dir64 := add64(
		add64(scale64(c.right, lx), scale64(c.realUp, ly)),
		c.forward,
	)
	dir64 = normalize64(dir64)

	return geom.Ray{
		Orig: c.Pos,
		Dir:  geom.Vec3{X: float32(dir64[0]), Y: float32(dir64[1]), Z: float32(dir64[2])},
	}
}

func toF64(v geom.Vec3) [3]float64 { return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)} }

func add64(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
func scale64(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}
func cross64(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
func normalize64(a [3]float64) [3]float64 {
	l := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	if l == 0 {
		return a
	}
	return [3]float64{a[0] / l, a[1] / l, a[2] / l}
}
