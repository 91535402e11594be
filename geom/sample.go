package geom

import (
	"math"

	"github.com/geometrian/spectraltracer/internal/prng"
)

const twoPi = 2 * math.Pi

// RandSphere draws a direction uniformly over the full sphere. Returns
// the direction and its pdf (constant, 1/4pi).
func RandSphere(rng *prng.RNG) (Vec3, float32) {
	z := 2*rng.Float32() - 1
	radiusCircle := float32(math.Sqrt(float64(1 - z*z)))
	angle := rng.Float32() * twoPi
	dir := Vec3{radiusCircle * cos32(angle), z, radiusCircle * sin32(angle)}
	pdf := float32(1.0 / (4.0 * math.Pi))
	return dir, pdf
}

// RandCosHemisphere draws a direction over the hemisphere around +Y,
// cosine-weighted (Malley's method: a uniform polar sample of the unit
// disk lifted onto the hemisphere; a sample with Y at or below Epsilon is
// redrawn). Returns the local-space direction (Y is the "up"/cosine axis)
// and its pdf.
func RandCosHemisphere(rng *prng.RNG) (Vec3, float32) {
	var result Vec3
	var pdf float32
	for {
		angle := rng.Float32() * twoPi
		radiusSq := rng.Float32()
		y := float32(math.Sqrt(float64(1 - radiusSq)))
		if y > Epsilon {
			radius := float32(math.Sqrt(float64(radiusSq)))
			result = Vec3{radius * cos32(angle), y, radius * sin32(angle)}
			pdf = y
			break
		}
	}
	pdf *= float32(1.0 / math.Pi)
	return result, pdf
}

// RandTowardSphere draws a direction from the origin toward a bounding
// sphere (used for next-event estimation against spherical lights),
// uniformly over the cone of directions that can hit it. If the origin
// is inside the sphere, falls back to sampling the full sphere.
func RandTowardSphere(rng *prng.RNG, toCenter Vec3, sphRadius float32) (Vec3, float32) {
	l := float64(toCenter.Length())
	if l < float64(sphRadius) {
		return RandSphere(rng)
	}
	lRecip := 1 / l

	radius2 := float64(sphRadius) * 0.99999
	sinTheta := radius2 * lRecip
	cosTheta := math.Sqrt(1 - sinTheta*sinTheta)

	area := twoPi * (1 - cosTheta)
	pdf := float32(1 / area)

	y := cosTheta + rng.Float64()*(1-cosTheta)
	phi := rng.Float64() * twoPi
	radius := math.Sqrt(1 - y*y)

	local := Vec3{float32(radius * math.Cos(phi)), float32(y), float32(radius * math.Sin(phi))}
	dir := GetRotatedTo(local, toCenter.Scale(float32(lRecip)))
	return dir, pdf
}

// GetBasis builds an orthonormal basis (basisX, basisZ) around basisY,
// following Duff et al.'s branchless construction (JCGT 2017): avoids
// the classic method's singularity and is numerically robust across the
// whole sphere.
func GetBasis(basisY Vec3) (basisX, basisZ Vec3) {
	sign := float32(1)
	if basisY.Z < 0 {
		sign = -1
	}
	a := -1 / (sign + basisY.Z)
	b := basisY.X * basisY.Y * a
	basisX = Vec3{1 + sign*basisY.X*basisY.X*a, sign * b, -sign * basisY.X}
	basisZ = Vec3{b, sign + basisY.Y*basisY.Y*a, -basisY.Y}
	return basisX, basisZ
}

// GetRotatedTo reinterprets dir as a local-space vector whose Y axis is
// the cosine/"up" axis, and rotates it so that axis aligns with normal.
func GetRotatedTo(dir, normal Vec3) Vec3 {
	basisX, basisZ := GetBasis(normal)
	return basisX.Scale(dir.X).Add(normal.Scale(dir.Y)).Add(basisZ.Scale(dir.Z))
}

// Reflect mirrors wo (pointing away from the surface, toward the
// previous vertex) about the normal, giving the direction a perfect
// mirror sends it back out along.
func Reflect(wo, normal Vec3) Vec3 {
	return normal.Scale(2 * wo.Dot(normal)).Sub(wo)
}
