package geom

import (
	"math"
)

// underestimatePi is the largest float32 strictly less than pi, used to
// clamp acos() results so that subsequent sin() calls never see an
// out-of-domain argument from floating-point overshoot.
func underestimatePi() float32 {
	return math.Float32frombits(0x40490FDA)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func acos32(x float32) float32 { return float32(math.Acos(float64(clampf(x, -1, 1)))) }
func sin32(x float32) float32  { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32  { return float32(math.Cos(float64(x))) }

// SphericalTriangle is the image a flat triangle subtends on the unit
// sphere centered at the viewpoint: its three vertices are the (unit)
// directions toward the flat triangle's corners. Used for spherical
// next-event sampling (Arvo 1995), which is exact (zero variance in the
// choice of which point on the light the sampled direction maps to) and
// substantially lower-variance than sampling the flat triangle's area.
type SphericalTriangle struct {
	A, B, C Vec3

	a, b, c             float32
	sinA, sinB, sinC    float32
	cosA, cosB, cosC    float32
	alpha, beta, gamma  float32 // vertex angles, radians
	cosAlpha, cosBeta, cosGamma float32

	SurfaceArea float32 // solid angle, steradians
	degenerate  bool
}

// NewSphericalTriangle builds the spherical triangle whose vertices are
// the unit vectors from, the, a, b, c corners of a flat triangle (already
// normalized by the caller).
func NewSphericalTriangle(a, b, c Vec3) SphericalTriangle {
	t := SphericalTriangle{A: a, B: b, C: c}

	t.cosA = clampf(b.Dot(c), -1, 1)
	t.cosB = clampf(a.Dot(c), -1, 1)
	t.cosC = clampf(a.Dot(b), -1, 1)

	piMax := underestimatePi()
	t.a = clampf(acos32(t.cosA), 0, piMax)
	t.b = clampf(acos32(t.cosB), 0, piMax)
	t.c = clampf(acos32(t.cosC), 0, piMax)

	t.sinA = sin32(t.a)
	t.sinB = sin32(t.b)
	t.sinC = sin32(t.c)

	numer0 := t.cosA - t.cosB*t.cosC
	denom0 := t.sinB * t.sinC
	numer1 := t.cosB - t.cosA*t.cosC
	denom1 := t.sinA * t.sinC
	numer2 := t.cosC - t.cosA*t.cosB
	denom2 := t.sinA * t.sinB

	if denom0 > 0 && denom1 > 0 && denom2 > 0 {
		t.cosAlpha = clampf(numer0/denom0, -1, 1)
		t.cosBeta = clampf(numer1/denom1, -1, 1)
		t.cosGamma = clampf(numer2/denom2, -1, 1)
		t.alpha = acos32(t.cosAlpha)
		t.beta = acos32(t.cosBeta)
		t.gamma = acos32(t.cosGamma)
		area := t.alpha + t.beta + t.gamma - float32(math.Pi)
		if area < 0 {
			area = 0
		}
		t.SurfaceArea = area
		return t
	}

	// At least one side is degenerate (sin of some side length is ~0).
	// Each denom is a product of two sines, so whichever one is still
	// positive names the single non-degenerate vertex angle to solve for;
	// the other two become right angles. If none are positive, all three
	// sides are degenerate and the triangle has no area.
	switch {
	case denom0 > 0:
		t.cosAlpha = clampf(numer0/denom0, -1, 1)
		t.alpha = acos32(t.cosAlpha)
		t.beta = float32(math.Pi) / 2
		t.gamma = float32(math.Pi) / 2
		t.cosBeta, t.cosGamma = 0, 0
	case denom1 > 0:
		t.cosBeta = clampf(numer1/denom1, -1, 1)
		t.beta = acos32(t.cosBeta)
		t.alpha = float32(math.Pi) / 2
		t.gamma = float32(math.Pi) / 2
		t.cosAlpha, t.cosGamma = 0, 0
	case denom2 > 0:
		t.cosGamma = clampf(numer2/denom2, -1, 1)
		t.gamma = acos32(t.cosGamma)
		t.alpha = float32(math.Pi) / 2
		t.beta = float32(math.Pi) / 2
		t.cosAlpha, t.cosBeta = 0, 0
	default:
		t.degenerate = true
		nan := float32(math.NaN())
		t.cosAlpha, t.cosBeta, t.cosGamma = nan, nan, nan
		t.alpha, t.beta, t.gamma = nan, nan, nan
		t.SurfaceArea = 0
		return t
	}
	area := t.alpha + t.beta + t.gamma - float32(math.Pi)
	if area < 0 {
		area = 0
	}
	t.SurfaceArea = area
	return t
}

// funcBar is a Gram-Schmidt style projection of x orthogonal to y,
// renormalized; returns the zero vector if the projection has ~zero
// length (x parallel to y).
func funcBar(x, y Vec3) Vec3 {
	dir := x.Sub(y.Scale(x.Dot(y)))
	if dir.LengthSq() == 0 {
		return Vec3{}
	}
	return dir.Normalize()
}

// RandTowardSphericalTriangle draws a direction uniformly over the solid
// angle t subtends, following Arvo's 1995 algorithm: first pick which
// point on the spherical edge AC corresponds to a uniformly-sampled
// sub-area, then pick latitude along the resulting arc toward B.
func (t SphericalTriangle) RandTowardSphericalTriangle(r0, r1 float32) Vec3 {
	var q float32
	if sin32(t.alpha) > 0 {
		randomArea := r0 * t.SurfaceArea
		angle := randomArea - t.alpha
		s := sin32(angle)
		cc := cos32(angle)
		u := cc - t.cosAlpha
		v := s + t.sinA*t.cosC

		q = ((v*cc-u*s)*t.cosAlpha - v) / ((v*s+u*cc)*t.sinA)
	} else {
		q = cos32(t.b * r0)
	}
	q = clampf(q, -1, 1)

	cHat := t.A.Scale(q).Add(funcBar(t.C, t.A).Scale(float32(math.Sqrt(float64(1 - q*q)))))

	z := 1 - r1*(1-cHat.Dot(t.B))
	z = clampf(z, -1, 1)

	result := t.B.Scale(z).Add(funcBar(cHat, t.B).Scale(float32(math.Sqrt(float64(1 - z*z)))))
	return result
}
