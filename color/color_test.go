package color

import (
	"math"
	"testing"

	"github.com/geometrian/spectraltracer/spectral"
)

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestGammaRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.001, 0.0031308, 0.02, 0.18, 0.5, 0.8, 1.0} {
		srgb := LinearToSRGB(v)
		back := SRGBToLinear(srgb)
		if !near(back, v, 1e-4) {
			t.Errorf("round trip gamma(%v) = %v, want %v", v, back, v)
		}
	}
}

func TestGammaMonotonic(t *testing.T) {
	prev := float32(-1)
	for i := 0; i <= 10; i++ {
		v := float32(i) / 10
		s := LinearToSRGB(v)
		if s <= prev {
			t.Fatalf("LinearToSRGB not monotonic at v=%v", v)
		}
		prev = s
	}
}

func TestMat3InverseIdentity(t *testing.T) {
	m := Mat3{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	}
	inv := m.Inverse()
	prod := m.MulMat(inv)
	ident := Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !near(prod[r][c], ident[r][c], 1e-5) {
				t.Fatalf("M*M^-1[%d][%d] = %v, want %v", r, c, prod[r][c], ident[r][c])
			}
		}
	}
}

func loadTestData(t *testing.T) *Data {
	t.Helper()
	d, err := Init("../data", Observer1931)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return d
}

func TestD65NormalizedTo100At560(t *testing.T) {
	d := loadTestData(t)
	got := d.D65Orig.HeroSample(560)[0]
	if !near(got, 100, 1e-3) {
		t.Fatalf("D65Orig(560) = %v, want 100", got)
	}
}

func TestRGBXYZMatrixRoundTrip(t *testing.T) {
	d := loadTestData(t)
	for _, rgb := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.5, 0.5, 0.5}} {
		xyz := d.MatrLRGBToXYZ.MulVec(rgb)
		back := d.MatrXYZToLRGB.MulVec(xyz)
		for i := 0; i < 3; i++ {
			if !near(back[i], rgb[i], 1e-3) {
				t.Fatalf("matrix round trip[%v][%d] = %v, want %v", rgb, i, back[i], rgb[i])
			}
		}
	}
}

func TestBasisUpsamplerRoundTrip(t *testing.T) {
	d := loadTestData(t)
	cases := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.5, 0.5, 0.5}, {0.2, 0.7, 0.9}}
	for _, rgb := range cases {
		back := RoundTripLRGB(rgb, d)
		for i := 0; i < 3; i++ {
			if !near(back[i], rgb[i], 5e-2) {
				t.Errorf("RoundTripLRGB(%v)[%d] = %v, want ~%v", rgb, i, back[i], rgb[i])
			}
		}
	}
}

func TestHeroSampleToXYZMatchesFullIntegral(t *testing.T) {
	d := loadTestData(t)
	flat := d.D65Rad
	full := SpecRadFluxToXYZ(flat, d)

	// Average many hero draws spanning the full visible range; the mean
	// should approximate the exact integral (Monte Carlo consistency, not
	// bit-exactness).
	const n = 400
	var sum Vec3
	lambda0 := spectral.LambdaMin
	step := spectral.LambdaStep / float32(n)
	for i := 0; i < n; i++ {
		hs := flat.HeroSample(lambda0)
		est := HeroSampleToXYZ(hs, lambda0, d)
		sum[0] += est[0]
		sum[1] += est[1]
		sum[2] += est[2]
		lambda0 += step
	}
	mean := Vec3{sum[0] / n, sum[1] / n, sum[2] / n}
	for i := 0; i < 3; i++ {
		if !near(mean[i], full[i], full[i]*0.2+1) {
			t.Errorf("mean hero-sample XYZ[%d] = %v, want ~%v", i, mean[i], full[i])
		}
	}
}
