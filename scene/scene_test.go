package scene

import (
	"math"
	"testing"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/prng"
)

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func loadColorData(t *testing.T) *color.Data {
	t.Helper()
	d, err := color.Init("../data", color.Observer1931)
	if err != nil {
		t.Fatalf("color.Init: %v", err)
	}
	return d
}

func TestNewCornellBuildsNonEmptyLitScene(t *testing.T) {
	s, err := NewCornell("../data")
	if err != nil {
		t.Fatalf("NewCornell: %v", err)
	}
	if len(s.Primitives) == 0 {
		t.Fatal("expected nonempty primitive list")
	}
	if len(s.Lights) == 0 {
		t.Fatal("expected at least one light")
	}
	for _, l := range s.Lights {
		if !l.IsLight {
			t.Errorf("primitive in Lights list has IsLight=false")
		}
	}
}

func TestCornellCameraLooksIntoRoom(t *testing.T) {
	s, err := NewCornell("../data")
	if err != nil {
		t.Fatalf("NewCornell: %v", err)
	}
	ray := s.Camera.GenerateRay(0, 0)
	if !near(ray.Dir.Length(), 1, 1e-4) {
		t.Fatalf("ray direction not unit length: %v", ray.Dir)
	}
	hit, found := s.Intersect(ray, nil)
	if !found {
		t.Fatal("center ray should hit the back wall")
	}
	if hit.Dist <= 0 {
		t.Errorf("hit distance = %v, want >0", hit.Dist)
	}
}

func TestCornellIntersectIgnoresSpecifiedPrimitive(t *testing.T) {
	s, err := NewCornell("../data")
	if err != nil {
		t.Fatalf("NewCornell: %v", err)
	}
	ray := s.Camera.GenerateRay(0, 0)
	hit, found := s.Intersect(ray, nil)
	if !found {
		t.Fatal("expected a hit")
	}
	firstPrim := hit.Prim.(*Primitive)

	hit2, found2 := s.Intersect(ray, firstPrim)
	if found2 && hit2.Prim.(*Primitive) == firstPrim {
		t.Fatal("ignored primitive should not be re-hit")
	}
}

func TestRandTowardLightPdfPositive(t *testing.T) {
	s, err := NewCornell("../data")
	if err != nil {
		t.Fatalf("NewCornell: %v", err)
	}
	rng := prng.New()
	rng.Seed(123)
	dir, light, pdf := s.RandTowardLight(rng, geom.Vec3{X: 278, Y: 273, Z: 0})
	if pdf <= 0 {
		t.Fatalf("pdf = %v, want >0", pdf)
	}
	if light == nil {
		t.Fatal("expected a light primitive")
	}
	if !near(dir.Length(), 1, 1e-3) {
		t.Errorf("direction %v not unit length", dir)
	}
}
