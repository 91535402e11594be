package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/geometrian/spectraltracer/geom"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	// top-left red, top-right green, bottom-left blue, bottom-right white.
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadAndSampleCorners(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	writeTestPNG(t, path)

	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.Width != 2 || tex.Height != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", tex.Width, tex.Height)
	}

	// (0,0) in the image is top-left=red, but ST has T=0 at the bottom,
	// so ST(0,0) should land on the bottom-left (blue) texel.
	blue := tex.SampleLRGB(geom.ST{S: 0.1, T: 0.1})
	if blue[2] <= blue[0] || blue[2] <= blue[1] {
		t.Errorf("ST(0,0) = %v, want blue-dominant", blue)
	}

	red := tex.SampleLRGB(geom.ST{S: 0.1, T: 0.9})
	if red[0] <= red[1] || red[0] <= red[2] {
		t.Errorf("ST(0,1) = %v, want red-dominant", red)
	}
}

func TestSampleClampsOutOfRangeST(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	writeTestPNG(t, path)
	tex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, st := range []geom.ST{{S: -1, T: -1}, {S: 5, T: 5}} {
		v := tex.SampleLRGB(st)
		for _, c := range v {
			if math.IsNaN(float64(c)) {
				t.Fatalf("sample at %v is NaN", st)
			}
		}
	}
}
