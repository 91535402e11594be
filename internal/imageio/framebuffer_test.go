package imageio

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/geometrian/spectraltracer/color"
)

func TestSetAtRoundTrips(t *testing.T) {
	fb := New(3, 2)
	fb.Set(1, 1, color.Vec3{0.25, 0.5, 0.75})
	p := fb.At(1, 1)
	if p.R != 0.25 || p.G != 0.5 || p.B != 0.75 || p.A != 1 {
		t.Fatalf("At(1,1) = %+v", p)
	}
}

func TestSavePNGProducesDecodableImage(t *testing.T) {
	fb := New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			fb.Set(x, y, color.Vec3{0.5, 0.2, 0.8})
		}
	}
	var buf bytes.Buffer
	if err := fb.SavePNG(&buf); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("decoded size = %dx%d, want 4x4", b.Dx(), b.Dy())
	}
	_, _, _, a := img.At(0, 0).RGBA()
	if a == 0 {
		t.Error("expected opaque alpha")
	}
}

func TestSaveHDRWritesRadianceHeader(t *testing.T) {
	fb := New(2, 2)
	var buf bytes.Buffer
	if err := fb.SaveHDR(&buf); err != nil {
		t.Fatalf("SaveHDR: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "#?RADIANCE\n") {
		t.Fatal("missing #?RADIANCE header")
	}
	if !strings.Contains(buf.String(), "-Y 2 +X 2\n") {
		t.Fatal("missing resolution line")
	}
}

func TestSavePFMWritesHeader(t *testing.T) {
	fb := New(5, 3)
	var buf bytes.Buffer
	if err := fb.SavePFM(&buf); err != nil {
		t.Fatalf("SavePFM: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "PF\n5 3\n-1.0\n") {
		t.Fatalf("unexpected PFM header: %q", buf.String()[:20])
	}
}

func TestSaveCSVOneRowPerImageRow(t *testing.T) {
	fb := New(2, 2)
	fb.Set(0, 0, color.Vec3{1, 0, 0})
	fb.Set(1, 0, color.Vec3{0, 1, 0})
	var buf bytes.Buffer
	if err := fb.SaveCSV(&buf); err != nil {
		t.Fatalf("SaveCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "1,0,0,0,1,0" {
		t.Errorf("row 0 = %q", lines[0])
	}
}

func TestRGBEZeroForTinyValues(t *testing.T) {
	dst := make([]byte, 4)
	rgbe(0, 0, 0, dst)
	for _, b := range dst {
		if b != 0 {
			t.Fatalf("rgbe(0,0,0) = %v, want all zero", dst)
		}
	}
}
