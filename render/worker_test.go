package render

import (
	"testing"

	"github.com/geometrian/spectraltracer/internal/imageio"
)

func TestRenderFillsEveryPixelAndCallsOnComplete(t *testing.T) {
	opts, _ := newTestOptions(t, 1, ELSOff)
	fb := imageio.New(16, 16)

	completed := false
	err := Render(opts, fb, 2, nil, func(got *imageio.Framebuffer) error {
		completed = true
		if got != fb {
			t.Error("onComplete received a different framebuffer")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !completed {
		t.Fatal("onComplete was never called")
	}

	fill := imageio.New(16, 16)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			if p.A != 1 {
				t.Fatalf("pixel (%d,%d) alpha = %v, want 1 (never rendered?)", x, y, p.A)
			}
			if p == fill.At(x, y) {
				t.Fatalf("pixel (%d,%d) = %v still holds the initial checkerboard fill (never rendered?)", x, y, p)
			}
		}
	}
}

func TestRenderSingleWorkerMatchesMultiWorkerTileCoverage(t *testing.T) {
	opts, _ := newTestOptions(t, 1, ELSOff)

	fb1 := imageio.New(24, 24)
	if err := Render(opts, fb1, 1, nil, nil); err != nil {
		t.Fatalf("Render (1 worker): %v", err)
	}

	fb4 := imageio.New(24, 24)
	if err := Render(opts, fb4, 4, nil, nil); err != nil {
		t.Fatalf("Render (4 workers): %v", err)
	}

	// Both runs must render every pixel (alpha=1 and no pixel left at the
	// initial checkerboard fill); exact RGB equality isn't expected since
	// each run draws independent samples.
	fill := imageio.New(24, 24)
	for y := 0; y < fb1.Height; y++ {
		for x := 0; x < fb1.Width; x++ {
			if fb1.At(x, y).A != 1 || fb4.At(x, y).A != 1 ||
				fb1.At(x, y) == fill.At(x, y) || fb4.At(x, y) == fill.At(x, y) {
				t.Fatalf("pixel (%d,%d) not rendered in one of the runs", x, y)
			}
		}
	}
}
