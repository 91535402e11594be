// Package imageio holds the output framebuffer and its encoders: PNG
// (gamma-encoded, quantized to 8 bits), and the Radiance HDR (shared-
// exponent RGBE), PFM, and CSV formats used to keep full linear dynamic
// range.
package imageio

import "github.com/geometrian/spectraltracer/color"

// Pixel is a single linear (pre-gamma), four-component RGBA framebuffer
// value. Alpha is always 1 for this tracer (there's no partial pixel
// coverage), but is kept explicit to match the framebuffer's data model.
type Pixel struct {
	R, G, B, A float32
}

// Framebuffer is a rectangular grid of linear RGBA pixels, stored in
// scanlines top to bottom, left to right within a scanline.
type Framebuffer struct {
	Width, Height int
	Pixels        []Pixel
}

// checkerTileSize is the checkerboard init's square size in pixels.
// Mirrors render.TileSize (kept as its own constant here, not imported,
// since render depends on this package and not the other way around).
const checkerTileSize = 32

// checkerDark and checkerLight are the sRGB gray levels the original
// framebuffer constructor fills unrendered pixels with, converted to
// this framebuffer's linear storage convention.
var (
	checkerLight = color.SRGBToLinearVec3(color.Vec3{0.7, 0.7, 0.7})
	checkerDark  = color.SRGBToLinearVec3(color.Vec3{0.3, 0.3, 0.3})
)

// New allocates a framebuffer of the given resolution, pre-filled with a
// checkerboard so unrendered or aborted regions are visibly distinct from
// a rendered black pixel.
func New(width, height int) *Framebuffer {
	f := &Framebuffer{Width: width, Height: height, Pixels: make([]Pixel, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			rgb := checkerLight
			if ((x/checkerTileSize)^(y/checkerTileSize))%2 != 0 {
				rgb = checkerDark
			}
			f.Pixels[y*width+x] = Pixel{rgb[0], rgb[1], rgb[2], 1}
		}
	}
	return f
}

// Set stores a linear RGB value (alpha forced to 1) at pixel (x,y).
func (f *Framebuffer) Set(x, y int, rgb color.Vec3) {
	f.Pixels[y*f.Width+x] = Pixel{rgb[0], rgb[1], rgb[2], 1}
}

// At returns the pixel at (x,y).
func (f *Framebuffer) At(x, y int) Pixel {
	return f.Pixels[y*f.Width+x]
}
