package imageio

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"math"

	"github.com/geometrian/spectraltracer/color"
)

// SavePNG gamma-encodes the framebuffer to sRGB, quantizes to 8 bits per
// channel, and writes a PNG with scanlines top-to-bottom (the
// framebuffer's own storage order, so no flip is needed here). The image
// is handed to image/png as RGBA, but that encoder stores a fully opaque
// image as 8-bit RGB with no alpha channel, and alpha is always 1 here, so
// the file has no alpha channel.
func (f *Framebuffer) SavePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			p := f.At(x, y)
			srgb := color.LinearToSRGBVec3(color.Vec3{p.R, p.G, p.B})
			img.SetRGBA(x, y, stdcolor.RGBA{
				R: quantize(srgb[0]),
				G: quantize(srgb[1]),
				B: quantize(srgb[2]),
				A: quantize(p.A),
			})
		}
	}
	return png.Encode(w, img)
}

// quantize rounds a [0,1] value to the nearest byte, clipping out-of-range
// input rather than wrapping.
func quantize(v float32) uint8 {
	x := math.Round(float64(v) * 255)
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
