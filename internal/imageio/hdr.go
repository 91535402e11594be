package imageio

import (
	"fmt"
	"io"
	"math"
)

// SaveHDR writes the framebuffer as a flat (non-run-length-encoded)
// Radiance RGBE image, scanlines bottom-to-top per the format's
// convention. Pixel values are already linear, so no gamma step is
// needed here (only the PNG writer gamma-encodes).
func (f *Framebuffer) SaveHDR(w io.Writer) error {
	if _, err := fmt.Fprintf(w,
		"#?RADIANCE\n"+
			"FORMAT=32-bit_rle_rgbe\n"+
			"EXPOSURE=1.0\n"+
			"SOFTWARE=spectraltracer\n"+
			"\n"+
			"-Y %d +X %d\n",
		f.Height, f.Width,
	); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for j := 0; j < f.Height; j++ {
		srcRow := f.Height - 1 - j
		for i := 0; i < f.Width; i++ {
			p := f.At(i, srcRow)
			rgbe(p.R, p.G, p.B, buf)
			if _, err := w.Write(buf); err != nil {
				return err
			}
		}
	}
	return nil
}

// rgbe encodes a linear RGB triple into the 4-byte Radiance RGBE format,
// writing the result into dst (which must have length 4).
func rgbe(r, g, b float32, dst []byte) {
	v := max32(r, max32(g, b))
	if v < 1.0e-32 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}

	_, e := math.Frexp(float64(v))
	scale := float32(256.0 / math.Pow(2, float64(e)))
	e += 128

	dst[0] = clampByte(r * scale)
	dst[1] = clampByte(g * scale)
	dst[2] = clampByte(b * scale)
	dst[3] = byte(e)
}

func clampByte(v float32) byte {
	x := math.Round(float64(v))
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return byte(x)
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
