// Package texture loads sRGB reflectance textures and samples them, both
// directly as linear RGB and (via a color.Upsampler) as hero-wavelength
// spectral reflectance for spectral rendering.
package texture

import (
	"fmt"
	"image/png"
	"os"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/spectral"
)

// Texture is an sRGB image decoded into linear RGB texels, stored in
// scanlines top to bottom.
type Texture struct {
	Width, Height int
	texels        []color.Vec3 // linear RGB, row-major, top-to-bottom
}

// Load decodes a PNG file into a reflectance texture.
func Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	texels := make([]color.Vec3, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			r, g, b, _ := img.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()
			srgb := color.Vec3{float32(r) / 65535, float32(g) / 65535, float32(b) / 65535}
			texels[j*w+i] = color.SRGBToLinearVec3(srgb)
		}
	}
	return &Texture{Width: w, Height: h, texels: texels}, nil
}

// sampleLRGB does clamped nearest-neighbor lookup at pixel indices.
func (t *Texture) sampleLRGB(i, j int) color.Vec3 {
	if i < 0 {
		i = 0
	} else if i >= t.Width {
		i = t.Width - 1
	}
	if j < 0 {
		j = 0
	} else if j >= t.Height {
		j = t.Height - 1
	}
	return t.texels[j*t.Width+i]
}

// SampleLRGB samples the texture at an ST coordinate, nearest-neighbor,
// with T=0 at the image's bottom row (matching the on-disk top-to-bottom
// scanline order flipped to a bottom-left-origin UV convention).
func (t *Texture) SampleLRGB(st geom.ST) color.Vec3 {
	u := st.S * float32(t.Width)
	v := st.T * float32(t.Height)
	i := int(floor32(u))
	j := int(floor32(float32(t.Height) - v))
	return t.sampleLRGB(i, j)
}

// SampleSpectral turns the texture's linear RGB reflectance at st into a
// hero-wavelength spectral reflectance sample via up.
func (t *Texture) SampleSpectral(st geom.ST, lambda0 spectral.Nm, up color.Upsampler) spectral.HeroSample {
	lrgb := t.SampleLRGB(st)
	return up.LRGBToSpecRefl(lrgb, lambda0)
}

func floor32(x float32) float32 {
	i := float32(int32(x))
	if x < 0 && i != x {
		i--
	}
	return i
}
