// Package color implements the CIE-XYZ-centered color pipeline: the sRGB
// gamma transfer, the BT.709 RGB<->XYZ matrix derivation, CIE standard
// observer / D65 illuminant loading, and the hero-wavelength reflectance
// upsampling used to turn a texture's sRGB texel into a spectrum.
package color

import "math"

// LinearToSRGB applies the sRGB transfer function to a single linear
// (pre-gamma) channel value. Note this is not a simple power law.
func LinearToSRGB(lrgb float32) float32 {
	if lrgb < 0.0031308 {
		return 12.92 * lrgb
	}
	return 1.055*pow32(lrgb, 1.0/2.4) - 0.055
}

// SRGBToLinear is the inverse of LinearToSRGB.
func SRGBToLinear(srgb float32) float32 {
	if srgb < 0.04045 {
		return srgb / 12.92
	}
	return pow32((srgb+0.055)/1.055, 2.4)
}

// LinearToSRGBVec3 and SRGBToLinearVec3 apply the scalar transfer functions
// componentwise to an RGB triple.
func LinearToSRGBVec3(lrgb Vec3) Vec3 {
	return Vec3{LinearToSRGB(lrgb[0]), LinearToSRGB(lrgb[1]), LinearToSRGB(lrgb[2])}
}
func SRGBToLinearVec3(srgb Vec3) Vec3 {
	return Vec3{SRGBToLinear(srgb[0]), SRGBToLinear(srgb[1]), SRGBToLinear(srgb[2])}
}

func pow32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
