package color

import "github.com/geometrian/spectraltracer/spectral"

// RoundTripLRGB reflects D65 off a Lambertian surface whose reflectance is
// given by BasisUpsampler's basis combination for lrgb, and returns the
// linear RGB a viewer would perceive. For a well-behaved basis this should
// land close to the input lrgb; see spec.md's round-trip testable property.
func RoundTripLRGB(lrgb Vec3, d *Data) Vec3 {
	reflectance := d.BasisBT709.R.Scale(lrgb[0]).
		Add(d.BasisBT709.G.Scale(lrgb[1])).
		Add(d.BasisBT709.B.Scale(lrgb[2]))

	radiance := d.D65Rad.Mul(reflectance)

	// Flat-field correction: the surface is assumed perpendicular to the
	// viewing ray, so radiant flux equals radiance directly.
	var flux *spectral.Spectrum = radiance

	xyzOut := SpecRadFluxToXYZ(flux, d)
	return XYZToLRGB(xyzOut, d)
}
