package color

import "github.com/geometrian/spectraltracer/spectral"

// SpecRadFluxToXYZ integrates a spectral radiant flux distribution against
// the CIE standard observer to get its CIE XYZ tristimulus value.
func SpecRadFluxToXYZ(specRadFlux *spectral.Spectrum, d *Data) Vec3 {
	x := spectral.IntegrateProduct(specRadFlux, d.StdObsXbar)
	y := spectral.IntegrateProduct(specRadFlux, d.StdObsYbar)
	z := spectral.IntegrateProduct(specRadFlux, d.StdObsZbar)
	return Vec3{x, y, z}
}

// HeroSampleToXYZ gives the Monte Carlo estimate of the CIE XYZ value
// corresponding to a hero-wavelength sample of spectral radiant flux drawn
// at lambda0: each hero slot estimates one sub-band's contribution to the
// observer integral, and the slots are summed.
func HeroSampleToXYZ(specRadFlux spectral.HeroSample, lambda0 spectral.Nm, d *Data) Vec3 {
	xbarFlux := d.StdObsXbar.HeroSample(lambda0).Mul(specRadFlux)
	ybarFlux := d.StdObsYbar.HeroSample(lambda0).Mul(specRadFlux)
	zbarFlux := d.StdObsZbar.HeroSample(lambda0).Mul(specRadFlux)

	var x, y, z float32
	for i := 0; i < spectral.HeroWavelengths; i++ {
		x += xbarFlux[i] * spectral.LambdaStep
		y += ybarFlux[i] * spectral.LambdaStep
		z += zbarFlux[i] * spectral.LambdaStep
	}
	return Vec3{x, y, z}
}

// XYZToLRGB converts a CIE XYZ tristimulus value to linear (pre-gamma)
// BT.709 RGB using the matrix derived in Init.
func XYZToLRGB(xyz Vec3, d *Data) Vec3 {
	return d.MatrXYZToLRGB.MulVec(xyz)
}

// XYZToSRGB converts a CIE XYZ tristimulus value directly to post-gamma
// sRGB.
func XYZToSRGB(xyz Vec3, d *Data) Vec3 {
	return LinearToSRGBVec3(XYZToLRGB(xyz, d))
}

// Upsampler turns a linear (pre-gamma), normalized BT.709 RGB reflectance
// triple into a hero sample of a reflectance spectrum that corresponds to
// it: reflecting D65 off a Lambertian surface of that spectrum and viewing
// the result should reproduce (close to) the original RGB. Only
// BasisUpsampler is implemented; Meng2015/Jakob-Hanika2019-style
// alternatives would implement this same interface.
type Upsampler interface {
	LRGBToSpecRefl(lrgb Vec3, lambda0 spectral.Nm) spectral.HeroSample
}

// BasisUpsampler reconstructs a reflectance hero sample as a linear
// combination of three fixed basis spectra, weighted by the RGB triple.
type BasisUpsampler struct {
	Data *Data
}

func (u BasisUpsampler) LRGBToSpecRefl(lrgb Vec3, lambda0 spectral.Nm) spectral.HeroSample {
	r := u.Data.BasisBT709.R.HeroSample(lambda0).Scale(lrgb[0])
	g := u.Data.BasisBT709.G.HeroSample(lambda0).Scale(lrgb[1])
	b := u.Data.BasisBT709.B.HeroSample(lambda0).Scale(lrgb[2])
	return r.Add(g).Add(b)
}
