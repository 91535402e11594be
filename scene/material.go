// Package scene defines the tracer's scene graph: materials, primitives,
// the camera, and the whole-scene container, plus builders for the
// fixed set of demonstration scenes.
package scene

import (
	"math"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/prng"
	"github.com/geometrian/spectraltracer/internal/texture"
	"github.com/geometrian/spectraltracer/spectral"
)

// MaterialKind discriminates the fixed set of BSDFs a Material can be,
// replacing the original's virtual-dispatch material hierarchy with a
// tagged variant switched on in EvaluateBSDF/InteractBSDF.
type MaterialKind int

const (
	Lambertian MaterialKind = iota
	Mirror
)

// Albedo is a material's reflectance: either a constant spectrum or an
// sRGB texture sampled and upsampled per-hit.
type Albedo struct {
	Constant *spectral.Spectrum // used when Texture == nil
	Texture  *texture.Texture
}

// Sample returns the albedo's hero-wavelength reflectance at st.
func (a Albedo) Sample(st geom.ST, lambda0 spectral.Nm, up color.Upsampler) spectral.HeroSample {
	if a.Texture != nil {
		return a.Texture.SampleSpectral(st, lambda0, up)
	}
	return a.Constant.HeroSample(lambda0)
}

// Material is a surface's emission plus BSDF, one of MaterialKind.
type Material struct {
	Kind      MaterialKind
	Emission  *spectral.Spectrum // nil means no emission
	Albedo    Albedo
}

// IsEmissive reports whether the material emits any radiant flux at all,
// used to build the scene's light list.
func (m *Material) IsEmissive() bool {
	if m.Emission == nil {
		return false
	}
	return spectral.Integrate(m.Emission) > 0
}

// EvaluateEmission returns the material's hero-sampled emitted radiance.
func (m *Material) EvaluateEmission(lambda0 spectral.Nm) spectral.HeroSample {
	if m.Emission == nil {
		return spectral.HeroSample{}
	}
	return m.Emission.HeroSample(lambda0)
}

// BSDFEvaluation is the input/output state for evaluating a BSDF at a
// known pair of directions (used when the next-event-estimation ray
// happens to hit the light directly).
type BSDFEvaluation struct {
	ST      geom.ST
	Lambda0 spectral.Nm
	Wo, N   geom.Vec3
	Wi      geom.Vec3

	Fs spectral.HeroSample
}

// BSDFInteraction is the input/output state for importance-sampling an
// incoming direction from a BSDF given only the outgoing direction.
type BSDFInteraction struct {
	ST      geom.ST
	Lambda0 spectral.Nm
	Wo, N   geom.Vec3
	RNG     *prng.RNG

	Wi     geom.Vec3
	PdfWi  float32
	Fs     spectral.HeroSample
}

// EvaluateBSDF fills in eval.Fs for the already-known (Wo,N,Wi) triple.
// Delta BSDFs (Mirror) can never be hit by chance, so they evaluate to
// zero here; InteractBSDF is the only way to sample them.
func (m *Material) EvaluateBSDF(eval *BSDFEvaluation, up color.Upsampler) {
	switch m.Kind {
	case Lambertian:
		eval.Fs = m.Albedo.Sample(eval.ST, eval.Lambda0, up).Scale(1 / float32(math.Pi))
	case Mirror:
		eval.Fs = spectral.HeroSample{}
	}
}

// InteractBSDF importance-samples an incoming direction and the BSDF's
// value/pdf along it.
func (m *Material) InteractBSDF(inter *BSDFInteraction, up color.Upsampler) {
	switch m.Kind {
	case Lambertian:
		local, pdf := geom.RandCosHemisphere(inter.RNG)
		inter.Wi = geom.GetRotatedTo(local, inter.N)
		inter.PdfWi = pdf
		inter.Fs = m.Albedo.Sample(inter.ST, inter.Lambda0, up).Scale(1 / float32(math.Pi))
	case Mirror:
		inter.Wi = geom.Reflect(inter.Wo, inter.N)
		inter.PdfWi = float32(math.Inf(1))
		inter.Fs = m.Albedo.Sample(inter.ST, inter.Lambda0, up)
	}
}
