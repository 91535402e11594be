package render

import (
	"math"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/prng"
	"github.com/geometrian/spectraltracer/scene"
	"github.com/geometrian/spectraltracer/spectral"
)

// Options bundles the compile-time switches and shared read-only state
// every worker needs to run the integrator, threaded explicitly rather
// than captured by closures (mirroring the teacher's RowWorker-style
// per-worker state structs in internal/lossy/encode_parallel.go).
type Options struct {
	Scene     *scene.Scene
	ColorData *color.Data
	Upsampler color.Upsampler

	SPP       int
	ELS       ExplicitLightSampling
	FlatField FlatFieldCorrection
}

// pathState is one worker's scratch state for tracing a single sample:
// the RNG stream it owns and the options it was configured with. Passed
// explicitly through L's recursion instead of closed over.
type pathState struct {
	opts *Options
	rng  *prng.RNG
}

// L is the recursive Monte Carlo radiance estimator. ignore avoids
// immediate self-intersection when continuing a path from a surface;
// lastWasDelta gates whether a direct hit on a light contributes emission
// (under explicit light sampling, only delta bounces and the eye ray may
// count a direct light hit, since diffuse bounces already got it via
// next-event estimation).
func (p *pathState) L(ray geom.Ray, lastWasDelta bool, depth int, ignore *scene.Primitive, lambda0 spectral.Nm) spectral.HeroSample {
	hit, found := p.opts.Scene.Intersect(ray, ignore)
	if !found {
		return spectral.HeroSample{}
	}
	prim := hit.Prim.(*scene.Primitive)
	mat := prim.Material

	var radiance spectral.HeroSample
	if !bool(p.opts.ELS) || lastWasDelta {
		radiance = mat.EvaluateEmission(lambda0)
	}

	if depth+1 >= MaxDepth {
		return radiance
	}

	hitPos := ray.Orig.Add(ray.Dir.Scale(hit.Dist))
	wo := ray.Dir.Neg()

	if bool(p.opts.ELS) {
		shadowDir, light, shadPdf := p.opts.Scene.RandTowardLight(p.rng, hitPos)
		nDotL := shadowDir.Dot(hit.Normal)
		if nDotL > 0 && shadPdf > 0 {
			shadowRay := geom.Ray{Orig: hitPos, Dir: shadowDir}
			shadHit, shadFound := p.opts.Scene.Intersect(shadowRay, prim)
			if shadFound && shadHit.Prim.(*scene.Primitive) == light {
				eval := &scene.BSDFEvaluation{
					ST: hit.ST, Lambda0: lambda0,
					Wo: wo, N: hit.Normal, Wi: shadowDir,
				}
				mat.EvaluateBSDF(eval, p.opts.Upsampler)
				emitted := light.Material.EvaluateEmission(lambda0)
				radiance = radiance.Add(emitted.Mul(eval.Fs).Scale(nDotL / shadPdf))
			}
		}
	}

	inter := &scene.BSDFInteraction{
		ST: hit.ST, Lambda0: lambda0,
		Wo: wo, N: hit.Normal, RNG: p.rng,
	}
	mat.InteractBSDF(inter, p.opts.Upsampler)
	if inter.Fs.IsZero() {
		return radiance
	}

	var nDotL float32
	pdf := inter.PdfWi
	if math.IsInf(float64(pdf), 1) {
		nDotL = 1
		pdf = 1
	} else {
		nDotL = inter.Wi.Dot(hit.Normal)
		if nDotL <= 0 {
			return radiance
		}
	}

	nextRay := geom.Ray{Orig: hitPos, Dir: inter.Wi}
	indirect := p.L(nextRay, math.IsInf(float64(inter.PdfWi), 1), depth+1, prim, lambda0)
	radiance = radiance.Add(indirect.Mul(inter.Fs).Scale(nDotL / pdf))

	return radiance
}

// renderSample draws one (i,j) sample: a jittered subpixel camera ray, a
// hero wavelength, and the radiance estimate converted to CIE XYZ.
func renderSample(p *pathState, i, j int) color.Vec3 {
	cam := &p.opts.Scene.Camera

	u := p.rng.Float32()
	v := p.rng.Float32()
	ndcX := 2*(float64(i)+float64(u))/float64(cam.ResX) - 1
	// Row j=0 is the framebuffer's top row (internal/imageio writes it
	// first, with no scanline flip for PNG); NDC Y increases upward, so
	// the row index has to flip here rather than at the image encoder.
	ndcY := 1 - 2*(float64(j)+float64(v))/float64(cam.ResY)

	ray := cam.GenerateRay(ndcX, ndcY)

	u3 := p.rng.Float32()
	lambda0 := spectral.LambdaMin + u3*spectral.LambdaStep

	radiance := p.L(ray, true, 0, nil, lambda0)

	var flux spectral.HeroSample
	if bool(p.opts.FlatField) {
		flux = radiance
	} else {
		cosTheta := ray.Dir.Dot(cam.Dir)
		flux = radiance.Scale(cosTheta)
	}

	return color.HeroSampleToXYZ(flux, lambda0, p.opts.ColorData)
}

// renderPixel averages opts.SPP samples for pixel (i,j) and returns the
// linear (pre-gamma) RGB value to store in the framebuffer. Accumulation
// is scaled by 1e-3 to keep the running sum's magnitude moderate across
// many bright samples, then unscaled before averaging.
func renderPixel(p *pathState, i, j int) color.Vec3 {
	const accumScale = 1e-3

	var sum [3]float64
	for s := 0; s < p.opts.SPP; s++ {
		xyz := renderSample(p, i, j)
		sum[0] += float64(xyz[0]) * accumScale
		sum[1] += float64(xyz[1]) * accumScale
		sum[2] += float64(xyz[2]) * accumScale
	}
	n := float64(p.opts.SPP)
	xyzAvg := color.Vec3{
		float32(sum[0] / accumScale / n),
		float32(sum[1] / accumScale / n),
		float32(sum[2] / accumScale / n),
	}
	return color.XYZToLRGB(xyzAvg, p.opts.ColorData)
}
