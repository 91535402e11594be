package spectral

import (
	"math"
	"sort"
)

// HeroSample holds one value per hero wavelength offset, sampled from a
// Spectrum at a drawn hero wavelength lambda0.
type HeroSample [HeroWavelengths]float32

// Add returns the componentwise sum of h and o.
func (h HeroSample) Add(o HeroSample) HeroSample {
	var r HeroSample
	for i := range r {
		r[i] = h[i] + o[i]
	}
	return r
}

// Mul returns the componentwise product of h and o.
func (h HeroSample) Mul(o HeroSample) HeroSample {
	var r HeroSample
	for i := range r {
		r[i] = h[i] * o[i]
	}
	return r
}

// Scale returns h with every component multiplied by sc.
func (h HeroSample) Scale(sc float32) HeroSample {
	var r HeroSample
	for i := range r {
		r[i] = h[i] * sc
	}
	return r
}

// IsZero reports whether every component of h is exactly zero.
func (h HeroSample) IsZero() bool {
	for _, v := range h {
		if v != 0 {
			return false
		}
	}
	return true
}

// Spectrum is a piecewise sampled function of wavelength over [low, high],
// evenly spaced by deltaLambda. It supports both nearest and linear
// reconstruction between samples; see sampleNearest/sampleLinear.
type Spectrum struct {
	data                          []float32
	low, high                     Nm
	deltaLambda, deltaLambdaRecip float32
}

// New builds a Spectrum from evenly-spaced samples over [low, high].
func New(data []float32, low, high Nm) (*Spectrum, error) {
	if len(data) < 2 {
		return nil, ErrBadSpectrum
	}
	numer := high - low
	denom := float32(len(data) - 1)
	s := &Spectrum{
		data:              append([]float32(nil), data...),
		low:               low,
		high:              high,
		deltaLambda:       numer / denom,
		deltaLambdaRecip:  denom / numer,
	}
	return s, nil
}

// Constant returns a flat spectrum equal to value across the full visible
// range, used for e.g. a mirror's (lack of) spectral tint.
func Constant(value float32) *Spectrum {
	s, err := New([]float32{value, value}, LambdaMin, LambdaMax)
	if err != nil {
		panic(InvariantViolation{Msg: "Constant: " + err.Error()})
	}
	return s
}

func (s *Spectrum) sampleNearest(lambda Nm) float32 {
	iF := (lambda - s.low) * s.deltaLambdaRecip
	iF = float32(math.Round(float64(iF)))
	i := int(iF)
	if i >= 0 && i < len(s.data) {
		return s.data[i]
	}
	return 0.0
}

func (s *Spectrum) sampleLinear(lambda Nm) float32 {
	i := (lambda - s.low) * s.deltaLambdaRecip
	i0f := float32(math.Floor(float64(i)))
	frac := i - i0f
	i0 := int(i0f)
	i1 := i0 + 1

	var val0, val1 float32
	if i0 >= 0 && i0 < len(s.data) {
		val0 = s.data[i0]
	}
	if i1 >= 0 && i1 < len(s.data) {
		val1 = s.data[i1]
	}
	return val0 + (val1-val0)*frac
}

// HeroSample reconstructs the spectrum, by linear interpolation, at
// lambda0 and its HeroWavelengths-1 evenly-spaced offsets.
func (s *Spectrum) HeroSample(lambda0 Nm) HeroSample {
	var result HeroSample
	for i := range result {
		result[i] = s.sampleLinear(lambda0 + Nm(i)*LambdaStep)
	}
	return result
}

// Scale returns a new spectrum with every sample multiplied by sc.
func (s *Spectrum) Scale(sc float32) *Spectrum {
	result := &Spectrum{
		data:             append([]float32(nil), s.data...),
		low:              s.low,
		high:             s.high,
		deltaLambda:      s.deltaLambda,
		deltaLambdaRecip: s.deltaLambdaRecip,
	}
	for i := range result.data {
		result.data[i] *= sc
	}
	return result
}

// fmod32 replicates C's fmodf semantics (result takes the sign of a).
func fmod32(a, b float32) float32 {
	return float32(math.Mod(float64(a), float64(b)))
}

// alignedGrids reports whether s and o are sampled on a shared step size
// with both grids' boundaries landing on [low, high]'s lattice. Only this
// aligned case is supported by Add/Mul, mirroring the original's explicit
// "other cases are valid, but not implemented" assertion.
func alignedGrids(s, o *Spectrum, low, high Nm) bool {
	const tol = 1e-3
	return s.deltaLambda == o.deltaLambda &&
		math.Abs(float64(fmod32(s.low-low, s.deltaLambda))) < tol &&
		math.Abs(float64(fmod32(o.low-low, o.deltaLambda))) < tol &&
		math.Abs(float64(fmod32(s.high-high, s.deltaLambda))) < tol &&
		math.Abs(float64(fmod32(o.high-high, o.deltaLambda))) < tol
}

// Mul multiplies s and o sample-for-sample over their overlapping range.
// The two spectra must share a step size and grid alignment; otherwise
// Mul panics with InvariantViolation, same as the assert it is grounded on.
func (s *Spectrum) Mul(o *Spectrum) *Spectrum {
	low := max32(s.low, o.low)
	high := min32(s.high, o.high)
	if !alignedGrids(s, o, low, high) {
		panic(InvariantViolation{Msg: ErrGridMismatch.Error()})
	}

	n := int((high-low)/s.deltaLambda + 1)
	data := make([]float32, n)
	for i := range data {
		lambda := low + s.deltaLambda*float32(i)
		data[i] = s.sampleNearest(lambda) * o.sampleNearest(lambda)
	}
	result, err := New(data, low, high)
	if err != nil {
		panic(InvariantViolation{Msg: "Mul: " + err.Error()})
	}
	return result
}

// Add adds s and o sample-for-sample over their overlapping range, with the
// same grid-alignment requirement as Mul.
func (s *Spectrum) Add(o *Spectrum) *Spectrum {
	low := max32(s.low, o.low)
	high := min32(s.high, o.high)
	if !alignedGrids(s, o, low, high) {
		panic(InvariantViolation{Msg: ErrGridMismatch.Error()})
	}

	n := int((high-low)/s.deltaLambda + 1)
	data := make([]float32, n)
	for i := range data {
		lambda := low + s.deltaLambda*float32(i)
		data[i] = s.sampleNearest(lambda) + o.sampleNearest(lambda)
	}
	result, err := New(data, low, high)
	if err != nil {
		panic(InvariantViolation{Msg: "Add: " + err.Error()})
	}
	return result
}

// Integrate computes the area under s by the midpoint-rule Riemann sum,
// which is exact regardless of whether s is read back with nearest or
// linear reconstruction.
func Integrate(s *Spectrum) float32 {
	var sum float32
	for _, v := range s.data {
		sum += v
	}
	return sum * s.deltaLambda
}

// IntegrateProduct computes the integral of a*b by the trapezoidal rule over
// the union of both spectra's sample points (plus one guard point outside
// each spectrum's support, where both are defined to be zero). The rule
// treats the product as linear between adjacent points, so the result is
// exact only where a*b is; for two non-constant linear segments the
// product is quadratic and the trapezoid sum overestimates or
// underestimates it.
func IntegrateProduct(a, b *Spectrum) float32 {
	low := max32(a.low-a.deltaLambda, b.low-b.deltaLambda)
	high := min32(a.high+a.deltaLambda, b.high+b.deltaLambda)

	pointSet := make(map[float32]struct{})
	addSamplePoints := func(s *Spectrum) {
		sample := s.low - s.deltaLambda
		for sample < low {
			sample += s.deltaLambda
		}
		for sample <= high {
			pointSet[sample] = struct{}{}
			sample += s.deltaLambda
		}
	}
	addSamplePoints(a)
	addSamplePoints(b)

	points := make([]float32, 0, len(pointSet))
	for p := range pointSet {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	var result float32
	for i := 0; i+1 < len(points); i++ {
		lambdaLow, lambdaHigh := points[i], points[i+1]
		valLow := a.sampleLinear(lambdaLow) * b.sampleLinear(lambdaLow)
		valHigh := a.sampleLinear(lambdaHigh) * b.sampleLinear(lambdaHigh)
		result += 0.5 * (valLow + valHigh) * (lambdaHigh - lambdaLow)
	}
	return result
}

func max32(a, b Nm) Nm {
	if a > b {
		return a
	}
	return b
}
func min32(a, b Nm) Nm {
	if a < b {
		return a
	}
	return b
}
