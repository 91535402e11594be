package color

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/geometrian/spectraltracer/internal/specdata"
	"github.com/geometrian/spectraltracer/spectral"
)

// Physical constants used by Planck's law, SI units.
const (
	planckH  = 6.62607015e-34 // Planck constant, J*s
	speedOfLightC = 2.99792458e8 // m/s
	boltzmannKB   = 1.380649e-23 // J/K
)

// ObserverYear selects which CIE standard observer data table to load.
// Only 1931 is shipped with this module's data files.
type ObserverYear int

const Observer1931 ObserverYear = 1931

// BasisBT709 holds the three basis reflectance spectra used by the
// "OURS" upsampling backend (see Upsampler).
type BasisBT709 struct {
	R, G, B *spectral.Spectrum
}

// Data is the color pipeline's resolved state: the CIE standard observer,
// the D65 illuminant in both its CIE-normalized and radiometric forms, the
// reflectance-upsampling basis, and the derived RGB<->XYZ matrices.
type Data struct {
	StdObsXbar, StdObsYbar, StdObsZbar *spectral.Spectrum

	D65Orig    *spectral.Spectrum
	D65OrigXYZ Vec3
	D65Rad     *spectral.Spectrum
	D65RadXYZ  Vec3

	BasisBT709 BasisBT709

	MatrLRGBToXYZ Mat3
	MatrXYZToLRGB Mat3
}

// Init loads the CIE standard observer, D65 illuminant, and BT.709 basis
// reflectance tables from dataDir, and derives the RGB<->XYZ matrices.
// This must run before any spectrum is converted to XYZ or RGB.
func Init(dataDir string, year ObserverYear) (*Data, error) {
	d := &Data{}

	if err := d.loadObserver(dataDir, year); err != nil {
		return nil, err
	}
	if err := d.loadD65(dataDir); err != nil {
		return nil, err
	}
	if err := d.loadBasis(dataDir, year); err != nil {
		return nil, err
	}

	d.MatrLRGBToXYZ = calcMatrRGBToXYZ(
		[2]float32{0.64, 0.33}, [2]float32{0.30, 0.60}, [2]float32{0.15, 0.06}, // BT.709 primaries
		d.D65RadXYZ,
	)
	d.MatrXYZToLRGB = d.MatrLRGBToXYZ.Inverse()

	return d, nil
}

func (d *Data) loadObserver(dataDir string, year ObserverYear) error {
	if year != Observer1931 {
		return fmt.Errorf("color: unsupported observer year %d", year)
	}
	cols, err := specdata.LoadColumns(filepath.Join(dataDir, "cie1931-xyzbar-380+5+780.csv"), 3)
	if err != nil {
		return err
	}
	d.StdObsXbar, err = spectral.New(cols[0], 380, 780)
	if err != nil {
		return err
	}
	d.StdObsYbar, err = spectral.New(cols[1], 380, 780)
	if err != nil {
		return err
	}
	d.StdObsZbar, err = spectral.New(cols[2], 380, 780)
	return err
}

func (d *Data) loadD65(dataDir string) error {
	cols, err := specdata.LoadColumns(filepath.Join(dataDir, "d65-300+5+780.csv"), 1)
	if err != nil {
		return err
	}
	d.D65Orig, err = spectral.New(cols[0], 300, 780)
	if err != nil {
		return err
	}
	d.D65OrigXYZ = SpecRadFluxToXYZ(d.D65Orig, d)

	// The CIE normalizes D65 so its value at 560nm is exactly 100; verify
	// that invariant before rescaling it into a radiometric quantity.
	if got := d.D65Orig.HeroSample(560)[0]; got != 100.0 {
		panic(spectral.InvariantViolation{Msg: fmt.Sprintf("D65 at 560nm = %v, want 100", got)})
	}

	// In 1968 Planck's second radiation constant c2 was revised; data
	// normalized before then (like the CIE's D65 table) implicitly assumes
	// the old value. Correct the nominal 6500K by the ratio of new to old
	// c2 before using it to rescale D65 into spectral radiance.
	const c2Old = 1.438e-2
	c2New := planckH * speedOfLightC / boltzmannKB
	tempD65 := float32(6500.0) * float32(c2New/c2Old)

	scalar := 1.0e-5 * planck(560, tempD65)
	d.D65Rad = d.D65Orig.Scale(scalar)
	d.D65RadXYZ = SpecRadFluxToXYZ(d.D65Rad, d)
	return nil
}

func (d *Data) loadBasis(dataDir string, year ObserverYear) error {
	cols, err := specdata.LoadColumns(filepath.Join(dataDir, "cie1931-basis-bt709-380+5+780.csv"), 3)
	if err != nil {
		return err
	}
	d.BasisBT709.R, err = spectral.New(cols[0], 380, 780)
	if err != nil {
		return err
	}
	d.BasisBT709.G, err = spectral.New(cols[1], 380, 780)
	if err != nil {
		return err
	}
	d.BasisBT709.B, err = spectral.New(cols[2], 380, 780)
	return err
}

// planck evaluates Planck's law for spectral radiance (W*sr^-1*m^-2*nm^-1)
// at the given wavelength (nm) and temperature (K).
func planck(lambdaNm, tempK float32) float32 {
	lambdaM := float64(lambdaNm) * 1.0e-9
	c1L := 2.0 * planckH * speedOfLightC * speedOfLightC
	c2 := planckH * speedOfLightC / boltzmannKB

	numer := c1L
	denom := math.Pow(lambdaM, 5.0) * (math.Exp(c2/(lambdaM*float64(tempK))) - 1.0)
	value := numer / denom

	return float32(value * 1.0e-9)
}

// calcMatrRGBToXYZ derives the RGB->XYZ matrix for an RGB space given by
// its primaries' CIE xy chromaticities and a reference white's XYZ,
// following Lindbloom's method.
func calcMatrRGBToXYZ(xyR, xyG, xyB [2]float32, XYZW Vec3) Mat3 {
	xRGB := Vec3{xyR[0], xyG[0], xyB[0]}
	yRGB := Vec3{xyR[1], xyG[1], xyB[1]}

	XRGB := Vec3{xRGB[0] / yRGB[0], xRGB[1] / yRGB[1], xRGB[2] / yRGB[2]}
	YRGB := Vec3{1, 1, 1}
	ZRGB := Vec3{
		(1 - xRGB[0] - yRGB[0]) / yRGB[0],
		(1 - xRGB[1] - yRGB[1]) / yRGB[1],
		(1 - xRGB[2] - yRGB[2]) / yRGB[2],
	}

	// Rows X, Y, Z of the unscaled primaries matrix (one column per primary).
	cols := Mat3{XRGB, YRGB, ZRGB}
	SRGB := cols.Inverse().MulVec(XYZW)

	finalCols := Mat3{
		{SRGB[0] * XRGB[0], SRGB[1] * XRGB[1], SRGB[2] * XRGB[2]},
		{SRGB[0] * YRGB[0], SRGB[1] * YRGB[1], SRGB[2] * YRGB[2]},
		{SRGB[0] * ZRGB[0], SRGB[1] * ZRGB[1], SRGB[2] * ZRGB[2]},
	}
	return finalCols
}
