package spectral

import "errors"

// Errors returned by spectrum construction and loading.
var (
	ErrBadSpectrum = errors.New("spectral: spectrum needs at least two samples")
	ErrGridMismatch = errors.New("spectral: spectra are not sampled on compatible grids")
)

// InvariantViolation is the panic payload used across this module for
// conditions the original treats as a fatal assertion: a corrupted sample
// grid, a NaN propagating out of a supposedly-total function, or similar.
// main is the only place that recovers it.
type InvariantViolation struct {
	Msg string
}

func (e InvariantViolation) Error() string { return "spectral: invariant violation: " + e.Msg }
