// Package prng implements the PCG-32 (XSH-RR) generator the path tracer's
// hero-wavelength and BSDF sampling is built on. This is a hand-port of
// O'Neill's reference algorithm rather than the stdlib math/rand/v2 PCG
// (a different, 128-bit DXSM variant): the tracer's reproducibility
// contract is pinned to this exact bit pattern, one stream per worker.
package prng

import "math"

// defaultState and defaultInc match the PCG reference implementation's
// built-in seed, used only when no explicit seed is supplied.
const (
	defaultState = 0x853C49E6748FEA9B
	defaultInc   = 0xDA3E39CB94B95BDB

	multiplier = 6364136223846793005
)

// RNG is a single PCG-32 stream: 128 bits of state (64-bit LCG state plus
// a 64-bit stream increment).
type RNG struct {
	state uint64
	inc   uint64
}

// New returns an RNG seeded with the PCG reference implementation's
// default state and stream.
func New() *RNG {
	return &RNG{state: defaultState, inc: defaultInc}
}

// Seed reseeds the stream from a single nonzero value, setting both the
// state and the increment to it (mirroring the original's packed-array
// seeding, which fills all four 32-bit words identically).
func (r *RNG) Seed(seedValue uint32) {
	if seedValue == 0 {
		panic("prng: seed must not be zero")
	}
	word := uint64(seedValue)<<32 | uint64(seedValue)
	r.state = word
	r.inc = word
}

// SeedFull reseeds the stream from an explicit state and stream increment.
// State and increment must not both be zero.
func (r *RNG) SeedFull(state, inc uint64) {
	if state == 0 && inc == 0 {
		panic("prng: state and increment must not both be zero")
	}
	r.state = state
	r.inc = inc
}

// Uint32 returns the next 32-bit output and advances the stream.
func (r *RNG) Uint32() uint32 {
	xorshifted := uint32(((r.state >> 18) ^ r.state) >> 27)
	rot := int(r.state >> 59)
	result := (xorshifted >> uint(rot)) | (xorshifted << uint((-rot)&31))
	r.state = r.state*multiplier + r.inc
	return result
}

// Discard advances the stream count times without producing output.
func (r *RNG) Discard(count uint64) {
	for i := uint64(0); i < count; i++ {
		r.state = r.state*multiplier + r.inc
	}
}

// Float32 returns a uniform value in [0,1).
func (r *RNG) Float32() float32 {
	f := float32(r.Uint32()) * (1.0 / 4294967296.0)
	if f >= 1 {
		f = math.Nextafter32(1, 0)
	}
	return f
}

// Float64 returns a uniform value in [0,1), using two draws for full
// mantissa precision.
func (r *RNG) Float64() float64 {
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	f := float64(hi<<32|lo) * (1.0 / 18446744073709551616.0)
	if f >= 1 {
		f = math.Nextafter(1, 0)
	}
	return f
}

// Choice returns a uniform integer in [0, length).
func (r *RNG) Choice(length int) int {
	return int(uint64(r.Uint32()) * uint64(length) >> 32)
}
