// Package render implements the path-tracing integrator and the
// tile-parallel worker pool that drives it across a framebuffer.
package render

// MaxDepth bounds the number of bounces a path can take before it's
// terminated outright (no Russian roulette; a hard cutoff, as in the
// original).
const MaxDepth = 10

// TileSize is the edge length, in pixels, of the square tiles the
// framebuffer is partitioned into for work-stealing among workers.
const TileSize = 32

// ExplicitLightSampling turns on next-event estimation: each diffuse
// bounce also casts a shadow ray at a sampled light, rather than relying
// solely on the indirect bounce to randomly hit one. Cornell-style
// scenes with a small light converge far faster with this on; scenes
// lit broadly from everywhere (e.g. the srgb demo scene) converge
// faster with it off, since the extra shadow ray mostly misses.
type ExplicitLightSampling bool

const (
	ELSOn  ExplicitLightSampling = true
	ELSOff ExplicitLightSampling = false
)

// FlatFieldCorrection selects between returning the estimated radiance
// directly (true) or weighting it by the cosine between the camera ray
// and the camera's forward direction to get estimated flux through the
// image plane (false, the physically-motivated default).
type FlatFieldCorrection bool
