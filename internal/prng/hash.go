package prng

// HashWorkerSeed turns a small, sequential worker index into a
// well-distributed 32-bit seed, so that adjacent workers (whose indices
// differ by 1) don't end up with RNG streams that are trivially
// correlated. There's no single canonical choice for this step; this is
// splitmix64's finalizer (Steele, Lea, Flood 2014), run once and folded
// down to 32 bits.
func HashWorkerSeed(workerIndex int) uint32 {
	x := uint64(workerIndex) + 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x = x ^ (x >> 31)
	h := uint32(x ^ (x >> 32))
	if h == 0 {
		h = 1
	}
	return h
}
