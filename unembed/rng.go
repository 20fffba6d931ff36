package unembed

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0 or inject no source.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// coin returns +1 or −1 with equal probability.
func coin(r *rand.Rand) int8 {
	if r.Intn(2) == 0 {
		return 1
	}
	return -1
}
