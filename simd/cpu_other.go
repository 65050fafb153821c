//go:build !amd64 && !arm64

package simd

// probeTiers reports the tiers available without vector registers.
func probeTiers() [tierCount]bool {
	var set [tierCount]bool
	set[TierScalar] = true
	set[TierSWAR] = true
	return set
}
