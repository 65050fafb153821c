//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// probeTiers reports the tiers backed by the host's vector registers.
// NEON (ASIMD) registers are 128 bits wide; SVE is not probed.
func probeTiers() [tierCount]bool {
	var set [tierCount]bool
	set[TierScalar] = true
	set[TierSWAR] = true
	set[TierVec128] = cpu.ARM64.HasASIMD
	return set
}
