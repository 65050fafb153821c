//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// probeTiers reports the tiers backed by the host's vector registers.
// SSE2 is part of the amd64 baseline, so TierVec128 is always present.
func probeTiers() [tierCount]bool {
	var set [tierCount]bool
	set[TierScalar] = true
	set[TierSWAR] = true
	set[TierVec128] = cpu.X86.HasSSE2
	set[TierVec256] = cpu.X86.HasAVX2
	set[TierVec512] = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	return set
}
