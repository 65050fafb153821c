package utf

import "github.com/coregx/coretext/unit"

// ValidScalar reports whether r is in [0, 0x10FFFF].
func ValidScalar(r rune) bool {
	return r >= 0 && r <= unit.MaxScalar
}

// IsBMP reports whether r fits a single UTF-16 unit.
func IsBMP(r rune) bool {
	return r >= 0 && r < 0x10000
}

// SurrogateToScalar combines a lead and a trail surrogate (host order).
// The result is meaningless unless hi and lo are a lead and a trail.
func SurrogateToScalar(hi, lo uint16) rune {
	return rune(uint32(hi)<<10 + uint32(lo) + unit.SurrogateOffset)
}

// isScalarValue excludes the surrogate range as well. Strict validators use
// it; the lenient paths only check ValidScalar.
func isScalarValue(r rune) bool {
	return ValidScalar(r) && (r < unit.LeadSurrogateMin || r > unit.TrailSurrogateMax)
}
