package unit

// UTF-16 surrogate ranges and the constants used to combine or split pairs.
const (
	LeadSurrogateMin  = 0xD800
	LeadSurrogateMax  = 0xDBFF
	TrailSurrogateMin = 0xDC00
	TrailSurrogateMax = 0xDFFF

	// LeadOffset is LeadSurrogateMin - (0x10000 >> 10).
	LeadOffset = 0xD7C0
	// SurrogateOffset is 0x10000 - (LeadSurrogateMin << 10) - TrailSurrogateMin,
	// modulo 2^32.
	SurrogateOffset = 0xFCA02400

	// MaxScalar is the largest Unicode code point.
	MaxScalar = 0x10FFFF
)

// SequenceLength8 returns the number of bytes of the UTF-8 sequence whose
// lead byte is b: 1 for ASCII, 2, 3 or 4 for multi-byte leads.
//
// Any other byte, including a continuation byte or 0xF8-0xFF, yields 1 so
// that a walk over malformed text always makes progress. Use LeadLength8 to
// tell the two cases apart.
func SequenceLength8(b byte) int {
	n, _ := LeadLength8(b)
	return n
}

// LeadLength8 is the strict form of SequenceLength8. It reports ok=false
// (and n=1) when b cannot begin a UTF-8 sequence.
func LeadLength8(b byte) (n int, ok bool) {
	switch {
	case b < 0x80:
		return 1, true
	case b>>5 == 0b110:
		return 2, true
	case b>>4 == 0b1110:
		return 3, true
	case b>>3 == 0b11110:
		return 4, true
	}
	return 1, false
}

// IsTrail8 reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsTrail8(b byte) bool {
	return b>>6 == 0b10
}

// IsValidLead8 reports whether b is ASCII or the first byte of a
// multi-byte UTF-8 sequence.
func IsValidLead8(b byte) bool {
	return !IsTrail8(b) && b <= 0b11110111
}

// SequenceLength16 returns 2 if u (host order) is a lead surrogate, else 1.
func SequenceLength16(u uint16) int {
	if IsLeadSurrogate(u) {
		return 2
	}
	return 1
}

// IsLeadSurrogate reports whether u (host order) is in 0xD800-0xDBFF.
func IsLeadSurrogate(u uint16) bool {
	return u >= LeadSurrogateMin && u <= LeadSurrogateMax
}

// IsTrailSurrogate reports whether u (host order) is in 0xDC00-0xDFFF.
func IsTrailSurrogate(u uint16) bool {
	return u >= TrailSurrogateMin && u <= TrailSurrogateMax
}

// IsSurrogate reports whether u (host order) is a lead or trail surrogate.
func IsSurrogate(u uint16) bool {
	return u >= LeadSurrogateMin && u <= TrailSurrogateMax
}
