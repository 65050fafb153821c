package transcode

import (
	"bytes"
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/coretext/unit"
)

// boms lists the byte order marks, longest first: the UTF-32LE mark begins
// with the UTF-16LE one.
var boms = []struct {
	enc unit.Encoding
	bom []byte
}{
	{unit.EncUTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{unit.EncUTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{unit.EncUTF8, []byte{0xEF, 0xBB, 0xBF}},
	{unit.EncUTF16LE, []byte{0xFF, 0xFE}},
	{unit.EncUTF16BE, []byte{0xFE, 0xFF}},
}

const maxBOMLen = 4

// bomAutomaton matches any byte order mark, preferring the earlier entry of
// boms when two marks start at the same byte. It is nil if the build
// failed, in which case DetectBOM compares prefixes directly.
var bomAutomaton = sync.OnceValue(func() *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, b := range boms {
		builder.AddPattern(b.bom)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
})

// DetectBOM reports the encoding announced by a byte order mark at the start
// of p and the length of the mark. ok is false when p has no mark.
//
// FF FE 00 00 is read as UTF-32LE, never as UTF-16LE followed by U+0000.
func DetectBOM(p []byte) (enc unit.Encoding, n int, ok bool) {
	head := p[:min(len(p), maxBOMLen)]
	auto := bomAutomaton()
	if auto == nil {
		return detectPrefix(head)
	}
	m := auto.Find(head, 0)
	if m == nil || m.Start != 0 {
		return 0, 0, false
	}
	enc, ok = markEncoding(head[:m.End])
	if !ok {
		return 0, 0, false
	}
	if enc == unit.EncUTF16LE && bytes.HasPrefix(head[m.End:], []byte{0x00, 0x00}) {
		return unit.EncUTF32LE, maxBOMLen, true
	}
	return enc, m.End, true
}

// markEncoding maps a matched mark back to its encoding.
func markEncoding(mark []byte) (unit.Encoding, bool) {
	for _, b := range boms {
		if bytes.Equal(mark, b.bom) {
			return b.enc, true
		}
	}
	return 0, false
}

func detectPrefix(p []byte) (unit.Encoding, int, bool) {
	for _, b := range boms {
		if bytes.HasPrefix(p, b.bom) {
			return b.enc, len(b.bom), true
		}
	}
	return 0, 0, false
}

// BOM returns the byte order mark of enc, or nil for ASCII and unknown
// encodings.
func BOM(enc unit.Encoding) []byte {
	for _, b := range boms {
		if b.enc == enc {
			return bytes.Clone(b.bom)
		}
	}
	return nil
}
