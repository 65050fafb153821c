package transcode

import (
	"encoding/binary"

	"golang.org/x/text/transform"

	"github.com/coregx/coretext/unit"
	"github.com/coregx/coretext/utf"
)

// chunkUnits bounds the stack buffer used to stage wide units.
const chunkUnits = 256

type byteUnit interface {
	unit.Unit
	unit.ASCII | unit.Char8
}

// NewDecoder returns a Transformer that converts text in enc to UTF-8.
func NewDecoder(enc unit.Encoding) transform.Transformer {
	return &decoder{enc: enc}
}

// NewEncoder returns a Transformer that converts UTF-8 to enc. Converting to
// ASCII fails on the first non-ASCII byte.
func NewEncoder(enc unit.Encoding) transform.Transformer {
	return &encoder{enc: enc}
}

type decoder struct {
	transform.NopResetter
	enc unit.Encoding
}

func (d *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	switch d.enc {
	case unit.EncASCII:
		return transform8(dst, src, atEOF, unit.Units8[unit.ASCII](src), d.enc)
	case unit.EncUTF8:
		return transform8(dst, src, atEOF, unit.Units8[unit.Char8](src), d.enc)
	case unit.EncUTF16LE:
		return decodeWide(dst, src, atEOF, 2, d.enc, func(b []byte) unit.Char16LE {
			return unit.NewChar16LE(binary.LittleEndian.Uint16(b))
		})
	case unit.EncUTF16BE:
		return decodeWide(dst, src, atEOF, 2, d.enc, func(b []byte) unit.Char16BE {
			return unit.NewChar16BE(binary.BigEndian.Uint16(b))
		})
	case unit.EncUTF32LE:
		return decodeWide(dst, src, atEOF, 4, d.enc, func(b []byte) unit.Char32LE {
			return unit.NewChar32LE(binary.LittleEndian.Uint32(b))
		})
	case unit.EncUTF32BE:
		return decodeWide(dst, src, atEOF, 4, d.enc, func(b []byte) unit.Char32BE {
			return unit.NewChar32BE(binary.BigEndian.Uint32(b))
		})
	}
	return 0, 0, ErrUnsupportedEncoding
}

type encoder struct {
	transform.NopResetter
	enc unit.Encoding
}

func (e *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	switch e.enc {
	case unit.EncASCII:
		return transform8(dst, src, atEOF, unit.Units8[unit.ASCII](src), e.enc)
	case unit.EncUTF8:
		return transform8(dst, src, atEOF, unit.Units8[unit.Char8](src), e.enc)
	case unit.EncUTF16LE:
		return encodeWide(dst, src, atEOF, 2, e.enc, func(b []byte, u unit.Char16LE) {
			binary.LittleEndian.PutUint16(b, u.AsHost())
		})
	case unit.EncUTF16BE:
		return encodeWide(dst, src, atEOF, 2, e.enc, func(b []byte, u unit.Char16BE) {
			binary.BigEndian.PutUint16(b, u.AsHost())
		})
	case unit.EncUTF32LE:
		return encodeWide(dst, src, atEOF, 4, e.enc, func(b []byte, u unit.Char32LE) {
			binary.LittleEndian.PutUint32(b, u.AsHost())
		})
	case unit.EncUTF32BE:
		return encodeWide(dst, src, atEOF, 4, e.enc, func(b []byte, u unit.Char32BE) {
			binary.BigEndian.PutUint32(b, u.AsHost())
		})
	}
	return 0, 0, ErrUnsupportedEncoding
}

// transform8 validates and copies byte-sized units. The same routine serves
// both directions: ASCII and UTF-8 are each a subset of UTF-8.
func transform8[T byteUnit](dst, src []byte, atEOF bool, units []T, enc unit.Encoding) (int, int, error) {
	nDst, nSrc, ce := utf.ToUTF8(dst, units)
	switch ce {
	case utf.NoError:
		return nDst, nSrc, nil
	case utf.NotEnoughSpace:
		return nDst, nSrc, transform.ErrShortDst
	}
	if enc == unit.EncUTF8 && !atEOF && !utf.FullUTF8(src[nSrc:]) {
		return nDst, nSrc, transform.ErrShortSrc
	}
	return nDst, nSrc, &Error{Encoding: enc, Offset: nSrc, Err: ce.Err()}
}

// decodeWide stages fixed-size units from src in a stack buffer and converts
// them to UTF-8.
func decodeWide[T utf.Wide](dst, src []byte, atEOF bool, size int, enc unit.Encoding, load func([]byte) T) (nDst, nSrc int, err error) {
	var chunk [chunkUnits]T
	for {
		units := (len(src) - nSrc) / size
		if units == 0 {
			break
		}
		n := min(units, chunkUnits)
		for i := 0; i < n; i++ {
			chunk[i] = load(src[nSrc+i*size:])
		}
		cd, cs, ce := utf.ToUTF8(dst[nDst:], chunk[:n])
		nDst += cd
		nSrc += cs * size
		switch ce {
		case utf.NoError:
			continue
		case utf.NotEnoughSpace:
			return nDst, nSrc, transform.ErrShortDst
		}
		if cs == n-1 && chunk[cs].SequenceLength() == 2 {
			// A lead surrogate ends the staged units.
			if n < units {
				continue
			}
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
		}
		return nDst, nSrc, &Error{Encoding: enc, Offset: nSrc, Err: ce.Err()}
	}
	if nSrc < len(src) {
		if !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, &Error{Encoding: enc, Offset: nSrc, Err: utf.ErrInvalidInput}
	}
	return nDst, nSrc, nil
}

// encodeWide converts UTF-8 from src into staged units and writes them to
// dst in the byte order of T.
func encodeWide[T utf.Wide](dst, src []byte, atEOF bool, size int, enc unit.Encoding, store func([]byte, T)) (nDst, nSrc int, err error) {
	var chunk [chunkUnits]T
	for nSrc < len(src) {
		room := (len(dst) - nDst) / size
		if room == 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		n := min(room, chunkUnits)
		cd, cs, ce := utf.FromUTF8(chunk[:n], src[nSrc:])
		for i := 0; i < cd; i++ {
			store(dst[nDst+i*size:], chunk[i])
		}
		nDst += cd * size
		nSrc += cs
		switch ce {
		case utf.NoError:
			return nDst, nSrc, nil
		case utf.NotEnoughSpace:
			if n == room {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}
		if !atEOF && !utf.FullUTF8(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		return nDst, nSrc, &Error{Encoding: enc, Offset: nSrc, Err: ce.Err()}
	}
	return nDst, nSrc, nil
}
