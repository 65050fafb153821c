// Package transcode converts byte streams between the supported Unicode
// encodings and UTF-8.
//
// Decoders and encoders implement golang.org/x/text/transform.Transformer,
// so they compose with transform.NewReader, transform.Chain and friends. A
// short output buffer is reported as transform.ErrShortDst and a sequence
// split at the end of a non-final input chunk as transform.ErrShortSrc.
// Malformed input stops the transformation with an *Error that records the
// byte offset and wraps utf.ErrInvalidInput.
//
// Example:
//
//	s, enc, err := transcode.ToUTF8(fileBytes)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(enc, s)
package transcode

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/transform"

	"github.com/coregx/coretext/unit"
)

// ErrUnsupportedEncoding is returned when an Encoding value is not one of
// the six defined encodings.
var ErrUnsupportedEncoding = errors.New("transcode: unsupported encoding")

// Error reports malformed input.
type Error struct {
	// Encoding is the encoding the input was read as.
	Encoding unit.Encoding
	// Offset is the byte offset of the first unconverted code point within
	// the source being transformed.
	Offset int
	// Err is the underlying cause, utf.ErrInvalidInput.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("transcode: %s at byte %d: %v", e.Encoding, e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// ToUTF8 decodes p to a UTF-8 string. A leading byte order mark selects the
// encoding and is stripped; without one, p is validated as UTF-8.
func ToUTF8(p []byte) (string, unit.Encoding, error) {
	enc, n, ok := DetectBOM(p)
	if !ok {
		enc = unit.EncUTF8
	}
	src := p[n:]
	t := NewDecoder(enc)
	dst := make([]byte, 0, len(src)+len(src)/2)
	for pos := 0; ; {
		nDst, nSrc, err := t.Transform(dst[len(dst):cap(dst)], src[pos:], true)
		dst = dst[:len(dst)+nDst]
		pos += nSrc
		switch {
		case err == nil:
			return string(dst), enc, nil
		case errors.Is(err, transform.ErrShortDst):
			dst = append(dst, make([]byte, max(cap(dst), 16))...)[:len(dst)]
		default:
			var convErr *Error
			if errors.As(err, &convErr) {
				convErr.Offset += n + pos - nSrc
			}
			return string(dst), enc, err
		}
	}
}

// NewReader returns a reader that decodes r from enc to UTF-8.
func NewReader(r io.Reader, enc unit.Encoding) io.Reader {
	return transform.NewReader(r, NewDecoder(enc))
}

// NewWriter returns a writer that encodes UTF-8 written to it as enc before
// passing it to w. Close flushes any buffered bytes.
func NewWriter(w io.Writer, enc unit.Encoding) io.WriteCloser {
	return transform.NewWriter(w, NewEncoder(enc))
}
