//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

package unit

const nativeBig = false

const (
	// EncUTF16 is UTF-16 in host byte order.
	EncUTF16 = EncUTF16LE
	// EncUTF32 is UTF-32 in host byte order.
	EncUTF32 = EncUTF32LE
)

type (
	// Char16 is a UTF-16 unit in host byte order.
	Char16 = Char16LE
	// Char16Other is a UTF-16 unit in the opposite byte order of the host.
	Char16Other = Char16BE
	// Char32 is a UTF-32 unit in host byte order.
	Char32 = Char32LE
	// Char32Other is a UTF-32 unit in the opposite byte order of the host.
	Char32Other = Char32BE
)

// NewChar16 returns the host-order UTF-16 unit for v.
func NewChar16(v uint16) Char16 { return NewChar16LE(v) }

// NewChar16Other returns the UTF-16 unit for v in the opposite byte order of
// the host.
func NewChar16Other(v uint16) Char16Other { return NewChar16BE(v) }

// NewChar32 returns the host-order UTF-32 unit for v.
func NewChar32(v uint32) Char32 { return NewChar32LE(v) }

// NewChar32Other returns the UTF-32 unit for v in the opposite byte order of
// the host.
func NewChar32Other(v uint32) Char32Other { return NewChar32BE(v) }
