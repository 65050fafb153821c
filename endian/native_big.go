//go:build mips || mips64 || ppc64 || s390x

package endian

// Native is the byte order of the host.
const Native = Big
