// utils.go — low-level helpers shared by the debug layer & harvester.
package utils

import "syscall"

///////////////////////////////////////////////////////////////////////////////
// Cold-Path Output — Direct fd Writes
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr (file descriptor 2), bypassing
// buffered writers and fmt. Meant for infrequent diagnostics only.
//
//go:nosplit
func PrintWarning(msg string) {
	_, _ = syscall.Write(2, []byte(msg))
}

///////////////////////////////////////////////////////////////////////////////
// Integer Formatting — No strconv, No fmt
///////////////////////////////////////////////////////////////////////////////

// AppendU64 appends the decimal form of v to dst. Manual digit emission keeps
// diagnostic paths free of strconv's interface plumbing.
//
//go:nosplit
//go:inline
func AppendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

// U64ToASCII renders v as a decimal string. Allocates once for the result;
// cold paths only.
//
//go:inline
func U64ToASCII(v uint64) string {
	return string(AppendU64(nil, v))
}
