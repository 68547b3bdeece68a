package proc_openbsd

// The kern.proc_args sysctl fills the caller's buffer with an argv-style
// pointer table followed by the argument strings themselves; the kernel
// rewrites the pointers to refer into the caller's buffer. argvFromBuffer
// decodes that layout given the base address the buffer occupied when the
// sysctl ran.
//
// A concurrently exiting target can leave the table truncated. In that
// case the readable prefix is returned; the caller decides whether an
// empty result means the process is gone.
func argvFromBuffer(buf []byte, base uint64) []string {
	const ptrSize = 8

	var args []string
	for off := 0; off+ptrSize <= len(buf); off += ptrSize {
		ptr := leUint64(buf[off : off+ptrSize])
		if ptr == 0 {
			break // NULL terminator of the pointer table
		}

		strOff := ptr - base
		if ptr < base || strOff >= uint64(len(buf)) {
			// Pointer outside the buffer: the table was only partially
			// filled in. Keep what we decoded so far.
			break
		}

		args = append(args, cString(buf[strOff:]))
	}

	return args
}

// cString returns the bytes of b up to the first NUL
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func leUint64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// int8String converts a fixed-size kernel char array to a Go string
func int8String(b []int8) string {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == 0 {
			break
		}
		out = append(out, byte(c))
	}
	return string(out)
}
