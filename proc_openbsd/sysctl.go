//go:build openbsd

package proc_openbsd

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// callSysctl issues a raw sysctl(2) for mibs that carry arguments beyond
// what unix.SysctlRaw's name lookup can express (kern.proc takes an
// opcode, a selector, an element size and a count in the mib itself).
func callSysctl(mib []int32, buf []byte) (uint64, error) {
	mibptr := unsafe.Pointer(&mib[0])
	miblen := uint64(len(mib))

	length := uint64(len(buf))
	var bufptr unsafe.Pointer
	if len(buf) > 0 {
		bufptr = unsafe.Pointer(&buf[0])
	}

	_, _, errno := unix.Syscall6(
		unix.SYS___SYSCTL,
		uintptr(mibptr),
		uintptr(miblen),
		uintptr(bufptr),
		uintptr(unsafe.Pointer(&length)),
		0,
		0)
	if errno != 0 {
		return length, errno
	}

	return length, nil
}

// sysctlSize asks the kernel how many bytes a query would currently fill
func sysctlSize(mib []int32) (uint64, error) {
	return callSysctl(mib, nil)
}
