//go:build openbsd

package proc_openbsd

import (
	"unsafe"

	"procinfo/proc"
)

// Cmdline returns the argument vector of a process via kern.proc_args.
// If the kernel exposes only a prefix of the arguments (the target may
// be exiting concurrently) the partial vector is returned; if nothing
// at all is recoverable the process is treated as gone.
func (s *OpenbsdSource) Cmdline(pid proc.ProcessID) ([]string, error) {
	mib := []int32{ctlKern, kernProcArgs, int32(pid), kernProcArgv}

	size, err := sysctlSize(mib)
	if err != nil {
		return nil, s.classifyProcError(pid)
	}
	if size == 0 {
		return nil, &proc.NoSuchProcessError{PID: pid}
	}

	buf := make([]byte, size)
	if _, err := callSysctl(mib, buf); err != nil {
		return nil, s.classifyProcError(pid)
	}

	args := argvFromBuffer(buf, uint64(uintptr(unsafe.Pointer(&buf[0]))))
	if len(args) == 0 {
		alive, eerr := s.Exists(pid)
		if eerr == nil && !alive {
			return nil, &proc.NoSuchProcessError{PID: pid}
		}
		return []string{}, nil
	}

	return args, nil
}
