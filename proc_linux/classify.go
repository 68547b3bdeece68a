//go:build linux

package proc_linux

import "procinfo/proc"

// classifyProcError decides which failure to surface after a per-process
// query failed. procfs reports "gone" and "forbidden" through the same
// handful of errnos, so the only reliable disambiguation is a follow-up
// liveness probe: a dead process is NoSuchProcess, anything still alive
// that we could not read is AccessDenied. The process can of course die
// between the failed query and the probe; the classification is
// best-effort, not linearizable.
func (s *LinuxSource) classifyProcError(pid proc.ProcessID) error {
	alive, err := s.Exists(pid)
	if err == nil && !alive {
		return &proc.NoSuchProcessError{PID: pid}
	}
	return &proc.AccessDeniedError{PID: pid}
}
