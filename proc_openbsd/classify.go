//go:build openbsd

package proc_openbsd

import "procinfo/proc"

// classifyProcError decides which failure to surface after a per-process
// query failed. The kern.proc family reports "gone" and "forbidden"
// through the same ambiguous errnos, so a follow-up liveness probe is
// the only way to tell them apart: a dead process is NoSuchProcess,
// anything still alive that we could not read is AccessDenied. The
// target can die between the failed query and the probe; the
// classification is best-effort, not linearizable.
func (s *OpenbsdSource) classifyProcError(pid proc.ProcessID) error {
	alive, err := s.Exists(pid)
	if err == nil && !alive {
		return &proc.NoSuchProcessError{PID: pid}
	}
	return &proc.AccessDeniedError{PID: pid}
}
