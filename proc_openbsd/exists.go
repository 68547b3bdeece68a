//go:build openbsd

package proc_openbsd

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"

	"procinfo/proc"
)

// Exists reports whether pid names a live process. A nonexistent
// identifier yields (false, nil), never an error.
func (s *OpenbsdSource) Exists(pid proc.ProcessID) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	// kill with signal 0 probes existence without delivering anything
	err := unix.Kill(int(pid), 0)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.ESRCH):
		return false, nil
	case errors.Is(err, unix.EPERM):
		// We may not signal it, but it is there
		return true, nil
	default:
		return false, &proc.KernelQueryError{Op: "kill(pid, 0)", Err: err}
	}
}

// WaitGone polls until the PID disappears or until timeout elapses.
// Returns true if the process exited within the timeout.
func (s *OpenbsdSource) WaitGone(pid proc.ProcessID, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	tick := 25 * time.Millisecond
	for {
		alive, err := s.Exists(pid)
		if err == nil && !alive {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(tick)
		if tick < 250*time.Millisecond {
			tick += 10 * time.Millisecond
		}
	}
}
