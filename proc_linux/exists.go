//go:build linux

package proc_linux

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"golang.org/x/sys/unix"

	"procinfo/proc"
)

// Exists reports whether pid names a live process. A nonexistent
// identifier yields (false, nil), never an error.
func (s *LinuxSource) Exists(pid proc.ProcessID) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	// Fast path: stat /proc/<pid>
	_, err := os.Stat(filepath.Join("/proc", strconv.Itoa(int(pid))))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	// Transient procfs errors (permission, EIO): fall back to kill 0,
	// which probes existence without delivering a signal.
	kerr := unix.Kill(int(pid), 0)
	switch {
	case kerr == nil:
		return true, nil
	case errors.Is(kerr, unix.ESRCH):
		return false, nil
	case errors.Is(kerr, unix.EPERM):
		// We may not signal it, but it is there
		return true, nil
	default:
		return false, &proc.KernelQueryError{Op: "kill(pid, 0)", Err: kerr}
	}
}

// WaitGone polls until the PID disappears or until timeout elapses.
// Returns true if the process exited within the timeout.
func (s *LinuxSource) WaitGone(pid proc.ProcessID, timeout time.Duration) bool {
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
		// Back off up to 250ms to reduce pressure on /proc
		if tick < 250*time.Millisecond {
			tick += 10 * time.Millisecond
		}
	}
}
