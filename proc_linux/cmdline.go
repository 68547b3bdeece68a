//go:build linux

package proc_linux

import (
	"fmt"
	"os"

	"procinfo/proc"
)

// Cmdline returns the argument vector of a process. If the kernel
// exposes only a prefix of the arguments (the target may be exiting
// concurrently) the partial vector is returned rather than an error.
func (s *LinuxSource) Cmdline(pid proc.ProcessID) ([]string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &proc.NoSuchProcessError{PID: pid}
		}
		return nil, s.classifyProcError(pid)
	}

	args := splitCmdline(data)
	if len(args) == 0 {
		// Zombies and kernel threads legitimately expose an empty
		// cmdline; only report NoSuchProcess if the PID is truly gone.
		alive, eerr := s.Exists(pid)
		if eerr == nil && !alive {
			return nil, &proc.NoSuchProcessError{PID: pid}
		}
		return []string{}, nil
	}

	return args, nil
}
