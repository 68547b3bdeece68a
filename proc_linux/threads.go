//go:build linux

package proc_linux

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"procinfo/proc"
)

// Threads returns one record per thread currently belonging to a process
func (s *LinuxSource) Threads(pid proc.ProcessID) ([]proc.ThreadInfo, error) {
	taskDir := fmt.Sprintf("/proc/%d/task", pid)

	entries, err := os.ReadDir(taskDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &proc.NoSuchProcessError{PID: pid}
		}
		return nil, s.classifyProcError(pid)
	}

	var threads []proc.ThreadInfo
	for _, entry := range entries {
		tid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		statData, err := os.ReadFile(filepath.Join(taskDir, entry.Name(), "stat"))
		if err != nil {
			// Thread exited between the readdir and the read
			continue
		}

		st, err := parseStat(statData)
		if err != nil {
			continue
		}

		threads = append(threads, proc.ThreadInfo{
			TID:        tid,
			State:      st.State,
			UserTime:   ticksToDuration(st.UTime),
			SystemTime: ticksToDuration(st.STime),
		})
	}

	if len(threads) == 0 {
		// The whole task directory emptied out under us
		return nil, s.classifyProcError(pid)
	}

	return threads, nil
}

func ticksToDuration(ticks uint64) time.Duration {
	return time.Duration(ticks) * time.Second / clockTicks
}
