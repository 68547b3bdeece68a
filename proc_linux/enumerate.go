//go:build linux

package proc_linux

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"procinfo/proc"
)

// Pids returns the identifiers of all currently visible processes
func (s *LinuxSource) Pids() ([]proc.ProcessID, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "read /proc", Err: err}
	}

	var pids []proc.ProcessID
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue // not a PID dir
		}
		pids = append(pids, proc.ProcessID(pid))
	}

	return pids, nil
}

// Snapshots returns one Snapshot per currently visible process
func (s *LinuxSource) Snapshots() ([]proc.Snapshot, error) {
	pids, err := s.Pids()
	if err != nil {
		return nil, err
	}

	snaps := make([]proc.Snapshot, 0, len(pids))
	for _, pid := range pids {
		snap, err := s.Snapshot(pid)
		if err != nil {
			// Process may have terminated while we were walking /proc
			continue
		}
		snaps = append(snaps, *snap)
	}

	s.log.Debugln("Enumerated", len(snaps), "of", len(pids), "processes")

	return snaps, nil
}

// Snapshot returns the current kernel-reported state of one process
func (s *LinuxSource) Snapshot(pid proc.ProcessID) (*proc.Snapshot, error) {
	procPath := fmt.Sprintf("/proc/%d", pid)

	statusData, err := os.ReadFile(filepath.Join(procPath, "status"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &proc.NoSuchProcessError{PID: pid}
		}
		return nil, s.classifyProcError(pid)
	}

	status, err := parseStatus(statusData)
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "parse " + procPath + "/status", Err: err}
	}

	snap := &proc.Snapshot{
		PID:      pid,
		PPID:     status.PPID,
		Name:     status.Name,
		State:    status.State,
		UID:      status.UID,
		Threads:  status.Threads,
		RSS:      status.VmRSS,
		VirtSize: status.VmSize,
	}

	// Resolve the executable path. Kernel threads have no exe, and the
	// symlink is unreadable without permission; both leave Exe empty.
	if exe, err := os.Readlink(filepath.Join(procPath, "exe")); err == nil {
		snap.Exe = exe
	}

	if u, err := user.LookupId(strconv.FormatUint(uint64(status.UID), 10)); err == nil {
		snap.User = u.Username
	}

	// Start time needs the boot time plus the tick offset from stat
	if statData, err := os.ReadFile(filepath.Join(procPath, "stat")); err == nil {
		if st, err := parseStat(statData); err == nil {
			if boot := cachedBootTime(); !boot.IsZero() {
				snap.StartTime = boot.Add(time.Duration(st.StartTime) * time.Second / clockTicks)
			}
		}
	}

	return snap, nil
}

// Boot time never changes while we run, so read it once
var (
	bootTimeOnce  sync.Once
	bootTimeCache time.Time
)

func cachedBootTime() time.Time {
	bootTimeOnce.Do(func() {
		if t, err := bootTime(); err == nil {
			bootTimeCache = t
		}
	})
	return bootTimeCache
}

// bootTime reads the absolute boot time from the btime line of /proc/stat
func bootTime() (time.Time, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return time.Time{}, &proc.KernelQueryError{Op: "read /proc/stat", Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "btime" {
			sec, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return time.Time{}, &proc.KernelQueryError{Op: "parse btime", Err: err}
			}
			return time.Unix(sec, 0), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return time.Time{}, &proc.KernelQueryError{Op: "read /proc/stat", Err: err}
	}

	return time.Time{}, &proc.KernelQueryError{Op: "read /proc/stat", Err: fmt.Errorf("no btime line")}
}
