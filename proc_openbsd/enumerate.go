//go:build openbsd

package proc_openbsd

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strconv"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"procinfo/proc"
)

// The process table can grow between the size probe and the fetch, so
// each attempt over-allocates some slack and the whole dance is retried
// a bounded number of times rather than looping until it settles.
const (
	enumRetries = 3
	enumSlack   = 8 // extra kinfoProc records per attempt
)

const sizeOfKinfoProc = int32(unsafe.Sizeof(kinfoProc{}))

// kinfoProcs fetches the kernel's process table via kern.proc
func (s *OpenbsdSource) kinfoProcs(op, arg int32) ([]kinfoProc, error) {
	var lastErr error

	for attempt := 0; attempt < enumRetries; attempt++ {
		mib := []int32{ctlKern, kernProc, op, arg, sizeOfKinfoProc, 0}

		size, err := sysctlSize(mib)
		if err != nil {
			return nil, &proc.KernelQueryError{Op: "sysctl kern.proc size", Err: err}
		}

		count := size/uint64(sizeOfKinfoProc) + enumSlack
		mib[5] = int32(count)
		buf := make([]byte, count*uint64(sizeOfKinfoProc))

		filled, err := callSysctl(mib, buf)
		if err != nil {
			if errors.Is(err, unix.ENOMEM) {
				// More processes appeared than we allocated for
				s.log.Debugln("kern.proc buffer too small, retrying, attempt", attempt+1)
				lastErr = err
				continue
			}
			return nil, &proc.KernelQueryError{Op: "sysctl kern.proc", Err: err}
		}

		// Never trust filled beyond what we allocated
		if filled > uint64(len(buf)) {
			filled = uint64(len(buf))
		}

		n := int(filled) / int(sizeOfKinfoProc)
		procs := make([]kinfoProc, n)
		for i := 0; i < n; i++ {
			procs[i] = *(*kinfoProc)(unsafe.Pointer(&buf[i*int(sizeOfKinfoProc)]))
		}

		return procs, nil
	}

	return nil, &proc.KernelQueryError{Op: "sysctl kern.proc", Err: fmt.Errorf("process table kept growing after %d attempts: %w", enumRetries, lastErr)}
}

// Pids returns the identifiers of all currently visible processes
func (s *OpenbsdSource) Pids() ([]proc.ProcessID, error) {
	procs, err := s.kinfoProcs(kernProcAll, 0)
	if err != nil {
		return nil, err
	}

	pids := make([]proc.ProcessID, 0, len(procs))
	for _, kp := range procs {
		pids = append(pids, proc.ProcessID(kp.Pid))
	}

	return pids, nil
}

// Snapshots returns one Snapshot per currently visible process
func (s *OpenbsdSource) Snapshots() ([]proc.Snapshot, error) {
	procs, err := s.kinfoProcs(kernProcAll, 0)
	if err != nil {
		return nil, err
	}

	snaps := make([]proc.Snapshot, 0, len(procs))
	for _, kp := range procs {
		snaps = append(snaps, snapshotFromKinfo(&kp))
	}

	s.log.Debugln("Enumerated", len(snaps), "processes")

	return snaps, nil
}

// Snapshot returns the current kernel-reported state of one process
func (s *OpenbsdSource) Snapshot(pid proc.ProcessID) (*proc.Snapshot, error) {
	procs, err := s.kinfoProcs(kernProcPid, int32(pid))
	if err != nil {
		return nil, s.classifyProcError(pid)
	}
	if len(procs) == 0 {
		return nil, &proc.NoSuchProcessError{PID: pid}
	}

	snap := snapshotFromKinfo(&procs[0])

	// The kinfo record carries no thread count; fill it best-effort
	if threads, err := s.Threads(pid); err == nil {
		snap.Threads = len(threads)
	}

	return &snap, nil
}

func snapshotFromKinfo(kp *kinfoProc) proc.Snapshot {
	pagesize := uint64(os.Getpagesize())

	snap := proc.Snapshot{
		PID:      proc.ProcessID(kp.Pid),
		PPID:     proc.ProcessID(kp.Ppid),
		Name:     int8String(kp.Comm[:]),
		State:    stateFromStat(kp.Stat),
		UID:      kp.Uid,
		RSS:      uint64(kp.VmRssize) * pagesize,
		VirtSize: uint64(kp.VmTsize+kp.VmDsize+kp.VmSsize) * pagesize,
	}

	if kp.UstartSec > 0 {
		snap.StartTime = time.Unix(int64(kp.UstartSec), int64(kp.UstartUsec)*1000)
	}

	if u, err := user.LookupId(strconv.FormatUint(uint64(kp.Uid), 10)); err == nil {
		snap.User = u.Username
	}

	return snap
}

func stateFromStat(stat int8) proc.ProcessState {
	switch stat {
	case srun, sonproc:
		return proc.StateRunning
	case ssleep:
		return proc.StateSleeping
	case sstop:
		return proc.StateStopped
	case szomb, sdead:
		return proc.StateZombie
	case sidl:
		return proc.StateIdle
	default:
		return proc.ProcessState("?")
	}
}
