//go:build openbsd

package proc_openbsd

import (
	"time"

	"procinfo/proc"
)

// Threads returns one record per thread currently belonging to a
// process, via kern.proc with the SHOW_THREADS selector.
func (s *OpenbsdSource) Threads(pid proc.ProcessID) ([]proc.ThreadInfo, error) {
	procs, err := s.kinfoProcs(kernProcPid|kernProcShowThreads, int32(pid))
	if err != nil {
		return nil, s.classifyProcError(pid)
	}

	var threads []proc.ThreadInfo
	for _, kp := range procs {
		// The listing includes one process-level record with Tid == -1
		if kp.Tid < 0 {
			continue
		}

		threads = append(threads, proc.ThreadInfo{
			TID:        int(kp.Tid),
			State:      stateFromStat(kp.Stat),
			UserTime:   time.Duration(kp.UutimeSec)*time.Second + time.Duration(kp.UutimeUsec)*time.Microsecond,
			SystemTime: time.Duration(kp.UstimeSec)*time.Second + time.Duration(kp.UstimeUsec)*time.Microsecond,
		})
	}

	if len(threads) == 0 {
		return nil, s.classifyProcError(pid)
	}

	return threads, nil
}
