//go:build linux

package proc_linux

import (
	"fmt"
	"strconv"
	"strings"

	"procinfo/proc"
)

// Kernel CPU accounting unit (USER_HZ). Fixed at 100 on every Linux
// architecture Go supports; sysconf(_SC_CLK_TCK) would need cgo.
const clockTicks = 100

// statusFields holds the subset of /proc/[pid]/status this package reads
type statusFields struct {
	Name    string
	State   proc.ProcessState
	PPID    proc.ProcessID
	UID     uint32
	Threads int
	VmRSS   uint64 // bytes
	VmSize  uint64 // bytes
}

// parseStatus extracts the fields we care about from the contents of
// /proc/[pid]/status. Unknown keys are ignored so new kernel fields
// never break parsing.
func parseStatus(data []byte) (statusFields, error) {
	var out statusFields
	seenName := false

	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "Name":
			out.Name = value
			seenName = true
		case "State":
			if len(value) > 0 {
				out.State = proc.ProcessState(value[0:1]) // first character is the state code
			}
		case "PPid":
			if v, err := strconv.Atoi(value); err == nil {
				out.PPID = proc.ProcessID(v)
			}
		case "Uid":
			// Four values: real, effective, saved, filesystem
			uidParts := strings.Fields(value)
			if len(uidParts) >= 2 {
				if v, err := strconv.ParseUint(uidParts[1], 10, 32); err == nil {
					out.UID = uint32(v)
				}
			}
		case "Threads":
			if v, err := strconv.Atoi(value); err == nil {
				out.Threads = v
			}
		case "VmRSS":
			out.VmRSS = parseKBField(value)
		case "VmSize":
			out.VmSize = parseKBField(value)
		}
	}

	if !seenName {
		return out, fmt.Errorf("status data has no Name field")
	}

	return out, nil
}

// parseKBField parses a status value of the form "1234 kB" into bytes
func parseKBField(value string) uint64 {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	if len(fields) > 1 && fields[1] == "kB" {
		return v * 1024
	}
	return v
}

// statFields holds the subset of /proc/[pid]/stat (or task/[tid]/stat)
// this package reads. Field numbers follow proc(5).
type statFields struct {
	State     proc.ProcessState
	UTime     uint64 // clock ticks
	STime     uint64 // clock ticks
	StartTime uint64 // clock ticks since boot
}

// parseStat parses a stat line. The comm field (2) may contain spaces
// and parentheses, so everything is located relative to the last ')'.
func parseStat(data []byte) (statFields, error) {
	var out statFields

	line := string(data)
	end := strings.LastIndexByte(line, ')')
	if end < 0 || end+2 > len(line) {
		return out, fmt.Errorf("malformed stat line")
	}

	// Fields after comm, so fields[0] is field 3 (state) in proc(5) terms
	fields := strings.Fields(line[end+1:])
	if len(fields) < 20 {
		return out, fmt.Errorf("stat line has %d fields after comm, want at least 20", len(fields))
	}

	out.State = proc.ProcessState(fields[0])

	utime, err := strconv.ParseUint(fields[11], 10, 64) // field 14
	if err != nil {
		return out, fmt.Errorf("bad utime: %w", err)
	}
	stime, err := strconv.ParseUint(fields[12], 10, 64) // field 15
	if err != nil {
		return out, fmt.Errorf("bad stime: %w", err)
	}
	start, err := strconv.ParseUint(fields[19], 10, 64) // field 22
	if err != nil {
		return out, fmt.Errorf("bad starttime: %w", err)
	}

	out.UTime = utime
	out.STime = stime
	out.StartTime = start

	return out, nil
}

// splitCmdline splits the NUL-separated contents of /proc/[pid]/cmdline
// into an argument vector. A partial buffer (truncated by the kernel
// while the target is exiting) still yields the readable prefix.
func splitCmdline(data []byte) []string {
	// Drop trailing NULs so we don't produce empty tail arguments
	for len(data) > 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil
	}

	var args []string
	for _, arg := range strings.Split(string(data), "\x00") {
		args = append(args, arg)
	}
	return args
}
