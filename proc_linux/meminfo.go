//go:build linux

package proc_linux

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"procinfo/proc"
)

// VirtualMemory returns system-wide physical memory counters
func (s *LinuxSource) VirtualMemory() (*proc.MemoryStats, error) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "read /proc/meminfo", Err: err}
	}

	stats, err := parseMeminfo(data)
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "parse /proc/meminfo", Err: err}
	}

	return stats, nil
}

// SwapMemory returns system-wide swap space counters
func (s *LinuxSource) SwapMemory() (*proc.SwapStats, error) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "read /proc/meminfo", Err: err}
	}

	fields, err := meminfoFields(data)
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "parse /proc/meminfo", Err: err}
	}

	stats := &proc.SwapStats{
		Total: fields["SwapTotal"],
		Free:  fields["SwapFree"],
	}
	if stats.Total >= stats.Free {
		stats.Used = stats.Total - stats.Free
	}

	// Cumulative swap activity lives in /proc/vmstat, not meminfo.
	// Missing counters (kernel built without swap) just stay zero.
	if vmstat, err := os.ReadFile("/proc/vmstat"); err == nil {
		stats.SwappedIn, stats.SwappedOut = parseVmstatSwap(vmstat)
	}

	return stats, nil
}

// parseMeminfo builds MemoryStats from the contents of /proc/meminfo
func parseMeminfo(data []byte) (*proc.MemoryStats, error) {
	fields, err := meminfoFields(data)
	if err != nil {
		return nil, err
	}

	total, ok := fields["MemTotal"]
	if !ok {
		return nil, fmt.Errorf("meminfo has no MemTotal line")
	}

	stats := &proc.MemoryStats{
		Total:    total,
		Free:     fields["MemFree"],
		Cached:   fields["Cached"],
		Buffers:  fields["Buffers"],
		Active:   fields["Active"],
		Inactive: fields["Inactive"],
	}

	// MemAvailable appeared in Linux 3.14; approximate on older kernels
	if avail, ok := fields["MemAvailable"]; ok {
		stats.Available = avail
	} else {
		stats.Available = stats.Free + stats.Cached
	}

	used := int64(stats.Total) - int64(stats.Free) - int64(stats.Cached) - int64(stats.Buffers)
	if used > 0 {
		stats.Used = uint64(used)
	}

	return stats, nil
}

// meminfoFields parses "Key:  value kB" lines into a byte-count map
func meminfoFields(data []byte) (map[string]uint64, error) {
	fields := make(map[string]uint64)

	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		fields[strings.TrimSpace(parts[0])] = parseKBField(strings.TrimSpace(parts[1]))
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no meminfo fields found")
	}

	return fields, nil
}

// parseVmstatSwap extracts the pswpin/pswpout counters from /proc/vmstat
func parseVmstatSwap(data []byte) (in, out uint64) {
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "pswpin":
			in = v
		case "pswpout":
			out = v
		}
	}
	return in, out
}
