package proc

// Source is the interface that defines read-only queries against the
// operating system's process and memory state. Every method issues one
// or more kernel-state queries, copies the result into caller-owned
// records and returns; no method mutates process or system state, and
// no state is shared between calls.
//
// Process-scoped methods fail with *NoSuchProcessError when the PID does
// not refer to a live process, and with *AccessDeniedError when the
// process exists but the caller may not inspect it. System-wide methods
// fail only with *KernelQueryError.
type Source interface {
	// Pids returns the identifiers of all currently visible processes
	Pids() ([]ProcessID, error)

	// Snapshots returns one Snapshot per currently visible process.
	// Processes that disappear during enumeration are silently skipped.
	Snapshots() ([]Snapshot, error)

	// Snapshot returns the current kernel-reported state of one process
	Snapshot(pid ProcessID) (*Snapshot, error)

	// Cmdline returns the argument vector of a process. If the kernel
	// exposes only a prefix of the arguments, the partial vector is
	// returned rather than an error.
	Cmdline(pid ProcessID) ([]string, error)

	// Exists reports whether pid names a live process. A nonexistent
	// identifier yields (false, nil), never an error.
	Exists(pid ProcessID) (bool, error)

	// Threads returns one record per thread belonging to a process
	Threads(pid ProcessID) ([]ThreadInfo, error)

	// VirtualMemory returns system-wide physical memory counters
	VirtualMemory() (*MemoryStats, error)

	// SwapMemory returns system-wide swap space counters
	SwapMemory() (*SwapStats, error)
}
