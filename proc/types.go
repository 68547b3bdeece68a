package proc

import "time"

// ProcessID represents a unique identifier for a process.
// It is only meaningful at the instant it was observed; the operating
// system may reuse an identifier after the process it named has exited.
type ProcessID int

// Snapshot contains the kernel-reported state of one process at the
// moment it was captured. A Snapshot is never updated in place; capture
// a new one to observe current state.
type Snapshot struct {
	PID       ProcessID    // Process ID
	PPID      ProcessID    // Parent Process ID
	Name      string       // Short process name (comm)
	Exe       string       // Path to the executable, empty if unavailable
	State     ProcessState // Scheduling state (R, S, D, Z, etc.)
	UID       uint32       // Effective user ID of the owner
	User      string       // Resolved user name, empty if lookup failed
	Threads   int          // Number of threads
	RSS       uint64       // Resident set size in bytes
	VirtSize  uint64       // Virtual memory size in bytes
	StartTime time.Time    // Process start time, zero if unavailable
}

// ThreadInfo contains the state of one thread belonging to a process.
type ThreadInfo struct {
	TID        int           // Thread ID
	State      ProcessState  // Scheduling state of the thread
	UserTime   time.Duration // CPU time spent in user mode
	SystemTime time.Duration // CPU time spent in kernel mode
}

// MemoryStats contains system-wide physical memory counters in bytes.
type MemoryStats struct {
	Total     uint64 // Physical memory installed
	Available uint64 // Memory available for new workloads without swapping
	Used      uint64 // Total - Free - Cached - Buffers
	Free      uint64 // Completely unused memory
	Cached    uint64 // Page cache
	Buffers   uint64 // Block device buffers
	Active    uint64 // Recently used memory
	Inactive  uint64 // Candidates for reclaim
}

// SwapStats contains system-wide swap space counters in bytes, plus
// cumulative page-in/page-out counts since boot.
type SwapStats struct {
	Total      uint64 // Swap space configured
	Used       uint64 // Swap space in use
	Free       uint64 // Total - Used
	SwappedIn  uint64 // Pages swapped in since boot
	SwappedOut uint64 // Pages swapped out since boot
}

// TreeNode represents a node in a process tree built from parent links.
type TreeNode struct {
	Process  Snapshot
	Children []*TreeNode
}
