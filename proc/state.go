package proc

// ProcessState represents the scheduling state of a process or thread
type ProcessState string

const (
	StateRunning    ProcessState = "R" // Running or runnable
	StateSleeping   ProcessState = "S" // Sleeping in an interruptible wait
	StateWaiting    ProcessState = "D" // Waiting in uninterruptible disk sleep
	StateZombie     ProcessState = "Z" // Zombie
	StateStopped    ProcessState = "T" // Stopped (on a signal)
	StateTracingStp ProcessState = "t" // Tracing stop
	StateIdle       ProcessState = "I" // Idle kernel thread
	StateDead       ProcessState = "X" // Dead
)
