package proc

import (
	"errors"
	"fmt"
)

// NoSuchProcessError is returned when a process-scoped query names an
// identifier that does not refer to a live process at call time.
type NoSuchProcessError struct {
	PID ProcessID
}

func (e *NoSuchProcessError) Error() string {
	return fmt.Sprintf("process with PID %d does not exist", e.PID)
}

// AccessDeniedError is returned when the target process exists but the
// caller lacks permission to inspect it.
type AccessDeniedError struct {
	PID ProcessID
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied for process with PID %d", e.PID)
}

// KernelQueryError is returned when a kernel-state query fails for a
// reason unrelated to the existence or accessibility of a particular
// process, e.g. a sysctl transport failure or a procfs read error.
type KernelQueryError struct {
	Op  string // The query that failed, e.g. "read /proc/meminfo"
	Err error
}

func (e *KernelQueryError) Error() string {
	return fmt.Sprintf("kernel query %q failed: %v", e.Op, e.Err)
}

func (e *KernelQueryError) Unwrap() error {
	return e.Err
}

// IsNoSuchProcess reports whether err indicates a dead or unknown process.
func IsNoSuchProcess(err error) bool {
	var nsp *NoSuchProcessError
	return errors.As(err, &nsp)
}

// IsAccessDenied reports whether err indicates a permission failure on a
// live process.
func IsAccessDenied(err error) bool {
	var ad *AccessDeniedError
	return errors.As(err, &ad)
}
