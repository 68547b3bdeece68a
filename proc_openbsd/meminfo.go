//go:build openbsd

package proc_openbsd

import (
	"fmt"
	"unsafe"

	"procinfo/proc"
)

// VirtualMemory returns system-wide physical memory counters from the
// vm.uvmexp sysctl, with buffer cache usage from vfs.generic.bcachestat.
func (s *OpenbsdSource) VirtualMemory() (*proc.MemoryStats, error) {
	uvm, err := s.uvmexp()
	if err != nil {
		return nil, err
	}

	pagesize := uint64(uvm.Pagesize)

	stats := &proc.MemoryStats{
		Total:    uint64(uvm.Npages) * pagesize,
		Free:     uint64(uvm.Free) * pagesize,
		Active:   uint64(uvm.Active) * pagesize,
		Inactive: uint64(uvm.Inactive) * pagesize,
		Cached:   uint64(uvm.Vnodepages+uvm.Vtextpages) * pagesize,
	}
	stats.Used = stats.Total - stats.Free
	stats.Available = stats.Free + stats.Inactive + stats.Cached

	// Buffer cache is accounted separately from uvm
	mib := []int32{ctlVfs, vfsGeneric, vfsBcacheStat}
	buf := make([]byte, unsafe.Sizeof(bcachestats{}))
	if filled, err := callSysctl(mib, buf); err == nil && filled >= uint64(len(buf)) {
		bc := *(*bcachestats)(unsafe.Pointer(&buf[0]))
		stats.Buffers = uint64(bc.Numbufpages) * pagesize
	}

	return stats, nil
}

// SwapMemory returns system-wide swap space counters from vm.uvmexp
func (s *OpenbsdSource) SwapMemory() (*proc.SwapStats, error) {
	uvm, err := s.uvmexp()
	if err != nil {
		return nil, err
	}

	pagesize := uint64(uvm.Pagesize)

	stats := &proc.SwapStats{
		Total:      uint64(uvm.Swpages) * pagesize,
		Used:       uint64(uvm.Swpginuse) * pagesize,
		SwappedIn:  uint64(uvm.Pgswapin),
		SwappedOut: uint64(uvm.Pgswapout),
	}
	if stats.Total >= stats.Used {
		stats.Free = stats.Total - stats.Used
	}

	return stats, nil
}

func (s *OpenbsdSource) uvmexp() (*uvmexp, error) {
	mib := []int32{ctlVm, vmUvmexp}
	buf := make([]byte, unsafe.Sizeof(uvmexp{}))

	filled, err := callSysctl(mib, buf)
	if err != nil {
		return nil, &proc.KernelQueryError{Op: "sysctl vm.uvmexp", Err: err}
	}
	if filled < uint64(len(buf)) {
		return nil, &proc.KernelQueryError{Op: "sysctl vm.uvmexp", Err: fmt.Errorf("short read: %d of %d bytes", filled, len(buf))}
	}

	uvm := *(*uvmexp)(unsafe.Pointer(&buf[0]))
	return &uvm, nil
}
