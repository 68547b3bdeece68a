//go:build linux

package proc_linux

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procinfo/proc"
)

// A PID above the kernel's default pid_max, so it can never be live
const bogusPID = proc.ProcessID(0x7fffff00)

func TestExistsSelf(t *testing.T) {
	s := New()

	alive, err := s.Exists(proc.ProcessID(os.Getpid()))
	require.NoError(t, err)
	assert.True(t, alive)
}

func TestExistsBogusPID(t *testing.T) {
	s := New()

	alive, err := s.Exists(bogusPID)
	require.NoError(t, err) // nonexistence is a result, not an error
	assert.False(t, alive)

	alive, err = s.Exists(-1)
	require.NoError(t, err)
	assert.False(t, alive)
}

func TestSnapshotSelf(t *testing.T) {
	s := New()
	self := proc.ProcessID(os.Getpid())

	snap, err := s.Snapshot(self)
	require.NoError(t, err)

	assert.Equal(t, self, snap.PID)
	assert.Equal(t, proc.ProcessID(os.Getppid()), snap.PPID)
	assert.NotEmpty(t, snap.Name)
	assert.NotEmpty(t, snap.State)
	assert.Equal(t, uint32(os.Geteuid()), snap.UID)
	assert.GreaterOrEqual(t, snap.Threads, 1)
	assert.Greater(t, snap.RSS, uint64(0))
	assert.Greater(t, snap.VirtSize, uint64(0))
	assert.False(t, snap.StartTime.IsZero())
	assert.True(t, snap.StartTime.Before(time.Now().Add(time.Minute)))
}

func TestSnapshotBogusPID(t *testing.T) {
	s := New()

	_, err := s.Snapshot(bogusPID)
	assert.True(t, proc.IsNoSuchProcess(err))
}

func TestPidsContainSelfAndInit(t *testing.T) {
	s := New()

	pids, err := s.Pids()
	require.NoError(t, err)

	assert.Contains(t, pids, proc.ProcessID(os.Getpid()))
	assert.Contains(t, pids, proc.ProcessID(1))
}

func TestSnapshotsSkipVanishedProcesses(t *testing.T) {
	s := New()

	snaps, err := s.Snapshots()
	require.NoError(t, err)
	assert.NotEmpty(t, snaps)

	// Every snapshot must name a PID the enumerator reported
	for _, snap := range snaps {
		assert.Greater(t, int(snap.PID), 0)
	}
}

func TestCmdlineSelf(t *testing.T) {
	s := New()
	self := proc.ProcessID(os.Getpid())

	args, err := s.Cmdline(self)
	require.NoError(t, err)
	assert.Equal(t, os.Args, args)

	// Two successive reads of an unchanged process are identical
	again, err := s.Cmdline(self)
	require.NoError(t, err)
	assert.Equal(t, args, again)
}

func TestCmdlineBogusPID(t *testing.T) {
	s := New()

	_, err := s.Cmdline(bogusPID)
	assert.True(t, proc.IsNoSuchProcess(err))
}

func TestCmdlinePID1NeverKernelError(t *testing.T) {
	s := New()

	// Depending on privileges this either succeeds or is denied, but it
	// must never surface as a kernel query failure for a live process.
	args, err := s.Cmdline(proc.ProcessID(1))
	if err != nil {
		assert.True(t, proc.IsAccessDenied(err), "unexpected error kind: %v", err)
	} else {
		assert.NotNil(t, args)
	}

	alive, err := s.Exists(proc.ProcessID(1))
	require.NoError(t, err)
	assert.True(t, alive)
}

func TestThreadsSelf(t *testing.T) {
	s := New()
	self := proc.ProcessID(os.Getpid())

	threads, err := s.Threads(self)
	require.NoError(t, err)
	require.NotEmpty(t, threads)

	// The main thread's TID equals the PID
	var foundMain bool
	for _, th := range threads {
		if th.TID == int(self) {
			foundMain = true
		}
		assert.NotEmpty(t, th.State)
	}
	assert.True(t, foundMain)
}

func TestThreadsBogusPID(t *testing.T) {
	s := New()

	_, err := s.Threads(bogusPID)
	assert.True(t, proc.IsNoSuchProcess(err))
}

func TestVirtualMemoryInvariants(t *testing.T) {
	s := New()

	mem, err := s.VirtualMemory()
	require.NoError(t, err)

	assert.Greater(t, mem.Total, uint64(0))
	assert.LessOrEqual(t, mem.Free, mem.Total)
	assert.LessOrEqual(t, mem.Used, mem.Total)
	assert.LessOrEqual(t, mem.Available, mem.Total)
	assert.LessOrEqual(t, mem.Used+mem.Free, mem.Total)
}

func TestSwapMemoryInvariants(t *testing.T) {
	s := New()

	swap, err := s.SwapMemory()
	require.NoError(t, err)

	// Swap may be absent entirely; the counters still must be coherent
	assert.Equal(t, swap.Total, swap.Used+swap.Free)
}

func TestJustTerminatedChild(t *testing.T) {
	cmd := exec.Command("sleep", "60")
	require.NoError(t, cmd.Start())

	pid := proc.ProcessID(cmd.Process.Pid)
	s := New().(*LinuxSource)

	alive, err := s.Exists(pid)
	require.NoError(t, err)
	assert.True(t, alive)

	require.NoError(t, cmd.Process.Kill())
	_ = cmd.Wait() // reap, so the PID does not linger as a zombie

	require.True(t, s.WaitGone(pid, 5*time.Second), "child still visible after kill")

	alive, err = s.Exists(pid)
	require.NoError(t, err)
	assert.False(t, alive)

	_, err = s.Cmdline(pid)
	assert.True(t, proc.IsNoSuchProcess(err))

	_, err = s.Snapshot(pid)
	assert.True(t, proc.IsNoSuchProcess(err))

	_, err = s.Threads(pid)
	assert.True(t, proc.IsNoSuchProcess(err))
}

func TestFinderIntegration(t *testing.T) {
	f := proc.NewFinder(New())
	self := proc.ProcessID(os.Getpid())

	snap, err := f.FindByPID(self)
	require.NoError(t, err)

	byName, err := f.FindByName(snap.Name)
	require.NoError(t, err)

	var found bool
	for _, s := range byName {
		if s.PID == self {
			found = true
		}
	}
	assert.True(t, found)
}
