package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves a canned process table so the finder logic can be
// exercised without touching the real system
type fakeSource struct {
	snaps    []Snapshot
	cmdlines map[ProcessID][]string
}

func (f *fakeSource) Pids() ([]ProcessID, error) {
	pids := make([]ProcessID, 0, len(f.snaps))
	for _, s := range f.snaps {
		pids = append(pids, s.PID)
	}
	return pids, nil
}

func (f *fakeSource) Snapshots() ([]Snapshot, error) {
	return f.snaps, nil
}

func (f *fakeSource) Snapshot(pid ProcessID) (*Snapshot, error) {
	for _, s := range f.snaps {
		if s.PID == pid {
			out := s
			return &out, nil
		}
	}
	return nil, &NoSuchProcessError{PID: pid}
}

func (f *fakeSource) Cmdline(pid ProcessID) ([]string, error) {
	args, ok := f.cmdlines[pid]
	if !ok {
		return nil, &AccessDeniedError{PID: pid}
	}
	return args, nil
}

func (f *fakeSource) Exists(pid ProcessID) (bool, error) {
	for _, s := range f.snaps {
		if s.PID == pid {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSource) Threads(pid ProcessID) ([]ThreadInfo, error) {
	return nil, &NoSuchProcessError{PID: pid}
}

func (f *fakeSource) VirtualMemory() (*MemoryStats, error) { return &MemoryStats{}, nil }
func (f *fakeSource) SwapMemory() (*SwapStats, error)      { return &SwapStats{}, nil }

func testSource() *fakeSource {
	return &fakeSource{
		snaps: []Snapshot{
			{PID: 1, PPID: 0, Name: "init"},
			{PID: 100, PPID: 1, Name: "sshd"},
			{PID: 200, PPID: 100, Name: "sshd"},
			{PID: 201, PPID: 200, Name: "bash"},
			{PID: 300, PPID: 1, Name: "nginx"},
		},
		cmdlines: map[ProcessID][]string{
			1:   {"/sbin/init"},
			100: {"/usr/sbin/sshd", "-D"},
			200: {"sshd: user@pts/0"},
			201: {"-bash"},
			// 300 deliberately missing: reading it fails
		},
	}
}

func TestFindByName(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindByName("sshd")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ProcessID(100), got[0].PID)
	assert.Equal(t, ProcessID(200), got[1].PID)

	// Exact match must not treat the name as a regexp
	got, err = f.FindByName("ssh.")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindByNamePattern(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindByNamePattern("^(sshd|nginx)$")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = f.FindByNamePattern("([")
	assert.Error(t, err)
}

func TestFindByCmdlineArg(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindByCmdlineArg("-D")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ProcessID(100), got[0].PID)

	// PID 300's cmdline is unreadable; the finder skips it rather than failing
	got, err = f.FindByCmdlineArg("nginx")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindByCmdlinePattern(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindByCmdlinePattern(`sshd: \w+@pts`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ProcessID(200), got[0].PID)
}

func TestFindByPID(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindByPID(201)
	require.NoError(t, err)
	assert.Equal(t, "bash", got.Name)

	_, err = f.FindByPID(9999)
	assert.True(t, IsNoSuchProcess(err))
}

func TestFindChildren(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindChildren(1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ProcessID(100), got[0].PID)
	assert.Equal(t, ProcessID(300), got[1].PID)
}

func TestFindDescendants(t *testing.T) {
	f := NewFinder(testSource())

	got, err := f.FindDescendants(100)
	require.NoError(t, err)

	var pids []ProcessID
	for _, s := range got {
		pids = append(pids, s.PID)
	}
	assert.ElementsMatch(t, []ProcessID{200, 201}, pids)
}

func TestTree(t *testing.T) {
	f := NewFinder(testSource())

	root, err := f.Tree(1)
	require.NoError(t, err)
	assert.Equal(t, "init", root.Process.Name)
	require.Len(t, root.Children, 2)

	sshd := root.Children[0]
	assert.Equal(t, ProcessID(100), sshd.Process.PID)
	require.Len(t, sshd.Children, 1)
	require.Len(t, sshd.Children[0].Children, 1)
	assert.Equal(t, "bash", sshd.Children[0].Children[0].Process.Name)
}

func TestTreeOfUnknownPID(t *testing.T) {
	f := NewFinder(testSource())

	_, err := f.Tree(4242)
	assert.True(t, IsNoSuchProcess(err))
}
