//go:build linux

package proc_linux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMeminfo = `MemTotal:       16384000 kB
MemFree:         2048000 kB
MemAvailable:    8192000 kB
Buffers:          512000 kB
Cached:          4096000 kB
SwapCached:            0 kB
Active:          6144000 kB
Inactive:        3072000 kB
SwapTotal:       4194304 kB
SwapFree:        4194300 kB
`

func TestParseMeminfo(t *testing.T) {
	got, err := parseMeminfo([]byte(sampleMeminfo))
	require.NoError(t, err)

	kb := uint64(1024)
	assert.Equal(t, 16384000*kb, got.Total)
	assert.Equal(t, 2048000*kb, got.Free)
	assert.Equal(t, 8192000*kb, got.Available)
	assert.Equal(t, 512000*kb, got.Buffers)
	assert.Equal(t, 4096000*kb, got.Cached)
	assert.Equal(t, 6144000*kb, got.Active)
	assert.Equal(t, 3072000*kb, got.Inactive)

	// Used = Total - Free - Cached - Buffers
	assert.Equal(t, (16384000-2048000-4096000-512000)*kb, got.Used)
	assert.LessOrEqual(t, got.Used+got.Free, got.Total)
}

func TestParseMeminfoWithoutMemAvailable(t *testing.T) {
	data := []byte("MemTotal: 1000 kB\nMemFree: 400 kB\nCached: 100 kB\n")

	got, err := parseMeminfo(data)
	require.NoError(t, err)

	// Pre-3.14 kernels: approximated as Free + Cached
	assert.Equal(t, uint64(500*1024), got.Available)
}

func TestParseMeminfoRequiresMemTotal(t *testing.T) {
	_, err := parseMeminfo([]byte("MemFree: 400 kB\n"))
	assert.Error(t, err)

	_, err = parseMeminfo([]byte("complete garbage"))
	assert.Error(t, err)
}

func TestParseVmstatSwap(t *testing.T) {
	data := []byte("nr_free_pages 12345\npswpin 111\npswpout 222\n")

	in, out := parseVmstatSwap(data)
	assert.Equal(t, uint64(111), in)
	assert.Equal(t, uint64(222), out)

	in, out = parseVmstatSwap([]byte(""))
	assert.Zero(t, in)
	assert.Zero(t, out)
}
