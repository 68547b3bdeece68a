package proc_openbsd

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildArgvBuffer lays out a buffer the way kern.proc_args does: a
// NULL-terminated pointer table, then the strings, with the pointers
// expressed relative to the given base address.
func buildArgvBuffer(base uint64, args []string) []byte {
	tableLen := (len(args) + 1) * 8

	strOff := tableLen
	buf := make([]byte, tableLen)
	for i, arg := range args {
		binary.LittleEndian.PutUint64(buf[i*8:], base+uint64(strOff))
		strOff += len(arg) + 1
	}
	// table terminator is already zero

	for _, arg := range args {
		buf = append(buf, arg...)
		buf = append(buf, 0)
	}

	return buf
}

func TestArgvFromBuffer(t *testing.T) {
	base := uint64(0x7f0000001000)
	args := []string{"/usr/bin/sleep", "60"}

	got := argvFromBuffer(buildArgvBuffer(base, args), base)
	assert.Equal(t, args, got)
}

func TestArgvFromBufferSingleArg(t *testing.T) {
	base := uint64(0x1000)

	got := argvFromBuffer(buildArgvBuffer(base, []string{"init"}), base)
	assert.Equal(t, []string{"init"}, got)
}

func TestArgvFromBufferPartialTable(t *testing.T) {
	base := uint64(0x2000)
	buf := buildArgvBuffer(base, []string{"cmd", "arg1", "arg2"})

	// Corrupt the second pointer to point outside the buffer, as happens
	// when the target exits mid-read. The prefix must survive.
	binary.LittleEndian.PutUint64(buf[8:], base+1<<20)

	got := argvFromBuffer(buf, base)
	assert.Equal(t, []string{"cmd"}, got)
}

func TestArgvFromBufferPointerBelowBase(t *testing.T) {
	base := uint64(0x10000)
	buf := buildArgvBuffer(base, []string{"cmd"})
	binary.LittleEndian.PutUint64(buf[0:], base-8)

	assert.Empty(t, argvFromBuffer(buf, base))
}

func TestArgvFromBufferEmpty(t *testing.T) {
	assert.Empty(t, argvFromBuffer(nil, 0))
	assert.Empty(t, argvFromBuffer(make([]byte, 8), 0x1000)) // just a NULL table
}

func TestCString(t *testing.T) {
	assert.Equal(t, "abc", cString([]byte("abc\x00def")))
	assert.Equal(t, "abc", cString([]byte("abc"))) // unterminated tail
	assert.Equal(t, "", cString([]byte{0}))
}

func TestInt8String(t *testing.T) {
	in := []int8{'s', 'h', 0, 'x'}
	assert.Equal(t, "sh", int8String(in))
	assert.Equal(t, "", int8String(nil))
}
