//go:build linux

package main

import (
	"procinfo/proc"
	"procinfo/proc_linux"
)

func newSource() proc.Source {
	return proc_linux.New()
}
