//go:build openbsd

package main

import (
	"procinfo/proc"
	"procinfo/proc_openbsd"
)

func newSource() proc.Source {
	return proc_openbsd.New()
}
