//go:build linux

package proc_linux

import (
	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"procinfo/proc"
)

// LinuxSource implements the proc.Source interface by reading procfs.
// All queries are read-only snapshots; the source itself holds no
// per-process state and is safe for concurrent use.
type LinuxSource struct {
	log *logger.Logger
}

// New creates a new LinuxSource instance
func New() proc.Source {
	return &LinuxSource{
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "proc-linux")),
	}
}
