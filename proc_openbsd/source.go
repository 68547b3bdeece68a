//go:build openbsd

package proc_openbsd

import (
	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"procinfo/proc"
)

// OpenbsdSource implements the proc.Source interface through the
// kern.proc and vm.uvmexp sysctl interfaces. All queries are read-only
// snapshots; the source holds no per-process state and is safe for
// concurrent use.
type OpenbsdSource struct {
	log *logger.Logger
}

// New creates a new OpenbsdSource instance
func New() proc.Source {
	return &OpenbsdSource{
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "proc-openbsd")),
	}
}
