package proc_openbsd

// Layouts and constants for the OpenBSD kern.proc and vm.uvmexp sysctl
// interfaces. OpenBSD defines these structures with fixed-width types,
// so the same layout holds on every architecture.

const (
	ctlKern             = 1
	ctlVm               = 2
	ctlVfs              = 10
	kernProc            = 66
	kernProcAll         = 0
	kernProcPid         = 1
	kernProcArgs        = 55
	kernProcArgv        = 1
	kernProcShowThreads = 0x40000000
	vmUvmexp            = 4
	vfsGeneric          = 0
	vfsBcacheStat       = 3
)

// Process states reported in kinfoProc.Stat
const (
	sidl    = 1 // being created
	srun    = 2 // runnable
	ssleep  = 3 // sleeping
	sstop   = 4 // stopped
	szomb   = 5 // zombie
	sdead   = 6 // exiting
	sonproc = 7 // on a CPU
)

type kinfoProc struct {
	Forw       uint64
	Back       uint64
	Paddr      uint64
	Addr       uint64
	Fd         uint64
	Stats      uint64
	Limit      uint64
	Vmspace    uint64
	Sigacts    uint64
	Sess       uint64
	Tsess      uint64
	Ru         uint64
	Eflag      int32
	Exitsig    int32
	Flag       int32
	Pid        int32
	Ppid       int32
	Sid        int32
	Pgid       int32
	Tpgid      int32
	Uid        uint32
	Ruid       uint32
	Gid        uint32
	Rgid       uint32
	Groups     [16]uint32
	Ngroups    int16
	Jobc       int16
	Tdev       uint32
	Estcpu     uint32
	RtimeSec   uint32
	RtimeUsec  uint32
	Cpticks    int32
	Pctcpu     uint32
	Swtime     uint32
	Slptime    uint32
	Schedflags int32
	Uticks     uint64
	Sticks     uint64
	Iticks     uint64
	Tracep     uint64
	Traceflag  int32
	Holdcnt    int32
	Siglist    int32
	Sigmask    uint32
	Sigignore  uint32
	Sigcatch   uint32
	Stat       int8
	Priority   uint8
	Usrpri     uint8
	Nice       uint8
	Xstat      uint16
	Acflag     uint16
	Comm       [24]int8
	Wmesg      [8]int8
	Wchan      uint64
	Login      [32]int8
	VmRssize   int32
	VmTsize    int32
	VmDsize    int32
	VmSsize    int32
	Uvalid     int64
	UstartSec  uint64
	UstartUsec uint32
	UutimeSec  uint32
	UutimeUsec uint32
	UstimeSec  uint32
	UstimeUsec uint32
	UruMaxrss  uint64
	UruIxrss   uint64
	UruIdrss   uint64
	UruIsrss   uint64
	UruMinflt  uint64
	UruMajflt  uint64
	UruNswap   uint64
	UruInblock uint64
	UruOublock uint64
	UruMsgsnd  uint64
	UruMsgrcv  uint64
	UruNsignal uint64
	UruNvcsw   uint64
	UruNivcsw  uint64
	UctimeSec  uint32
	UctimeUsec uint32
	Psflags    uint32
	Spare      int32
	Svuid      uint32
	Svgid      uint32
	Emul       [8]int8
	RlimRssCur uint64
	Cpuid      uint64
	VmMapSize  uint64
	Tid        int32
	Rtableid   uint32
	Pledge     uint64
	Name       [16]int8
}

type uvmexp struct {
	Pagesize          int32
	Pagemask          int32
	Pageshift         int32
	Npages            int32
	Free              int32
	Active            int32
	Inactive          int32
	Paging            int32
	Wired             int32
	Zeropages         int32
	ReservePagedaemon int32
	ReserveKernel     int32
	Anonpages         int32
	Vnodepages        int32
	Vtextpages        int32
	Freemin           int32
	Freetarg          int32
	Inactarg          int32
	Wiredmax          int32
	Anonmin           int32
	Vtextmin          int32
	Vnodemin          int32
	Anonminpct        int32
	Vtextminpct       int32
	Vnodeminpct       int32
	Nswapdev          int32
	Swpages           int32
	Swpginuse         int32
	Swpgonly          int32
	Nswget            int32
	Nanon             int32
	Nanonneeded       int32
	Nfreeanon         int32
	Faults            int32
	Traps             int32
	Intrs             int32
	Swtch             int32
	Softs             int32
	Syscalls          int32
	Pageins           int32
	ObsoleteSwapins   int32
	ObsoleteSwapouts  int32
	Pgswapin          int32
	Pgswapout         int32
	Forks             int32
	ForksPpwait       int32
	ForksSharevm      int32
	PgaZerohit        int32
	PgaZeromiss       int32
	Zeroaborts        int32
	Fltnoram          int32
	Fltnoanon         int32
	Fltpgwait         int32
	Fltpgrele         int32
	Fltrelck          int32
	Fltrelckok        int32
	Fltanget          int32
	Fltanretry        int32
	Fltamcopy         int32
	Fltnamap          int32
	Fltnomap          int32
	Fltlget           int32
	Fltget            int32
	FltAnon           int32
	FltAcow           int32
	FltObj            int32
	FltPrcopy         int32
	FltPrzero         int32
	Pdwoke            int32
	Pdrevs            int32
	Pdswout           int32
	Pdfreed           int32
	Pdscans           int32
	Pdanscan          int32
	Pdobscan          int32
	Pdreact           int32
	Pdbusy            int32
	Pdpageouts        int32
	Pdpending         int32
	Pddeact           int32
	Pdreanon          int32
	Pdrevnode         int32
	Pdrevtext         int32
	Fpswtch           int32
	Kmapent           int32
}

type bcachestats struct {
	Numbufs       int64
	Numbufpages   int64
	Numdirtypages int64
	Numcleanpages int64
	Pendingwrites int64
	Pendingreads  int64
	Numwrites     int64
	Numreads      int64
	Cachehits     int64
	Busymapped    int64
	Dmapages      int64
	Highpages     int64
	Delwribufs    int64
	Kvaslots      int64
	Avail         int64
}
